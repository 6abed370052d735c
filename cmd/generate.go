package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"invoicegen/internal/counter"
	"invoicegen/internal/describe"
	"invoicegen/internal/document"
	"invoicegen/internal/logger"
	"invoicegen/internal/numbering"
	"invoicegen/pkg/models"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an invoice or receipt",
	Long: `Generate a numbered invoice or receipt as PDF, JPEG preview and text
version, plus a metadata sidecar for the accept step.

Without --number the next sequential number for the category is allocated.
With --number N the exact number is used, provided it has not been issued
before. If the number collides with the issued range, the command fails; re-run
with --force and the same --number to confirm reusing it. The number 1 is
always accepted without a collision check.`,
	Example: `  # Next sequential invoice number
  invoicegen generate --transaction Income --entity "Acme Ltd" --amount 1200

  # Receipt with an explicit number
  invoicegen generate --category Receipt --number 20 --transaction Expense \
    --entity "Jane Smith" --amount 350.50 --currency USD

  # Confirm reuse of an already-issued number
  invoicegen generate --number 5 --force --transaction Income --entity "Acme Ltd" --amount 1200`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().String("category", "Invoice", "Document category: Invoice or Receipt")
	generateCmd.Flags().String("transaction", "Income", "Transaction type: Income or Expense")
	generateCmd.Flags().String("entity", "", "Name of the person or entity (required)")
	generateCmd.Flags().String("entity-type", "Individual", "Entity type: Individual, Company or Platform")
	generateCmd.Flags().String("amount", "", "Transaction amount (required)")
	generateCmd.Flags().String("currency", "GBP", "Currency: GBP or USD")
	generateCmd.Flags().String("date", "", "Transaction date (YYYY-MM-DD, default: today)")
	generateCmd.Flags().String("payment", "Bank Transfer", "Payment method")
	generateCmd.Flags().String("notes", "", "Additional notes")
	generateCmd.Flags().String("number", "", "Manual document number (digits only; empty = automatic)")
	generateCmd.Flags().Bool("force", false, "Confirm reuse of an already-issued number")
	generateCmd.Flags().String("description", "", "Transaction description (default: generated)")
	generateCmd.Flags().Bool("ai", false, "Generate the description with OpenAI (requires OPENAI_API_KEY)")
	generateCmd.Flags().Bool("no-image", false, "Skip the JPEG preview")
	generateCmd.Flags().String("output", "", "Output directory (default: OUTPUT_DIR from config)")

	generateCmd.MarkFlagRequired("entity")
	generateCmd.MarkFlagRequired("amount")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("generate")

	categoryFlag, _ := cmd.Flags().GetString("category")
	transactionFlag, _ := cmd.Flags().GetString("transaction")
	entity, _ := cmd.Flags().GetString("entity")
	entityType, _ := cmd.Flags().GetString("entity-type")
	amountFlag, _ := cmd.Flags().GetString("amount")
	currency, _ := cmd.Flags().GetString("currency")
	dateFlag, _ := cmd.Flags().GetString("date")
	payment, _ := cmd.Flags().GetString("payment")
	notes, _ := cmd.Flags().GetString("notes")
	manualNumber, _ := cmd.Flags().GetString("number")
	force, _ := cmd.Flags().GetBool("force")
	descriptionFlag, _ := cmd.Flags().GetString("description")
	useAI, _ := cmd.Flags().GetBool("ai")
	noImage, _ := cmd.Flags().GetBool("no-image")
	outputDir, _ := cmd.Flags().GetString("output")

	category := models.Category(categoryFlag)
	if !category.Valid() {
		return fmt.Errorf("invalid category %q: must be Invoice or Receipt", categoryFlag)
	}
	transactionType := models.TransactionType(transactionFlag)
	if !transactionType.Valid() {
		return fmt.Errorf("invalid transaction type %q: must be Income or Expense", transactionFlag)
	}
	if currency != "GBP" && currency != "USD" {
		return fmt.Errorf("invalid currency %q: must be GBP or USD", currency)
	}

	amount, err := decimal.NewFromString(amountFlag)
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("invalid amount %q: must be a positive number", amountFlag)
	}

	date := time.Now()
	if dateFlag != "" {
		date, err = time.Parse("2006-01-02", dateFlag)
		if err != nil {
			return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", dateFlag)
		}
	}

	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	// Resolve the document number through the request state machine
	service := numbering.NewService(counter.NewStore(cfg.CounterFile))
	request := numbering.NewRequest(service, category)

	if force {
		if manualNumber == "" {
			return fmt.Errorf("--force requires --number")
		}
		if err := request.ConfirmForce(manualNumber); err != nil {
			return err
		}
	}

	dn, err := request.Resolve(manualNumber)
	if err != nil {
		if errors.Is(err, numbering.ErrNumberCollision) {
			log.Warn().
				Str("category", string(category)).
				Str("number", manualNumber).
				Msg("Document number collision")
			return fmt.Errorf("%w\nRe-run with --force and the same --number to use it anyway", err)
		}
		return err
	}

	log.Info().
		Str("number", dn.Formatted).
		Str("state", string(request.State())).
		Msg("Document number resolved")

	// Description: explicit flag, OpenAI, or canned rotation
	description := descriptionFlag
	if description == "" {
		var generator describe.Generator = describe.NewCannedGenerator(rand.New(rand.NewSource(time.Now().UnixNano())))
		if useAI {
			if cfg.OpenAIAPIKey == "" {
				return fmt.Errorf("--ai requires OPENAI_API_KEY to be set")
			}
			generator = describe.NewOpenAIGenerator(cfg.OpenAIAPIKey)
		}
		description, err = generator.Describe(ctx)
		if err != nil {
			return fmt.Errorf("failed to generate description: %w", err)
		}
	}

	doc := &models.Document{
		ID:              uuid.NewString(),
		Number:          dn.Formatted,
		Category:        category,
		TransactionType: transactionType,
		EntityName:      entity,
		EntityType:      entityType,
		Amount:          amount,
		Currency:        currency,
		Date:            date,
		PaymentMethod:   payment,
		Description:     description,
		Notes:           notes,
		Company:         cfg.Company(),
		CreatedAt:       time.Now(),
	}

	var rasterizer document.Rasterizer
	if !noImage {
		rasterizer = document.NewPopplerRasterizer()
	}
	assembler := document.NewAssembler(outputDir, rasterizer)

	artifact, err := assembler.Assemble(ctx, doc)
	if err != nil {
		log.Error().
			Err(err).
			Str("number", dn.Formatted).
			Msg("Document assembly failed")
		return fmt.Errorf("failed to assemble document: %w", err)
	}

	summary := struct {
		Number    string             `json:"number"`
		Category  models.Category    `json:"category"`
		State     string             `json:"allocation"`
		Artifacts *document.Artifact `json:"artifacts"`
	}{
		Number:    dn.Formatted,
		Category:  category,
		State:     string(request.State()),
		Artifacts: artifact,
	}

	jsonData, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to create JSON output: %w", err)
	}
	if _, err := os.Stdout.Write(jsonData); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Println()

	return nil
}
