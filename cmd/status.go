package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"invoicegen/internal/counter"
	"invoicegen/internal/ledger"
	"invoicegen/internal/numbering"
	"invoicegen/pkg/models"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current counters and running totals",
	Long: `Show the current high-water mark and the next number for each document
category, the running income and expense totals in GBP, and whether the VAT
registration threshold has been reached.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().Bool("json", false, "Output as JSON")
}

type categoryStatus struct {
	HighWaterMark int    `json:"high_water_mark"`
	NextNumber    string `json:"next_number"`
}

type statusOutput struct {
	Counters     map[models.Category]categoryStatus `json:"counters"`
	TotalIncome  string                             `json:"total_income"`
	TotalExpense string                             `json:"total_expense"`
	VATWarning   bool                               `json:"vat_registration_required"`
}

func runStatus(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	service := numbering.NewService(counter.NewStore(cfg.CounterFile))
	book := ledger.Open(cfg.LedgerFile, ledger.DefaultRates(cfg.USDRate()))
	totals := book.Totals()

	out := statusOutput{
		Counters:     make(map[models.Category]categoryStatus, len(models.Categories)),
		TotalIncome:  totals.Income.StringFixed(2),
		TotalExpense: totals.Expense.StringFixed(2),
		VATWarning:   book.IncomeExceedsThreshold(),
	}
	for _, c := range models.Categories {
		mark := service.Peek(c)
		out.Counters[c] = categoryStatus{
			HighWaterMark: mark,
			NextNumber:    numbering.Format(mark+1, c),
		}
	}

	if asJSON {
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to create JSON output: %w", err)
		}
		os.Stdout.Write(data)
		fmt.Println()
		return nil
	}

	for _, c := range models.Categories {
		s := out.Counters[c]
		fmt.Printf("%-8s last issued %3d, next %s\n", c+":", s.HighWaterMark, s.NextNumber)
	}
	fmt.Printf("Total Income:   £%s\n", out.TotalIncome)
	fmt.Printf("Total Expenses: £%s\n", out.TotalExpense)
	if out.VATWarning {
		fmt.Printf("WARNING: Total income has reached £%s - VAT registration required!\n",
			ledger.VATRegistrationThreshold.StringFixed(2))
	}

	return nil
}
