// Package document assembles a numbered document into its artifacts: the
// PDF, a JPEG preview of the first page, a text version, and a metadata
// sidecar that the accept step reads back.
package document

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"invoicegen/internal/logger"
	"invoicegen/pkg/models"
)

// Artifact lists everything generated for one document. ImagePath is empty
// when rasterization was skipped or unavailable.
type Artifact struct {
	PDFPath      string `json:"pdf_path"`
	ImagePath    string `json:"image_path,omitempty"`
	TextPath     string `json:"text_path"`
	MetadataPath string `json:"metadata_path"`
	TextVersion  string `json:"text_version"`
}

// Metadata is the sidecar record written next to the PDF. It carries what
// the accept step needs to post the transaction to the ledger.
type Metadata struct {
	DocumentID      string                 `json:"document_id"`
	Category        models.Category        `json:"category"`
	Number          string                 `json:"number"`
	TransactionType models.TransactionType `json:"transaction_type"`
	EntityName      string                 `json:"entity_name"`
	Amount          decimal.Decimal        `json:"amount"`
	Currency        string                 `json:"currency"`
	Date            time.Time              `json:"date"`
	GeneratedAt     time.Time              `json:"generated_at"`
}

// Assembler renders a document into its on-disk artifacts.
type Assembler struct {
	outputDir  string
	rasterizer Rasterizer
	log        zerolog.Logger
}

// NewAssembler creates an assembler writing under outputDir. rasterizer may
// be nil to skip JPEG generation.
func NewAssembler(outputDir string, rasterizer Rasterizer) *Assembler {
	return &Assembler{
		outputDir:  outputDir,
		rasterizer: rasterizer,
		log:        logger.WithComponent("assembler"),
	}
}

// Assemble renders and saves every artifact for the document. A rasterizer
// failure degrades to a PDF-only result; any other failure aborts.
func (a *Assembler) Assemble(ctx context.Context, doc *models.Document) (*Artifact, error) {
	if err := os.MkdirAll(a.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", a.outputDir, err)
	}

	base := fmt.Sprintf("%s_%s_%s",
		strings.ToLower(string(doc.Category)),
		doc.Number,
		doc.Date.Format("20060102"))

	pdfPath := filepath.Join(a.outputDir, base+".pdf")
	pdfBytes, err := BuildPDF(doc)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(pdfPath, pdfBytes, 0644); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}

	artifact := &Artifact{
		PDFPath:     pdfPath,
		TextVersion: TextVersion(doc),
	}

	// Text version next to the PDF, named after the document number
	artifact.TextPath = filepath.Join(a.outputDir, doc.Number+".txt")
	if err := os.WriteFile(artifact.TextPath, []byte(artifact.TextVersion), 0644); err != nil {
		return nil, fmt.Errorf("failed to write text version: %w", err)
	}

	// JPEG preview under a date-based folder split by money direction
	if a.rasterizer != nil {
		imagePath, err := a.rasterize(ctx, doc, base, pdfPath)
		if err != nil {
			a.log.Warn().
				Err(err).
				Str("pdf", pdfPath).
				Msg("JPEG preview skipped")
		} else {
			artifact.ImagePath = imagePath
		}
	}

	// Metadata sidecar for the accept step
	artifact.MetadataPath = filepath.Join(a.outputDir, base+".json")
	meta := Metadata{
		DocumentID:      doc.ID,
		Category:        doc.Category,
		Number:          doc.Number,
		TransactionType: doc.TransactionType,
		EntityName:      doc.EntityName,
		Amount:          doc.Amount,
		Currency:        doc.Currency,
		Date:            doc.Date,
		GeneratedAt:     time.Now(),
	}
	metaBytes, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode document metadata: %w", err)
	}
	if err := os.WriteFile(artifact.MetadataPath, metaBytes, 0644); err != nil {
		return nil, fmt.Errorf("failed to write document metadata: %w", err)
	}

	a.log.Info().
		Str("number", doc.Number).
		Str("pdf", artifact.PDFPath).
		Str("image", artifact.ImagePath).
		Msg("Document assembled")

	return artifact, nil
}

func (a *Assembler) rasterize(ctx context.Context, doc *models.Document, base, pdfPath string) (string, error) {
	folderPrefix := "expense"
	if doc.TransactionType == models.TransactionIncome {
		folderPrefix = "income"
	}
	folder := filepath.Join(a.outputDir, fmt.Sprintf("%s_%s", folderPrefix, doc.Date.Format("2006-01-02")))
	if err := os.MkdirAll(folder, 0755); err != nil {
		return "", fmt.Errorf("failed to create image directory %s: %w", folder, err)
	}

	name := base
	if doc.EntityName != "" {
		name = base + "_" + SanitizeEntityName(doc.EntityName)
	}
	jpgPath := filepath.Join(folder, name+".jpg")

	if err := a.rasterizer.Rasterize(ctx, pdfPath, jpgPath); err != nil {
		return "", err
	}
	return jpgPath, nil
}

// ReadMetadata loads a metadata sidecar written by Assemble.
func ReadMetadata(path string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document metadata: %w", err)
	}
	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("failed to parse document metadata %s: %w", path, err)
	}
	return &meta, nil
}
