package document

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	"invoicegen/internal/logger"
)

// ErrRasterizerUnavailable is returned when no PDF rasterizer binary can be
// found on PATH.
var ErrRasterizerUnavailable = errors.New("pdftoppm not found on PATH (install poppler-utils)")

// Rasterizer converts the first page of a PDF into a JPEG preview.
type Rasterizer interface {
	Rasterize(ctx context.Context, pdfPath, jpgPath string) error
}

// PopplerRasterizer shells out to poppler's pdftoppm, the same renderer the
// common pdf2image toolchain wraps.
type PopplerRasterizer struct {
	// DPI for the rendered page. 300 matches print-quality previews.
	DPI int

	log zerolog.Logger
}

// NewPopplerRasterizer creates a rasterizer at 300 DPI.
func NewPopplerRasterizer() *PopplerRasterizer {
	return &PopplerRasterizer{
		DPI: 300,
		log: logger.WithComponent("rasterizer"),
	}
}

// Rasterize renders page one of pdfPath into a JPEG at jpgPath.
func (r *PopplerRasterizer) Rasterize(ctx context.Context, pdfPath, jpgPath string) error {
	if _, err := exec.LookPath("pdftoppm"); err != nil {
		return ErrRasterizerUnavailable
	}

	// pdftoppm appends its own extension, so render to a prefix and move
	// the result into place.
	prefix := strings.TrimSuffix(jpgPath, ".jpg")

	cmd := exec.CommandContext(ctx, "pdftoppm",
		"-jpeg",
		"-jpegopt", "quality=95",
		"-r", fmt.Sprintf("%d", r.DPI),
		"-f", "1", "-l", "1",
		"-singlefile",
		pdfPath, prefix,
	)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("pdftoppm failed: %w: %s", err, strings.TrimSpace(string(output)))
	}

	if err := os.Rename(prefix+".jpg", jpgPath); err != nil {
		return fmt.Errorf("failed to place JPEG output: %w", err)
	}

	r.log.Debug().
		Str("pdf", pdfPath).
		Str("jpg", jpgPath).
		Int("dpi", r.DPI).
		Msg("Rasterized PDF page to JPEG")

	return nil
}
