package document

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PDFPath is the sibling PDF location for a presentation: same directory, same name, .pdf extension
func PDFPath(pptxPath string) string {
	return strings.TrimSuffix(pptxPath, filepath.Ext(pptxPath)) + ".pdf"
}

// ToPDF exports the presentation next to itself
func (c *implConverter) ToPDF(ctx context.Context, pptxPath string) (string, error) {
	absPath, err := filepath.Abs(pptxPath)
	if err != nil {
		return "", fmt.Errorf("resolve presentation path: %w", err)
	}
	outDir := filepath.Dir(absPath)

	c.logger.Info(ctx, "Converting presentation to PDF: %s", pptxPath)

	// --headless: no UI, the process exits once the export is written
	// --convert-to pdf: impress_pdf_Export filter, one page per slide
	// --outdir: keep the PDF beside the presentation
	args := []string{
		"--headless",
		"--convert-to", "pdf",
		"--outdir", outDir,
		absPath,
	}

	// run from the output directory
	if _, err := c.executor.ExecuteInDir(ctx, outDir, c.cfg.SofficePath, args...); err != nil {
		return "", fmt.Errorf("soffice convert: %w", err)
	}

	pdfPath := PDFPath(absPath)
	if _, err := os.Stat(pdfPath); err != nil {
		return "", fmt.Errorf("expected pdf %s: %w", pdfPath, err)
	}

	c.logger.Info(ctx, "PDF created: %s", pdfPath)
	return pdfPath, nil
}
