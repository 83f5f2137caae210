package document

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Rasterize renders a single page. pdftoppm numbers pages from 1 and appends
// the extension itself when -singlefile is used.
func (r *implRasterizer) Rasterize(ctx context.Context, pdfPath string, pageIndex int, outPath string) error {
	if pageIndex < 0 {
		return fmt.Errorf("page index %d out of range", pageIndex)
	}
	page := strconv.Itoa(pageIndex + 1)
	prefix := strings.TrimSuffix(outPath, filepath.Ext(outPath))

	args := []string{
		"-png",
		"-r", strconv.Itoa(r.cfg.DPI),
		"-f", page,
		"-l", page,
		"-singlefile",
		pdfPath,
		prefix,
	}

	r.logger.Debug(ctx, "Rasterizing page %s of %s -> %s", page, pdfPath, outPath)

	if _, err := r.executor.Execute(ctx, r.cfg.PdftoppmPath, args...); err != nil {
		return fmt.Errorf("pdftoppm page %s: %w", page, err)
	}
	return nil
}
