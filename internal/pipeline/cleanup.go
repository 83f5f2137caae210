package pipeline

import (
	"context"
	"errors"
	"io/fs"
	"os"
)

// cleanup removes what this run created. Failures are logged, never returned.
func (d *implDriver) cleanup(ctx context.Context, r *run) {
	d.logger.Info(ctx, "Cleaning up intermediates in %s", r.workDir)

	for _, path := range r.artifacts {
		d.cleanupTempFile(ctx, path)
	}
	if r.createdWorkDir {
		// only succeeds when empty, foreign files in the directory are left alone
		if err := os.Remove(r.workDir); err != nil {
			d.logger.Warn(ctx, "Failed to remove work dir %s: %v", r.workDir, err)
		}
	}
	if r.createdPDF {
		d.cleanupTempFile(ctx, r.pdfPath)
	}
}

// cleanupTempFile removes a temporary file, logs warning if fails
func (d *implDriver) cleanupTempFile(ctx context.Context, filePath string) {
	err := os.Remove(filePath)
	switch {
	case err == nil:
		d.logger.Debug(ctx, "Cleaned up temp file: %s", filePath)
	case errors.Is(err, fs.ErrNotExist):
	default:
		d.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
	}
}
