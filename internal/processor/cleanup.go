package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/transcript-flow/internal/fileutil"
)

// moveToProcessing moves the input from the watched folder to the processing folder
func (p *implProcessor) moveToProcessing(ctx context.Context, path string) (string, error) {
	destPath := filepath.Join(p.cfg.Paths.Processing, filepath.Base(path))

	p.logger.Info(ctx, "Moving to processing folder: %s -> %s", path, destPath)

	if err := fileutil.MoveFile(path, destPath); err != nil {
		return "", fmt.Errorf("move to processing: %w", err)
	}
	return destPath, nil
}

// moveToArchived moves a processed input to the archived folder
func (p *implProcessor) moveToArchived(ctx context.Context, path string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}
	destPath := filepath.Join(p.cfg.Paths.Archived, filepath.Base(path))

	p.logger.Info(ctx, "Archiving input: %s -> %s", path, destPath)

	if err := fileutil.MoveFile(path, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}
	return nil
}

// moveToFailed moves an input whose run failed out of the processing folder.
// The error is logged since the run error is the one returned.
func (p *implProcessor) moveToFailed(ctx context.Context, path string) {
	destPath := filepath.Join(p.cfg.Paths.Failed, filepath.Base(path))
	if err := fileutil.MoveFile(path, destPath); err != nil {
		p.logger.Error(ctx, "Failed to move %s to failed folder: %v", path, err)
		return
	}
	p.logger.Warn(ctx, "Moved failed input to %s", destPath)
}

// cleanupTempFile removes a temporary file, logs warning if fails
func (p *implProcessor) cleanupTempFile(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up temp file: %s", filePath)
	}
}
