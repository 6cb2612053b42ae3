package artifact

import (
	"github.com/nguyentantai21042004/transcript-flow/internal/fileutil"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
)

type implWriter struct {
	outputDir string
	tempDir   string
	docx      bool
	move      func(src, dst string) error
	logger    logger.Logger
}

// New creates a Writer. Files are staged in tempDir and moved to outputDir.
// withDocx toggles the docx document.
func New(outputDir, tempDir string, withDocx bool, log logger.Logger) Writer {
	return &implWriter{
		outputDir: outputDir,
		tempDir:   tempDir,
		docx:      withDocx,
		move:      fileutil.MoveFile,
		logger:    log,
	}
}
