package processor

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/transcript-flow/internal/artifact"
	"github.com/nguyentantai21042004/transcript-flow/internal/pipeline"
	"github.com/nguyentantai21042004/transcript-flow/internal/segmentation"
	"github.com/nguyentantai21042004/transcript-flow/internal/store"
)

// ErrUnsupportedInput is returned for files that are neither jobs nor, when a
// segmenter is configured, audio or video.
var ErrUnsupportedInput = errors.New("unsupported input")

// Processor turns one input file into transcript artifacts.
type Processor interface {
	Process(ctx context.Context, path string) (Report, error)
	// Accepts reports whether path has an extension Process can handle.
	Accepts(path string) bool
}

// Report describes a finished or skipped run.
type Report struct {
	Run     store.Run
	Paths   artifact.Paths
	Output  pipeline.Output
	Skipped bool
}

// Segmenter produces segmentation pairs from audio. It is satisfied by
// *segmentation.CommandSegmenter.
type Segmenter interface {
	Segment(ctx context.Context, name, audioPath string) (segmentation.Segmentation, error)
}

// Options control per-invocation behavior.
type Options struct {
	// Force reprocesses inputs whose content already succeeded.
	Force bool
	// Archive moves the input through the processing folder into the archive,
	// or into the failed folder when the run fails.
	Archive bool
}
