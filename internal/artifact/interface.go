// Package artifact writes the outputs of a run: the transcript, the bullet
// summary as markdown and both together as a docx document.
package artifact

import (
	"context"
	"time"
)

// Artifacts is everything produced by one run.
type Artifacts struct {
	Name       string
	Transcript string
	Summary    string
	Bullets    []string
	Generated  time.Time
}

// Paths are the final locations of the written files.
type Paths struct {
	Transcript string
	Summary    string
	Docx       string
}

// Writer stores Artifacts. Either every file lands in the output directory or none does.
type Writer interface {
	Write(ctx context.Context, a Artifacts) (Paths, error)
}
