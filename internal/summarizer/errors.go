package summarizer

import (
	"errors"
	"fmt"
)

var (
	// ErrCollaborator marks failures of the summarization collaborator.
	ErrCollaborator = errors.New("summarizer failed")
	// ErrEmptySummary is returned when the collaborator produced blank output.
	ErrEmptySummary = errors.New("empty summary")
)

// CollaboratorError names the chunk whose summarization failed.
type CollaboratorError struct {
	Chunk int
	Err   error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s on chunk %d: %v", ErrCollaborator, e.Chunk, e.Err)
}

func (e *CollaboratorError) Unwrap() []error {
	return []error{ErrCollaborator, e.Err}
}
