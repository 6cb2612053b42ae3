package summarizer

import "context"

// Summarizer is the size-limited summarization collaborator. maxLength and
// minLength are passed through to the model untouched.
type Summarizer interface {
	Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error)
}

// Driver splits long text into chunks, summarizes each chunk and joins the
// results in chunk order.
type Driver interface {
	Run(ctx context.Context, text string) (Result, error)
}

// Result keeps the per-chunk data next to the joined summary.
type Result struct {
	Chunks    []string
	Summaries []string
	Summary   string
}
