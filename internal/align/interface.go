package align

import (
	"context"

	"github.com/nguyentantai21042004/transcript-flow/internal/timeline"
)

// Aligner attributes every utterance to exactly one speaker label.
type Aligner interface {
	Align(ctx context.Context, utterances []timeline.Utterance, turns []timeline.SpeakerTurn) (Result, error)
}

// Policy selects the turn when several extended turns overlap an utterance.
type Policy string

const (
	// PolicyFirstMatch picks the first overlapping turn in emission order.
	PolicyFirstMatch Policy = "first_match"
	// PolicyLargestOverlap picks the turn sharing the most time; ties go to the earliest turn.
	PolicyLargestOverlap Policy = "largest_overlap"
)

// Options configures an Aligner.
type Options struct {
	Margin  float64
	Policy  Policy
	Workers int
}

// Result holds attributions in utterance order.
type Result struct {
	Utterances []timeline.AttributedUtterance
	Stats      Stats
}

// Stats summarizes a Result.
type Stats struct {
	Attributed int
	Unknown    int
	BySpeaker  map[string]int
}
