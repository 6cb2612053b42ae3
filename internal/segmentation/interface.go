// Package segmentation reads the two upstream segmentations, either from job
// files or by running external segmenter programs.
package segmentation

import (
	"context"

	"github.com/nguyentantai21042004/transcript-flow/internal/timeline"
)

// SpeechSegmenter produces timestamped utterances for an audio file.
type SpeechSegmenter interface {
	Transcribe(ctx context.Context, audioPath string) ([]timeline.Utterance, error)
}

// SpeakerSegmenter produces speaker turns for an audio file.
type SpeakerSegmenter interface {
	Diarize(ctx context.Context, audioPath string) ([]timeline.SpeakerTurn, error)
}

// Segmentation is the input of one alignment run. Diarized is false when no
// speaker segmentation was supplied at all, which is different from an empty
// Turns list.
type Segmentation struct {
	Name       string
	Utterances []timeline.Utterance
	Turns      []timeline.SpeakerTurn
	Diarized   bool
}
