package timeline

import (
	"errors"
	"fmt"
)

// ErrMalformedInterval marks spans with End < Start or invalid bounds.
var ErrMalformedInterval = errors.New("malformed interval")

// Components named in MalformedIntervalError.
const (
	ComponentSpeech  = "speech segmentation"
	ComponentSpeaker = "speaker segmentation"
)

// MalformedIntervalError points at the input that carried a bad span.
type MalformedIntervalError struct {
	Component string
	Index     int
	Span      TimeSpan
}

func (e *MalformedIntervalError) Error() string {
	return fmt.Sprintf("%s: %s at index %d: [%g, %g]", e.Component, ErrMalformedInterval, e.Index, e.Span.Start, e.Span.End)
}

func (e *MalformedIntervalError) Unwrap() error {
	return ErrMalformedInterval
}

// ValidateUtterances checks every utterance span and returns the first failure.
func ValidateUtterances(utterances []Utterance) error {
	for i, u := range utterances {
		if err := u.Span.Validate(); err != nil {
			return &MalformedIntervalError{Component: ComponentSpeech, Index: i, Span: u.Span}
		}
	}
	return nil
}

// ValidateTurns checks every turn span and returns the first failure.
func ValidateTurns(turns []SpeakerTurn) error {
	for i, t := range turns {
		if err := t.Span.Validate(); err != nil {
			return &MalformedIntervalError{Component: ComponentSpeaker, Index: i, Span: t.Span}
		}
	}
	return nil
}
