package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/nguyentantai21042004/transcript-flow/internal/align"
)

// ErrInvalidConfig marks configuration rejected before any run starts.
var ErrInvalidConfig = errors.New("invalid configuration")

// ValidationError names the offending key.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidConfig, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfig
}

func invalid(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Validate rejects unusable values and fills empty optional ones.
func (c *Config) Validate() error {
	margin := c.Alignment.BoundaryMarginSeconds
	if margin < 0 || math.IsNaN(margin) || math.IsInf(margin, 0) {
		return invalid("alignment.boundary_margin_seconds", "must be a non-negative number, got %v", margin)
	}
	if c.Alignment.Policy == "" {
		c.Alignment.Policy = string(align.PolicyFirstMatch)
	}
	if !align.ValidPolicy(align.Policy(c.Alignment.Policy)) {
		return invalid("alignment.policy", "must be %q or %q, got %q", align.PolicyFirstMatch, align.PolicyLargestOverlap, c.Alignment.Policy)
	}
	if c.Alignment.Workers < 0 {
		return invalid("alignment.workers", "must not be negative")
	}

	if c.Summary.ChunkSizeChars <= 0 {
		return invalid("summary.chunk_size_chars", "must be positive, got %d", c.Summary.ChunkSizeChars)
	}
	if c.Summary.MinLength > c.Summary.MaxLength {
		return invalid("summary.min_length", "(%d) must not exceed summary.max_length (%d)", c.Summary.MinLength, c.Summary.MaxLength)
	}
	if c.Summary.Concurrency < 0 {
		return invalid("summary.concurrency", "must not be negative")
	}

	if c.Bullets.MinSentenceLength < 0 {
		return invalid("bullets.min_sentence_length", "must not be negative")
	}

	for i, w := range c.Cleaner.FillerWords {
		if strings.TrimSpace(w) == "" {
			return invalid(fmt.Sprintf("cleaner.filler_words[%d]", i), "is empty")
		}
	}

	if len(c.Segmenter.SpeakerCommand) > 0 && len(c.Segmenter.SpeechCommand) == 0 {
		return invalid("segmenter.speaker_command", "requires segmenter.speech_command")
	}

	if c.Paths.Input == "" {
		return invalid("paths.input", "is required")
	}
	if c.Paths.Output == "" {
		return invalid("paths.output", "is required")
	}

	if c.Paths.Processing == "" {
		c.Paths.Processing = "data/processing"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Failed == "" {
		c.Paths.Failed = "data/failed"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Paths.State == "" {
		c.Paths.State = "data/state"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Summary.Concurrency == 0 {
		c.Summary.Concurrency = 1
	}
	if c.Segmenter.FFmpegPath == "" {
		c.Segmenter.FFmpegPath = "ffmpeg"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}

	return nil
}
