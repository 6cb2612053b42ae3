package textproc

import (
	"strings"
	"unicode/utf8"
)

// DefaultMinSentenceLength is the length a unit must exceed to become a bullet.
const DefaultMinSentenceLength = 10

// BulletFormatter turns summary text into "- " prefixed lines.
type BulletFormatter struct {
	cleaner   *Cleaner
	splitter  SentenceSplitter
	minLength int
}

// NewBulletFormatter wires a formatter. A nil splitter means PeriodSplitter.
func NewBulletFormatter(cleaner *Cleaner, splitter SentenceSplitter, minLength int) *BulletFormatter {
	if cleaner == nil {
		cleaner = &Cleaner{}
	}
	if splitter == nil {
		splitter = PeriodSplitter{}
	}
	return &BulletFormatter{
		cleaner:   cleaner,
		splitter:  splitter,
		minLength: minLength,
	}
}

// Bullets cleans the text, splits it and keeps the units whose trimmed length
// in characters is greater than the minimum.
func (f *BulletFormatter) Bullets(summary string) []string {
	units := f.splitter.Split(f.cleaner.Clean(summary))
	out := make([]string, 0, len(units))
	for _, u := range units {
		u = strings.TrimSpace(u)
		if utf8.RuneCountInString(u) <= f.minLength {
			continue
		}
		out = append(out, "- "+u)
	}
	return out
}

// Format returns the bullet lines joined by newlines.
func (f *BulletFormatter) Format(summary string) string {
	return strings.Join(f.Bullets(summary), "\n")
}
