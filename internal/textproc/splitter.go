package textproc

import "strings"

// SentenceSplitter breaks text into sentence-like units.
type SentenceSplitter interface {
	Split(text string) []string
}

// PeriodSplitter splits on the literal ". " sequence. It does not split on
// "?" or "!" and will break abbreviations such as "e.g. this".
type PeriodSplitter struct{}

func (PeriodSplitter) Split(text string) []string {
	return strings.Split(text, ". ")
}
