// Package transcript renders attributed utterances as text.
package transcript

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/transcript-flow/internal/timeline"
)

// Mode selects the line layout.
type Mode int

const (
	// ModeSpeakers renders "[start - end] Speaker X: text".
	ModeSpeakers Mode = iota
	// ModePlain renders "[start -> end] text" for runs without a speaker segmentation.
	ModePlain
)

// Line renders one utterance in the given mode, without the trailing newline.
func Line(u timeline.AttributedUtterance, mode Mode) string {
	if mode == ModePlain {
		return fmt.Sprintf("[%.2f -> %.2f] %s", u.Span.Start, u.Span.End, u.Text)
	}
	return fmt.Sprintf("[%.2f - %.2f] Speaker %s: %s", u.Span.Start, u.Span.End, u.Speaker, u.Text)
}

// Render writes one newline-terminated line per utterance, in input order.
func Render(utterances []timeline.AttributedUtterance, mode Mode) string {
	var b strings.Builder
	for _, u := range utterances {
		b.WriteString(Line(u, mode))
		b.WriteByte('\n')
	}
	return b.String()
}

// Plain wraps unattributed utterances for ModePlain rendering.
func Plain(utterances []timeline.Utterance) []timeline.AttributedUtterance {
	out := make([]timeline.AttributedUtterance, len(utterances))
	for i, u := range utterances {
		out[i] = timeline.AttributedUtterance{Span: u.Span, Text: u.Text}
	}
	return out
}
