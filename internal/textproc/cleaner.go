package textproc

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// DefaultFillerWords is the filler vocabulary removed by the default Cleaner.
var DefaultFillerWords = []string{"um", "uh", "like", "so", "you know", "well"}

// wordClass lists the characters that continue a word. RE2's \b only knows
// ASCII, so boundaries are matched against this class instead.
const wordClass = `\p{L}\p{M}\p{N}_`

// Cleaner removes filler words and normalizes whitespace.
type Cleaner struct {
	filler *regexp.Regexp
}

// NewCleaner builds a Cleaner for the given vocabulary. Matching is
// case-insensitive and whole-word; words inside a phrase may be separated by
// any whitespace.
func NewCleaner(words []string) (*Cleaner, error) {
	if len(words) == 0 {
		return &Cleaner{}, nil
	}

	alts := make([]string, 0, len(words))
	for i, w := range words {
		parts := strings.Fields(w)
		if len(parts) == 0 {
			return nil, fmt.Errorf("filler word %d is empty", i)
		}
		for j, p := range parts {
			parts[j] = regexp.QuoteMeta(p)
		}
		alts = append(alts, strings.Join(parts, `\s+`))
	}
	// Longer alternatives first so phrases win over their own prefixes.
	sort.SliceStable(alts, func(i, j int) bool { return len(alts[i]) > len(alts[j]) })

	// The guards consume the neighbouring character; Clean puts it back.
	re, err := regexp.Compile(`(?i)(^|[^` + wordClass + `])(?:` + strings.Join(alts, "|") + `)([^` + wordClass + `]|$)`)
	if err != nil {
		return nil, fmt.Errorf("compile filler pattern: %w", err)
	}
	return &Cleaner{filler: re}, nil
}

// MustCleaner is NewCleaner for vocabularies known to be valid.
func MustCleaner(words []string) *Cleaner {
	c, err := NewCleaner(words)
	if err != nil {
		panic(err)
	}
	return c
}

// Clean removes filler words, collapses whitespace runs to one space and trims.
// Removal repeats until nothing changes, since dropping one filler can join
// the words of another phrase ("you um know") and adjacent fillers share a
// boundary character.
func (c *Cleaner) Clean(text string) string {
	out := collapseSpace(text)
	if c.filler == nil {
		return out
	}
	for {
		next := collapseSpace(c.filler.ReplaceAllString(out, "${1}${2}"))
		if next == out {
			return out
		}
		out = next
	}
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
