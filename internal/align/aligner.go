package align

import (
	"context"
	"fmt"
	"sync"

	"github.com/nguyentantai21042004/transcript-flow/internal/timeline"
)

// Align validates both segmentations, extends the turns and picks a speaker
// for each utterance. Nothing is returned when any span is malformed.
func (a *implAligner) Align(ctx context.Context, utterances []timeline.Utterance, turns []timeline.SpeakerTurn) (Result, error) {
	if err := timeline.ValidateUtterances(utterances); err != nil {
		return Result{}, fmt.Errorf("align: %w", err)
	}
	if err := timeline.ValidateTurns(turns); err != nil {
		return Result{}, fmt.Errorf("align: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	extended := timeline.ExtendAll(turns, a.margin)
	out := make([]timeline.AttributedUtterance, len(utterances))

	workers := a.workers
	if workers > len(utterances) {
		workers = len(utterances)
	}

	if workers <= 1 {
		a.attributeRange(utterances, extended, out, 0, len(utterances))
	} else {
		// Each worker owns a contiguous slice of out and reads the shared,
		// unmodified turn list.
		var wg sync.WaitGroup
		size := (len(utterances) + workers - 1) / workers
		for lo := 0; lo < len(utterances); lo += size {
			hi := min(lo+size, len(utterances))
			wg.Add(1)
			go func(lo, hi int) {
				defer wg.Done()
				a.attributeRange(utterances, extended, out, lo, hi)
			}(lo, hi)
		}
		wg.Wait()
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	res := Result{Utterances: out, Stats: computeStats(out)}
	a.logger.Debug(ctx, "Aligned %d utterances against %d turns (policy=%s, margin=%.2fs): %d attributed, %d unknown",
		len(utterances), len(turns), a.policy, a.margin, res.Stats.Attributed, res.Stats.Unknown)
	return res, nil
}

func (a *implAligner) attributeRange(utterances []timeline.Utterance, turns []timeline.ExtendedTurn, out []timeline.AttributedUtterance, lo, hi int) {
	for i := lo; i < hi; i++ {
		u := utterances[i]
		out[i] = timeline.AttributedUtterance{
			Span:    u.Span,
			Text:    u.Text,
			Speaker: a.match(u.Span, turns),
		}
	}
}

func (a *implAligner) match(span timeline.TimeSpan, turns []timeline.ExtendedTurn) string {
	if a.policy == PolicyLargestOverlap {
		return largestOverlap(span, turns)
	}
	return firstMatch(span, turns)
}

// firstMatch returns the speaker of the earliest listed turn overlapping span.
func firstMatch(span timeline.TimeSpan, turns []timeline.ExtendedTurn) string {
	for _, t := range turns {
		if timeline.Overlaps(t.Span, span) {
			return t.Speaker
		}
	}
	return timeline.UnknownSpeaker
}

// largestOverlap returns the speaker of the turn sharing the most time with span.
// Turns that only touch span still count, with zero shared time.
func largestOverlap(span timeline.TimeSpan, turns []timeline.ExtendedTurn) string {
	best := -1
	bestLen := -1.0
	for i, t := range turns {
		if !timeline.Overlaps(t.Span, span) {
			continue
		}
		if l := timeline.Intersection(t.Span, span); l > bestLen {
			best, bestLen = i, l
		}
	}
	if best < 0 {
		return timeline.UnknownSpeaker
	}
	return turns[best].Speaker
}

func computeStats(out []timeline.AttributedUtterance) Stats {
	st := Stats{BySpeaker: make(map[string]int)}
	for _, u := range out {
		if !u.Known() {
			st.Unknown++
			continue
		}
		st.Attributed++
		st.BySpeaker[u.Speaker]++
	}
	return st
}
