package timeline

import "math"

// DefaultMargin absorbs the usual lag between independently trained segmenters.
const DefaultMargin = 0.5

// Extend widens a turn by margin on both ends, clamping the start at zero.
// The source turn is not modified.
func Extend(turn SpeakerTurn, margin float64) ExtendedTurn {
	return ExtendedTurn{
		Span: TimeSpan{
			Start: math.Max(0, turn.Span.Start-margin),
			End:   turn.Span.End + margin,
		},
		Speaker: turn.Speaker,
	}
}

// ExtendAll extends every turn, keeping the emission order.
func ExtendAll(turns []SpeakerTurn, margin float64) []ExtendedTurn {
	out := make([]ExtendedTurn, len(turns))
	for i, t := range turns {
		out[i] = Extend(t, margin)
		out[i].Source = i
	}
	return out
}
