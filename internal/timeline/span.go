package timeline

import "math"

// TimeSpan is a closed range of seconds measured from the start of a recording.
type TimeSpan struct {
	Start float64
	End   float64
}

// NewSpan builds a span and validates it.
func NewSpan(start, end float64) (TimeSpan, error) {
	s := TimeSpan{Start: start, End: end}
	if err := s.Validate(); err != nil {
		return TimeSpan{}, err
	}
	return s, nil
}

// Validate reports ErrMalformedInterval for spans with End < Start, a negative
// Start, or non-finite bounds. Zero-length spans are valid.
func (s TimeSpan) Validate() error {
	if math.IsNaN(s.Start) || math.IsNaN(s.End) || math.IsInf(s.Start, 0) || math.IsInf(s.End, 0) {
		return ErrMalformedInterval
	}
	if s.Start < 0 || s.End < s.Start {
		return ErrMalformedInterval
	}
	return nil
}

// Duration returns End - Start in seconds.
func (s TimeSpan) Duration() float64 {
	return s.End - s.Start
}

// Overlaps reports whether two spans share at least one instant.
// Spans that only touch at an endpoint overlap.
func Overlaps(a, b TimeSpan) bool {
	return a.Start <= b.End && b.Start <= a.End
}

// Intersection returns the length of the shared range, 0 when disjoint or touching.
func Intersection(a, b TimeSpan) float64 {
	lo := math.Max(a.Start, b.Start)
	hi := math.Min(a.End, b.End)
	if hi <= lo {
		return 0
	}
	return hi - lo
}
