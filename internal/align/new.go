package align

import (
	"fmt"
	"math"

	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
)

type implAligner struct {
	margin  float64
	policy  Policy
	workers int
	logger  logger.Logger
}

// New creates an Aligner. An empty policy means PolicyFirstMatch.
func New(opts Options, log logger.Logger) (Aligner, error) {
	if opts.Margin < 0 || math.IsNaN(opts.Margin) || math.IsInf(opts.Margin, 0) {
		return nil, fmt.Errorf("invalid boundary margin %v", opts.Margin)
	}

	policy := opts.Policy
	if policy == "" {
		policy = PolicyFirstMatch
	}
	if !ValidPolicy(policy) {
		return nil, fmt.Errorf("unknown alignment policy %q", policy)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}

	return &implAligner{
		margin:  opts.Margin,
		policy:  policy,
		workers: workers,
		logger:  log,
	}, nil
}

// ValidPolicy reports whether p names a supported policy.
func ValidPolicy(p Policy) bool {
	switch p {
	case PolicyFirstMatch, PolicyLargestOverlap:
		return true
	}
	return false
}
