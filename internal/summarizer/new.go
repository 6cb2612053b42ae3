package summarizer

import (
	"fmt"
	"strings"
	"sync"

	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
)

// Defaults for the summarization length bounds.
const (
	DefaultMaxLength   = 150
	DefaultMinLength   = 30
	DefaultGeminiModel = "gemini-2.5-flash"
)

// DriverOptions configures a chunked Driver.
type DriverOptions struct {
	ChunkSize   int
	MaxLength   int
	MinLength   int
	Concurrency int
}

type implDriver struct {
	summarizer  Summarizer
	chunkSize   int
	maxLength   int
	minLength   int
	concurrency int
	logger      logger.Logger
}

// NewDriver creates a Driver around the given collaborator.
func NewDriver(s Summarizer, opts DriverOptions, log logger.Logger) (Driver, error) {
	if s == nil {
		return nil, fmt.Errorf("summarizer is required")
	}
	if opts.ChunkSize <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", opts.ChunkSize)
	}
	if opts.MinLength > opts.MaxLength {
		return nil, fmt.Errorf("min length %d exceeds max length %d", opts.MinLength, opts.MaxLength)
	}

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	return &implDriver{
		summarizer:  s,
		chunkSize:   opts.ChunkSize,
		maxLength:   opts.MaxLength,
		minLength:   opts.MinLength,
		concurrency: concurrency,
		logger:      log,
	}, nil
}

type implGemini struct {
	client     generator
	apiKeys    []string
	mu         sync.Mutex
	currentKey int
	model      string
	logger     logger.Logger
}

// NewGemini creates a Summarizer backed by Gemini that rotates through the
// supplied API keys when one is rate limited.
func NewGemini(apiKeys []string, model string, log logger.Logger) (Summarizer, error) {
	keys := make([]string, 0, len(apiKeys))
	for _, k := range apiKeys {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("at least one Gemini API key is required")
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	return &implGemini{
		client:  genaiGenerator{},
		apiKeys: keys,
		model:   model,
		logger:  log,
	}, nil
}
