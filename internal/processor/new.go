package processor

import (
	"github.com/nguyentantai21042004/transcript-flow/internal/artifact"
	"github.com/nguyentantai21042004/transcript-flow/internal/config"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
	"github.com/nguyentantai21042004/transcript-flow/internal/pipeline"
	"github.com/nguyentantai21042004/transcript-flow/internal/store"
	"github.com/nguyentantai21042004/transcript-flow/pkg/executor"
)

type implProcessor struct {
	cfg       *config.Config
	engine    *pipeline.Engine
	segmenter Segmenter
	executor  executor.Executor
	writer    artifact.Writer
	store     store.Store
	opts      Options
	logger    logger.Logger
}

// Deps are the collaborators of a Processor. Segmenter and Executor may be nil
// when only job files are processed.
type Deps struct {
	Engine    *pipeline.Engine
	Segmenter Segmenter
	Executor  executor.Executor
	Writer    artifact.Writer
	Store     store.Store
}

// New creates a new Processor instance
func New(cfg *config.Config, deps Deps, opts Options, log logger.Logger) Processor {
	return &implProcessor{
		cfg:       cfg,
		engine:    deps.Engine,
		segmenter: deps.Segmenter,
		executor:  deps.Executor,
		writer:    deps.Writer,
		store:     deps.Store,
		opts:      opts,
		logger:    log,
	}
}
