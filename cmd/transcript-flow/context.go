package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/nguyentantai21042004/transcript-flow/internal/artifact"
	"github.com/nguyentantai21042004/transcript-flow/internal/config"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
	"github.com/nguyentantai21042004/transcript-flow/internal/pipeline"
	"github.com/nguyentantai21042004/transcript-flow/internal/processor"
	"github.com/nguyentantai21042004/transcript-flow/internal/segmentation"
	"github.com/nguyentantai21042004/transcript-flow/internal/store"
	"github.com/nguyentantai21042004/transcript-flow/internal/summarizer"
	"github.com/nguyentantai21042004/transcript-flow/pkg/executor"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		path := defaultConfigPath
		if c.configFlag != nil && strings.TrimSpace(*c.configFlag) != "" {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, err := config.LoadOrDefault(path)
		if err != nil {
			c.configErr = fmt.Errorf("load config: %w", err)
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) logger() logger.Logger {
	cfg, _ := c.ensureConfig()
	if cfg == nil {
		return logger.New("info")
	}
	return logger.NewWithWriter(cfg.Logging.Level, cfg.Logging.Format, os.Stdout)
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Processing,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Failed,
		cfg.Paths.Temp,
		cfg.Paths.State,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}

// newProcessor wires every collaborator of a processor. The returned store must be closed.
func (c *commandContext) newProcessor(ctx context.Context, log logger.Logger, opts processor.Options) (processor.Processor, store.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	if err := ensureDirectories(cfg); err != nil {
		return nil, nil, err
	}
	if len(cfg.Gemini.APIKeys) == 0 {
		return nil, nil, fmt.Errorf("no Gemini API keys: set gemini.api_keys or %s", config.APIKeysEnv)
	}

	gemini, err := summarizer.NewGemini(cfg.Gemini.APIKeys, cfg.Gemini.Model, log.With("gemini"))
	if err != nil {
		return nil, nil, fmt.Errorf("create summarizer: %w", err)
	}
	engine, err := pipeline.NewFromConfig(cfg, gemini, log)
	if err != nil {
		return nil, nil, err
	}

	st, err := store.Open(ctx, cfg.Paths.State)
	if err != nil {
		return nil, nil, err
	}

	deps := processor.Deps{
		Engine: engine,
		Writer: artifact.New(cfg.Paths.Output, cfg.Paths.Temp, true, log.With("artifact")),
		Store:  st,
	}
	if len(cfg.Segmenter.SpeechCommand) > 0 {
		exec := executor.New()
		seg, err := segmentation.NewCommandSegmenter(exec, cfg.Segmenter.SpeechCommand, cfg.Segmenter.SpeakerCommand, log.With("segmenter"))
		if err != nil {
			st.Close()
			return nil, nil, fmt.Errorf("create segmenter: %w", err)
		}
		deps.Segmenter = seg
		deps.Executor = exec
	}

	return processor.New(cfg, deps, opts, log), st, nil
}
