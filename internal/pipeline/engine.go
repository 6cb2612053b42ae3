// Package pipeline chains alignment, transcript rendering, chunked
// summarization and bullet formatting for one segmentation pair.
package pipeline

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/transcript-flow/internal/align"
	"github.com/nguyentantai21042004/transcript-flow/internal/config"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
	"github.com/nguyentantai21042004/transcript-flow/internal/segmentation"
	"github.com/nguyentantai21042004/transcript-flow/internal/summarizer"
	"github.com/nguyentantai21042004/transcript-flow/internal/textproc"
	"github.com/nguyentantai21042004/transcript-flow/internal/timeline"
	"github.com/nguyentantai21042004/transcript-flow/internal/transcript"
)

// Output is the full result of one run. It is only returned when every stage succeeded.
type Output struct {
	Mode       transcript.Mode
	Utterances []timeline.AttributedUtterance
	Turns      int
	Stats      align.Stats
	Transcript string
	Summary    summarizer.Result
	Bullets    []string
}

// Engine runs the stages in order. It holds no per-run state and can be
// shared between concurrent runs.
type Engine struct {
	aligner align.Aligner
	driver  summarizer.Driver
	bullets *textproc.BulletFormatter
	logger  logger.Logger
}

// New creates an Engine from its stages.
func New(aligner align.Aligner, driver summarizer.Driver, bullets *textproc.BulletFormatter, log logger.Logger) *Engine {
	return &Engine{
		aligner: aligner,
		driver:  driver,
		bullets: bullets,
		logger:  log,
	}
}

// NewFromConfig builds every stage from cfg around the given summarization collaborator.
func NewFromConfig(cfg *config.Config, s summarizer.Summarizer, log logger.Logger) (*Engine, error) {
	aligner, err := align.New(align.Options{
		Margin:  cfg.Alignment.BoundaryMarginSeconds,
		Policy:  align.Policy(cfg.Alignment.Policy),
		Workers: cfg.Alignment.Workers,
	}, log.With("align"))
	if err != nil {
		return nil, fmt.Errorf("create aligner: %w", err)
	}

	driver, err := summarizer.NewDriver(s, summarizer.DriverOptions{
		ChunkSize:   cfg.Summary.ChunkSizeChars,
		MaxLength:   cfg.Summary.MaxLength,
		MinLength:   cfg.Summary.MinLength,
		Concurrency: cfg.Summary.Concurrency,
	}, log.With("summary"))
	if err != nil {
		return nil, fmt.Errorf("create summarizer driver: %w", err)
	}

	cleaner, err := textproc.NewCleaner(cfg.Cleaner.FillerWords)
	if err != nil {
		return nil, fmt.Errorf("create cleaner: %w", err)
	}
	bullets := textproc.NewBulletFormatter(cleaner, textproc.PeriodSplitter{}, cfg.Bullets.MinSentenceLength)

	return New(aligner, driver, bullets, log), nil
}

// Attribute aligns seg, or wraps its utterances unattributed when no speaker
// segmentation was supplied. It also returns the matching transcript mode.
func (e *Engine) Attribute(ctx context.Context, seg segmentation.Segmentation) ([]timeline.AttributedUtterance, align.Stats, transcript.Mode, error) {
	if !seg.Diarized {
		if err := timeline.ValidateUtterances(seg.Utterances); err != nil {
			return nil, align.Stats{}, transcript.ModePlain, fmt.Errorf("align: %w", err)
		}
		return transcript.Plain(seg.Utterances), align.Stats{}, transcript.ModePlain, nil
	}

	res, err := e.aligner.Align(ctx, seg.Utterances, seg.Turns)
	if err != nil {
		return nil, align.Stats{}, transcript.ModeSpeakers, err
	}
	return res.Utterances, res.Stats, transcript.ModeSpeakers, nil
}

// Run processes one segmentation pair end to end.
func (e *Engine) Run(ctx context.Context, seg segmentation.Segmentation) (Output, error) {
	utterances, stats, mode, err := e.Attribute(ctx, seg)
	if err != nil {
		return Output{}, err
	}
	if mode == transcript.ModeSpeakers {
		e.logger.Info(ctx, "Attributed %d/%d utterances across %d speakers (%d unknown)",
			stats.Attributed, len(utterances), len(stats.BySpeaker), stats.Unknown)
	} else {
		e.logger.Info(ctx, "No speaker segmentation, rendering %d utterances without speakers", len(utterances))
	}

	text := transcript.Render(utterances, mode)

	summary, err := e.driver.Run(ctx, text)
	if err != nil {
		return Output{}, fmt.Errorf("summarize: %w", err)
	}

	bullets := e.bullets.Bullets(summary.Summary)
	e.logger.Info(ctx, "Summary reduced to %d bullet(s) from %d chunk(s)", len(bullets), len(summary.Chunks))

	return Output{
		Mode:       mode,
		Utterances: utterances,
		Turns:      len(seg.Turns),
		Stats:      stats,
		Transcript: text,
		Summary:    summary,
		Bullets:    bullets,
	}, nil
}
