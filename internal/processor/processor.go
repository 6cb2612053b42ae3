package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/transcript-flow/internal/artifact"
	"github.com/nguyentantai21042004/transcript-flow/internal/segmentation"
	"github.com/nguyentantai21042004/transcript-flow/internal/store"
)

func (p *implProcessor) Accepts(path string) bool {
	if isJob(path) {
		return true
	}
	return p.segmenter != nil && isMedia(path)
}

// Process orchestrates one input from segmentation to archived artifacts.
func (p *implProcessor) Process(ctx context.Context, path string) (Report, error) {
	startTime := time.Now()
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	if !p.Accepts(path) {
		return Report{}, fmt.Errorf("%w: %s", ErrUnsupportedInput, path)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting transcript processing: %s", path)
	p.logger.Info(ctx, "========================================")

	hash, err := store.HashFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("hash input: %w", err)
	}

	if !p.opts.Force {
		prev, ok, err := p.store.LastSucceeded(ctx, hash)
		if err != nil {
			return Report{}, fmt.Errorf("look up history: %w", err)
		}
		if ok {
			p.logger.Info(ctx, "Already processed as run %s at %s, skipping", prev.ID, prev.FinishedAt.Format(time.RFC3339))
			if p.opts.Archive {
				if err := p.moveToArchived(ctx, path); err != nil {
					p.logger.Warn(ctx, "Failed to move input to archived folder: %v", err)
				}
			}
			return Report{Run: prev, Skipped: true}, nil
		}
	}

	if p.opts.Archive {
		if path, err = p.moveToProcessing(ctx, path); err != nil {
			return Report{}, err
		}
	}

	run, err := p.store.Begin(ctx, name, path, hash)
	if err != nil {
		return Report{}, fmt.Errorf("record run: %w", err)
	}

	report, runErr := p.process(ctx, name, path)
	report.Run = p.finish(ctx, run, report, runErr)
	if runErr != nil {
		if p.opts.Archive {
			p.moveToFailed(ctx, path)
		}
		return report, runErr
	}

	if p.opts.Archive {
		if err := p.moveToArchived(ctx, path); err != nil {
			p.logger.Warn(ctx, "Failed to move input to archived folder: %v", err)
		}
	}

	duration := time.Since(startTime)
	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed successfully!")
	p.logger.Info(ctx, "Transcript: %s", report.Paths.Transcript)
	p.logger.Info(ctx, "Summary: %s", report.Paths.Summary)
	if report.Paths.Docx != "" {
		p.logger.Info(ctx, "Document: %s", report.Paths.Docx)
	}
	p.logger.Info(ctx, "Processing time: %s", duration)
	p.logger.Info(ctx, "========================================")

	return report, nil
}

func (p *implProcessor) process(ctx context.Context, name, path string) (Report, error) {
	var (
		seg segmentation.Segmentation
		err error
	)

	// Step 1: Load or produce the segmentation pair
	if isJob(path) {
		seg, err = segmentation.LoadJob(path)
		if err != nil {
			return Report{}, fmt.Errorf("load job: %w", err)
		}
	} else {
		seg, err = p.segmentMedia(ctx, name, path)
		if err != nil {
			return Report{}, err
		}
	}
	if seg.Name == "" {
		seg.Name = name
	}

	// Step 2: Align, render and summarize
	out, err := p.engine.Run(ctx, seg)
	if err != nil {
		return Report{Output: out}, err
	}

	// Step 3: Write artifacts, all or nothing
	paths, err := p.writer.Write(ctx, artifact.Artifacts{
		Name:       seg.Name,
		Transcript: out.Transcript,
		Summary:    out.Summary.Summary,
		Bullets:    out.Bullets,
		Generated:  time.Now(),
	})
	if err != nil {
		return Report{Output: out}, fmt.Errorf("write artifacts: %w", err)
	}

	return Report{Output: out, Paths: paths}, nil
}

// finish records the outcome of run. A failure to record is logged, not returned,
// so it never masks the processing error.
func (p *implProcessor) finish(ctx context.Context, run store.Run, report Report, runErr error) store.Run {
	run.Status = store.StatusSucceeded
	if runErr != nil {
		run.Status = store.StatusFailed
		run.Error = runErr.Error()
	}
	run.Utterances = len(report.Output.Utterances)
	run.Unknown = report.Output.Stats.Unknown
	run.Turns = report.Output.Turns
	run.Chunks = len(report.Output.Summary.Chunks)
	run.FinishedAt = time.Now().UTC()

	// The run context may already be canceled; the record still has to land.
	if err := p.store.Finish(context.WithoutCancel(ctx), run); err != nil {
		p.logger.Error(ctx, "Failed to record run %s: %v", run.ID, err)
	}
	return run
}
