package summarizer

import (
	"context"
	"strings"
	"sync"
)

// Run summarizes text chunk by chunk. Up to concurrency chunks are in flight;
// summaries are joined with a single space in chunk order. The first failing
// chunk aborts the run and no partial summary is returned.
func (d *implDriver) Run(ctx context.Context, text string) (Result, error) {
	chunks := Chunk(text, d.chunkSize)
	if len(chunks) == 0 {
		return Result{}, nil
	}

	d.logger.Info(ctx, "Summarizing %d chunk(s) of up to %d characters (concurrency %d)",
		len(chunks), d.chunkSize, d.concurrency)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	summaries := make([]string, len(chunks))
	sem := newSemaphore(d.concurrency)

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	for i, chunk := range chunks {
		if err := sem.acquire(runCtx); err != nil {
			break
		}
		if runCtx.Err() != nil {
			sem.release()
			break
		}
		wg.Add(1)
		go func(i int, chunk string) {
			defer wg.Done()
			defer sem.release()

			out, err := d.summarizer.Summarize(runCtx, chunk, d.maxLength, d.minLength)
			if err == nil && strings.TrimSpace(out) == "" {
				err = ErrEmptySummary
			}
			if err != nil {
				fail(&CollaboratorError{Chunk: i, Err: err})
				return
			}
			summaries[i] = strings.TrimSpace(out)
			d.logger.Debug(runCtx, "[%d/%d] Chunk summarized (%d -> %d characters)", i+1, len(chunks), len(chunk), len(summaries[i]))
		}(i, chunk)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if firstErr != nil {
		return Result{}, firstErr
	}

	return Result{
		Chunks:    chunks,
		Summaries: summaries,
		Summary:   strings.Join(summaries, " "),
	}, nil
}
