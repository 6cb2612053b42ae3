package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/transcript-flow/internal/processor"
	"github.com/nguyentantai21042004/transcript-flow/internal/segmentation"
	"github.com/nguyentantai21042004/transcript-flow/internal/watcher"
)

const lockFileName = "watch.lock"

func newWatchCommand(ctx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Monitor the input folder and process new files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			log := ctx.logger()
			bg := cmd.Context()

			log.Info(bg, "========================================")
			log.Info(bg, "Transcript Pipeline")
			log.Info(bg, "========================================")
			log.Info(bg, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
			log.Info(bg, "Max Concurrent Processing: %d", cfg.Performance.MaxConcurrent)

			if err := ensureDirectories(cfg); err != nil {
				return err
			}

			lockPath := filepath.Join(cfg.Paths.State, lockFileName)
			lock := flock.New(lockPath)
			ok, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire lock: %w", err)
			}
			if !ok {
				return fmt.Errorf("another watcher holds %s", lockPath)
			}
			defer func() {
				if err := lock.Unlock(); err != nil {
					log.Warn(bg, "Failed to release lock: %v", err)
				}
				os.Remove(lockPath)
			}()

			runCtx, cancel := context.WithCancel(bg)
			defer cancel()

			proc, st, err := ctx.newProcessor(runCtx, log, processor.Options{Force: force, Archive: true})
			if err != nil {
				return err
			}
			defer st.Close()

			handler := func(ctx context.Context, path string) error {
				_, err := proc.Process(ctx, path)
				return err
			}
			w, err := watcher.New(cfg.Paths.Input, handler, proc.Accepts, log.With("watcher"), cfg.Performance.MaxConcurrent)
			if err != nil {
				return err
			}
			defer w.Stop()

			// Setup graceful shutdown
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			errChan := make(chan error, 1)
			go func() {
				errChan <- w.Start(runCtx)
			}()

			log.Info(bg, "========================================")
			log.Info(bg, "Transcript Pipeline is ready!")
			log.Info(bg, "Monitoring: %s", cfg.Paths.Input)
			log.Info(bg, "Output: %s", cfg.Paths.Output)
			if len(cfg.Segmenter.SpeechCommand) > 0 {
				log.Info(bg, "Audio segmentation: %s", cfg.Segmenter.SpeechCommand[0])
			} else {
				log.Info(bg, "Audio segmentation: disabled, only %s jobs are processed", segmentation.JobExt)
			}
			log.Info(bg, "Press Ctrl+C to stop")
			log.Info(bg, "========================================")

			var watchErr error
			select {
			case <-sigChan:
				log.Info(bg, "Shutdown signal received")
				log.Info(bg, "Shutting down gracefully...")
				cancel()
				watchErr = <-errChan
			case watchErr = <-errChan:
			}
			if watchErr != nil && !errors.Is(watchErr, context.Canceled) {
				log.Error(bg, "Watcher error: %v", watchErr)
				return watchErr
			}

			log.Info(bg, "Transcript Pipeline stopped")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Reprocess inputs that already succeeded")
	return cmd
}
