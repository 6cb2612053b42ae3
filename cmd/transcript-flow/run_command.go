package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/transcript-flow/internal/processor"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var opts processor.Options

	cmd := &cobra.Command{
		Use:   "run <job.json|audio> [more...]",
		Short: "Process job files or audio once and write artifacts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			log := ctx.logger()
			proc, st, err := ctx.newProcessor(runCtx, log, opts)
			if err != nil {
				return err
			}
			defer st.Close()

			out := cmd.OutOrStdout()
			var failed int
			for _, path := range args {
				report, err := proc.Process(runCtx, path)
				if err != nil {
					if runCtx.Err() != nil {
						return context.Canceled
					}
					log.Error(runCtx, "Failed to process %s: %v", path, err)
					failed++
					continue
				}
				if report.Skipped {
					fmt.Fprintf(out, "%s: already processed (run %s), use --force to redo\n", path, report.Run.ID)
					continue
				}
				fmt.Fprintf(out, "%s: %s\n", path, report.Paths.Summary)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d input(s) failed", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "Reprocess inputs that already succeeded")
	cmd.Flags().BoolVar(&opts.Archive, "archive", false, "Move inputs to the archived folder after processing")
	return cmd
}
