package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/transcript-flow/internal/align"
	"github.com/nguyentantai21042004/transcript-flow/internal/pipeline"
	"github.com/nguyentantai21042004/transcript-flow/internal/segmentation"
	"github.com/nguyentantai21042004/transcript-flow/internal/timeline"
	"github.com/nguyentantai21042004/transcript-flow/internal/transcript"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var (
		policy         string
		margin         float64
		showTranscript bool
	)

	cmd := &cobra.Command{
		Use:   "inspect <job.json>",
		Short: "Show speaker attribution for a job without summarizing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			opts := align.Options{
				Margin:  cfg.Alignment.BoundaryMarginSeconds,
				Policy:  align.Policy(cfg.Alignment.Policy),
				Workers: cfg.Alignment.Workers,
			}
			if cmd.Flags().Changed("policy") {
				opts.Policy = align.Policy(policy)
			}
			if cmd.Flags().Changed("margin") {
				opts.Margin = margin
			}

			log := ctx.logger()
			aligner, err := align.New(opts, log.With("align"))
			if err != nil {
				return err
			}

			seg, err := segmentation.LoadJob(args[0])
			if err != nil {
				return err
			}

			engine := pipeline.New(aligner, nil, nil, log)
			utterances, stats, mode, err := engine.Attribute(cmd.Context(), seg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d utterances, %d speaker turns\n", seg.Name, len(seg.Utterances), len(seg.Turns))
			fmt.Fprintln(out, renderUtterances(out, utterances))
			if mode == transcript.ModeSpeakers {
				fmt.Fprintln(out, renderSpeakerStats(stats, len(utterances)))
			}
			if showTranscript {
				fmt.Fprint(out, transcript.Render(utterances, mode))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&policy, "policy", string(align.PolicyFirstMatch), "Attribution policy: first_match or largest_overlap")
	cmd.Flags().Float64Var(&margin, "margin", timeline.DefaultMargin, "Boundary margin in seconds")
	cmd.Flags().BoolVar(&showTranscript, "transcript", false, "Also print the rendered transcript")
	return cmd
}

func renderUtterances(out io.Writer, utterances []timeline.AttributedUtterance) string {
	rows := make([][]string, 0, len(utterances))
	for i, u := range utterances {
		speaker := u.Speaker
		if !u.Known() {
			speaker = colorize(out, speaker, text.Colors{text.FgYellow})
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			fmt.Sprintf("%.2f", u.Span.Start),
			fmt.Sprintf("%.2f", u.Span.End),
			speaker,
			truncate(u.Text, 60),
		})
	}
	return renderTable(
		[]string{"#", "Start", "End", "Speaker", "Text"},
		rows,
		[]columnAlignment{alignRight, alignRight, alignRight, alignLeft, alignLeft},
	)
}

func renderSpeakerStats(stats align.Stats, total int) string {
	speakers := make([]string, 0, len(stats.BySpeaker))
	for s := range stats.BySpeaker {
		speakers = append(speakers, s)
	}
	sort.Strings(speakers)

	rows := make([][]string, 0, len(speakers)+1)
	for _, s := range speakers {
		rows = append(rows, []string{s, strconv.Itoa(stats.BySpeaker[s]), percent(stats.BySpeaker[s], total)})
	}
	rows = append(rows, []string{timeline.UnknownSpeaker, strconv.Itoa(stats.Unknown), percent(stats.Unknown, total)})

	return renderTable(
		[]string{"Speaker", "Utterances", "Share"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight},
	)
}

func percent(n, total int) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.0f%%", float64(n)*100/float64(total))
}
