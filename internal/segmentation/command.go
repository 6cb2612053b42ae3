package segmentation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
	"github.com/nguyentantai21042004/transcript-flow/internal/timeline"
	"github.com/nguyentantai21042004/transcript-flow/pkg/executor"
)

// InputPlaceholder is replaced by the audio path in command arguments.
const InputPlaceholder = "{input}"

// CommandSegmenter runs external segmenter programs. The speech command must
// print {"segments": [{"start", "end", "text"}]} and the speaker command
// {"turns": [{"start", "end", "speaker"}]} on stdout.
type CommandSegmenter struct {
	executor       executor.Executor
	speechCommand  []string
	speakerCommand []string
	logger         logger.Logger
}

var (
	_ SpeechSegmenter  = (*CommandSegmenter)(nil)
	_ SpeakerSegmenter = (*CommandSegmenter)(nil)
)

// NewCommandSegmenter creates a CommandSegmenter. speakerCommand may be empty.
func NewCommandSegmenter(exec executor.Executor, speechCommand, speakerCommand []string, log logger.Logger) (*CommandSegmenter, error) {
	if len(speechCommand) == 0 || strings.TrimSpace(speechCommand[0]) == "" {
		return nil, fmt.Errorf("speech command is required")
	}
	return &CommandSegmenter{
		executor:       exec,
		speechCommand:  speechCommand,
		speakerCommand: speakerCommand,
		logger:         log,
	}, nil
}

// CanDiarize reports whether a speaker command is configured.
func (c *CommandSegmenter) CanDiarize() bool {
	return len(c.speakerCommand) > 0
}

// Transcribe runs the speech command on audioPath.
func (c *CommandSegmenter) Transcribe(ctx context.Context, audioPath string) ([]timeline.Utterance, error) {
	var out speechOutput
	if err := c.run(ctx, c.speechCommand, audioPath, &out); err != nil {
		return nil, fmt.Errorf("speech segmenter: %w", err)
	}
	c.logger.Info(ctx, "Speech segmenter returned %d utterances", len(out.Segments))
	return toUtterances(out.Segments), nil
}

// Diarize runs the speaker command on audioPath.
func (c *CommandSegmenter) Diarize(ctx context.Context, audioPath string) ([]timeline.SpeakerTurn, error) {
	if !c.CanDiarize() {
		return nil, fmt.Errorf("speaker segmenter: no command configured")
	}
	var out speakerOutput
	if err := c.run(ctx, c.speakerCommand, audioPath, &out); err != nil {
		return nil, fmt.Errorf("speaker segmenter: %w", err)
	}
	c.logger.Info(ctx, "Speaker segmenter returned %d turns", len(out.Turns))
	return toTurns(out.Turns), nil
}

// Segment runs both commands and returns a Segmentation named name.
func (c *CommandSegmenter) Segment(ctx context.Context, name, audioPath string) (Segmentation, error) {
	seg := Segmentation{Name: name}

	utterances, err := c.Transcribe(ctx, audioPath)
	if err != nil {
		return Segmentation{}, err
	}
	seg.Utterances = utterances

	if c.CanDiarize() {
		turns, err := c.Diarize(ctx, audioPath)
		if err != nil {
			return Segmentation{}, err
		}
		seg.Turns = turns
		seg.Diarized = true
	}
	return seg, nil
}

func (c *CommandSegmenter) run(ctx context.Context, command []string, audioPath string, v interface{}) error {
	args := make([]string, len(command)-1)
	for i, a := range command[1:] {
		args[i] = strings.ReplaceAll(a, InputPlaceholder, audioPath)
	}

	c.logger.Debug(ctx, "Running %s %s", command[0], strings.Join(args, " "))
	stdout, err := c.executor.Execute(ctx, command[0], args...)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(stdout), v); err != nil {
		return fmt.Errorf("decode %s output: %w", command[0], err)
	}
	return nil
}
