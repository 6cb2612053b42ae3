package processor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/transcript-flow/internal/artifact"
	"github.com/nguyentantai21042004/transcript-flow/internal/config"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
	"github.com/nguyentantai21042004/transcript-flow/internal/pipeline"
	"github.com/nguyentantai21042004/transcript-flow/internal/segmentation"
	"github.com/nguyentantai21042004/transcript-flow/internal/store"
	"github.com/nguyentantai21042004/transcript-flow/internal/summarizer"
	"github.com/nguyentantai21042004/transcript-flow/internal/timeline"
)

const jobDoc = `{
  "name": "weekly sync",
  "utterances": [
    {"start": 0, "end": 4, "text": "We shipped the release."},
    {"start": 4.8, "end": 6, "text": "Great news."}
  ],
  "turns": [
    {"start": 0, "end": 5, "speaker": "A"},
    {"start": 5, "end": 10, "speaker": "B"}
  ]
}`

type stubSummarizer struct {
	calls int
	err   error
}

func (s *stubSummarizer) Summarize(context.Context, string, int, int) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return "The release shipped on time. Everyone agreed it was great news.", nil
}

type fakeSegmenter struct {
	gotPath string
}

func (f *fakeSegmenter) Segment(_ context.Context, name, audioPath string) (segmentation.Segmentation, error) {
	f.gotPath = audioPath
	return segmentation.Segmentation{
		Name:       name,
		Utterances: []timeline.Utterance{{Span: timeline.TimeSpan{Start: 0, End: 2}, Text: "hello there"}},
	}, nil
}

type fakeExecutor struct {
	calls [][]string
	err   error
}

func (f *fakeExecutor) Execute(_ context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	return "", f.err
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, _ string, name string, args ...string) (string, error) {
	return f.Execute(ctx, name, args...)
}

type fixture struct {
	cfg   *config.Config
	store store.Store
	sum   *stubSummarizer
	seg   *fakeSegmenter
	exec  *fakeExecutor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	root := t.TempDir()
	cfg := config.Default()
	cfg.Paths = config.PathsConfig{
		Input:      filepath.Join(root, "input"),
		Processing: filepath.Join(root, "processing"),
		Output:     filepath.Join(root, "output"),
		Archived:   filepath.Join(root, "archived"),
		Failed:     filepath.Join(root, "failed"),
		Temp:       filepath.Join(root, "temp"),
		State:      filepath.Join(root, "state"),
	}
	if err := os.MkdirAll(cfg.Paths.Input, 0755); err != nil {
		t.Fatal(err)
	}

	st, err := store.Open(context.Background(), cfg.Paths.State)
	if err != nil {
		t.Fatalf("store.Open() error = %v", err)
	}
	t.Cleanup(func() { st.Close() })

	return &fixture{
		cfg:   &cfg,
		store: st,
		sum:   &stubSummarizer{},
		seg:   &fakeSegmenter{},
		exec:  &fakeExecutor{},
	}
}

func (f *fixture) processor(t *testing.T, opts Options, withSegmenter bool) Processor {
	t.Helper()
	log := logger.Discard()
	engine, err := pipeline.NewFromConfig(f.cfg, f.sum, log)
	if err != nil {
		t.Fatalf("NewFromConfig() error = %v", err)
	}
	deps := Deps{
		Engine: engine,
		Writer: artifact.New(f.cfg.Paths.Output, f.cfg.Paths.Temp, false, log),
		Store:  f.store,
	}
	if withSegmenter {
		deps.Segmenter = f.seg
		deps.Executor = f.exec
	}
	return New(f.cfg, deps, opts, log)
}

func (f *fixture) writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(f.cfg.Paths.Input, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestProcessJob(t *testing.T) {
	f := newFixture(t)
	p := f.processor(t, Options{Archive: true}, false)
	path := f.writeInput(t, "sync.json", jobDoc)

	report, err := p.Process(context.Background(), path)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	transcript, err := os.ReadFile(report.Paths.Transcript)
	if err != nil {
		t.Fatalf("read transcript: %v", err)
	}
	want := "[0.00 - 4.00] Speaker A: We shipped the release.\n[4.80 - 6.00] Speaker A: Great news.\n"
	if string(transcript) != want {
		t.Errorf("transcript = %q, want %q", transcript, want)
	}
	if filepath.Base(report.Paths.Transcript) != "weekly sync.transcript.txt" {
		t.Errorf("transcript named %s", report.Paths.Transcript)
	}

	if report.Run.Status != store.StatusSucceeded || report.Run.Utterances != 2 || report.Run.Turns != 2 || report.Run.Chunks != 1 {
		t.Errorf("Run = %+v", report.Run)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("input still in watched folder: %v", err)
	}
	if _, err := os.Stat(filepath.Join(f.cfg.Paths.Archived, "sync.json")); err != nil {
		t.Errorf("input not archived: %v", err)
	}
}

func TestProcessSkipsSucceededContent(t *testing.T) {
	f := newFixture(t)
	p := f.processor(t, Options{}, false)
	ctx := context.Background()

	if _, err := p.Process(ctx, f.writeInput(t, "a.json", jobDoc)); err != nil {
		t.Fatalf("first Process() error = %v", err)
	}

	report, err := p.Process(ctx, f.writeInput(t, "b.json", jobDoc))
	if err != nil {
		t.Fatalf("second Process() error = %v", err)
	}
	if !report.Skipped || f.sum.calls != 1 {
		t.Errorf("Skipped = %v, summarizer calls = %d", report.Skipped, f.sum.calls)
	}

	forced := f.processor(t, Options{Force: true}, false)
	report, err = forced.Process(ctx, filepath.Join(f.cfg.Paths.Input, "b.json"))
	if err != nil {
		t.Fatalf("forced Process() error = %v", err)
	}
	if report.Skipped || f.sum.calls != 2 {
		t.Errorf("forced Skipped = %v, summarizer calls = %d", report.Skipped, f.sum.calls)
	}
}

func TestProcessFailureRecordsRunWithoutArtifacts(t *testing.T) {
	f := newFixture(t)
	f.sum.err = errors.New("quota exceeded")
	p := f.processor(t, Options{}, false)

	report, err := p.Process(context.Background(), f.writeInput(t, "sync.json", jobDoc))
	if !errors.Is(err, summarizer.ErrCollaborator) {
		t.Fatalf("Process() error = %v, want collaborator error", err)
	}
	if report.Run.Status != store.StatusFailed || !strings.Contains(report.Run.Error, "quota exceeded") {
		t.Errorf("Run = %+v", report.Run)
	}

	entries, _ := os.ReadDir(f.cfg.Paths.Output)
	if len(entries) != 0 {
		t.Errorf("output has %d entries after failure", len(entries))
	}

	runs, err := f.store.List(context.Background(), 10)
	if err != nil || len(runs) != 1 || runs[0].Status != store.StatusFailed {
		t.Errorf("List() = %+v, %v", runs, err)
	}
}

func TestProcessFailureMovesInputToFailedFolder(t *testing.T) {
	f := newFixture(t)
	f.sum.err = errors.New("quota exceeded")
	p := f.processor(t, Options{Archive: true}, false)
	path := f.writeInput(t, "sync.json", jobDoc)

	if _, err := p.Process(context.Background(), path); err == nil {
		t.Fatal("Process() should fail")
	}

	if _, err := os.Stat(filepath.Join(f.cfg.Paths.Failed, "sync.json")); err != nil {
		t.Errorf("input not in failed folder: %v", err)
	}
	entries, _ := os.ReadDir(f.cfg.Paths.Processing)
	if len(entries) != 0 {
		t.Errorf("processing folder has %d entries", len(entries))
	}
	if _, err := os.Stat(filepath.Join(f.cfg.Paths.Archived, "sync.json")); !os.IsNotExist(err) {
		t.Errorf("failed input archived: %v", err)
	}
}

func TestProcessMalformedJob(t *testing.T) {
	f := newFixture(t)
	p := f.processor(t, Options{}, false)
	doc := `{"utterances": [{"start": 3, "end": 1, "text": "x"}]}`

	_, err := p.Process(context.Background(), f.writeInput(t, "bad.json", doc))
	if !errors.Is(err, timeline.ErrMalformedInterval) {
		t.Fatalf("Process() error = %v, want malformed interval", err)
	}
	if f.sum.calls != 0 {
		t.Errorf("summarizer called %d times", f.sum.calls)
	}
}

func TestProcessAudio(t *testing.T) {
	f := newFixture(t)
	p := f.processor(t, Options{}, true)
	path := f.writeInput(t, "call.m4a", "not really audio")

	report, err := p.Process(context.Background(), path)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if len(f.exec.calls) != 1 || f.exec.calls[0][0] != "ffmpeg" {
		t.Fatalf("executor calls = %v", f.exec.calls)
	}
	if !strings.HasSuffix(f.seg.gotPath, ".wav") || f.seg.gotPath == path {
		t.Errorf("segmenter got %s, want extracted wav", f.seg.gotPath)
	}
	if _, err := os.Stat(f.seg.gotPath); !os.IsNotExist(err) {
		t.Errorf("extracted audio not cleaned up: %v", err)
	}
	if report.Output.Transcript != "[0.00 -> 2.00] hello there\n" {
		t.Errorf("Transcript = %q", report.Output.Transcript)
	}
}

func TestAccepts(t *testing.T) {
	f := newFixture(t)
	jobsOnly := f.processor(t, Options{}, false)
	withAudio := f.processor(t, Options{}, true)

	tests := []struct {
		path      string
		jobsOnly  bool
		withAudio bool
	}{
		{"a.json", true, true},
		{"a.JSON", true, true},
		{"a.wav", false, true},
		{"a.MP4", false, true},
		{"a.txt", false, false},
		{"a", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := jobsOnly.Accepts(tt.path); got != tt.jobsOnly {
				t.Errorf("jobs only Accepts() = %v", got)
			}
			if got := withAudio.Accepts(tt.path); got != tt.withAudio {
				t.Errorf("with segmenter Accepts() = %v", got)
			}
		})
	}

	if _, err := jobsOnly.Process(context.Background(), "notes.txt"); !errors.Is(err, ErrUnsupportedInput) {
		t.Errorf("Process(notes.txt) error = %v", err)
	}
}
