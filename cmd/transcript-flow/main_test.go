package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nguyentantai21042004/transcript-flow/internal/align"
	"github.com/nguyentantai21042004/transcript-flow/internal/store"
)

const inspectJob = `{
  "name": "standup",
  "utterances": [
    {"start": 0, "end": 4, "text": "Morning all."},
    {"start": 4.8, "end": 6, "text": "hello"},
    {"start": 30, "end": 31, "text": "anyone?"}
  ],
  "turns": [
    {"start": 0, "end": 5, "speaker": "A"},
    {"start": 5, "end": 10, "speaker": "B"}
  ]
}`

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	cfg := "paths:\n  input: " + filepath.Join(dir, "in") +
		"\n  output: " + filepath.Join(dir, "out") +
		"\n  state: " + filepath.Join(dir, "state") +
		"\nlogging:\n  level: error\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", cfgPath, "--env-file", filepath.Join(dir, "missing.env")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestInspectCommand(t *testing.T) {
	job := filepath.Join(t.TempDir(), "standup.json")
	if err := os.WriteFile(job, []byte(inspectJob), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := runRoot(t, "inspect", "--transcript", job)
	if err != nil {
		t.Fatalf("inspect error = %v", err)
	}

	for _, want := range []string{
		"standup: 3 utterances, 2 speaker turns",
		"Morning all.",
		"[4.80 - 6.00] Speaker A: hello",
		"[30.00 - 31.00] Speaker unknown: anyone?",
		"67%",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestInspectRejectsUnknownPolicy(t *testing.T) {
	job := filepath.Join(t.TempDir(), "standup.json")
	if err := os.WriteFile(job, []byte(inspectJob), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := runRoot(t, "inspect", "--policy", "loudest", job); err == nil {
		t.Fatal("inspect with unknown policy succeeded")
	}
}

func TestHistoryCommandEmpty(t *testing.T) {
	out, err := runRoot(t, "history")
	if err != nil {
		t.Fatalf("history error = %v", err)
	}
	if !strings.Contains(out, "No runs recorded") {
		t.Errorf("output = %q", out)
	}
}

func TestRenderRuns(t *testing.T) {
	start := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	var buf bytes.Buffer
	out := renderRuns(&buf, []store.Run{{
		Name:       "standup",
		Status:     store.StatusFailed,
		Utterances: 3,
		Error:      "summarize: chunk 0: quota exceeded for the current billing period",
		StartedAt:  start,
		FinishedAt: start.Add(1500 * time.Millisecond),
	}})

	for _, want := range []string{"standup", "failed", "1.5s", "summarize: chunk 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "billing period") {
		t.Errorf("error not truncated:\n%s", out)
	}
}

func TestRenderSpeakerStats(t *testing.T) {
	out := renderSpeakerStats(align.Stats{Attributed: 3, Unknown: 1, BySpeaker: map[string]int{"B": 1, "A": 2}}, 4)
	a, b := strings.Index(out, " A "), strings.Index(out, " B ")
	if a < 0 || b < 0 || a > b {
		t.Errorf("speakers not sorted:\n%s", out)
	}
	if !strings.Contains(out, "50%") || !strings.Contains(out, "25%") {
		t.Errorf("shares missing:\n%s", out)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"héllo wörld", 6, "héllo…"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
