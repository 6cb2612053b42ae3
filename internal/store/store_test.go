package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func openTestStore(t *testing.T) Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "state"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestBeginFinishLookup(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	run, err := s.Begin(ctx, "standup", "in/standup.json", "abc")
	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	if run.ID == "" || run.Status != StatusRunning {
		t.Fatalf("Begin() = %+v", run)
	}

	if _, found, err := s.LastSucceeded(ctx, "abc"); err != nil || found {
		t.Fatalf("LastSucceeded() before finish = %v, %v", found, err)
	}

	run.Status = StatusSucceeded
	run.Utterances = 12
	run.Unknown = 2
	run.Chunks = 1
	if err := s.Finish(ctx, run); err != nil {
		t.Fatalf("Finish() error = %v", err)
	}

	got, found, err := s.LastSucceeded(ctx, "abc")
	if err != nil || !found {
		t.Fatalf("LastSucceeded() = %v, %v", found, err)
	}
	if got.ID != run.ID || got.Utterances != 12 || got.Unknown != 2 || got.FinishedAt.IsZero() {
		t.Errorf("LastSucceeded() = %+v", got)
	}
}

func TestFinishUnknownRun(t *testing.T) {
	s := openTestStore(t)
	if err := s.Finish(context.Background(), Run{ID: "missing", Status: StatusFailed}); err == nil {
		t.Error("Finish() should fail for an unknown run")
	}
}

func TestListNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	for _, name := range []string{"first", "second", "third"} {
		if _, err := s.Begin(ctx, name, name+".json", name); err != nil {
			t.Fatalf("Begin() error = %v", err)
		}
		time.Sleep(2 * time.Millisecond)
	}

	runs, err := s.List(ctx, 2)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(runs) != 2 || runs[0].Name != "third" || runs[1].Name != "second" {
		t.Errorf("List() = %+v", runs)
	}

	all, err := s.List(ctx, 0)
	if err != nil || len(all) != 3 {
		t.Errorf("List(0) = %d runs, %v", len(all), err)
	}
}

func TestCorruptTimestampIsReported(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	run, err := s.Begin(ctx, "standup", "standup.json", "abc")
	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	db := s.(*implStore).db
	if _, err := db.ExecContext(ctx, `UPDATE runs SET finished_at = 'yesterday' WHERE id = ?`, run.ID); err != nil {
		t.Fatal(err)
	}

	_, err = s.List(ctx, 10)
	if err == nil || !strings.Contains(err.Error(), "finished_at") {
		t.Errorf("List() error = %v, want finished_at parse error", err)
	}
}

func TestHash(t *testing.T) {
	a, err := Hash(strings.NewReader("same"))
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	b, _ := Hash(strings.NewReader("same"))
	c, _ := Hash(strings.NewReader("different"))
	if a != b || a == c || len(a) != 64 {
		t.Errorf("hashes: %s %s %s", a, b, c)
	}

	path := filepath.Join(t.TempDir(), "job.json")
	if err := os.WriteFile(path, []byte("same"), 0644); err != nil {
		t.Fatal(err)
	}
	if got, err := HashFile(path); err != nil || got != a {
		t.Errorf("HashFile() = %s, %v", got, err)
	}
}
