package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
)

type recorder struct {
	mu    sync.Mutex
	paths []string
	done  chan string
}

func newRecorder() *recorder {
	return &recorder{done: make(chan string, 16)}
}

func (r *recorder) handle(_ context.Context, path string) error {
	r.mu.Lock()
	r.paths = append(r.paths, path)
	r.mu.Unlock()
	r.done <- path
	return nil
}

func jsonOnly(path string) bool {
	return strings.HasSuffix(path, ".json")
}

func waitFor(t *testing.T, ch <-chan string) string {
	t.Helper()
	select {
	case p := <-ch:
		return p
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for handler")
		return ""
	}
}

func startWatcher(t *testing.T, dir string, handler EventHandler, maxConcurrent int) (context.CancelFunc, <-chan error) {
	t.Helper()
	w, err := New(dir, handler, jsonOnly, logger.Discard(), maxConcurrent)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	w.(*implWatcher).settle = 10 * time.Millisecond
	t.Cleanup(func() { w.Stop() })

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- w.Start(ctx) }()
	return cancel, errCh
}

func TestWatcherHandlesExistingAndNewFiles(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "existing.json")
	if err := os.WriteFile(existing, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	rec := newRecorder()
	cancel, errCh := startWatcher(t, dir, rec.handle, 2)

	if got := waitFor(t, rec.done); got != existing {
		t.Errorf("first handled = %s, want %s", got, existing)
	}

	// Give fsnotify time to register before creating the file.
	time.Sleep(50 * time.Millisecond)
	created := filepath.Join(dir, "new.json")
	if err := os.WriteFile(created, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := waitFor(t, rec.done); got != created {
		t.Errorf("second handled = %s, want %s", got, created)
	}

	cancel()
	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("Start() error = %v, want context.Canceled", err)
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	for _, p := range rec.paths {
		if strings.HasSuffix(p, ".txt") {
			t.Errorf("filtered file handled: %s", p)
		}
	}
}

func TestWatcherBoundsConcurrency(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.json", "b.json", "c.json", "d.json"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	var running, peak int32
	done := make(chan string, 4)
	handler := func(_ context.Context, path string) error {
		n := atomic.AddInt32(&running, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		atomic.AddInt32(&running, -1)
		done <- path
		return nil
	}

	cancel, errCh := startWatcher(t, dir, handler, 2)
	for i := 0; i < 4; i++ {
		waitFor(t, done)
	}
	cancel()
	<-errCh

	if peak > 2 {
		t.Errorf("peak concurrency = %d, want <= 2", peak)
	}
}
