// Package store keeps a history of pipeline runs in SQLite so that inputs
// already processed can be recognized by content hash.
package store

import (
	"context"
	"time"
)

// Status is the lifecycle state of a run.
type Status string

const (
	StatusRunning   Status = "running"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
	StatusSkipped   Status = "skipped"
)

// Run is one processed input.
type Run struct {
	ID         string
	Name       string
	Source     string
	InputHash  string
	Status     Status
	Utterances int
	Turns      int
	Unknown    int
	Chunks     int
	Error      string
	StartedAt  time.Time
	FinishedAt time.Time
}

// Store persists runs.
type Store interface {
	// Begin records a new running run and returns it with its ID set.
	Begin(ctx context.Context, name, source, inputHash string) (Run, error)
	// Finish stores the final status, counts and error of run.
	Finish(ctx context.Context, run Run) error
	// LastSucceeded returns the most recent successful run for inputHash.
	LastSucceeded(ctx context.Context, inputHash string) (Run, bool, error)
	// List returns the newest runs first.
	List(ctx context.Context, limit int) ([]Run, error)
	Close() error
}
