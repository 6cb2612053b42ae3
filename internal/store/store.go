package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// timeLayout is fixed width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

const runColumns = `id, name, source, input_hash, status, utterances, turns, unknown, chunks, error, started_at, finished_at`

func (s *implStore) Begin(ctx context.Context, name, source, inputHash string) (Run, error) {
	run := Run{
		ID:        uuid.NewString(),
		Name:      name,
		Source:    source,
		InputHash: inputHash,
		Status:    StatusRunning,
		StartedAt: time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, name, source, input_hash, status, started_at) VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.Name, run.Source, run.InputHash, run.Status, run.StartedAt.Format(timeLayout),
	)
	if err != nil {
		return Run{}, fmt.Errorf("insert run: %w", err)
	}
	return run, nil
}

func (s *implStore) Finish(ctx context.Context, run Run) error {
	if run.FinishedAt.IsZero() {
		run.FinishedAt = time.Now().UTC()
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE runs SET status = ?, utterances = ?, turns = ?, unknown = ?, chunks = ?, error = ?, finished_at = ? WHERE id = ?`,
		run.Status, run.Utterances, run.Turns, run.Unknown, run.Chunks, run.Error,
		run.FinishedAt.UTC().Format(timeLayout), run.ID,
	)
	if err != nil {
		return fmt.Errorf("update run %s: %w", run.ID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("update run %s: not found", run.ID)
	}
	return nil
}

func (s *implStore) LastSucceeded(ctx context.Context, inputHash string) (Run, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+runColumns+` FROM runs WHERE input_hash = ? AND status = ? ORDER BY started_at DESC, rowid DESC LIMIT 1`,
		inputHash, StatusSucceeded,
	)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, false, nil
	}
	if err != nil {
		return Run{}, false, fmt.Errorf("find run by hash: %w", err)
	}
	return run, true, nil
}

func (s *implStore) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+runColumns+` FROM runs ORDER BY started_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func (s *implStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var (
		run               Run
		status            string
		started, finished string
	)
	err := row.Scan(&run.ID, &run.Name, &run.Source, &run.InputHash, &status,
		&run.Utterances, &run.Turns, &run.Unknown, &run.Chunks, &run.Error, &started, &finished)
	if err != nil {
		return Run{}, err
	}
	run.Status = Status(status)
	if run.StartedAt, err = time.Parse(timeLayout, started); err != nil {
		return Run{}, fmt.Errorf("run %s: parse started_at: %w", run.ID, err)
	}
	if finished != "" {
		if run.FinishedAt, err = time.Parse(timeLayout, finished); err != nil {
			return Run{}, fmt.Errorf("run %s: parse finished_at: %w", run.ID, err)
		}
	}
	return run, nil
}
