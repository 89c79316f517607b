package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"statbook/internal/config"
	"statbook/internal/election"
)

// ErrNotFound is returned when a run ID is not recorded.
var ErrNotFound = errors.New("run not found")

const (
	sqliteBusyCode          = 5
	busyRetryAttempts       = 5
	busyRetryInitialBackoff = 10 * time.Millisecond
	busyRetryMaxBackoff     = 200 * time.Millisecond
	lockRetryDelay          = 50 * time.Millisecond

	// Fixed-width so created_at sorts lexically.
	timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

// Store manages tally history backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open initializes or connects to the history database.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.HistoryPath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{
		db:   db,
		path: dbPath,
		lock: flock.New(filepath.Join(filepath.Dir(dbPath), "history.lock")),
	}
	if err := store.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Record stores run and returns it with its assigned ID and timestamp.
func (s *Store) Record(ctx context.Context, run Run) (Run, error) {
	locked, err := s.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return Run{}, fmt.Errorf("acquire history lock: %w", err)
	}
	if !locked {
		return Run{}, errors.New("acquire history lock: lock not obtained")
	}
	defer func() { _ = s.lock.Unlock() }()

	if strings.TrimSpace(run.ID) == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	err = retryOnBusy(ctx, func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer func() { _ = tx.Rollback() }()

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO runs (id, directory, results_file, total_votes, winner, file_count, created_at)
             VALUES (?, ?, ?, ?, ?, ?, ?)`,
			run.ID,
			run.Directory,
			nullableString(run.ResultsFile),
			run.TotalVotes,
			run.Winner,
			run.FileCount,
			run.CreatedAt.UTC().Format(timestampLayout),
		); err != nil {
			return err
		}
		for i, candidate := range run.Candidates {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO run_candidates (run_id, position, name, votes) VALUES (?, ?, ?, ?)",
				run.ID, i, candidate.Name, candidate.Votes,
			); err != nil {
				return err
			}
		}
		return tx.Commit()
	})
	if err != nil {
		return Run{}, fmt.Errorf("record run: %w", err)
	}
	return run, nil
}

// List returns the most recent runs, newest first, without candidate detail.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+runColumns+" FROM runs ORDER BY created_at DESC, id LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// Get returns the run with the given ID, or a unique ID prefix, including its
// candidate breakdown.
func (s *Store) Get(ctx context.Context, id string) (Run, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Run{}, ErrNotFound
	}
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+runColumns+" FROM runs WHERE id = ? OR id LIKE ? ESCAPE '\\' LIMIT 2",
		id, escapeLike(id)+"%")
	if err != nil {
		return Run{}, fmt.Errorf("get run: %w", err)
	}
	var matches []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			rows.Close()
			return Run{}, err
		}
		matches = append(matches, run)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return Run{}, fmt.Errorf("iterate runs: %w", err)
	}

	var run Run
	switch {
	case len(matches) == 0:
		return Run{}, fmt.Errorf("%s: %w", id, ErrNotFound)
	case len(matches) > 1:
		exact := false
		for _, m := range matches {
			if m.ID == id {
				run, exact = m, true
			}
		}
		if !exact {
			return Run{}, fmt.Errorf("run id prefix %q is ambiguous", id)
		}
	default:
		run = matches[0]
	}

	candidates, err := s.candidates(ctx, run)
	if err != nil {
		return Run{}, err
	}
	run.Candidates = candidates
	return run, nil
}

func (s *Store) candidates(ctx context.Context, run Run) ([]election.CandidateTally, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name, votes FROM run_candidates WHERE run_id = ? ORDER BY position", run.ID)
	if err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}
	defer rows.Close()

	var out []election.CandidateTally
	for rows.Next() {
		var c election.CandidateTally
		if err := rows.Scan(&c.Name, &c.Votes); err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		if run.TotalVotes > 0 {
			c.Percent = float64(c.Votes) / float64(run.TotalVotes) * 100
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate candidates: %w", err)
	}
	return out, nil
}

// Result rebuilds the tally result of a run loaded with Get.
func (r Run) Result() election.Result {
	return election.Result{
		TotalVotes: r.TotalVotes,
		Candidates: r.Candidates,
		Winner:     r.Winner,
	}
}
