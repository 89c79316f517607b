package election

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"statbook/internal/logging"
)

// DefaultCandidateColumn is the zero-based CSV column holding the candidate.
const DefaultCandidateColumn = 2

// ctxCheckInterval is how many rows are read between cancellation checks.
const ctxCheckInterval = 4096

// ReadOptions controls how ballot files are located and parsed.
type ReadOptions struct {
	// CandidateColumn is zero-based. Negative values use DefaultCandidateColumn.
	CandidateColumn int
	// Pattern is the file glob used by CollectVotes. Empty means "*.csv".
	Pattern string
	Logger  *slog.Logger
}

// DefaultReadOptions returns options for the standard ballot layout.
func DefaultReadOptions() ReadOptions {
	return ReadOptions{CandidateColumn: DefaultCandidateColumn, Pattern: DefaultPattern}
}

func (o ReadOptions) column() int {
	if o.CandidateColumn < 0 {
		return DefaultCandidateColumn
	}
	return o.CandidateColumn
}

func (o ReadOptions) logger() *slog.Logger {
	return logging.NewComponentLogger(o.Logger, "ballots")
}

// FileVotes records how many votes one ballot file contributed.
type FileVotes struct {
	Path  string `json:"path"`
	Votes int    `json:"votes"`
}

// Ballots is the master candidate list gathered from a directory.
type Ballots struct {
	Names []string    `json:"-"`
	Files []FileVotes `json:"files"`
}

// ReadVotes returns the candidate column of every row after the header in the
// CSV file at path. An empty file yields no votes.
func ReadVotes(ctx context.Context, path string, opts ReadOptions) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ballot file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}

	column := opts.column()
	var names []string
	for rows := 0; ; rows++ {
		if rows%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		if len(record) <= column {
			line, _ := reader.FieldPos(0)
			return nil, &RowError{Path: path, Line: line, Columns: len(record), Want: column + 1}
		}
		names = append(names, record[column])
	}
	return names, nil
}

// CollectVotes reads every ballot file under dir and concatenates their
// candidate columns. It returns ErrNoVotes, along with the per-file summary,
// when the directory holds no ballot files or only headers.
func CollectVotes(ctx context.Context, dir string, opts ReadOptions) (Ballots, error) {
	logger := logging.WithContext(ctx, opts.logger())

	files, err := Discover(dir, opts.Pattern)
	if err != nil {
		return Ballots{}, err
	}
	logger.Debug("discovered ballot files", logging.String(logging.FieldPath, dir), logging.Int("files", len(files)))

	var ballots Ballots
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return Ballots{}, err
		}
		names, err := ReadVotes(ctx, path, opts)
		if err != nil {
			return Ballots{}, err
		}
		logger.Info("read ballot file", logging.String(logging.FieldPath, path), logging.Int("votes", len(names)))
		ballots.Names = append(ballots.Names, names...)
		ballots.Files = append(ballots.Files, FileVotes{Path: path, Votes: len(names)})
	}

	if len(ballots.Names) == 0 {
		return ballots, fmt.Errorf("%s: %w", dir, ErrNoVotes)
	}
	return ballots, nil
}
