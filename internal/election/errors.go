package election

import (
	"errors"
	"fmt"
)

var (
	// ErrNoVotes is returned when no vote rows were found.
	ErrNoVotes = errors.New("no votes found")
	// ErrShortRow is wrapped by RowError when a row lacks the candidate column.
	ErrShortRow = errors.New("row is missing the candidate column")
)

// RowError reports a CSV row that cannot yield a candidate.
type RowError struct {
	Path    string
	Line    int
	Columns int
	Want    int
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s:%d: %v (has %d columns, need %d)", e.Path, e.Line, ErrShortRow, e.Columns, e.Want)
}

func (e *RowError) Unwrap() error {
	return ErrShortRow
}
