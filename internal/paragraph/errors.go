package paragraph

import "errors"

var (
	// ErrEmptyInput is returned when the input file has no first line.
	ErrEmptyInput = errors.New("input is empty")
	// ErrNoWords is returned when the text holds no non-empty word to average.
	ErrNoWords = errors.New("no words to measure")
)
