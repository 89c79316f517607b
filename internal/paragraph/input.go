package paragraph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"statbook/internal/textutil"
)

// ReadFirstLine returns the first line of the file at path without its line
// terminator. Later lines are ignored.
func ReadFirstLine(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open text file: %w", err)
	}
	defer file.Close()

	line, err := bufio.NewReader(file).ReadString('\n')
	switch {
	case errors.Is(err, io.EOF) && line == "":
		return "", fmt.Errorf("%s: %w", path, ErrEmptyInput)
	case err != nil && !errors.Is(err, io.EOF):
		return "", fmt.Errorf("read text file: %w", err)
	}
	return textutil.TrimLineEnding(line), nil
}
