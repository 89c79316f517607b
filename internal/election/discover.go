package election

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPattern selects ballot files.
const DefaultPattern = "*.csv"

// Discover lists files directly under dir whose names match pattern, in
// lexical order. Subdirectories and hidden files are not searched. A missing
// directory yields no files and no error.
func Discover(dir, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("ballot pattern %q: %w", pattern, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read ballot directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || isHidden(entry.Name()) {
			continue
		}
		if ok, _ := filepath.Match(pattern, entry.Name()); !ok {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}

// isHidden reports dot-files, which include the temp files WriteFileAtomic
// leaves mid-write.
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
