package testsupport

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

// BallotHeader is the column layout of the sample ballot exports.
var BallotHeader = []string{"Voter ID", "County", "Candidate"}

// WriteFile writes content to path, creating parent directories as needed.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteBallots writes a ballot CSV named name under dir with one row per
// candidate, and returns its path.
func WriteBallots(t testing.TB, dir, name string, candidates ...string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(BallotHeader); err != nil {
		t.Fatalf("write header %s: %v", path, err)
	}
	for i, candidate := range candidates {
		row := []string{string(rune('A'+i%26)) + "-" + name, "Marsh", candidate}
		if err := w.Write(row); err != nil {
			t.Fatalf("write row %s: %v", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		t.Fatalf("flush %s: %v", path, err)
	}
	return path
}
