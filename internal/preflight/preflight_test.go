package preflight

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"statbook/internal/testsupport"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if !strings.HasSuffix(result.Detail, ": missing") {
		t.Fatalf("unexpected detail: %q", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed || !strings.HasSuffix(result.Detail, ": not a directory") {
		t.Fatalf("expected not-a-directory failure, got %+v", result)
	}
}

func TestCheckDirectoryAccess_ReadOnly(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses permission bits")
	}
	dir := t.TempDir()
	if err := os.Chmod(dir, 0o555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	result := CheckDirectoryAccess("test", dir)
	if result.Passed || !strings.HasSuffix(result.Detail, "no write permission") {
		t.Fatalf("expected missing write permission, got %+v", result)
	}
}

func TestRunAllNilConfig(t *testing.T) {
	if results := RunAll(nil); results != nil {
		t.Fatalf("expected nil results, got %v", results)
	}
}

func TestRunAllSkipsDataDirWithoutHistory(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Poll.ResultsFile = filepath.Join(t.TempDir(), "results.txt")

	results := RunAll(cfg)
	if len(results) != 1 {
		t.Fatalf("expected only the results directory check, got %d", len(results))
	}
	if results[0].Name != "Results directory" || !results[0].Passed {
		t.Fatalf("unexpected result: %+v", results[0])
	}
	if Failed(results) {
		t.Fatal("expected no failures")
	}
}

func TestRunAllChecksDataDirWithHistory(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithHistory())
	cfg.Poll.ResultsFile = filepath.Join(t.TempDir(), "results.txt")

	results := RunAll(cfg)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[1].Passed {
		t.Fatalf("data dir was not created yet, expected failure: %+v", results[1])
	}
	if !Failed(results) {
		t.Fatal("expected Failed to report the missing data dir")
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	if Failed(RunAll(cfg)) {
		t.Fatal("expected all checks to pass once the data dir exists")
	}
}
