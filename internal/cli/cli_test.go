package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root, _ := NewRootCommand("tool", "test tool")
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), err
}

func TestConfigInitAndValidate(t *testing.T) {
	t.Setenv("STATBOOK_LOG_LEVEL", "")
	target := filepath.Join(t.TempDir(), "config.toml")

	out, err := runRoot(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, "Wrote sample configuration") {
		t.Fatalf("unexpected init output: %q", out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, err := runRoot(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected init to refuse overwriting without --overwrite")
	}
	if _, err := runRoot(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}

	out, err = runRoot(t, "--config", target, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	if !strings.Contains(out, "Configuration valid") || !strings.Contains(out, target) {
		t.Fatalf("unexpected validate output: %q", out)
	}
	if !strings.Contains(out, "Results directory") {
		t.Fatalf("expected preflight results in validate output: %q", out)
	}
}

func TestConfigValidateReportsErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[logging]\nlevel = \"loud\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("STATBOOK_LOG_LEVEL", "")
	_, err := runRoot(t, "--config", path, "config", "validate")
	if err == nil || !strings.Contains(err.Error(), "logging.level") {
		t.Fatalf("expected logging.level error, got %v", err)
	}
}

func TestContextCachesConfig(t *testing.T) {
	t.Setenv("STATBOOK_LOG_LEVEL", "")
	path := filepath.Join(t.TempDir(), "missing.toml")
	ctx := NewContext(&path)

	first, err := ctx.Config()
	if err != nil {
		t.Fatalf("Config: %v", err)
	}
	second, _ := ctx.Config()
	if first != second {
		t.Fatal("expected cached config instance")
	}
	if ctx.Logger() == nil || ctx.Logger() != ctx.Logger() {
		t.Fatal("expected cached logger instance")
	}
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"":      FormatText,
		"text":  FormatText,
		"TABLE": FormatTable,
		" json": FormatJSON,
	}
	for in, want := range tests {
		got, err := ParseFormat(in)
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseFormat(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := ParseFormat("yaml"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestFormatCount(t *testing.T) {
	if got := FormatCount(620100); got != "620,100" {
		t.Fatalf("FormatCount = %q", got)
	}
	if got := FormatCount(12); got != "12" {
		t.Fatalf("FormatCount = %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(50); got != "50.0%" {
		t.Fatalf("FormatPercent(50) = %q", got)
	}
	if got := FormatPercent(16.67); got != "16.67%" {
		t.Fatalf("FormatPercent(16.67) = %q", got)
	}
}

func TestRenderTablePadsRows(t *testing.T) {
	out := RenderTable([]string{"Candidate", "Votes"}, [][]string{{"Gomez", "3"}, {"Li"}}, []ColumnAlignment{AlignLeft, AlignRight})
	for _, want := range []string{"CANDIDATE", "VOTES", "Gomez", "Li"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
	if RenderTable(nil, nil, nil) != "" {
		t.Fatal("expected empty output without headers")
	}
}
