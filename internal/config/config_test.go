package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"statbook/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("STATBOOK_LOG_LEVEL", "")
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantData := filepath.Join(tempHome, ".local", "share", "statbook")
	if cfg.Paths.DataDir != wantData {
		t.Fatalf("unexpected data dir: got %q want %q", cfg.Paths.DataDir, wantData)
	}
	if cfg.HistoryPath() != filepath.Join(wantData, "history.db") {
		t.Fatalf("unexpected history path: %q", cfg.HistoryPath())
	}
	if cfg.Poll.ResultsFile != "election_results.txt" {
		t.Fatalf("results file should stay relative, got %q", cfg.Poll.ResultsFile)
	}
	if cfg.Poll.CandidateColumn != 2 {
		t.Fatalf("unexpected candidate column: %d", cfg.Poll.CandidateColumn)
	}
	if cfg.Poll.FilePattern != "*.csv" {
		t.Fatalf("unexpected file pattern: %q", cfg.Poll.FilePattern)
	}
	if cfg.Paragraph.SentenceDelimiter != ". " {
		t.Fatalf("unexpected sentence delimiter: %q", cfg.Paragraph.SentenceDelimiter)
	}
	if cfg.Paragraph.KeepDuplicateSentences {
		t.Fatal("expected duplicate sentences to collapse by default")
	}
	if cfg.History.Enabled {
		t.Fatal("expected history disabled by default")
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if len(cfg.Logging.Output) != 1 || cfg.Logging.Output[0] != "stderr" {
		t.Fatalf("expected stderr log output by default, got %q", cfg.Logging.Output)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	info, err := os.Stat(cfg.Paths.DataDir)
	if err != nil {
		t.Fatalf("expected data dir to exist: %v", err)
	}
	if !info.IsDir() {
		t.Fatalf("expected %q to be directory", cfg.Paths.DataDir)
	}
}

func TestLoadCustomPath(t *testing.T) {
	t.Setenv("STATBOOK_LOG_LEVEL", "")
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "statbook.toml")

	type payload struct {
		Paths struct {
			DataDir string `toml:"data_dir"`
		} `toml:"paths"`
		Poll struct {
			ResultsFile     string `toml:"results_file"`
			CandidateColumn int    `toml:"candidate_column"`
		} `toml:"poll"`
		Logging struct {
			Format string   `toml:"format"`
			Level  string   `toml:"level"`
			Output []string `toml:"output"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Paths.DataDir = filepath.Join(tempDir, "data")
	custom.Poll.ResultsFile = "  out/results.txt  "
	custom.Poll.CandidateColumn = 4
	custom.Logging.Format = "JSON"
	custom.Logging.Level = "Debug"
	custom.Logging.Output = []string{" stdout ", "", "~/logs/statbook.log"}

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if cfg.Paths.DataDir != filepath.Join(tempDir, "data") {
		t.Fatalf("unexpected data dir: %q", cfg.Paths.DataDir)
	}
	if cfg.Poll.ResultsFile != "out/results.txt" {
		t.Fatalf("expected trimmed results file, got %q", cfg.Poll.ResultsFile)
	}
	if cfg.Poll.CandidateColumn != 4 {
		t.Fatalf("unexpected candidate column: %d", cfg.Poll.CandidateColumn)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected normalized logging settings, got %+v", cfg.Logging)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("home dir: %v", err)
	}
	wantOutput := []string{"stdout", filepath.Join(home, "logs", "statbook.log")}
	if strings.Join(cfg.Logging.Output, "|") != strings.Join(wantOutput, "|") {
		t.Fatalf("logging.output = %q, want %q", cfg.Logging.Output, wantOutput)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	payload := "[poll]\ncandidate_colum = 3\n"
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, _, err := config.Load(path)
	if err == nil {
		t.Fatal("expected unknown key to be rejected")
	}
	if !strings.Contains(err.Error(), "candidate_colum") {
		t.Fatalf("error %q does not name the unknown key", err)
	}
}

func TestLoadEnvLogLevelOverride(t *testing.T) {
	t.Setenv("STATBOOK_LOG_LEVEL", "ERROR")
	path := filepath.Join(t.TempDir(), "missing.toml")

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected missing config to report exists=false")
	}
	if cfg.Logging.Level != "error" {
		t.Fatalf("expected env level, got %q", cfg.Logging.Level)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{
			name:   "negative column",
			mutate: func(c *config.Config) { c.Poll.CandidateColumn = -1 },
			want:   "candidate_column",
		},
		{
			name:   "pattern with separator",
			mutate: func(c *config.Config) { c.Poll.FilePattern = "sub/*.csv" },
			want:   "file_pattern",
		},
		{
			name:   "malformed pattern",
			mutate: func(c *config.Config) { c.Poll.FilePattern = "[" },
			want:   "file_pattern",
		},
		{
			name:   "blank delimiter",
			mutate: func(c *config.Config) { c.Paragraph.SentenceDelimiter = "  " },
			want:   "sentence_delimiter",
		},
		{
			name:   "unknown level",
			mutate: func(c *config.Config) { c.Logging.Level = "verbose" },
			want:   "logging.level",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error mentioning %q, got %v", tc.want, err)
			}
		})
	}
}

func TestCreateSampleIsLoadable(t *testing.T) {
	t.Setenv("STATBOOK_LOG_LEVEL", "")
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.Poll.ResultsFile != "election_results.txt" {
		t.Fatalf("unexpected sample results file: %q", cfg.Poll.ResultsFile)
	}
}
