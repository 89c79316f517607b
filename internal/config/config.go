package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"statbook/internal/fileutil"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths holds the data directory used for persistent state.
type Paths struct {
	DataDir string `toml:"data_dir"`
}

// Poll tunes how ballot files are found and read.
type Poll struct {
	// ResultsFile is written relative to the working directory unless absolute.
	ResultsFile     string `toml:"results_file"`
	CandidateColumn int    `toml:"candidate_column"`
	FilePattern     string `toml:"file_pattern"`
}

// Paragraph tunes sentence splitting.
type Paragraph struct {
	SentenceDelimiter      string `toml:"sentence_delimiter"`
	KeepDuplicateSentences bool   `toml:"keep_duplicate_sentences"`
}

// History toggles the SQLite run log.
type History struct {
	Enabled   bool `toml:"enabled"`
	ListLimit int  `toml:"list_limit"`
}

// Logging selects log format, level, and destinations.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	// Output lists "stderr", "stdout", or log file paths.
	Output []string `toml:"output"`
}

// Config is the decoded statbook.toml. Each table maps to one subsystem.
type Config struct {
	Paths     Paths     `toml:"paths"`
	Poll      Poll      `toml:"poll"`
	Paragraph Paragraph `toml:"paragraph"`
	History   History   `toml:"history"`
	Logging   Logging   `toml:"logging"`
}

// DefaultConfigPath is the absolute location of the per-user config file.
func DefaultConfigPath() (string, error) {
	return ExpandPath(defaultConfigPath)
}

// Load reads the config at path, or searches the default locations when path
// is empty. A missing file is not an error: defaults are used and exists is
// false. The returned path is where the config was read from, or where it
// would be created.
func Load(path string) (cfg *Config, resolved string, exists bool, err error) {
	resolved, exists, err = locate(path)
	if err != nil {
		return nil, "", false, err
	}

	loaded := Default()
	if exists {
		if err := decodeFile(resolved, &loaded); err != nil {
			return nil, "", false, err
		}
	}
	if err := loaded.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := loaded.Validate(); err != nil {
		return nil, "", false, err
	}
	return &loaded, resolved, exists, nil
}

// decodeFile rejects keys that do not map to a field so typos surface early.
func decodeFile(path string, into *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	decoder := toml.NewDecoder(file).DisallowUnknownFields()
	if err := decoder.Decode(into); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("parse config %s: %s", path, strict.String())
		}
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return fmt.Errorf("parse config %s:%d:%d: %w", path, row, col, err)
		}
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// locate resolves an explicit path as-is. Without one it prefers the
// per-user file, then ./statbook.toml.
func locate(path string) (string, bool, error) {
	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		exists, err := fileExists(expanded)
		return expanded, exists, err
	}

	userPath, err := ExpandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}
	for _, candidate := range []string{userPath, projectPath} {
		if ok, _ := fileExists(candidate); ok {
			return candidate, true, nil
		}
	}
	return userPath, false, nil
}

func fileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("stat config: %w", err)
	}
	return !info.IsDir(), nil
}

// EnsureDirectories creates the data directory used by the history store.
func (c *Config) EnsureDirectories() error {
	dir := strings.TrimSpace(c.Paths.DataDir)
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", dir, err)
	}
	return nil
}

// HistoryPath returns the SQLite database location for recorded tally runs.
func (c *Config) HistoryPath() string {
	return filepath.Join(c.Paths.DataDir, "history.db")
}

// ExpandPath resolves a leading "~" or "~/" against the home directory and
// returns an absolute, cleaned path. Empty input stays empty.
func ExpandPath(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	if value == "~" || strings.HasPrefix(value, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		value = filepath.Join(home, strings.TrimPrefix(value, "~"))
	}
	absolute, err := filepath.Abs(value)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", value, err)
	}
	return absolute, nil
}

func defaultDataDir() string {
	if base := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); base != "" {
		return filepath.Join(base, "statbook")
	}
	return defaultDataDirFallback
}

// CreateSample writes the commented sample config to path, creating parent
// directories as needed.
func CreateSample(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := fileutil.WriteFileAtomic(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
