package testsupport

import (
	"path/filepath"
	"testing"

	"statbook/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with a unique temp data directory per
// test. It applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(t.TempDir(), "data")
	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithHistory enables run history on the test config.
func WithHistory() ConfigOption {
	return func(c *config.Config) {
		c.History.Enabled = true
	}
}
