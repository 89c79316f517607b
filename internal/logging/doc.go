// Package logging assembles structured slog loggers and formatting helpers used
// by the statbook commands.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so tally code can tag log lines
// with the current run ID. The package also provides a no-op logger for tests
// and wiring code that cannot fail.
//
// Reports go to stdout; loggers built here default to stderr so the two never
// interleave in piped output.
package logging
