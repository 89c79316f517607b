// Package cli holds the Cobra plumbing shared by the paragraph and poll
// binaries.
//
// It centralizes configuration resolution behind the persistent --config flag,
// lazily builds the slog logger, provides the config init/validate
// subcommands, and renders reports as text, go-pretty tables, or JSON. Each
// binary keeps only its own commands in cmd/ and leaves the wiring here.
package cli
