// Package preflight provides readiness checks for the filesystem paths the
// tools write to.
//
// "config validate" runs RunAll and prints each result so a broken data
// directory or an unwritable results location shows up before a tally runs.
// Each check is gated by its config toggle; the history directory is only
// checked when history recording is enabled.
package preflight
