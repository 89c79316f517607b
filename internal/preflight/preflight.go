package preflight

import (
	"path/filepath"

	"statbook/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all applicable preflight checks for the given config.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	// Results file directory (always checked)
	results = append(results, CheckDirectoryAccess("Results directory", resultsDir(cfg.Poll.ResultsFile)))

	// History store
	if cfg.History.Enabled {
		results = append(results, CheckDirectoryAccess("Data directory", cfg.Paths.DataDir))
	}

	return results
}

// Failed reports whether any result did not pass.
func Failed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return true
		}
	}
	return false
}

func resultsDir(resultsFile string) string {
	dir := filepath.Dir(resultsFile)
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return dir
}
