package history

import (
	"time"

	"statbook/internal/election"
)

// Run is one recorded tally.
type Run struct {
	ID          string                    `json:"id"`
	Directory   string                    `json:"directory"`
	ResultsFile string                    `json:"results_file,omitempty"`
	TotalVotes  int                       `json:"total_votes"`
	Winner      string                    `json:"winner"`
	FileCount   int                       `json:"file_count"`
	CreatedAt   time.Time                 `json:"created_at"`
	Candidates  []election.CandidateTally `json:"candidates,omitempty"`
}

// NewRun captures a tally result for recording.
func NewRun(directory, resultsFile string, fileCount int, result election.Result) Run {
	candidates := make([]election.CandidateTally, len(result.Candidates))
	copy(candidates, result.Candidates)
	return Run{
		Directory:   directory,
		ResultsFile: resultsFile,
		TotalVotes:  result.TotalVotes,
		Winner:      result.Winner,
		FileCount:   fileCount,
		Candidates:  candidates,
	}
}
