package election

import (
	"fmt"
	"strings"

	"statbook/internal/fileutil"
	"statbook/internal/textutil"
)

// DefaultResultsFile is written to the working directory after a tally.
const DefaultResultsFile = "election_results.txt"

const reportSpacer = "-------------------------\n"

// Report renders the plain-text results table.
func (r Result) Report() string {
	var b strings.Builder
	b.WriteString("Election Results\n")
	b.WriteString(reportSpacer)
	fmt.Fprintf(&b, "Total Votes: %d\n", r.TotalVotes)
	b.WriteString(reportSpacer)
	for _, c := range r.Candidates {
		fmt.Fprintf(&b, "%s: %s%% (%d)\n", c.Name, textutil.FormatDecimal(c.RoundedPercent()), c.Votes)
	}
	b.WriteString(reportSpacer)
	fmt.Fprintf(&b, "Winner: %s\n", r.Winner)
	b.WriteString(reportSpacer)
	return b.String()
}

// WriteReport writes the text report to path, replacing any previous results.
func WriteReport(path string, r Result) error {
	if strings.TrimSpace(path) == "" {
		path = DefaultResultsFile
	}
	if err := fileutil.WriteFileAtomic(path, []byte(r.Report()), 0o644); err != nil {
		return fmt.Errorf("write election results: %w", err)
	}
	return nil
}
