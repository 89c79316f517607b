package election_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"statbook/internal/election"
)

func repeat(name string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = name
	}
	return out
}

func TestTallyPicksPlurality(t *testing.T) {
	var names []string
	names = append(names, repeat("A", 10)...)
	names = append(names, repeat("B", 20)...)
	names = append(names, repeat("C", 5)...)

	result, err := election.Tally(names)
	if err != nil {
		t.Fatalf("Tally: %v", err)
	}
	if result.Winner != "B" {
		t.Fatalf("winner = %q, want B", result.Winner)
	}
	if result.TotalVotes != 35 {
		t.Fatalf("total = %d, want 35", result.TotalVotes)
	}
	sum := 0
	for _, c := range result.Candidates {
		sum += c.Votes
	}
	if sum != result.TotalVotes {
		t.Fatalf("candidate votes sum to %d, want %d", sum, result.TotalVotes)
	}
}

func TestTallyTieGoesToFirstSeen(t *testing.T) {
	names := []string{"B", "A", "A", "B"}
	result, err := election.Tally(names)
	if err != nil {
		t.Fatalf("Tally: %v", err)
	}
	if result.Winner != "B" {
		t.Fatalf("winner = %q, want first-seen B", result.Winner)
	}
	if result.Candidates[0].Name != "B" || result.Candidates[1].Name != "A" {
		t.Fatalf("expected first-seen order, got %+v", result.Candidates)
	}
}

func TestTallyIsCaseSensitive(t *testing.T) {
	result, err := election.Tally([]string{"gomez", "Gomez", "Gomez"})
	if err != nil {
		t.Fatalf("Tally: %v", err)
	}
	if len(result.Candidates) != 2 || result.Winner != "Gomez" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestTallyEmpty(t *testing.T) {
	if _, err := election.Tally(nil); !errors.Is(err, election.ErrNoVotes) {
		t.Fatalf("expected ErrNoVotes, got %v", err)
	}
}

func TestResultReport(t *testing.T) {
	result, err := election.Tally([]string{"Rogers", "Gomez", "Gomez", "Brentwood", "Gomez", "Higgins"})
	if err != nil {
		t.Fatalf("Tally: %v", err)
	}
	want := "Election Results\n" +
		"-------------------------\n" +
		"Total Votes: 6\n" +
		"-------------------------\n" +
		"Rogers: 16.67% (1)\n" +
		"Gomez: 50.0% (3)\n" +
		"Brentwood: 16.67% (1)\n" +
		"Higgins: 16.67% (1)\n" +
		"-------------------------\n" +
		"Winner: Gomez\n" +
		"-------------------------\n"
	if got := result.Report(); got != want {
		t.Fatalf("unexpected report:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteReportReplacesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), election.DefaultResultsFile)
	if err := os.WriteFile(path, []byte("old results"), 0o644); err != nil {
		t.Fatal(err)
	}
	result, err := election.Tally([]string{"Gomez"})
	if err != nil {
		t.Fatalf("Tally: %v", err)
	}
	if err := election.WriteReport(path, result); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != result.Report() {
		t.Fatalf("file content = %q, want report", got)
	}
}
