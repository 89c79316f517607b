package election

import "statbook/internal/textutil"

// CandidateTally is one candidate's share of the vote.
type CandidateTally struct {
	Name    string  `json:"name"`
	Votes   int     `json:"votes"`
	Percent float64 `json:"percent"`
}

// RoundedPercent is Percent rounded to two decimals for display.
func (c CandidateTally) RoundedPercent() float64 {
	return textutil.Round(c.Percent, 2)
}

// Result is the outcome of a tally.
type Result struct {
	TotalVotes int              `json:"total_votes"`
	Candidates []CandidateTally `json:"candidates"`
	Winner     string           `json:"winner"`
}

// Tally counts the votes for each distinct name. Candidates keep the order in
// which they first appear in names. The winner is the first candidate to reach
// the highest count, so ties go to whoever appeared first.
func Tally(names []string) (Result, error) {
	if len(names) == 0 {
		return Result{}, ErrNoVotes
	}

	counts := make(map[string]int)
	var order []string
	for _, name := range names {
		if _, ok := counts[name]; !ok {
			order = append(order, name)
		}
		counts[name]++
	}

	total := len(names)
	result := Result{
		TotalVotes: total,
		Candidates: make([]CandidateTally, 0, len(order)),
	}
	highest := 0
	for _, name := range order {
		votes := counts[name]
		if votes > highest {
			highest = votes
			result.Winner = name
		}
		result.Candidates = append(result.Candidates, CandidateTally{
			Name:    name,
			Votes:   votes,
			Percent: float64(votes) / float64(total) * 100,
		})
	}
	return result, nil
}
