package metrics

import (
	"fmt"

	"github.com/leongold/hades/internal/domain"
)

// OutcomeStats summarizes one side of the win/loss breakdown.
type OutcomeStats struct {
	Count   int
	Total   float64
	Average float64
}

// Outcomes holds both sides of the breakdown.
type Outcomes struct {
	Winning OutcomeStats
	Losing  OutcomeStats
}

// ClassifyOutcomes partitions positions into winning (profit > 0) and losing
// (profit < 0) sets and computes count, total and average for each. A
// position with exactly zero profit belongs to neither set.
//
// Returns ErrNoTradesInCategory if either category is empty, so a division
// by zero never reaches the averages.
func ClassifyOutcomes(positions []domain.EnrichedPosition) (*Outcomes, error) {
	var out Outcomes
	for _, p := range positions {
		switch {
		case p.Profit > 0.0:
			out.Winning.Count++
			out.Winning.Total += p.Profit
		case p.Profit < 0.0:
			out.Losing.Count++
			out.Losing.Total += p.Profit
		}
	}

	if out.Winning.Count == 0 {
		return nil, fmt.Errorf("winning trades: %w", ErrNoTradesInCategory)
	}
	if out.Losing.Count == 0 {
		return nil, fmt.Errorf("losing trades: %w", ErrNoTradesInCategory)
	}

	out.Winning.Average = out.Winning.Total / float64(out.Winning.Count)
	out.Losing.Average = out.Losing.Total / float64(out.Losing.Count)
	return &out, nil
}
