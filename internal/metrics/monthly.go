package metrics

import (
	"github.com/leongold/hades/internal/domain"
)

// MonthlyProfits buckets positions by contiguous runs of the same calendar
// month of their open time and sums profit per run. This is a chronological
// walk, not a per-month grouping: a new bucket starts whenever the open-time
// month differs from the running bucket's month, so a month seen again after
// an intervening different month forms a fresh bucket.
//
// Positions must already be sorted by open time ascending. Returns
// ErrEmptyInput for an empty sequence.
func MonthlyProfits(positions []domain.EnrichedPosition) ([]float64, error) {
	if len(positions) == 0 {
		return nil, ErrEmptyInput
	}

	var results []float64
	currMonth := positions[0].OpenTime.Month()
	currSum := 0.0

	for _, p := range positions {
		month := p.OpenTime.Month()
		if month != currMonth {
			results = append(results, currSum)
			currMonth = month
			currSum = p.Profit
		} else {
			currSum += p.Profit
		}
	}

	results = append(results, currSum)
	return results, nil
}
