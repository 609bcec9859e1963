package metrics

import (
	"github.com/leongold/hades/internal/domain"
)

// SymbolStats is the per-symbol activity rollup.
type SymbolStats struct {
	ProfitTotal   float64
	ExecCount     int
	AvgExecPerDay float64
}

// SymbolRollup computes per-symbol profit and execution activity. Executions
// count one per position here (the open leg only); the general report section
// counts both legs. AvgExecPerDay divides by the distinct traded-day count
// across ALL positions, not the symbol's own days. That cross-symbol
// denominator is intentional and must not change.
//
// Returns ErrEmptyInput for an empty sequence.
func SymbolRollup(positions []domain.EnrichedPosition) (map[string]*SymbolStats, error) {
	if len(positions) == 0 {
		return nil, ErrEmptyInput
	}

	tradedDays := make(map[calendarDay]struct{})
	stats := make(map[string]*SymbolStats)

	for _, p := range positions {
		tradedDays[dayOf(p.OpenTime)] = struct{}{}

		s := stats[p.Symbol]
		if s == nil {
			s = &SymbolStats{}
			stats[p.Symbol] = s
		}
		s.ProfitTotal += p.Profit
		s.ExecCount++
	}

	daysN := len(tradedDays)
	for _, s := range stats {
		s.AvgExecPerDay = float64(s.ExecCount) / float64(daysN)
	}

	return stats, nil
}
