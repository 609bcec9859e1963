package metrics

import (
	"time"

	"github.com/leongold/hades/internal/domain"
)

// calendarDay identifies one distinct traded day in the report zone.
type calendarDay struct {
	Day   int
	Month time.Month
	Year  int
}

func dayOf(t time.Time) calendarDay {
	return calendarDay{Day: t.Day(), Month: t.Month(), Year: t.Year()}
}

// TradedDays counts the distinct (day, month, year) tuples across the open
// times of all positions.
func TradedDays(positions []domain.EnrichedPosition) int {
	days := make(map[calendarDay]struct{})
	for _, p := range positions {
		days[dayOf(p.OpenTime)] = struct{}{}
	}
	return len(days)
}
