package normalization

import (
	"errors"
	"sort"

	"github.com/leongold/hades/internal/domain"
)

// ErrInvalidOrdering is returned when positions are not ordered by open time.
var ErrInvalidOrdering = errors.New("positions are not ordered by open time")

// SortByOpenTime orders positions by open timestamp ascending. The sort is
// stable, so positions opened at the same instant keep their input order.
func SortByOpenTime(positions []domain.EnrichedPosition) {
	sort.SliceStable(positions, func(i, j int) bool {
		return positions[i].OpenTimestamp < positions[j].OpenTimestamp
	})
}

// ValidateOrdering checks that positions are ordered by open timestamp
// ascending (ties allowed). Returns ErrInvalidOrdering if not.
func ValidateOrdering(positions []domain.EnrichedPosition) error {
	for i := 1; i < len(positions); i++ {
		if positions[i-1].OpenTimestamp > positions[i].OpenTimestamp {
			return ErrInvalidOrdering
		}
	}
	return nil
}
