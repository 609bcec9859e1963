package normalization

import (
	"errors"
	"testing"

	"github.com/leongold/hades/internal/domain"
)

func posAt(openTS int64, profit float64) domain.EnrichedPosition {
	return domain.EnrichedPosition{
		Position: domain.Position{OpenTimestamp: openTS, CloseTimestamp: openTS + 60, Profit: profit},
	}
}

func TestSortByOpenTime_Orders(t *testing.T) {
	positions := []domain.EnrichedPosition{posAt(300, 3), posAt(100, 1), posAt(200, 2)}

	SortByOpenTime(positions)

	for i, want := range []int64{100, 200, 300} {
		if positions[i].OpenTimestamp != want {
			t.Errorf("Position %d timestamp mismatch: got %d, want %d", i, positions[i].OpenTimestamp, want)
		}
	}
}

func TestSortByOpenTime_StableOnTies(t *testing.T) {
	positions := []domain.EnrichedPosition{posAt(100, 1), posAt(100, 2), posAt(50, 0)}

	SortByOpenTime(positions)

	if positions[0].Profit != 0 {
		t.Fatalf("Earliest position not first: got %f", positions[0].Profit)
	}
	if positions[1].Profit != 1 || positions[2].Profit != 2 {
		t.Errorf("Tied positions reordered: got %f, %f", positions[1].Profit, positions[2].Profit)
	}
}

func TestValidateOrdering_Sorted(t *testing.T) {
	positions := []domain.EnrichedPosition{posAt(100, 1), posAt(100, 2), posAt(200, 3)}

	if err := ValidateOrdering(positions); err != nil {
		t.Errorf("Expected nil error, got %v", err)
	}
}

func TestValidateOrdering_Unsorted(t *testing.T) {
	positions := []domain.EnrichedPosition{posAt(200, 1), posAt(100, 2)}

	if err := ValidateOrdering(positions); !errors.Is(err, ErrInvalidOrdering) {
		t.Errorf("Expected ErrInvalidOrdering, got %v", err)
	}
}

func TestValidateOrdering_Empty(t *testing.T) {
	if err := ValidateOrdering(nil); err != nil {
		t.Errorf("Expected nil error, got %v", err)
	}
}
