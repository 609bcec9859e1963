package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/leongold/hades/internal/domain"
)

func posInMonth(year int, month time.Month, day int, profit float64) domain.EnrichedPosition {
	open := time.Date(year, month, day, 10, 0, 0, 0, time.UTC)
	return domain.EnrichedPosition{
		Position: domain.Position{
			OpenTimestamp:  open.Unix(),
			CloseTimestamp: open.Add(time.Hour).Unix(),
			Profit:         profit,
		},
		Symbol:    "AAPL",
		OpenTime:  open,
		CloseTime: open.Add(time.Hour),
	}
}

func TestMonthlyProfits_Empty(t *testing.T) {
	_, err := MonthlyProfits(nil)
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Expected ErrEmptyInput, got %v", err)
	}
}

func TestMonthlyProfits_SingleMonth(t *testing.T) {
	positions := []domain.EnrichedPosition{
		posInMonth(2021, time.January, 4, 10.0),
		posInMonth(2021, time.January, 5, -2.5),
		posInMonth(2021, time.January, 6, 1.0),
	}

	got, err := MonthlyProfits(positions)
	if err != nil {
		t.Fatalf("MonthlyProfits failed: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("Expected 1 bucket, got %d", len(got))
	}
	if got[0] != 8.5 {
		t.Errorf("Bucket sum mismatch: got %f, want %f", got[0], 8.5)
	}
}

func TestMonthlyProfits_ConsecutiveMonths(t *testing.T) {
	positions := []domain.EnrichedPosition{
		posInMonth(2021, time.January, 4, 10.0),
		posInMonth(2021, time.January, 20, 2.0),
		posInMonth(2021, time.February, 1, -4.0),
		posInMonth(2021, time.March, 1, 7.0),
		posInMonth(2021, time.March, 15, 1.0),
	}

	got, err := MonthlyProfits(positions)
	if err != nil {
		t.Fatalf("MonthlyProfits failed: %v", err)
	}

	want := []float64{12.0, -4.0, 8.0}
	if len(got) != len(want) {
		t.Fatalf("Expected %d buckets, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Bucket %d mismatch: got %f, want %f", i, got[i], want[i])
		}
	}
}

func TestMonthlyProfits_MonthSeenAgainStartsNewBucket(t *testing.T) {
	// Contiguous-run bucketing: January in a later year is a fresh bucket,
	// not merged into the earlier January.
	positions := []domain.EnrichedPosition{
		posInMonth(2021, time.January, 4, 5.0),
		posInMonth(2021, time.February, 1, 3.0),
		posInMonth(2022, time.January, 3, 2.0),
	}

	got, err := MonthlyProfits(positions)
	if err != nil {
		t.Fatalf("MonthlyProfits failed: %v", err)
	}

	want := []float64{5.0, 3.0, 2.0}
	if len(got) != len(want) {
		t.Fatalf("Expected %d buckets, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Bucket %d mismatch: got %f, want %f", i, got[i], want[i])
		}
	}
}

func TestMonthlyProfits_SameMonthAcrossYearsMerges(t *testing.T) {
	// Bucketing compares month number only. December 2021 followed by
	// December 2022 with nothing between is one run.
	positions := []domain.EnrichedPosition{
		posInMonth(2021, time.December, 10, 5.0),
		posInMonth(2022, time.December, 10, 3.0),
	}

	got, err := MonthlyProfits(positions)
	if err != nil {
		t.Fatalf("MonthlyProfits failed: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("Expected 1 bucket, got %d", len(got))
	}
	if got[0] != 8.0 {
		t.Errorf("Bucket sum mismatch: got %f, want %f", got[0], 8.0)
	}
}

func TestMonthlyProfits_ConservesTotal(t *testing.T) {
	positions := []domain.EnrichedPosition{
		posInMonth(2021, time.January, 4, 1.25),
		posInMonth(2021, time.February, 1, -0.75),
		posInMonth(2021, time.March, 3, 2.5),
		posInMonth(2021, time.April, 7, -1.0),
	}

	buckets, err := MonthlyProfits(positions)
	if err != nil {
		t.Fatalf("MonthlyProfits failed: %v", err)
	}

	var bucketSum, positionSum float64
	for _, b := range buckets {
		bucketSum += b
	}
	for _, p := range positions {
		positionSum += p.Profit
	}

	if bucketSum != positionSum {
		t.Errorf("Bucket sum %f does not equal position sum %f", bucketSum, positionSum)
	}
}
