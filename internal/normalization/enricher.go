package normalization

import (
	"github.com/leongold/hades/internal/domain"
)

// EnrichBatch attaches the batch-level symbol and volatility metadata to
// every position in the batch and derives the US Eastern open/close times
// from the epoch timestamps. Input order is preserved.
func EnrichBatch(b *domain.PositionBatch) []domain.EnrichedPosition {
	enriched := make([]domain.EnrichedPosition, len(b.Positions))
	for i, p := range b.Positions {
		enriched[i] = domain.EnrichedPosition{
			Position:  p,
			Symbol:    b.Symbol,
			StdDev:    b.StdDev,
			OpenTime:  NormalizeEpoch(p.OpenTimestamp),
			CloseTime: NormalizeEpoch(p.CloseTimestamp),
		}
	}
	return enriched
}

// EnrichBatches enriches every batch and concatenates the results in batch
// order. The caller is expected to sort the combined sequence by open time
// before any calendar bucketing.
func EnrichBatches(batches []*domain.PositionBatch) []domain.EnrichedPosition {
	total := 0
	for _, b := range batches {
		total += len(b.Positions)
	}

	enriched := make([]domain.EnrichedPosition, 0, total)
	for _, b := range batches {
		enriched = append(enriched, EnrichBatch(b)...)
	}
	return enriched
}
