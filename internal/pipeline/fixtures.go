package pipeline

import (
	"context"

	"github.com/leongold/hades/internal/domain"
	"github.com/leongold/hades/internal/idhash"
	"github.com/leongold/hades/internal/storage"
)

// LoadFixtures populates the position store with demo data spanning three
// months, two symbols, and both winning and losing trades, so a full report
// (including a defined Sharpe ratio) can be generated without a results file.
func LoadFixtures(ctx context.Context, store storage.PositionBatchStore) error {
	batches := []*domain.PositionBatch{
		newFixtureBatch("AAPL", 1.8, []domain.Position{
			{
				OpenBSI: 0.62, OpenPrice: 129.41, OpenTimestamp: 1609772400, // 2021-01-04 15:00:00 UTC
				CloseBSI: 0.55, ClosePrice: 131.91, CloseTimestamp: 1609776000,
				Profit: 12.5,
			},
			{
				OpenBSI: 0.48, OpenPrice: 131.01, OpenTimestamp: 1609858800, // 2021-01-05 15:00:00 UTC
				CloseBSI: 0.51, ClosePrice: 130.36, CloseTimestamp: 1609862400,
				Profit: -3.25,
			},
			{
				OpenBSI: 0.71, OpenPrice: 134.14, OpenTimestamp: 1612191600, // 2021-02-01 15:00:00 UTC
				CloseBSI: 0.66, ClosePrice: 135.69, CloseTimestamp: 1612195200,
				Profit: 7.75,
			},
		}),
		newFixtureBatch("MSFT", 2.4, []domain.Position{
			{
				OpenBSI: 0.58, OpenPrice: 217.26, OpenTimestamp: 1609772400, // 2021-01-04 15:00:00 UTC
				CloseBSI: 0.53, ClosePrice: 218.06, CloseTimestamp: 1609776000,
				Profit: 4.0,
			},
			{
				OpenBSI: 0.44, OpenPrice: 239.65, OpenTimestamp: 1612278000, // 2021-02-02 15:00:00 UTC
				CloseBSI: 0.49, ClosePrice: 238.35, CloseTimestamp: 1612281600,
				Profit: -6.5,
			},
			{
				OpenBSI: 0.67, OpenPrice: 235.90, OpenTimestamp: 1614610800, // 2021-03-01 15:00:00 UTC
				CloseBSI: 0.60, ClosePrice: 237.70, CloseTimestamp: 1614614400,
				Profit: 9.0,
			},
		}),
		newFixtureBatch("AAPL", 2.1, []domain.Position{
			{
				OpenBSI: 0.52, OpenPrice: 125.23, OpenTimestamp: 1614697200, // 2021-03-02 15:00:00 UTC
				CloseBSI: 0.50, ClosePrice: 125.63, CloseTimestamp: 1614700800,
				Profit: 2.0,
			},
		}),
	}

	return store.InsertBulk(ctx, batches)
}

func newFixtureBatch(symbol string, stdDev float64, positions []domain.Position) *domain.PositionBatch {
	return &domain.PositionBatch{
		BatchID:   idhash.ComputeBatchID(symbol, stdDev, positions),
		Symbol:    symbol,
		StdDev:    stdDev,
		Positions: positions,
	}
}
