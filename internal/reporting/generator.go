package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/leongold/hades/internal/domain"
	"github.com/leongold/hades/internal/idhash"
	"github.com/leongold/hades/internal/normalization"
	"github.com/leongold/hades/internal/storage"
)

// Generator produces analysis reports from stored position batches.
type Generator struct {
	batchStore          storage.PositionBatchStore
	riskFreeMonthlyRate float64
	now                 func() time.Time // Injectable clock for deterministic output
}

// NewGenerator creates a new report generator.
func NewGenerator(batchStore storage.PositionBatchStore, riskFreeMonthlyRate float64) *Generator {
	return &Generator{
		batchStore:          batchStore,
		riskFreeMonthlyRate: riskFreeMonthlyRate,
		now:                 func() time.Time { return time.Now().UTC() },
	}
}

// WithClock sets a custom clock function for deterministic output.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Generate loads every stored batch, enriches and orders the positions, and
// assembles the full report. Recomputation is cheap: a run either completes
// and produces one report or fails outright.
func (g *Generator) Generate(ctx context.Context) (*Report, error) {
	batches, err := g.batchStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load position batches: %w", err)
	}

	positions := normalization.EnrichBatches(batches)
	normalization.SortByOpenTime(positions)

	return Assemble(positions, g.riskFreeMonthlyRate)
}

// Snapshot flattens a report into its persisted archive form, stamped with
// the generator's clock.
func (g *Generator) Snapshot(r *Report) *domain.AnalysisSnapshot {
	generatedAt := g.now().UnixMilli()

	snapshot := &domain.AnalysisSnapshot{
		RunID:       idhash.ComputeRunID(r.General.Start, r.General.End, r.General.Profit, generatedAt),
		GeneratedAt: generatedAt,

		Start:            r.General.Start,
		End:              r.General.End,
		SymbolsN:         r.General.SymbolsN,
		DaysN:            r.General.DaysN,
		Profit:           r.General.Profit,
		ExecN:            r.General.ExecN,
		DailyExecN:       r.General.DailyExecN,
		DailyExecSymbolN: r.General.DailyExecSymbolN,

		WonN:       r.WinningTrades.WonN,
		TotalWon:   r.WinningTrades.TotalWon,
		AverageWin: r.WinningTrades.AverageWin,

		LostN:       r.LosingTrades.LostN,
		TotalLost:   r.LosingTrades.TotalLost,
		AverageLoss: r.LosingTrades.AverageLoss,

		RiskFreeMonthlyRate: r.SharpeRatio.US10YMonthlyYield,
		ExcessAverage:       r.SharpeRatio.ExcessAverage,
		ExcessStdDev:        r.SharpeRatio.ExcessStdDev,
		SharpeRatio:         r.SharpeRatio.SharpeRatio,

		SymbolToProfit:   make(map[string]float64, len(r.SymbolData.SymbolToProfit)),
		SymbolToExecN:    make(map[string]uint32, len(r.SymbolData.SymbolToExecN)),
		SymbolToExecAvgN: make(map[string]float64, len(r.SymbolData.SymbolToExecAvgN)),
	}

	for symbol, profit := range r.SymbolData.SymbolToProfit {
		snapshot.SymbolToProfit[symbol] = profit
	}
	for symbol, n := range r.SymbolData.SymbolToExecN {
		snapshot.SymbolToExecN[symbol] = uint32(n)
	}
	for symbol, avg := range r.SymbolData.SymbolToExecAvgN {
		snapshot.SymbolToExecAvgN[symbol] = avg
	}

	return snapshot
}
