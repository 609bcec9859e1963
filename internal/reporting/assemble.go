package reporting

import (
	"fmt"

	"github.com/leongold/hades/internal/domain"
	"github.com/leongold/hades/internal/metrics"
)

// dateLayout formats the start/end calendar dates in the general section.
const dateLayout = "2006-01-02"

// Assemble combines enriched positions, already sorted ascending by open
// time, into the full analysis report.
//
// General.Profit is the sum of the monthly bucket values rather than a direct
// sum over positions (the two are equal; the bucket sum is the defined
// computation). End is the close date of the last position under open-time
// ordering, which is not necessarily the maximum close time.
//
// Any component failure aborts assembly; no partial report is returned.
func Assemble(positions []domain.EnrichedPosition, riskFreeMonthlyRate float64) (*Report, error) {
	if len(positions) == 0 {
		return nil, fmt.Errorf("assemble report: %w", metrics.ErrEmptyInput)
	}

	monthly, err := metrics.MonthlyProfits(positions)
	if err != nil {
		return nil, fmt.Errorf("monthly profits: %w", err)
	}

	outcomes, err := metrics.ClassifyOutcomes(positions)
	if err != nil {
		return nil, fmt.Errorf("trade outcomes: %w", err)
	}

	rollup, err := metrics.SymbolRollup(positions)
	if err != nil {
		return nil, fmt.Errorf("symbol rollup: %w", err)
	}

	risk, err := metrics.ComputeRiskStats(monthly, riskFreeMonthlyRate)
	if err != nil {
		return nil, fmt.Errorf("risk statistics: %w", err)
	}

	daysN := metrics.TradedDays(positions)
	symbolsN := len(rollup)
	execN := len(positions) * 2
	dailyExecN := float64(execN) / float64(daysN)

	profit := 0.0
	for _, m := range monthly {
		profit += m
	}

	symbolData := SymbolDataSection{
		SymbolToProfit:   make(map[string]float64, symbolsN),
		SymbolToExecN:    make(map[string]int, symbolsN),
		SymbolToExecAvgN: make(map[string]float64, symbolsN),
	}
	for symbol, s := range rollup {
		symbolData.SymbolToProfit[symbol] = s.ProfitTotal
		symbolData.SymbolToExecN[symbol] = s.ExecCount
		symbolData.SymbolToExecAvgN[symbol] = s.AvgExecPerDay
	}

	return &Report{
		General: GeneralSection{
			Start:            positions[0].OpenTime.Format(dateLayout),
			End:              positions[len(positions)-1].CloseTime.Format(dateLayout),
			SymbolsN:         symbolsN,
			DaysN:            daysN,
			Profit:           profit,
			ExecN:            execN,
			DailyExecN:       dailyExecN,
			DailyExecSymbolN: float64(symbolsN) / dailyExecN,
		},
		WinningTrades: WinningTradesSection{
			TotalWon:   outcomes.Winning.Total,
			WonN:       outcomes.Winning.Count,
			AverageWin: outcomes.Winning.Average,
		},
		LosingTrades: LosingTradesSection{
			TotalLost:   outcomes.Losing.Total,
			LostN:       outcomes.Losing.Count,
			AverageLoss: outcomes.Losing.Average,
		},
		SharpeRatio: SharpeRatioSection{
			US10YMonthlyYield: risk.RiskFreeMonthlyRate,
			ExcessAverage:     risk.ExcessAverage,
			ExcessStdDev:      risk.ExcessStdDev,
			SharpeRatio:       risk.SharpeRatio,
		},
		SymbolData: symbolData,
	}, nil
}
