package reporting

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// RenderText renders the human-readable console summary. Numeric values are
// rounded to 3 decimal places for display only; the JSON artifact keeps full
// precision. Symbols are listed by profit descending.
func RenderText(r *Report) string {
	var sb strings.Builder

	sb.WriteString("\ngeneral data:\n")
	sb.WriteString(fmt.Sprintf("\tstart: %s\n", r.General.Start))
	sb.WriteString(fmt.Sprintf("\tend: %s\n", r.General.End))
	sb.WriteString(fmt.Sprintf("\ttraded symbols: %d\n", r.General.SymbolsN))
	sb.WriteString(fmt.Sprintf("\ttraded days: %d\n", r.General.DaysN))
	sb.WriteString(fmt.Sprintf("\tprofit: %.3f\n", r.General.Profit))
	sb.WriteString(fmt.Sprintf("\tnumber of executions: %d\n", r.General.ExecN))
	sb.WriteString(fmt.Sprintf("\taverage daily number of executions: %.0f\n", r.General.DailyExecN))
	sb.WriteString(fmt.Sprintf("\taverage daily number of executions per symbol: %.3f\n\n", r.General.DailyExecSymbolN))

	sb.WriteString("winning trades:\n")
	sb.WriteString(fmt.Sprintf("\tsum: %.3f\n", r.WinningTrades.TotalWon))
	sb.WriteString(fmt.Sprintf("\tn: %d\n", r.WinningTrades.WonN))
	sb.WriteString(fmt.Sprintf("\taverage: %.3f\n\n", r.WinningTrades.AverageWin))

	sb.WriteString("losing trades:\n")
	sb.WriteString(fmt.Sprintf("\tsum: %.3f\n", r.LosingTrades.TotalLost))
	sb.WriteString(fmt.Sprintf("\tn: %d\n", r.LosingTrades.LostN))
	sb.WriteString(fmt.Sprintf("\taverage: %.3f\n\n", r.LosingTrades.AverageLoss))

	sb.WriteString("sharpe ratio:\n")
	sb.WriteString(fmt.Sprintf("\tUS10Y monthly yield: %s\n", strconv.FormatFloat(r.SharpeRatio.US10YMonthlyYield, 'g', -1, 64)))
	sb.WriteString(fmt.Sprintf("\texcess profits average: %.3f\n", r.SharpeRatio.ExcessAverage))
	sb.WriteString(fmt.Sprintf("\texcess profits std dev: %.3f\n", r.SharpeRatio.ExcessStdDev))
	sb.WriteString(fmt.Sprintf("\tsharpe ratio: %.3f / %.3f = %.3f\n\n",
		r.SharpeRatio.ExcessAverage, r.SharpeRatio.ExcessStdDev, r.SharpeRatio.SharpeRatio))

	sb.WriteString("symbol data:\n")
	for i, symbol := range symbolsByProfit(r.SymbolData) {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("\t%s:\n", symbol))
		sb.WriteString(fmt.Sprintf("\t\tprofit: %.3f\n", r.SymbolData.SymbolToProfit[symbol]))
		sb.WriteString(fmt.Sprintf("\t\texec_n: %d\n", r.SymbolData.SymbolToExecN[symbol]))
		sb.WriteString(fmt.Sprintf("\t\tdaily_n: %.3f", r.SymbolData.SymbolToExecAvgN[symbol]))
	}
	sb.WriteString("\n")

	return sb.String()
}

// symbolsByProfit orders symbols by profit descending, symbol ascending on
// ties for deterministic output.
func symbolsByProfit(data SymbolDataSection) []string {
	symbols := make([]string, 0, len(data.SymbolToProfit))
	for symbol := range data.SymbolToProfit {
		symbols = append(symbols, symbol)
	}

	sort.Slice(symbols, func(i, j int) bool {
		pi, pj := data.SymbolToProfit[symbols[i]], data.SymbolToProfit[symbols[j]]
		if pi != pj {
			return pi > pj
		}
		return symbols[i] < symbols[j]
	})

	return symbols
}
