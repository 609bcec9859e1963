package reporting

// Report is the full analysis artifact produced from one run over the
// complete enriched position sequence. It is built once per run and never
// mutated; JSON field names are part of the output contract.
type Report struct {
	General       GeneralSection       `json:"general"`
	WinningTrades WinningTradesSection `json:"winning_trades"`
	LosingTrades  LosingTradesSection  `json:"losing_trades"`
	SharpeRatio   SharpeRatioSection   `json:"sharpe_ratio"`
	SymbolData    SymbolDataSection    `json:"symbol_data"`
}

// GeneralSection holds the date range and activity counters.
//
// ExecN counts both legs of every position (open and close), so it is twice
// the position count. The per-symbol rollup counts the open leg only; the two
// conventions coexist on purpose and must not be unified.
type GeneralSection struct {
	Start            string  `json:"start"` // first position's open date
	End              string  `json:"end"`   // last position's close date, under open-time ordering
	SymbolsN         int     `json:"symbols_n"`
	DaysN            int     `json:"days_n"`
	Profit           float64 `json:"profit"`
	ExecN            int     `json:"exec_n"`
	DailyExecN       float64 `json:"daily_exec_n"`
	DailyExecSymbolN float64 `json:"daily_exec_symbol_n"`
}

// WinningTradesSection summarizes positions with strictly positive profit.
type WinningTradesSection struct {
	TotalWon   float64 `json:"total_won"`
	WonN       int     `json:"won_n"`
	AverageWin float64 `json:"average_win"`
}

// LosingTradesSection summarizes positions with strictly negative profit.
type LosingTradesSection struct {
	TotalLost   float64 `json:"total_lost"`
	LostN       int     `json:"lost_n"`
	AverageLoss float64 `json:"average_loss"`
}

// SharpeRatioSection holds the risk-adjusted return computation.
type SharpeRatioSection struct {
	US10YMonthlyYield float64 `json:"us10y_monthly_yield"`
	ExcessAverage     float64 `json:"excess_average"`
	ExcessStdDev      float64 `json:"excess_std_dev"`
	SharpeRatio       float64 `json:"sharpe_ratio"`
}

// SymbolDataSection holds the per-symbol rollups, keyed by symbol.
type SymbolDataSection struct {
	SymbolToProfit   map[string]float64 `json:"symbol_to_profit"`
	SymbolToExecN    map[string]int     `json:"symbol_to_exec_n"`
	SymbolToExecAvgN map[string]float64 `json:"symbol_to_exec_avg_n"`
}
