package domain

// AnalysisSnapshot is the flattened form of one completed analysis run, as
// persisted by the analysis archive store. Corresponds to the analysis_runs
// table.
type AnalysisSnapshot struct {
	RunID       string // deterministic hash
	GeneratedAt int64  // unix ms

	// General
	Start            string // calendar date, YYYY-MM-DD
	End              string // calendar date, YYYY-MM-DD
	SymbolsN         int
	DaysN            int
	Profit           float64
	ExecN            int
	DailyExecN       float64
	DailyExecSymbolN float64

	// Winning trades
	WonN       int
	TotalWon   float64
	AverageWin float64

	// Losing trades
	LostN       int
	TotalLost   float64
	AverageLoss float64

	// Sharpe ratio
	RiskFreeMonthlyRate float64
	ExcessAverage       float64
	ExcessStdDev        float64
	SharpeRatio         float64

	// Per-symbol rollups
	SymbolToProfit   map[string]float64
	SymbolToExecN    map[string]uint32
	SymbolToExecAvgN map[string]float64
}
