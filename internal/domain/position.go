package domain

import "time"

// Position is one closed round-trip trade as recorded by the trading bot.
// Timestamps are UTC epoch seconds; profit is in currency units, not percent.
// A position is immutable once read.
type Position struct {
	OpenBSI        float64
	OpenPrice      float64
	OpenTimestamp  int64
	CloseBSI       float64
	ClosePrice     float64
	CloseTimestamp int64
	Profit         float64
}

// PositionBatch groups the positions the bot reported for one symbol together
// with the batch-level metadata emitted alongside them. StdDev is the
// historical volatility figure for the batch; it applies to every position in
// the batch.
type PositionBatch struct {
	BatchID   string // deterministic hash
	Symbol    string
	StdDev    float64
	Positions []Position
}

// EnrichedPosition carries a Position plus symbol and volatility context and
// timezone-normalized open/close times. The epoch timestamps remain the
// source of truth; OpenTime and CloseTime are derived views and are never
// independently mutated.
type EnrichedPosition struct {
	Position

	Symbol    string
	StdDev    float64
	OpenTime  time.Time
	CloseTime time.Time
}
