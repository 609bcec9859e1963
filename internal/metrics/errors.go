package metrics

import "errors"

// Computation errors. All of them are fatal for the run: the analysis is a
// batch report and partial results are never emitted.
var (
	// ErrEmptyInput is returned when a computation is given zero positions.
	ErrEmptyInput = errors.New("no positions supplied")

	// ErrUndefinedRatio is returned when the sharpe ratio denominator is
	// zero, including the single-monthly-bucket case. Surfaced as an error
	// so callers can report it explicitly instead of a silent Inf or NaN.
	ErrUndefinedRatio = errors.New("sharpe ratio undefined: excess std dev is zero")

	// ErrNoTradesInCategory is returned when the winning or losing category
	// holds no trades, which would make that category's average undefined.
	ErrNoTradesInCategory = errors.New("no trades in category")
)
