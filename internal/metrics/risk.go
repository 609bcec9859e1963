package metrics

import "math"

// RiskStats summarizes the excess-return series behind the sharpe ratio.
type RiskStats struct {
	RiskFreeMonthlyRate float64
	ExcessAverage       float64
	ExcessStdDev        float64
	SharpeRatio         float64
}

// ComputeRiskStats derives excess returns (monthly profit minus the fixed
// risk-free monthly rate), their arithmetic mean and population standard
// deviation (divide by N, not N-1), and the sharpe ratio mean/stddev.
//
// Returns ErrEmptyInput for an empty series. Returns ErrUndefinedRatio when
// the standard deviation is zero: a single bucket, or identical excess
// values, leave the ratio undefined rather than producing Inf or NaN.
func ComputeRiskStats(monthlyProfits []float64, riskFreeMonthlyRate float64) (*RiskStats, error) {
	if len(monthlyProfits) == 0 {
		return nil, ErrEmptyInput
	}

	excess := make([]float64, len(monthlyProfits))
	for i, p := range monthlyProfits {
		excess[i] = p - riskFreeMonthlyRate
	}

	mean := computeMean(excess)
	stddev := computePopulationStddev(excess, mean)
	if stddev == 0 {
		return nil, ErrUndefinedRatio
	}

	return &RiskStats{
		RiskFreeMonthlyRate: riskFreeMonthlyRate,
		ExcessAverage:       mean,
		ExcessStdDev:        stddev,
		SharpeRatio:         mean / stddev,
	}, nil
}

// computeMean calculates the arithmetic mean of values.
func computeMean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// computePopulationStddev calculates population standard deviation
// (N denominator).
func computePopulationStddev(values []float64, mean float64) float64 {
	sumSq := 0.0
	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(values)))
}
