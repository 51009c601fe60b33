package risk

import "math"

// =============================================================================
// Statistics utilities
// =============================================================================

// Mean returns the arithmetic mean, 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev returns the sample standard deviation (n-1 denominator),
// 0 when fewer than two values.
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := Mean(values)
	var sumSq float64
	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(values)-1))
}

// Covariance returns the sample covariance (n-1 denominator) of two
// equal-length slices, 0 when fewer than two pairs.
func Covariance(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n < 2 {
		return 0
	}

	meanA := Mean(a[:n])
	meanB := Mean(b[:n])

	var sum float64
	for i := 0; i < n; i++ {
		sum += (a[i] - meanA) * (b[i] - meanB)
	}
	return sum / float64(n-1)
}

// AnnualizedReturn compounds the mean daily return over 252 trading
// days, expressed as a percentage.
func AnnualizedReturn(dailyReturns []float64) float64 {
	if len(dailyReturns) == 0 {
		return 0
	}
	return (math.Pow(1+Mean(dailyReturns), 252) - 1) * 100
}

// AnnualizedVolatility is the sample stdev of daily returns scaled to a
// year, expressed as a percentage.
func AnnualizedVolatility(dailyReturns []float64) float64 {
	return StdDev(dailyReturns) * math.Sqrt(252) * 100
}
