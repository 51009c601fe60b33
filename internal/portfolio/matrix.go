package portfolio

import (
	"github.com/wonny/kabu/internal/contracts"
	"github.com/wonny/kabu/internal/risk"
)

// =============================================================================
// Covariance / correlation matrices
// =============================================================================

// tradingDays is the annualization factor for daily statistics.
const tradingDays = 252

// alignReturns truncates every return series to the trailing length of
// the shortest one, so pairwise statistics compare the same window.
func alignReturns(returnSets [][]float64) [][]float64 {
	minLen := -1
	for _, r := range returnSets {
		if minLen < 0 || len(r) < minLen {
			minLen = len(r)
		}
	}
	if minLen <= 0 {
		minLen = 0
	}

	aligned := make([][]float64, len(returnSets))
	for i, r := range returnSets {
		aligned[i] = r[len(r)-minLen:]
	}
	return aligned
}

// CovarianceMatrix computes the pairwise sample covariance of daily
// return sets, annualized by the trading-day count.
func CovarianceMatrix(returnSets [][]float64) [][]float64 {
	aligned := alignReturns(returnSets)
	n := len(aligned)

	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		for j := 0; j <= i; j++ {
			cov := risk.Covariance(aligned[i], aligned[j]) * tradingDays
			matrix[i][j] = cov
			matrix[j][i] = cov
		}
	}
	return matrix
}

// CorrelationMatrix computes the pairwise correlation of the symbols'
// daily returns. Symmetric with a unit diagonal; a zero-variance pair
// degrades to the 0 sentinel instead of dividing by zero.
func CorrelationMatrix(symbols []string, seriesList []contracts.PriceSeries) *contracts.CorrelationMatrix {
	returnSets := make([][]float64, len(seriesList))
	for i, s := range seriesList {
		returnSets[i] = s.DailyReturns()
	}
	aligned := alignReturns(returnSets)

	n := len(aligned)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		matrix[i][i] = 1.0
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			corr := correlation(aligned[i], aligned[j])
			matrix[i][j] = corr
			matrix[j][i] = corr
		}
	}

	return &contracts.CorrelationMatrix{
		Symbols:              symbols,
		Matrix:               matrix,
		DiversificationScore: diversificationScore(matrix),
	}
}

// correlation normalizes the sample covariance by the product of the
// sample standard deviations.
func correlation(a, b []float64) float64 {
	denom := risk.StdDev(a) * risk.StdDev(b)
	if denom == 0 {
		return 0
	}
	return risk.Covariance(a, b) / denom
}

// diversificationScore maps the mean absolute off-diagonal correlation,
// averaged over unique pairs, to a 0-100 score.
func diversificationScore(matrix [][]float64) float64 {
	n := len(matrix)
	if n < 2 {
		return 100
	}

	var sum float64
	var pairs int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			c := matrix[i][j]
			if c < 0 {
				c = -c
			}
			sum += c
			pairs++
		}
	}

	score := (1 - sum/float64(pairs)) * 100
	if score < 0 {
		score = 0
	}
	return score
}
