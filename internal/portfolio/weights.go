package portfolio

import (
	"math"

	"github.com/wonny/kabu/internal/contracts"
	"github.com/wonny/kabu/internal/risk"
)

// =============================================================================
// Weight allocation
// =============================================================================

// Allocate builds portfolio weights for the symbols using the given
// method and fills in the aggregate return/risk statistics.
//
// MIN_VARIANCE is a documented simplification: true minimum-variance
// construction needs quadratic programming, and this proxy returns
// equal weights while keeping the method tag. Kept for behavioral
// compatibility with the established analysis output.
//
// Returns a DataInsufficientError for an empty symbol list.
func Allocate(method contracts.WeightingMethod, symbols []string, seriesList []contracts.PriceSeries) (*contracts.PortfolioWeights, error) {
	if len(symbols) == 0 || len(seriesList) != len(symbols) {
		return nil, contracts.NewDataInsufficientError("portfolio", 1, len(symbols))
	}

	returnSets := make([][]float64, len(seriesList))
	expected := make([]float64, len(seriesList))
	for i, s := range seriesList {
		returnSets[i] = s.DailyReturns()
		expected[i] = risk.AnnualizedReturn(returnSets[i])
	}

	var weights []float64
	switch method {
	case contracts.WeightMaxSharpe:
		weights = sharpeWeights(expected)
	case contracts.WeightMinVariance, contracts.WeightEqual:
		weights = equalWeights(len(symbols))
	default:
		weights = equalWeights(len(symbols))
		method = contracts.WeightEqual
	}

	portfolioReturn := weightedReturn(weights, expected)
	portfolioRisk := portfolioStdDev(weights, CovarianceMatrix(returnSets))

	sharpe := 0.0
	if portfolioRisk != 0 {
		sharpe = portfolioReturn / portfolioRisk
	}

	return &contracts.PortfolioWeights{
		Symbols:        symbols,
		Weights:        weights,
		ExpectedReturn: portfolioReturn,
		Risk:           portfolioRisk,
		SharpeRatio:    sharpe,
		Method:         method,
	}, nil
}

// equalWeights divides 100% evenly.
func equalWeights(n int) []float64 {
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 100.0 / float64(n)
	}
	return weights
}

// sharpeWeights allocates proportionally to positive expected returns.
// When no expected return is positive it falls back to equal weights.
func sharpeWeights(expected []float64) []float64 {
	var total float64
	for _, r := range expected {
		if r > 0 {
			total += r
		}
	}
	if total <= 0 {
		return equalWeights(len(expected))
	}

	weights := make([]float64, len(expected))
	for i, r := range expected {
		if r > 0 {
			weights[i] = r / total * 100
		}
	}
	return weights
}

// weightedReturn is the weight-percentage sum of expected returns.
func weightedReturn(weights, expected []float64) float64 {
	var sum float64
	for i, w := range weights {
		sum += w / 100 * expected[i]
	}
	return sum
}

// portfolioStdDev computes sqrt(w'Σw) with weights as fractions.
// Floating-point noise can push the variance slightly negative, which
// is floored at zero before the root.
func portfolioStdDev(weights []float64, cov [][]float64) float64 {
	var variance float64
	for i := range weights {
		for j := range weights {
			variance += (weights[i] / 100) * (weights[j] / 100) * cov[i][j]
		}
	}
	if variance < 0 {
		variance = 0
	}
	// Covariances are on daily-return fractions; scale to percent.
	return math.Sqrt(variance) * 100
}
