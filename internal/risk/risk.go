package risk

import (
	"math"
	"sort"

	"github.com/wonny/kabu/internal/contracts"
)

// riskFreeRate is the annual risk-free rate, in percent, subtracted in
// per-symbol Sharpe ratios.
const riskFreeRate = 0.5

// =============================================================================
// Per-symbol risk metrics
// =============================================================================

// Analyze computes the risk profile of a symbol against a market proxy.
// Returns a DataInsufficientError when the symbol has no return history.
func Analyze(symbol string, series, market contracts.PriceSeries) (*contracts.RiskAnalysis, error) {
	returns := series.DailyReturns()
	if len(returns) == 0 {
		return nil, contracts.NewDataInsufficientError("risk", 2, len(series))
	}

	annualReturn := AnnualizedReturn(returns)
	volatility := AnnualizedVolatility(returns)

	sharpe := 0.0
	if volatility != 0 {
		sharpe = (annualReturn - riskFreeRate) / volatility
	}

	return &contracts.RiskAnalysis{
		Symbol:           symbol,
		Beta:             Beta(returns, market.DailyReturns()),
		MaxDrawdown:      MaxDrawdown(series),
		VaR95:            VaR95(returns),
		SharpeRatio:      sharpe,
		AnnualizedReturn: annualReturn,
		Volatility:       volatility,
	}, nil
}

// Beta measures sensitivity to the market proxy,
// Cov(asset, market) / Var(market). A zero-variance market yields 0.
func Beta(assetReturns, marketReturns []float64) float64 {
	n := len(assetReturns)
	if len(marketReturns) < n {
		n = len(marketReturns)
	}
	if n < 2 {
		return 0
	}

	// Align on the trailing window both series cover.
	asset := assetReturns[len(assetReturns)-n:]
	market := marketReturns[len(marketReturns)-n:]

	marketVar := Covariance(market, market)
	if marketVar == 0 {
		return 0
	}
	return Covariance(asset, market) / marketVar
}

// MaxDrawdown returns the largest peak-to-trough percentage decline in
// the series, as a positive percentage.
func MaxDrawdown(series contracts.PriceSeries) float64 {
	if len(series) == 0 {
		return 0
	}

	peak := series[0].Close
	var maxDD float64
	for _, p := range series {
		if p.Close > peak {
			peak = p.Close
		}
		if peak == 0 {
			continue
		}
		dd := (peak - p.Close) / peak * 100
		if dd > maxDD {
			maxDD = dd
		}
	}
	return maxDD
}

// VaR95 returns the absolute value of the 5th-percentile daily return,
// located by sorted-index truncation rather than interpolation.
func VaR95(returns []float64) float64 {
	if len(returns) == 0 {
		return 0
	}

	sorted := make([]float64, len(returns))
	copy(sorted, returns)
	sort.Float64s(sorted)

	idx := int(math.Floor(0.05 * float64(len(sorted))))
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return math.Abs(sorted[idx])
}
