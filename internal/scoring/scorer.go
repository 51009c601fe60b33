package scoring

import (
	"math"

	"github.com/wonny/kabu/internal/contracts"
	"github.com/wonny/kabu/internal/indicator"
	"github.com/wonny/kabu/pkg/logger"
)

// baseline is the starting score for every horizon before rule deltas.
const baseline = 50.0

// Scorer derives short/medium/long term signals from a price series.
//
// Each horizon starts at 50 and a fixed, ordered rule list applies
// additive deltas, appending a reason per triggered rule. The final
// score is intentionally not clamped to [0,100]; clamping is a policy
// decision for consumers, not the scorer.
type Scorer struct {
	logger *logger.Logger
}

// NewScorer creates a new scorer
func NewScorer(log *logger.Logger) *Scorer {
	return &Scorer{
		logger: log,
	}
}

// Score evaluates all three horizons for a series.
func (s *Scorer) Score(symbol string, series contracts.PriceSeries) (short, medium, long contracts.HorizonScore) {
	ind := indicator.Snapshot(series)

	short = s.scoreShortTerm(series, ind)
	medium = s.scoreMediumTerm(series, ind)
	long = s.scoreLongTerm(series, ind)

	s.logger.WithFields(map[string]interface{}{
		"symbol": symbol,
		"short":  short.Score,
		"medium": medium.Score,
		"long":   long.Score,
	}).Debug("Scored horizons")

	return short, medium, long
}

// finish maps the accumulated score to its signal.
func finish(horizon contracts.Horizon, score float64, reasons []string) contracts.HorizonScore {
	return contracts.HorizonScore{
		Horizon: horizon,
		Signal:  contracts.SignalFromScore(score),
		Score:   score,
		Reasons: reasons,
	}
}

// returnOver computes the percentage return over the trailing `days`
// trading days, capped at the series start. Returns 0 when undefined.
func returnOver(series contracts.PriceSeries, days int) float64 {
	if len(series) < 2 {
		return 0
	}

	idx := len(series) - 1 - days
	if idx < 0 {
		idx = 0
	}

	base := series[idx].Close
	if base == 0 {
		return 0
	}
	return (series.LastClose() - base) / base * 100
}

// annualizedVolatility computes the annualized stdev of daily returns, in %.
func annualizedVolatility(series contracts.PriceSeries) float64 {
	returns := series.DailyReturns()
	if len(returns) < 2 {
		return 0
	}

	var sum float64
	for _, r := range returns {
		sum += r
	}
	mean := sum / float64(len(returns))

	var sumSq float64
	for _, r := range returns {
		diff := r - mean
		sumSq += diff * diff
	}
	stdev := math.Sqrt(sumSq / float64(len(returns)-1))

	return stdev * math.Sqrt(252) * 100
}
