package indicator

import (
	"math"

	"github.com/wonny/kabu/internal/contracts"
)

// =============================================================================
// ATR (Average True Range)
// =============================================================================

const (
	atrPeriod         = 14
	atrStopMultiplier = 2.0
)

// ATR computes the average true range at the latest point of a series.
// The initial ATR is the mean of the first `period` true ranges; later
// values use Wilder smoothing, atr = (atr*(period-1) + tr) / period.
//
// Returns a DataInsufficientError only for an empty series.
func ATR(series contracts.PriceSeries) (*contracts.ATRResult, error) {
	if len(series) == 0 {
		return nil, contracts.NewDataInsufficientError("atr", 1, 0)
	}

	ranges := trueRanges(series)

	seed := atrPeriod
	if len(ranges) < seed {
		seed = len(ranges)
	}

	var atr float64
	for _, tr := range ranges[:seed] {
		atr += tr
	}
	atr /= float64(seed)

	for _, tr := range ranges[seed:] {
		atr = (atr*(atrPeriod-1) + tr) / atrPeriod
	}

	price := series.LastClose()
	var atrPercent float64
	if price != 0 {
		atrPercent = atr / price * 100
	}

	return &contracts.ATRResult{
		ATR:          atr,
		ATRPercent:   atrPercent,
		Volatility:   classifyVolatility(atrPercent),
		StopLossLong: price - atrStopMultiplier*atr,
		StopLossShrt: price + atrStopMultiplier*atr,
	}, nil
}

// trueRanges computes the true range sequence for the series.
// TR = max(high-low, |high-prevClose|, |low-prevClose|); the first point
// has no previous close and uses the plain high-low range.
func trueRanges(series contracts.PriceSeries) []float64 {
	ranges := make([]float64, len(series))
	ranges[0] = series[0].High - series[0].Low

	for i := 1; i < len(series); i++ {
		prevClose := series[i-1].Close
		tr := series[i].High - series[i].Low
		if hc := math.Abs(series[i].High - prevClose); hc > tr {
			tr = hc
		}
		if lc := math.Abs(series[i].Low - prevClose); lc > tr {
			tr = lc
		}
		ranges[i] = tr
	}
	return ranges
}

// classifyVolatility buckets the ATR/price ratio.
func classifyVolatility(atrPercent float64) string {
	switch {
	case atrPercent > 5:
		return contracts.VolatilityVeryHigh
	case atrPercent > 3:
		return contracts.VolatilityHigh
	case atrPercent > 1.5:
		return contracts.VolatilityNormal
	case atrPercent > 0.8:
		return contracts.VolatilityLow
	default:
		return contracts.VolatilityVeryLow
	}
}
