package indicator

import (
	"math"

	"github.com/wonny/kabu/internal/contracts"
)

// =============================================================================
// Bollinger Bands
// =============================================================================

const (
	bollingerPeriod     = 20
	bollingerMultiplier = 2.0
)

// Bollinger computes the bands at the latest point of a series.
// Middle is SMA(20); upper/lower sit at ±2 rolling standard deviations,
// where the deviation is computed over the same trailing window with the
// window's own mean (population style, not EMA based).
//
// Returns a DataInsufficientError for an empty series. A series shorter
// than the window yields a zero-value sentinel result with signal NORMAL.
func Bollinger(series contracts.PriceSeries) (*contracts.BollingerBands, error) {
	if len(series) == 0 {
		return nil, contracts.NewDataInsufficientError("bollinger", bollingerPeriod, 0)
	}

	if len(series) < bollingerPeriod {
		return &contracts.BollingerBands{Signal: contracts.BandNormal}, nil
	}

	middle := SMA(series, bollingerPeriod)
	stdev := windowStdDev(series, bollingerPeriod, middle)

	upper := middle + bollingerMultiplier*stdev
	lower := middle - bollingerMultiplier*stdev
	price := series.LastClose()

	var bandwidth float64
	if middle != 0 {
		bandwidth = (upper - lower) / middle * 100
	}

	// A zero-height band puts the price at the midpoint.
	percentB := 50.0
	if upper != lower {
		percentB = (price - lower) / (upper - lower) * 100
	}

	return &contracts.BollingerBands{
		Upper:     upper,
		Middle:    middle,
		Lower:     lower,
		Bandwidth: bandwidth,
		PercentB:  percentB,
		Signal:    classifyBands(price, upper, lower, bandwidth),
	}, nil
}

// classifyBands maps the band state to a signal.
// Bandwidth checks take priority over breakout checks.
func classifyBands(price, upper, lower, bandwidth float64) string {
	switch {
	case bandwidth < 5:
		return contracts.BandSqueeze
	case bandwidth > 20:
		return contracts.BandExpansion
	case price > upper:
		return contracts.BandBreakoutUp
	case price < lower:
		return contracts.BandBreakoutDown
	default:
		return contracts.BandNormal
	}
}

// windowStdDev computes the population-style standard deviation of the
// trailing window closes around the given window mean.
func windowStdDev(series contracts.PriceSeries, period int, mean float64) float64 {
	var sumSq float64
	for _, p := range series[len(series)-period:] {
		diff := p.Close - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(period))
}
