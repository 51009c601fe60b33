package indicator

import (
	"github.com/wonny/kabu/internal/contracts"
)

// =============================================================================
// RSI
// =============================================================================

// RSI returns the Relative Strength Index over the trailing `period` closes.
//
// The average gain/loss is a simple average over the trailing window,
// recomputed fresh per call, not a Wilder smoothed average carried across
// the series. Kept as-is for compatibility with the established output.
//
// Returns the 50 neutral sentinel when the series is too short, and 100
// when the average loss is exactly zero.
func RSI(series contracts.PriceSeries, period int) float64 {
	if period <= 0 || len(series) < period+1 {
		return 50
	}

	var gains, losses float64
	for i := len(series) - period; i < len(series); i++ {
		change := series[i].Close - series[i-1].Close
		if change > 0 {
			gains += change
		} else {
			losses += -change
		}
	}

	avgGain := gains / float64(period)
	avgLoss := losses / float64(period)

	if avgLoss == 0 {
		if avgGain == 0 {
			// Constant closes: no gain, no loss, neutral.
			return 50
		}
		return 100
	}

	rs := avgGain / avgLoss
	return 100 - (100 / (1 + rs))
}

// =============================================================================
// Stochastic Oscillator
// =============================================================================

const (
	stochKPeriod = 14
	stochDPeriod = 3
)

// StochasticOscillator computes %K and %D at the latest point of a series.
// %K = (close - lowestLow) / (highestHigh - lowestLow) * 100 over the
// trailing kPeriod; %D is the simple average of the last dPeriod %K values.
//
// Returns a DataInsufficientError only for an empty series, where the
// high/low range is undefined. A flat window yields the 50 midpoint.
func StochasticOscillator(series contracts.PriceSeries) (*contracts.Stochastic, error) {
	if len(series) == 0 {
		return nil, contracts.NewDataInsufficientError("stochastic", 1, 0)
	}

	k := percentK(series, len(series)-1)
	d := percentD(series, len(series)-1)

	signal := contracts.StochNeutral
	switch {
	case k > 80:
		signal = contracts.StochOverbought
	case k < 20:
		signal = contracts.StochOversold
	}

	return &contracts.Stochastic{
		K:         k,
		D:         d,
		Signal:    signal,
		Crossover: stochCrossover(series),
	}, nil
}

// percentK computes %K for the window ending at index end.
func percentK(series contracts.PriceSeries, end int) float64 {
	start := end - stochKPeriod + 1
	if start < 0 {
		start = 0
	}

	highest := series[start].High
	lowest := series[start].Low
	for _, p := range series[start+1 : end+1] {
		if p.High > highest {
			highest = p.High
		}
		if p.Low < lowest {
			lowest = p.Low
		}
	}

	if highest == lowest {
		// Flat window: close sits in the middle of a zero-height range.
		return 50
	}

	return (series[end].Close - lowest) / (highest - lowest) * 100
}

// percentD computes %D, the SMA of the trailing dPeriod %K values.
func percentD(series contracts.PriceSeries, end int) float64 {
	count := stochDPeriod
	if end+1 < count {
		count = end + 1
	}

	var sum float64
	for i := end - count + 1; i <= end; i++ {
		sum += percentK(series, i)
	}
	return sum / float64(count)
}

// stochCrossover detects a cross between the prior and current (%K,%D) pair.
func stochCrossover(series contracts.PriceSeries) string {
	if len(series) < 2 {
		return contracts.CrossNone
	}

	curr := len(series) - 1
	prev := curr - 1

	prevK, prevD := percentK(series, prev), percentD(series, prev)
	currK, currD := percentK(series, curr), percentD(series, curr)

	switch {
	case prevK <= prevD && currK > currD:
		return contracts.CrossGolden
	case prevK >= prevD && currK < currD:
		return contracts.CrossDead
	default:
		return contracts.CrossNone
	}
}
