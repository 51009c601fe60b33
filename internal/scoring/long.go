package scoring

import (
	"fmt"

	"github.com/wonny/kabu/internal/contracts"
)

// scoreLongTerm applies the months-to-a-year rule list.
// Rules, in order: price against the 200-day average (skipped while the
// average is the 0 sentinel), 1-year return beyond ±20%, 52-week range
// position, trend consistency across 90-day sub-periods.
func (s *Scorer) scoreLongTerm(series contracts.PriceSeries, ind contracts.IndicatorSet) contracts.HorizonScore {
	score := baseline
	reasons := []string{}
	price := series.LastClose()

	// Price against the 200-day average; sentinel means not yet meaningful.
	if ind.SMA200 != 0 {
		if price > ind.SMA200 {
			score += 20
			reasons = append(reasons, "price above 200-day average, long uptrend")
		} else if price < ind.SMA200 {
			score -= 20
			reasons = append(reasons, "price below 200-day average, long downtrend")
		}
	}

	// 1-year return beyond ±20%
	yearly := returnOver(series, 252)
	if yearly > 20 {
		score += 20
		reasons = append(reasons, fmt.Sprintf("strong 1-year return (%+.1f%%)", yearly))
	} else if yearly < -20 {
		score -= 20
		reasons = append(reasons, fmt.Sprintf("weak 1-year return (%+.1f%%)", yearly))
	}

	// Position within the 52-week range
	if pos, ok := rangePosition(series.Tail(252)); ok {
		if pos < 0.3 {
			score += 10
			reasons = append(reasons, "near 52-week low")
		} else if pos > 0.7 {
			score -= 10
			reasons = append(reasons, "near 52-week high")
		}
	}

	// Trend consistency across 90-day sub-periods
	switch trendConsistency(series) {
	case 1:
		score += 10
		reasons = append(reasons, "consistent uptrend across sub-periods")
	case -1:
		score -= 10
		reasons = append(reasons, "consistent downtrend across sub-periods")
	}

	return finish(contracts.HorizonLong, score, reasons)
}

// rangePosition returns where the latest close sits in the window's
// close range, 0 at the low and 1 at the high. Not defined for a flat
// or empty window.
func rangePosition(window contracts.PriceSeries) (float64, bool) {
	if len(window) == 0 {
		return 0, false
	}

	high := window[0].Close
	low := window[0].Close
	for _, p := range window[1:] {
		if p.Close > high {
			high = p.Close
		}
		if p.Close < low {
			low = p.Close
		}
	}

	if high == low {
		return 0, false
	}
	return (window.LastClose() - low) / (high - low), true
}

// trendConsistency splits the series into consecutive 90-day sub-periods
// and returns 1 (or -1) when at least 70% of them move the same way.
func trendConsistency(series contracts.PriceSeries) int {
	const subPeriod = 90

	var up, down, total int
	for start := 0; start+subPeriod <= len(series); start += subPeriod {
		first := series[start].Close
		last := series[start+subPeriod-1].Close
		total++
		if last > first {
			up++
		} else if last < first {
			down++
		}
	}

	if total == 0 {
		return 0
	}

	if float64(up)/float64(total) >= 0.7 {
		return 1
	}
	if float64(down)/float64(total) >= 0.7 {
		return -1
	}
	return 0
}
