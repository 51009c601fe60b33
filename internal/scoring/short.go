package scoring

import (
	"fmt"

	"github.com/wonny/kabu/internal/contracts"
)

// scoreShortTerm applies the days-to-weeks rule list.
// Rules, in order: RSI extremes, MACD-vs-signal with a same-sign trend,
// price against the 20-day average, 5-day momentum beyond ±3%.
func (s *Scorer) scoreShortTerm(series contracts.PriceSeries, ind contracts.IndicatorSet) contracts.HorizonScore {
	score := baseline
	reasons := []string{}
	price := series.LastClose()

	// RSI oversold/overbought
	if ind.RSI < 30 {
		score += 20
		reasons = append(reasons, fmt.Sprintf("RSI oversold (%.1f), rebound likely", ind.RSI))
	} else if ind.RSI > 70 {
		score -= 20
		reasons = append(reasons, fmt.Sprintf("RSI overbought (%.1f), pullback likely", ind.RSI))
	}

	// MACD above/below its signal line with a matching trend sign
	if ind.MACD > ind.MACDSignal && ind.MACD > 0 {
		score += 15
		reasons = append(reasons, "MACD above signal line in an uptrend")
	} else if ind.MACD < ind.MACDSignal && ind.MACD < 0 {
		score -= 15
		reasons = append(reasons, "MACD below signal line in a downtrend")
	}

	// Price against the 20-day average
	if price > ind.SMA20 {
		score += 10
		reasons = append(reasons, "price above 20-day average")
	} else if price < ind.SMA20 {
		score -= 10
		reasons = append(reasons, "price below 20-day average")
	}

	// 5-day momentum beyond ±3%
	momentum := returnOver(series, 5)
	if len(series) > 5 {
		if momentum > 3 {
			score += 10
			reasons = append(reasons, fmt.Sprintf("strong 5-day momentum (%+.1f%%)", momentum))
		} else if momentum < -3 {
			score -= 10
			reasons = append(reasons, fmt.Sprintf("weak 5-day momentum (%+.1f%%)", momentum))
		}
	}

	return finish(contracts.HorizonShort, score, reasons)
}
