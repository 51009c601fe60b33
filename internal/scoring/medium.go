package scoring

import (
	"fmt"

	"github.com/wonny/kabu/internal/contracts"
)

// scoreMediumTerm applies the weeks-to-months rule list.
// Rules, in order: price against the 50-day average, 20/50-day average
// cross, 3-month return beyond ±10%, annualized volatility bucket.
func (s *Scorer) scoreMediumTerm(series contracts.PriceSeries, ind contracts.IndicatorSet) contracts.HorizonScore {
	score := baseline
	reasons := []string{}
	price := series.LastClose()

	// Price against the 50-day average
	if price > ind.SMA50 {
		score += 15
		reasons = append(reasons, "price above 50-day average")
	} else if price < ind.SMA50 {
		score -= 15
		reasons = append(reasons, "price below 50-day average")
	}

	// 20/50-day average cross
	if ind.SMA20 > ind.SMA50 {
		score += 15
		reasons = append(reasons, "golden cross, 20-day average above 50-day")
	} else if ind.SMA20 < ind.SMA50 {
		score -= 15
		reasons = append(reasons, "dead cross, 20-day average below 50-day")
	}

	// 3-month return beyond ±10%
	threeMonth := returnOver(series, 60)
	if threeMonth > 10 {
		score += 15
		reasons = append(reasons, fmt.Sprintf("strong 3-month return (%+.1f%%)", threeMonth))
	} else if threeMonth < -10 {
		score -= 15
		reasons = append(reasons, fmt.Sprintf("weak 3-month return (%+.1f%%)", threeMonth))
	}

	// Annualized volatility bucket
	vol := annualizedVolatility(series)
	if vol < 15 {
		score += 5
		reasons = append(reasons, fmt.Sprintf("low volatility (%.1f%% annualized)", vol))
	} else if vol > 30 {
		score -= 5
		reasons = append(reasons, fmt.Sprintf("high volatility (%.1f%% annualized)", vol))
	}

	return finish(contracts.HorizonMedium, score, reasons)
}
