package indicator

import (
	"github.com/wonny/kabu/internal/contracts"
)

// =============================================================================
// Ichimoku Cloud
// =============================================================================

const (
	tenkanPeriod  = 9
	kijunPeriod   = 26
	senkouBPeriod = 52
)

// Ichimoku computes the cloud lines at the latest point of a series.
// Each line is a Donchian midpoint, (max high + min low)/2, over its
// trailing window; shorter series use whatever history is available.
//
// Returns a DataInsufficientError only for an empty series.
func Ichimoku(series contracts.PriceSeries) (*contracts.IchimokuCloud, error) {
	if len(series) == 0 {
		return nil, contracts.NewDataInsufficientError("ichimoku", 1, 0)
	}

	tenkan := donchianMidpoint(series, tenkanPeriod)
	kijun := donchianMidpoint(series, kijunPeriod)
	senkouA := (tenkan + kijun) / 2
	senkouB := donchianMidpoint(series, senkouBPeriod)

	// Chikou span: close from 26 periods back, or the current close
	// when the series is shorter.
	chikou := series.LastClose()
	if len(series) > kijunPeriod {
		chikou = series[len(series)-1-kijunPeriod].Close
	}

	top, bottom := senkouA, senkouB
	if bottom > top {
		top, bottom = bottom, top
	}

	price := series.LastClose()
	var thickness float64
	if price != 0 {
		thickness = (top - bottom) / price * 100
	}

	return &contracts.IchimokuCloud{
		Tenkan:      tenkan,
		Kijun:       kijun,
		SenkouA:     senkouA,
		SenkouB:     senkouB,
		Chikou:      chikou,
		CloudTop:    top,
		CloudBottom: bottom,
		Thickness:   thickness,
		Signal:      ichimokuSignal(price, chikou, tenkan, kijun, senkouA, senkouB, top, bottom),
	}, nil
}

// ichimokuSignal derives the trend from a 4-factor vote.
// Price versus the cloud counts twice; tenkan-vs-kijun, chikou-vs-price
// and senkouA-vs-senkouB count once each.
func ichimokuSignal(price, chikou, tenkan, kijun, senkouA, senkouB, top, bottom float64) string {
	var bullish, bearish int

	if price > top {
		bullish += 2
	} else if price < bottom {
		bearish += 2
	}

	if tenkan > kijun {
		bullish++
	} else if tenkan < kijun {
		bearish++
	}

	if price > chikou {
		bullish++
	} else if price < chikou {
		bearish++
	}

	if senkouA > senkouB {
		bullish++
	} else if senkouA < senkouB {
		bearish++
	}

	switch {
	case bullish >= 4:
		return contracts.IchimokuStrongBullish
	case bullish >= 2:
		return contracts.IchimokuBullish
	case bearish >= 4:
		return contracts.IchimokuStrongBearish
	case bearish >= 2:
		return contracts.IchimokuBearish
	default:
		return contracts.IchimokuNeutral
	}
}

// donchianMidpoint returns (max high + min low)/2 over the trailing window.
func donchianMidpoint(series contracts.PriceSeries, period int) float64 {
	window := series.Tail(period)

	highest := window[0].High
	lowest := window[0].Low
	for _, p := range window[1:] {
		if p.High > highest {
			highest = p.High
		}
		if p.Low < lowest {
			lowest = p.Low
		}
	}
	return (highest + lowest) / 2
}
