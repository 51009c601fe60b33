package contracts

import "time"

// PricePoint is one daily OHLCV record for an exchange-listed equity.
// For valid market data high >= max(open, close) and low <= min(open, close);
// the engine tolerates violations but the resulting scores are meaningless.
type PricePoint struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// PriceSeries is an ordered daily price history, strictly ascending by date.
// Trading-day gaps are expected and never filled.
type PriceSeries []PricePoint

// Closes returns the close prices in series order.
func (s PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s))
	for i, p := range s {
		closes[i] = p.Close
	}
	return closes
}

// Latest returns the most recent price point.
// The boolean is false for an empty series.
func (s PriceSeries) Latest() (PricePoint, bool) {
	if len(s) == 0 {
		return PricePoint{}, false
	}
	return s[len(s)-1], true
}

// LastClose returns the most recent close, or 0 for an empty series.
func (s PriceSeries) LastClose() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1].Close
}

// Tail returns the trailing n points, or the whole series when shorter.
func (s PriceSeries) Tail(n int) PriceSeries {
	if n <= 0 {
		return PriceSeries{}
	}
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

// DailyReturns returns simple day-over-day returns, (c[t]-c[t-1])/c[t-1].
// Days with a zero previous close are skipped.
func (s PriceSeries) DailyReturns() []float64 {
	if len(s) < 2 {
		return []float64{}
	}

	returns := make([]float64, 0, len(s)-1)
	for i := 1; i < len(s); i++ {
		prev := s[i-1].Close
		if prev == 0 {
			continue
		}
		returns = append(returns, (s[i].Close-prev)/prev)
	}
	return returns
}
