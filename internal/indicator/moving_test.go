package indicator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wonny/kabu/internal/contracts"
)

// seriesFromCloses builds a series with open=high=low=close for each value.
func seriesFromCloses(closes ...float64) contracts.PriceSeries {
	series := make(contracts.PriceSeries, len(closes))
	base := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		series[i] = contracts.PricePoint{
			Date: base.AddDate(0, 0, i), Open: c, High: c, Low: c, Close: c, Volume: 1000,
		}
	}
	return series
}

// risingSeries returns n points starting at start, stepping by step, with
// high/low offset ±offset around the close.
func risingSeries(n int, start, step, offset float64) contracts.PriceSeries {
	series := make(contracts.PriceSeries, n)
	base := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	for i := range series {
		c := start + float64(i)*step
		series[i] = contracts.PricePoint{
			Date: base.AddDate(0, 0, i), Open: c, High: c + offset, Low: c - offset, Close: c, Volume: 1000,
		}
	}
	return series
}

func TestSMA(t *testing.T) {
	tests := []struct {
		name   string
		closes []float64
		period int
		want   float64
	}{
		{"simple mean", []float64{1, 2, 3, 4, 5}, 5, 3},
		{"trailing window only", []float64{100, 200, 10, 20, 30}, 3, 20},
		{"series shorter than window", []float64{1, 2, 3}, 5, 0},
		{"empty series", nil, 20, 0},
		{"window of one", []float64{7, 9}, 1, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SMA(seriesFromCloses(tt.closes...), tt.period)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestEMA_SeededWithFirstClose(t *testing.T) {
	// One point: EMA equals the seed regardless of period.
	assert.Equal(t, 42.0, EMA(seriesFromCloses(42), 10))

	// Two points, period 3: k = 0.5, ema = 20*0.5 + 10*0.5.
	assert.InDelta(t, 15.0, EMA(seriesFromCloses(10, 20), 3), 1e-9)

	// Empty series degrades to the zero sentinel.
	assert.Equal(t, 0.0, EMA(contracts.PriceSeries{}, 12))
}

func TestEMA_ConstantSeries(t *testing.T) {
	series := seriesFromCloses(500, 500, 500, 500, 500, 500)
	assert.InDelta(t, 500.0, EMA(series, 12), 1e-9)
}

func TestMACD_FixedRatioSignalLine(t *testing.T) {
	series := risingSeries(60, 1000, 5, 0)
	line := MACD(series)

	// Rising series: fast EMA above slow EMA once warmed up.
	assert.Positive(t, line.MACD)
	assert.InDelta(t, line.MACD*0.9, line.Signal, 1e-9)
}

func TestMACD_FlatSeries(t *testing.T) {
	line := MACD(seriesFromCloses(100, 100, 100, 100))
	assert.InDelta(t, 0.0, line.MACD, 1e-9)
	assert.InDelta(t, 0.0, line.Signal, 1e-9)
}

func TestSnapshot_ShortSeriesSentinels(t *testing.T) {
	set := Snapshot(seriesFromCloses(100, 101, 102))

	assert.Equal(t, 0.0, set.SMA20)
	assert.Equal(t, 0.0, set.SMA50)
	assert.Equal(t, 0.0, set.SMA200)
	assert.Equal(t, 50.0, set.RSI)
}

func TestSnapshot_LongSeries(t *testing.T) {
	set := Snapshot(risingSeries(250, 1000, 1, 0))

	assert.Positive(t, set.SMA20)
	assert.Positive(t, set.SMA50)
	assert.Positive(t, set.SMA200)
	// Rising series keeps the short average above the long one.
	assert.Greater(t, set.SMA20, set.SMA200)
}
