package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/kabu/internal/contracts"
)

func TestATR_ConstantRange(t *testing.T) {
	// Every day has a 20-point high-low range and no gaps, so every true
	// range is 20 and the smoothed average stays at 20.
	series := make(contracts.PriceSeries, 30)
	for i := range series {
		series[i] = contracts.PricePoint{Open: 1000, High: 1010, Low: 990, Close: 1000}
	}

	result, err := ATR(series)
	require.NoError(t, err)

	assert.InDelta(t, 20.0, result.ATR, 1e-9)
	assert.InDelta(t, 2.0, result.ATRPercent, 1e-9)
	assert.Equal(t, contracts.VolatilityNormal, result.Volatility)
	assert.InDelta(t, 960.0, result.StopLossLong, 1e-9)
	assert.InDelta(t, 1040.0, result.StopLossShrt, 1e-9)
}

func TestATR_GapsWidenTrueRange(t *testing.T) {
	// Second day gaps far above the first close; TR must use |high-prevClose|.
	series := contracts.PriceSeries{
		{Open: 100, High: 105, Low: 95, Close: 100},
		{Open: 150, High: 155, Low: 148, Close: 152},
	}

	ranges := trueRanges(series)
	assert.InDelta(t, 10.0, ranges[0], 1e-9)
	assert.InDelta(t, 55.0, ranges[1], 1e-9) // 155 - 100
}

func TestATR_FlatSeries(t *testing.T) {
	closes := make([]float64, 100)
	for i := range closes {
		closes[i] = 1000
	}

	result, err := ATR(seriesFromCloses(closes...))
	require.NoError(t, err)

	assert.InDelta(t, 0.0, result.ATR, 1e-9)
	assert.Equal(t, contracts.VolatilityVeryLow, result.Volatility)
}

func TestATR_VolatilityBuckets(t *testing.T) {
	tests := []struct {
		atrPercent float64
		want       string
	}{
		{6.0, contracts.VolatilityVeryHigh},
		{4.0, contracts.VolatilityHigh},
		{2.0, contracts.VolatilityNormal},
		{1.0, contracts.VolatilityLow},
		{0.5, contracts.VolatilityVeryLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyVolatility(tt.atrPercent), "atrPercent=%v", tt.atrPercent)
	}
}

func TestATR_ShortSeries(t *testing.T) {
	// A single point still yields the plain high-low range.
	series := contracts.PriceSeries{{Open: 100, High: 110, Low: 90, Close: 105}}

	result, err := ATR(series)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, result.ATR, 1e-9)
}

func TestATR_EmptySeries(t *testing.T) {
	_, err := ATR(contracts.PriceSeries{})

	var insufficientErr *contracts.DataInsufficientError
	require.ErrorAs(t, err, &insufficientErr)
}
