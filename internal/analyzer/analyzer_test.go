package analyzer

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/kabu/internal/contracts"
	"github.com/wonny/kabu/pkg/config"
	"github.com/wonny/kabu/pkg/logger"
	"github.com/wonny/kabu/pkg/redis"
)

// fakeSource serves canned series per symbol and counts fetches.
type fakeSource struct {
	series  map[string]contracts.PriceSeries
	fetches int
}

func (f *fakeSource) FetchDailyPrices(_ context.Context, symbol string, _ int) (contracts.PriceSeries, error) {
	f.fetches++
	s, ok := f.series[symbol]
	if !ok {
		return nil, fmt.Errorf("unknown symbol %s", symbol)
	}
	return s, nil
}

func risingSeries(n int, start, step float64) contracts.PriceSeries {
	series := make(contracts.PriceSeries, n)
	day := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		close := start + float64(i)*step
		series[i] = contracts.PricePoint{
			Date:   day.AddDate(0, 0, i),
			Open:   close - 2,
			High:   close + 5,
			Low:    close - 5,
			Close:  close,
			Volume: 1000000,
		}
	}
	return series
}

func newTestAnalyzer(t *testing.T, source PriceSource) *Analyzer {
	t.Helper()

	client, err := redis.New(&config.Config{})
	require.NoError(t, err)

	cfg := config.MarketConfig{
		ProxySymbol: "1321",
		CacheTTL:    time.Hour,
	}

	return New(source, redis.NewCache(client, "kabu"), cfg, logger.NewWriter(io.Discard))
}

func TestAnalyze(t *testing.T) {
	source := &fakeSource{series: map[string]contracts.PriceSeries{
		"7203": risingSeries(300, 1000, 5),
	}}
	a := newTestAnalyzer(t, source)

	analysis, err := a.Analyze(context.Background(), "7203")
	require.NoError(t, err)

	assert.Equal(t, "7203", analysis.Symbol)
	assert.Equal(t, 2495.0, analysis.Price)
	assert.NotZero(t, analysis.Indicators.SMA20)
	require.NotNil(t, analysis.Bollinger)
	require.NotNil(t, analysis.Ichimoku)
	require.NotNil(t, analysis.ATR)
	require.NotNil(t, analysis.Stochastic)

	// A 300-day uptrend is a clear medium/long buy.
	assert.Equal(t, contracts.SignalBuy, analysis.MediumTerm.Signal)
	assert.Equal(t, contracts.SignalBuy, analysis.LongTerm.Signal)
}

func TestAnalyzeUnknownSymbol(t *testing.T) {
	a := newTestAnalyzer(t, &fakeSource{series: map[string]contracts.PriceSeries{}})

	_, err := a.Analyze(context.Background(), "0000")
	require.Error(t, err)
}

func TestAnalyzeEmptySeries(t *testing.T) {
	source := &fakeSource{series: map[string]contracts.PriceSeries{
		"7203": {},
	}}
	a := newTestAnalyzer(t, source)

	_, err := a.Analyze(context.Background(), "7203")
	require.Error(t, err)
}

func TestAnalyzeBatchSkipsFailures(t *testing.T) {
	source := &fakeSource{series: map[string]contracts.PriceSeries{
		"7203": risingSeries(300, 1000, 5),
		"6758": risingSeries(300, 2000, 3),
	}}
	a := newTestAnalyzer(t, source)

	results := a.AnalyzeBatch(context.Background(), []string{"7203", "9999", "6758"})

	// The unknown symbol is dropped, the rest survive in order.
	require.Len(t, results, 2)
	assert.Equal(t, "7203", results[0].Symbol)
	assert.Equal(t, "6758", results[1].Symbol)
}

func TestAnalyzeBatchEmptyInput(t *testing.T) {
	a := newTestAnalyzer(t, &fakeSource{})

	results := a.AnalyzeBatch(context.Background(), nil)
	assert.Empty(t, results)
}

func TestCompare(t *testing.T) {
	source := &fakeSource{series: map[string]contracts.PriceSeries{
		"7203": risingSeries(300, 1000, 5),  // uptrend
		"6758": risingSeries(300, 3000, -5), // downtrend
	}}
	a := newTestAnalyzer(t, source)

	ranked := a.Compare(context.Background(), []string{"6758", "7203"})
	require.Len(t, ranked, 2)

	assert.Equal(t, "7203", ranked[0].Symbol)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Greater(t, ranked[0].Score, ranked[1].Score)
}

func TestBuildPortfolio(t *testing.T) {
	source := &fakeSource{series: map[string]contracts.PriceSeries{
		"7203": risingSeries(300, 1000, 5),
		"6758": risingSeries(300, 2000, 3),
	}}
	a := newTestAnalyzer(t, source)

	weights, corr, err := a.BuildPortfolio(context.Background(),
		[]string{"7203", "6758", "9999"}, contracts.WeightEqual)
	require.NoError(t, err)

	// The unfetchable symbol is dropped before allocation.
	assert.Equal(t, []string{"7203", "6758"}, weights.Symbols)
	assert.InDelta(t, 100.0, weights.Weights[0]+weights.Weights[1], 1e-9)
	assert.Len(t, corr.Matrix, 2)
}

func TestBuildPortfolioAllSymbolsFail(t *testing.T) {
	a := newTestAnalyzer(t, &fakeSource{})

	_, _, err := a.BuildPortfolio(context.Background(), []string{"9999"}, contracts.WeightEqual)
	require.Error(t, err)

	var insufficientErr *contracts.DataInsufficientError
	require.ErrorAs(t, err, &insufficientErr)
}

func TestAnalyzeRisk(t *testing.T) {
	source := &fakeSource{series: map[string]contracts.PriceSeries{
		"7203": risingSeries(300, 1000, 5),
		"1321": risingSeries(300, 20000, 40),
	}}
	a := newTestAnalyzer(t, source)

	riskAnalysis, err := a.AnalyzeRisk(context.Background(), "7203")
	require.NoError(t, err)

	assert.Equal(t, "7203", riskAnalysis.Symbol)
	assert.NotZero(t, riskAnalysis.Beta)
	assert.Positive(t, riskAnalysis.AnnualizedReturn)
}

func TestAnalyzeRiskMissingProxy(t *testing.T) {
	source := &fakeSource{series: map[string]contracts.PriceSeries{
		"7203": risingSeries(300, 1000, 5),
	}}
	a := newTestAnalyzer(t, source)

	riskAnalysis, err := a.AnalyzeRisk(context.Background(), "7203")
	require.NoError(t, err)

	// Without a market proxy the beta falls back to the zero sentinel.
	assert.Zero(t, riskAnalysis.Beta)
}
