package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/kabu/internal/analyzer"
	"github.com/wonny/kabu/internal/api/handlers"
	"github.com/wonny/kabu/internal/contracts"
	"github.com/wonny/kabu/internal/fundamental"
	"github.com/wonny/kabu/pkg/config"
	"github.com/wonny/kabu/pkg/logger"
	"github.com/wonny/kabu/pkg/redis"
)

type fakeSource struct {
	series map[string]contracts.PriceSeries
}

func (f *fakeSource) FetchDailyPrices(_ context.Context, symbol string, _ int) (contracts.PriceSeries, error) {
	s, ok := f.series[symbol]
	if !ok {
		return nil, fmt.Errorf("unknown symbol %s", symbol)
	}
	return s, nil
}

type fakeProvider struct{}

func (fakeProvider) Fetch(_ context.Context, symbol string) (*contracts.FinancialData, error) {
	roe := 12.0
	return &contracts.FinancialData{Symbol: symbol, CompanyName: "Test Corp", ROE: &roe}, nil
}

func testSeries(n int, start, step float64) contracts.PriceSeries {
	series := make(contracts.PriceSeries, n)
	day := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		c := start + float64(i)*step
		series[i] = contracts.PricePoint{
			Date: day.AddDate(0, 0, i),
			Open: c - 2, High: c + 5, Low: c - 5, Close: c, Volume: 1000000,
		}
	}
	return series
}

func testRouter(t *testing.T) http.Handler {
	t.Helper()

	log := logger.NewWriter(io.Discard)

	client, err := redis.New(&config.Config{})
	require.NoError(t, err)

	source := &fakeSource{series: map[string]contracts.PriceSeries{
		"7203": testSeries(300, 1000, 5),
		"6758": testSeries(300, 2000, 3),
	}}

	a := analyzer.New(source, redis.NewCache(client, "kabu"),
		config.MarketConfig{ProxySymbol: "1321", CacheTTL: time.Hour}, log)

	return NewRouter(
		handlers.NewAnalysisHandler(a, log),
		handlers.NewPortfolioHandler(a, log),
		handlers.NewFundamentalHandler(fakeProvider{}, fundamental.NewScorer(log), log),
		log,
	)
}

func TestHealthEndpoint(t *testing.T) {
	router := testRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestAnalyzeEndpoint(t *testing.T) {
	router := testRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/analyze/7203", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var analysis contracts.Analysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analysis))
	assert.Equal(t, "7203", analysis.Symbol)
	assert.Equal(t, 2495.0, analysis.Price)
}

func TestAnalyzeEndpointUnknownSymbol(t *testing.T) {
	router := testRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/analyze/0000", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestRankEndpoint(t *testing.T) {
	router := testRouter(t)

	body := strings.NewReader(`{"symbols": ["7203", "6758", "9999"]}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/api/rank", body))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Count   int                      `json:"count"`
		Ranking []contracts.RankedSymbol `json:"ranking"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	// 9999 has no data and is omitted from the ranking.
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, 1, resp.Ranking[0].Rank)
}

func TestRankEndpointBadBody(t *testing.T) {
	router := testRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/api/rank", strings.NewReader("not json")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPortfolioEndpoint(t *testing.T) {
	router := testRouter(t)

	body := strings.NewReader(`{"symbols": ["7203", "6758"], "method": "MAX_SHARPE"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/api/portfolio", body))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Weights *contracts.PortfolioWeights `json:"weights"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Weights)
	assert.Equal(t, contracts.WeightMaxSharpe, resp.Weights.Method)
	assert.InDelta(t, 100.0, resp.Weights.Weights[0]+resp.Weights.Weights[1], 1e-9)
}

func TestPortfolioEndpointUnknownMethod(t *testing.T) {
	router := testRouter(t)

	body := strings.NewReader(`{"symbols": ["7203"], "method": "RISK_PARITY"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/api/portfolio", body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFundamentalsEndpoint(t *testing.T) {
	router := testRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/fundamentals/7203", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "EXCELLENT")
}

func TestRiskEndpoint(t *testing.T) {
	router := testRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/risk/7203", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var analysis contracts.RiskAnalysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analysis))
	assert.Equal(t, "7203", analysis.Symbol)
}
