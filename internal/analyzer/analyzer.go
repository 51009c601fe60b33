package analyzer

import (
	"context"
	"fmt"
	"time"

	"github.com/wonny/kabu/internal/contracts"
	"github.com/wonny/kabu/internal/external/yahoo"
	"github.com/wonny/kabu/internal/indicator"
	"github.com/wonny/kabu/internal/portfolio"
	"github.com/wonny/kabu/internal/risk"
	"github.com/wonny/kabu/internal/scoring"
	"github.com/wonny/kabu/internal/selection"
	"github.com/wonny/kabu/pkg/config"
	"github.com/wonny/kabu/pkg/logger"
	"github.com/wonny/kabu/pkg/redis"
)

// fetchRangeDays covers the 252 trading days the long horizon needs
// plus slack for holidays and halts.
const fetchRangeDays = 400

// PriceSource supplies daily OHLCV candles for a symbol.
type PriceSource interface {
	FetchDailyPrices(ctx context.Context, symbol string, rangeDays int) (contracts.PriceSeries, error)
}

// ProfileSource optionally supplies company profiles. Sources that
// implement it enrich analyses with the company name.
type ProfileSource interface {
	FetchProfile(ctx context.Context, symbol string) (*yahoo.CompanyProfile, error)
}

// Analyzer coordinates the full per-symbol pipeline: fetch, indicators,
// horizon scoring, and the cross-symbol operations built on top.
type Analyzer struct {
	source      PriceSource
	cache       *redis.Cache
	cacheTTL    time.Duration
	proxySymbol string

	scorer *scoring.Scorer
	ranker *selection.Ranker

	logger *logger.Logger
}

// New creates a new analyzer.
func New(source PriceSource, cache *redis.Cache, cfg config.MarketConfig, log *logger.Logger) *Analyzer {
	return &Analyzer{
		source:      source,
		cache:       cache,
		cacheTTL:    cfg.CacheTTL,
		proxySymbol: cfg.ProxySymbol,
		scorer:      scoring.NewScorer(log),
		ranker:      selection.NewRanker(log),
		logger:      log.WithComponent("analyzer"),
	}
}

// Analyze runs the full indicator and scoring pipeline for one symbol.
func (a *Analyzer) Analyze(ctx context.Context, symbol string) (*contracts.Analysis, error) {
	series, err := a.fetchSeries(ctx, symbol)
	if err != nil {
		return nil, err
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("no price data for %s", symbol)
	}

	latest, _ := series.Latest()

	analysis := &contracts.Analysis{
		Symbol:     symbol,
		Date:       latest.Date,
		Price:      latest.Close,
		Indicators: indicator.Snapshot(series),
	}

	// The window indicators need OHLC history; on undefined input they
	// return a typed error and the field stays nil in the result.
	if bb, err := indicator.Bollinger(series); err == nil {
		analysis.Bollinger = bb
	}
	if ich, err := indicator.Ichimoku(series); err == nil {
		analysis.Ichimoku = ich
	}
	if atr, err := indicator.ATR(series); err == nil {
		analysis.ATR = atr
	}
	if stoch, err := indicator.StochasticOscillator(series); err == nil {
		analysis.Stochastic = stoch
	}

	// Company name is cosmetic; a failed profile fetch never fails the analysis.
	if ps, ok := a.source.(ProfileSource); ok {
		if profile, err := ps.FetchProfile(ctx, symbol); err == nil {
			analysis.Name = profile.Name
		}
	}

	analysis.ShortTerm, analysis.MediumTerm, analysis.LongTerm = a.scorer.Score(symbol, series)

	a.logger.WithFields(map[string]interface{}{
		"symbol":    symbol,
		"composite": analysis.CompositeScore(),
	}).Info("Analysis complete")

	return analysis, nil
}

// AnalyzeBatch analyzes each symbol independently. A failed symbol is
// logged and omitted; it never aborts the batch. An empty symbol list
// yields an empty result.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, symbols []string) []*contracts.Analysis {
	results := make([]*contracts.Analysis, 0, len(symbols))

	for _, symbol := range symbols {
		analysis, err := a.Analyze(ctx, symbol)
		if err != nil {
			a.logger.WithError(err).WithField("symbol", symbol).Warn("Skipping symbol")
			continue
		}
		results = append(results, analysis)
	}

	a.logger.WithFields(map[string]interface{}{
		"requested": len(symbols),
		"analyzed":  len(results),
	}).Info("Batch analysis complete")

	return results
}

// Compare analyzes the symbols and ranks them by composite score.
func (a *Analyzer) Compare(ctx context.Context, symbols []string) []contracts.RankedSymbol {
	return a.ranker.Rank(a.AnalyzeBatch(ctx, symbols))
}

// BuildPortfolio fetches the series for each symbol and computes weights
// plus the correlation matrix. Symbols whose data cannot be fetched are
// dropped from the portfolio, not fatal.
func (a *Analyzer) BuildPortfolio(ctx context.Context, symbols []string, method contracts.WeightingMethod) (*contracts.PortfolioWeights, *contracts.CorrelationMatrix, error) {
	kept := make([]string, 0, len(symbols))
	seriesList := make([]contracts.PriceSeries, 0, len(symbols))

	for _, symbol := range symbols {
		series, err := a.fetchSeries(ctx, symbol)
		if err != nil || len(series) == 0 {
			a.logger.WithField("symbol", symbol).Warn("Skipping symbol in portfolio")
			continue
		}
		kept = append(kept, symbol)
		seriesList = append(seriesList, series)
	}

	weights, err := portfolio.Allocate(method, kept, seriesList)
	if err != nil {
		return nil, nil, err
	}

	return weights, portfolio.CorrelationMatrix(kept, seriesList), nil
}

// AnalyzeRisk computes per-symbol risk metrics against the market proxy.
func (a *Analyzer) AnalyzeRisk(ctx context.Context, symbol string) (*contracts.RiskAnalysis, error) {
	series, err := a.fetchSeries(ctx, symbol)
	if err != nil {
		return nil, err
	}

	market, err := a.fetchSeries(ctx, a.proxySymbol)
	if err != nil {
		a.logger.WithError(err).Warn("Market proxy unavailable, beta will be zero")
		market = nil
	}

	return risk.Analyze(symbol, series, market)
}

// fetchSeries returns the daily series for a symbol, consulting the
// price cache first. Cache failures degrade to a direct fetch.
func (a *Analyzer) fetchSeries(ctx context.Context, symbol string) (contracts.PriceSeries, error) {
	key := "prices:" + symbol

	var cached contracts.PriceSeries
	if hit, err := a.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	series, err := a.source.FetchDailyPrices(ctx, symbol, fetchRangeDays)
	if err != nil {
		return nil, fmt.Errorf("fetch prices for %s: %w", symbol, err)
	}

	if err := a.cache.Set(ctx, key, series, a.cacheTTL); err != nil {
		a.logger.WithError(err).WithField("symbol", symbol).Warn("Price cache write failed")
	}

	return series, nil
}
