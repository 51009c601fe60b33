package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/wonny/kabu/internal/analyzer"
	"github.com/wonny/kabu/internal/store"
	"github.com/wonny/kabu/pkg/logger"
)

// DailyRefresh re-analyzes the watchlist after the market close,
// warming the price cache and persisting the day's snapshots.
type DailyRefresh struct {
	analyzer *analyzer.Analyzer
	repo     *store.SnapshotRepository // nil when the database is disabled
	symbols  []string
	logger   *logger.Logger
}

// NewDailyRefresh creates the daily refresh job.
func NewDailyRefresh(a *analyzer.Analyzer, repo *store.SnapshotRepository, symbols []string, log *logger.Logger) *DailyRefresh {
	return &DailyRefresh{
		analyzer: a,
		repo:     repo,
		symbols:  symbols,
		logger:   log.WithComponent("daily-refresh"),
	}
}

// Name implements scheduler.Job.
func (j *DailyRefresh) Name() string { return "daily-refresh" }

// Schedule runs weekdays at 18:00, after the TSE close.
func (j *DailyRefresh) Schedule() string { return "0 0 18 * * 1-5" }

// Run implements scheduler.Job.
func (j *DailyRefresh) Run(ctx context.Context) error {
	if len(j.symbols) == 0 {
		j.logger.Warn("No watchlist symbols configured, nothing to refresh")
		return nil
	}

	analyses := j.analyzer.AnalyzeBatch(ctx, j.symbols)
	if len(analyses) == 0 {
		return fmt.Errorf("all %d symbols failed to analyze", len(j.symbols))
	}

	if j.repo != nil {
		date := time.Now().UTC().Truncate(24 * time.Hour)
		if err := j.repo.SaveAnalyses(ctx, date, analyses); err != nil {
			return fmt.Errorf("persist snapshots: %w", err)
		}
	}

	j.logger.WithFields(map[string]interface{}{
		"requested": len(j.symbols),
		"analyzed":  len(analyses),
	}).Info("Daily refresh complete")

	return nil
}
