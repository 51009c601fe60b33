package commands

import (
	"fmt"

	"github.com/wonny/kabu/internal/analyzer"
	"github.com/wonny/kabu/internal/external/yahoo"
	"github.com/wonny/kabu/pkg/config"
	"github.com/wonny/kabu/pkg/httputil"
	"github.com/wonny/kabu/pkg/logger"
	"github.com/wonny/kabu/pkg/redis"
)

// app bundles the shared dependencies every command needs.
type app struct {
	cfg      *config.Config
	log      *logger.Logger
	analyzer *analyzer.Analyzer
	redis    *redis.Client
}

// newApp loads config and wires up the analysis stack.
// The returned cleanup must be deferred by the caller.
func newApp() (*app, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	if verbose {
		cfg.LogLevel = "debug"
	}

	log := logger.New(cfg)

	redisClient, err := redis.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to redis: %w", err)
	}

	httpClient := httputil.New(log)
	source := yahoo.New(cfg.Market, httpClient, log)
	cache := redis.NewCache(redisClient, "kabu")

	return &app{
			cfg:      cfg,
			log:      log,
			analyzer: analyzer.New(source, cache, cfg.Market, log),
			redis:    redisClient,
		}, func() {
			_ = redisClient.Close()
		}, nil
}
