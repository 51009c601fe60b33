package yahoo

import (
	"github.com/wonny/kabu/pkg/config"
	"github.com/wonny/kabu/pkg/httputil"
	"github.com/wonny/kabu/pkg/logger"
)

// Client fetches market data for Tokyo-listed equities.
// All Yahoo Finance calls go through this client.
type Client struct {
	httpClient *httputil.Client
	cfg        config.MarketConfig
	logger     *logger.Logger
}

// New creates a new Yahoo Finance client.
func New(cfg config.MarketConfig, httpClient *httputil.Client, log *logger.Logger) *Client {
	return &Client{
		httpClient: httpClient.WithRateLimit(cfg.RatePerSec),
		cfg:        cfg,
		logger:     log.WithComponent("yahoo"),
	}
}

// requestHeaders are sent with every provider request.
var requestHeaders = map[string]string{
	"User-Agent": "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36",
	"Accept":     "application/json, text/html",
}
