package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/wonny/kabu/internal/contracts"
)

// chartResponse mirrors the Yahoo Finance chart API payload.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// FetchDailyPrices fetches up to rangeDays of daily OHLCV candles for a
// TSE symbol. The exchange suffix is appended when missing.
func (c *Client) FetchDailyPrices(ctx context.Context, symbol string, rangeDays int) (contracts.PriceSeries, error) {
	yahooSymbol := symbol
	if !strings.Contains(yahooSymbol, ".") {
		yahooSymbol += ".T"
	}

	url := fmt.Sprintf("%s/v8/finance/chart/%s?range=%dd&interval=1d",
		c.cfg.BaseURL, yahooSymbol, rangeDays)

	resp, err := c.httpClient.Get(ctx, url, requestHeaders)
	if err != nil {
		return nil, fmt.Errorf("chart request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body failed: %w", err)
	}

	series, err := parseChartResponse(body)
	if err != nil {
		return nil, fmt.Errorf("parse response failed: %w", err)
	}

	c.logger.WithFields(map[string]interface{}{
		"symbol": symbol,
		"count":  len(series),
	}).Debug("Fetched daily prices")

	return series, nil
}

// parseChartResponse converts the chart payload into a price series.
// Days with a missing close (halts, partial rows) are skipped.
func parseChartResponse(body []byte) (contracts.PriceSeries, error) {
	var payload chartResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}

	if payload.Chart.Error != nil {
		return nil, fmt.Errorf("provider error: %s (%s)",
			payload.Chart.Error.Description, payload.Chart.Error.Code)
	}
	if len(payload.Chart.Result) == 0 || len(payload.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("empty chart result")
	}

	result := payload.Chart.Result[0]
	quote := result.Indicators.Quote[0]

	series := make(contracts.PriceSeries, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) || quote.Close[i] == nil {
			continue
		}

		point := contracts.PricePoint{
			Date:  time.Unix(ts, 0).UTC().Truncate(24 * time.Hour),
			Close: *quote.Close[i],
		}
		if i < len(quote.Open) && quote.Open[i] != nil {
			point.Open = *quote.Open[i]
		}
		if i < len(quote.High) && quote.High[i] != nil {
			point.High = *quote.High[i]
		}
		if i < len(quote.Low) && quote.Low[i] != nil {
			point.Low = *quote.Low[i]
		}
		if i < len(quote.Volume) && quote.Volume[i] != nil {
			point.Volume = *quote.Volume[i]
		}

		series = append(series, point)
	}

	return series, nil
}
