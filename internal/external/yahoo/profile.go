package yahoo

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// CompanyProfile is the scraped company summary for a TSE symbol.
type CompanyProfile struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Market string `json:"market"`
}

// FetchProfile scrapes the company name and market segment from the
// Yahoo Finance Japan quote page. Best effort: the page layout is not
// an API contract, so missing nodes yield empty fields, not errors.
func (c *Client) FetchProfile(ctx context.Context, symbol string) (*CompanyProfile, error) {
	url := fmt.Sprintf("%s/quote/%s.T", c.cfg.ProfileURL, symbol)

	resp, err := c.httpClient.Get(ctx, url, requestHeaders)
	if err != nil {
		return nil, fmt.Errorf("profile request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse profile page failed: %w", err)
	}

	profile := &CompanyProfile{Symbol: symbol}

	// Page title carries "NAME【CODE】..." for listed companies.
	title := doc.Find("title").First().Text()
	if idx := strings.Index(title, "【"); idx > 0 {
		profile.Name = strings.TrimSpace(title[:idx])
	}

	doc.Find("header h1").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if text := strings.TrimSpace(s.Text()); text != "" && profile.Name == "" {
			profile.Name = text
			return false
		}
		return true
	})

	if market := doc.Find("[class*=market]").First().Text(); market != "" {
		profile.Market = strings.TrimSpace(market)
	}

	c.logger.WithFields(map[string]interface{}{
		"symbol": symbol,
		"name":   profile.Name,
	}).Debug("Fetched company profile")

	return profile, nil
}
