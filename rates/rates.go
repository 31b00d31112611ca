// Package rates fetches spot prices from the external rate API
// (/simple/price style).
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{baseURL: baseURL, http: &http.Client{Timeout: timeout}}
}

// Price returns the spot price of one coin (by rate-provider id) in the
// given fiat currency, e.g. Price(ctx, "bitcoin", "usd").
func (c *Client) Price(ctx context.Context, coinID, fiat string) (float64, error) {
	params := url.Values{}
	params.Set("ids", coinID)
	params.Set("vs_currencies", fiat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/simple/price?"+params.Encode(), nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to reach rate API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("rate API error (%d)", resp.StatusCode)
	}

	// {"bitcoin": {"usd": 64250.12}}
	var payload map[string]map[string]float64
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("failed to parse rate response: %w", err)
	}
	price, ok := payload[coinID][fiat]
	if !ok || price <= 0 {
		return 0, fmt.Errorf("no %s price for %s", fiat, coinID)
	}
	return price, nil
}
