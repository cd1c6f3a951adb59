// Package exchange fetches the GBP->BRL conversion rate used by the
// commission summary.
package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Client looks up the current GBP->BRL rate over HTTPS and caches it. On any
// failure the fixed fallback rate is substituted and reported as such; there
// is no retry.
type Client struct {
	url      string
	fallback float64
	cacheTTL time.Duration
	http     *http.Client
	logger   *zap.Logger
	now      func() time.Time

	mu        sync.Mutex
	rate      float64
	fetchedAt time.Time
}

// New constructs a rate client. httpc may be nil, in which case a default
// client with a modest timeout is used.
func New(url string, fallback float64, cacheTTL time.Duration, httpc *http.Client, logger *zap.Logger) *Client {
	if httpc == nil {
		httpc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		url:      url,
		fallback: fallback,
		cacheTTL: cacheTTL,
		http:     httpc,
		logger:   logger,
		now:      time.Now,
	}
}

type ratesResponse struct {
	Rates map[string]float64 `json:"rates"`
}

// Rate returns the GBP->BRL rate, serving from cache when fresh. fallback
// reports that the fixed approximation was substituted after a failure.
func (c *Client) Rate(ctx context.Context) (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.rate != 0 && c.now().Sub(c.fetchedAt) < c.cacheTTL {
		return c.rate, false
	}

	rate, err := c.fetch(ctx)
	if err != nil {
		c.logger.Warn("exchange rate lookup failed, using fallback",
			zap.Float64("fallback", c.fallback), zap.Error(err))
		return c.fallback, true
	}
	c.rate = rate
	c.fetchedAt = c.now()
	return rate, false
}

func (c *Client) fetch(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return 0, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status %s", resp.Status)
	}
	var body ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, err
	}
	rate, ok := body.Rates["BRL"]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("response missing BRL rate")
	}
	return rate, nil
}
