// internal/adapters/websearch/client.go
package websearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"stayfinder/internal/adapters/observability"
	"stayfinder/internal/domain"
)

// Client talks to a Tavily-style web search provider. Calls are rate limited
// and never retried: a failed fallback degrades the request to local results,
// it never blocks it.
type Client struct {
	base       string
	key        string
	maxResults int
	hc         *http.Client
	rl         *rate.Limiter
}

func New(base, key string, maxResults, rps int, timeout time.Duration) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if maxResults <= 0 {
		maxResults = 15
	}
	if rps <= 0 {
		rps = 5
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		base:       strings.TrimRight(base, "/"),
		key:        key,
		maxResults: maxResults,
		hc:         &http.Client{Timeout: timeout},
		rl:         rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// BuildQuery renders the provider query string from the Filter's present
// fields. Deterministic: the same Filter always yields the same string.
func BuildQuery(f domain.Filter) string {
	var parts []string
	if f.City != nil {
		parts = append(parts, *f.City)
	}
	if f.District != nil {
		parts = append(parts, *f.District)
	}
	if f.PropertyType != nil {
		parts = append(parts, string(*f.PropertyType))
	}
	// at most two feature terms keep the query focused
	for i, tag := range f.Features {
		if i == 2 {
			break
		}
		parts = append(parts, tag)
	}
	if f.PriceMax != nil {
		parts = append(parts, fmt.Sprintf("max %.0f TL", *f.PriceMax))
	}
	switch {
	case f.CheckInDate != nil && f.CheckOutDate != nil:
		parts = append(parts, f.CheckInDate.String()+" - "+f.CheckOutDate.String())
	case f.CheckInDate != nil:
		parts = append(parts, f.CheckInDate.String())
	}
	if f.GuestCount != nil {
		parts = append(parts, fmt.Sprintf("%d kişi", *f.GuestCount))
	}
	parts = append(parts, "konaklama Turkey")
	return strings.Join(parts, " ")
}

type searchRequest struct {
	APIKey      string `json:"api_key"`
	Query       string `json:"query"`
	SearchDepth string `json:"search_depth"`
	MaxResults  int    `json:"max_results"`
}

type searchResponse struct {
	Results []map[string]any `json:"results"`
}

// Search queries the provider and normalizes its hits. Any transport or
// provider failure maps onto ErrWebSearchUnavailable so the pipeline can
// absorb it; a successful call with zero usable hits returns an empty slice.
func (c *Client) Search(ctx context.Context, f domain.Filter) ([]domain.Result, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrWebSearchUnavailable, err)
	}

	body, err := json.Marshal(searchRequest{
		APIKey:      c.key,
		Query:       BuildQuery(f),
		SearchDepth: "basic",
		MaxResults:  c.maxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrWebSearchUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrWebSearchUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "stayfinder/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("websearch", "search", 0, time.Since(start))
		return nil, fmt.Errorf("%w: %v", domain.ErrWebSearchUnavailable, err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal("websearch", "search", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrWebSearchUnavailable, resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", domain.ErrWebSearchUnavailable, err)
	}

	results := make([]domain.Result, 0, len(sr.Results))
	for _, hit := range sr.Results {
		if r, ok := normalizeHit(hit, f); ok {
			results = append(results, r)
		}
	}
	return results, nil
}
