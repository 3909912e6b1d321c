package fetcher

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/llamafetch/llama-mcp/cache"
	"github.com/llamafetch/llama-mcp/config"
)

// StatusHandler observes request outcomes and cache results
type StatusHandler interface {
	// OnRequest handles one upstream request outcome
	OnRequest(service, status string, elapsed time.Duration)
	// OnCacheResult handles a resolve served from cache (hit) or one
	// that triggered an upstream fetch (miss)
	OnCacheResult(service string, hit bool)
}

// Fetcher resolves request descriptors to raw JSON payloads
//
//go:generate mockgen -destination=mock/fetcher.go -package=mock_fetcher . Fetcher
type Fetcher interface {
	// Resolve returns the JSON payload for desc. With useCache true, a
	// non-expired cached payload is returned without network access and
	// a fetched payload is stored; with useCache false the upstream is
	// always queried and the cache refreshed on success
	Resolve(ctx context.Context, desc Descriptor, useCache bool) (json.RawMessage, error)
}

// Client is the shared outbound HTTP client of the bridge: one long-lived
// http.Client, a self-throttle spacing outbound requests, and the shared
// response cache. Transport failures are not retried here; retry policy
// belongs to callers
type Client struct {
	httpClient    *http.Client
	limiter       *rate.Limiter
	cache         cache.Cache
	userAgent     string
	ttl           time.Duration
	statusHandler StatusHandler
	closeOnce     sync.Once
}

// NewClient creates the shared fetch client. responseCache may be shared
// with other components; handler is optional
func NewClient(cfg config.FetcherConfig, responseCache cache.Cache, handler StatusHandler) *Client {
	return &Client{
		// Redirects are followed by default
		httpClient:    &http.Client{Timeout: cfg.GetRequestTimeout()},
		limiter:       rate.NewLimiter(rate.Every(cfg.GetRequestDelay()), 1),
		cache:         responseCache,
		userAgent:     cfg.GetUserAgent(),
		ttl:           cfg.GetTTL(),
		statusHandler: handler,
	}
}

// Resolve implements Fetcher
func (c *Client) Resolve(ctx context.Context, desc Descriptor, useCache bool) (json.RawMessage, error) {
	key := desc.CacheKey()
	ttl := desc.TTL
	if ttl <= 0 {
		ttl = c.ttl
	}

	if useCache {
		fetched := false
		data, err := c.cache.GetOrLoad(key, func() ([]byte, error) {
			fetched = true
			return c.fetch(ctx, desc)
		}, ttl)
		if err != nil {
			return nil, err
		}

		if c.statusHandler != nil {
			c.statusHandler.OnCacheResult(desc.Service, !fetched)
		}
		return json.RawMessage(data), nil
	}

	// Explicit refresh: always fetch, then overwrite whatever was cached
	if c.statusHandler != nil {
		c.statusHandler.OnCacheResult(desc.Service, false)
	}
	data, err := c.fetch(ctx, desc)
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, data, ttl)

	return json.RawMessage(data), nil
}

// Close releases the shared HTTP client. Safe for repeated calls and
// for clients that never issued a request
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		c.httpClient.CloseIdleConnections()
	})
}

// Start implements core.Interface
func (c *Client) Start(ctx context.Context) error {
	return nil
}

// Stop implements core.Interface
func (c *Client) Stop() {
	c.Close()
}

// fetch performs one throttled GET and applies the failure taxonomy
func (c *Client) fetch(ctx context.Context, desc Descriptor) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &RequestError{URL: desc.URL, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, desc.RequestURL(), nil)
	if err != nil {
		return nil, &RequestError{URL: desc.URL, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)

	if err != nil {
		c.recordRequest(desc.Service, "error", elapsed)
		return nil, &RequestError{URL: desc.URL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.recordRequest(desc.Service, "error", elapsed)
		return nil, &RequestError{URL: desc.URL, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.recordRequest(desc.Service, "http_error", elapsed)
		return nil, &HTTPStatusError{Status: resp.StatusCode, Body: string(body)}
	}

	if len(body) == 0 {
		c.recordRequest(desc.Service, "empty", elapsed)
		return nil, &EmptyResponseError{URL: desc.URL}
	}

	var probe interface{}
	if err := json.Unmarshal(body, &probe); err != nil {
		c.recordRequest(desc.Service, "malformed", elapsed)
		return nil, &MalformedPayloadError{URL: desc.URL, Err: err}
	}

	c.recordRequest(desc.Service, "success", elapsed)
	log.Printf("Fetcher: GET %s returned %.2f KB in %.2fs", desc.URL, float64(len(body))/1024, elapsed.Seconds())

	return body, nil
}

func (c *Client) recordRequest(service, status string, elapsed time.Duration) {
	if c.statusHandler != nil {
		c.statusHandler.OnRequest(service, status, elapsed)
	}
}
