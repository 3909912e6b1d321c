package prices

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/llamafetch/llama-mcp/config"
	"github.com/llamafetch/llama-mcp/fetcher"
	"github.com/llamafetch/llama-mcp/metrics"
)

// Service fetches token prices from the coins API with read-through caching
type Service struct {
	fetcher         fetcher.Fetcher
	config          *config.Config
	successfulFetch atomic.Bool
}

// NewService creates a new prices service
func NewService(f fetcher.Fetcher, cfg *config.Config) *Service {
	return &Service{
		fetcher: f,
		config:  cfg,
	}
}

// Start implements core.Interface
func (s *Service) Start(ctx context.Context) error {
	if s.fetcher == nil {
		return fmt.Errorf("fetcher dependency not provided")
	}
	return nil
}

// Stop implements core.Interface
func (s *Service) Stop() {}

// Healthy reports whether at least one fetch succeeded
func (s *Service) Healthy() bool {
	return s.successfulFetch.Load()
}

// CurrentPrices returns current prices for a comma-separated coin list
// (contract addresses like "ethereum:0xA0b8...", coingecko ids like
// "coingecko:bitcoin", or plain symbols)
func (s *Service) CurrentPrices(ctx context.Context, coins, searchWidth string) ([]CoinPrice, error) {
	url := fmt.Sprintf("%s/prices/current/%s", s.config.Fetcher.CoinsAPIURL(), escapeCoins(coins))
	return s.fetchPrices(ctx, url, searchWidth)
}

// HistoricalPrices returns prices for a coin list at a point in time.
// timestamp accepts unix seconds or a YYYY-MM-DD date
func (s *Service) HistoricalPrices(ctx context.Context, timestamp, coins, searchWidth string) ([]CoinPrice, int64, error) {
	ts, err := ParseTimestamp(timestamp)
	if err != nil {
		return nil, 0, err
	}

	url := fmt.Sprintf("%s/prices/historical/%d/%s", s.config.Fetcher.CoinsAPIURL(), ts, escapeCoins(coins))
	entries, err := s.fetchPrices(ctx, url, searchWidth)
	if err != nil {
		return nil, 0, err
	}
	return entries, ts, nil
}

func (s *Service) fetchPrices(ctx context.Context, url, searchWidth string) ([]CoinPrice, error) {
	params := map[string]string{}
	if searchWidth != "" {
		params["searchWidth"] = searchWidth
	}

	desc := fetcher.NewDescriptor(url, params).
		ForService(metrics.ServicePrices).
		WithTTL(s.config.Prices.GetTTL(s.config.Fetcher.GetTTL()))

	raw, err := s.fetcher.Resolve(ctx, desc, true)
	if err != nil {
		return nil, err
	}

	entries, err := ParsePrices(raw)
	if err != nil {
		return nil, err
	}

	s.successfulFetch.Store(true)
	return entries, nil
}
