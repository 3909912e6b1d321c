package yields

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/llamafetch/llama-mcp/config"
	"github.com/llamafetch/llama-mcp/fetcher"
	"github.com/llamafetch/llama-mcp/metrics"
	"github.com/llamafetch/llama-mcp/query"
)

// PoolsQuery narrows and orders the pools collection. Zero values mean
// "no constraint"; Limit 0 falls back to the configured default and a
// negative Limit disables truncation
type PoolsQuery struct {
	MinTVL    float64
	MinAPY    float64
	MaxAPY    float64
	Chains    []string
	Protocols []string
	Symbols   []string
	SortBy    string
	Ascending bool
	Limit     int
}

// Service fetches yield pool data from the yields API with read-through
// caching and an optional background warmer for the pools collection
type Service struct {
	fetcher         fetcher.Fetcher
	config          *config.Config
	warmer          *Warmer
	successfulFetch atomic.Bool
}

// NewService creates a new yields service
func NewService(f fetcher.Fetcher, cfg *config.Config) *Service {
	service := &Service{
		fetcher: f,
		config:  cfg,
	}
	if cfg.Yields.Warmer.Enabled {
		service.warmer = NewWarmer(service, cfg.Yields.Warmer.Interval)
	}
	return service
}

// Start implements core.Interface
func (s *Service) Start(ctx context.Context) error {
	if s.fetcher == nil {
		return fmt.Errorf("fetcher dependency not provided")
	}
	if s.warmer != nil {
		s.warmer.Start(ctx)
	}
	return nil
}

// Stop implements core.Interface
func (s *Service) Stop() {
	if s.warmer != nil {
		s.warmer.Stop()
	}
}

// Healthy reports whether at least one fetch succeeded
func (s *Service) Healthy() bool {
	return s.successfulFetch.Load()
}

// Pools returns yield pools narrowed by q. Filters apply first, then the
// sort, then the limit; filter order never changes the result set
func (s *Service) Pools(ctx context.Context, q PoolsQuery) ([]query.Record, error) {
	records, err := s.fetchPools(ctx, true)
	if err != nil {
		return nil, err
	}

	records = query.ApplyFilters(records, q.filters())

	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = "tvl"
	}
	records = query.SortRecords(records, query.ResolveSortField(sortBy), q.Ascending)

	limit := q.Limit
	if limit == 0 {
		limit = s.config.Yields.GetDefaultLimit()
	}
	return query.Limit(records, limit), nil
}

// PoolChart returns the historical APY and TVL series for one pool id
func (s *Service) PoolChart(ctx context.Context, poolID string) ([]ChartPoint, error) {
	poolID = strings.TrimSpace(poolID)
	if poolID == "" {
		return nil, fmt.Errorf("pool id cannot be empty")
	}

	url := fmt.Sprintf("%s/chart/%s", s.config.Fetcher.YieldsAPIURL(), escapePoolID(poolID))
	raw, err := s.fetcher.Resolve(ctx, s.descriptor(url), true)
	if err != nil {
		return nil, err
	}

	records, err := query.UnwrapRecords(raw)
	if err != nil {
		return nil, err
	}

	points := make([]ChartPoint, 0, len(records))
	for _, record := range records {
		points = append(points, chartPointFromRecord(record))
	}

	s.successfulFetch.Store(true)
	return points, nil
}

// fetchPools loads the full pools collection. useCache=false forces an
// upstream round trip and overwrites the cached copy (warmer path)
func (s *Service) fetchPools(ctx context.Context, useCache bool) ([]query.Record, error) {
	url := fmt.Sprintf("%s/pools", s.config.Fetcher.YieldsAPIURL())
	raw, err := s.fetcher.Resolve(ctx, s.descriptor(url), useCache)
	if err != nil {
		return nil, err
	}

	records, err := query.UnwrapRecords(raw)
	if err != nil {
		return nil, err
	}

	s.successfulFetch.Store(true)
	return records, nil
}

func (s *Service) descriptor(url string) fetcher.Descriptor {
	return fetcher.NewDescriptor(url, nil).
		ForService(metrics.ServiceYields).
		WithTTL(s.config.Yields.GetTTL(s.config.Fetcher.GetTTL()))
}

func (q PoolsQuery) filters() []query.Filter {
	var filters []query.Filter
	if q.MinTVL > 0 {
		filters = append(filters, query.MinThreshold{Field: "tvlUsd", Value: q.MinTVL})
	}
	if q.MinAPY > 0 {
		filters = append(filters, query.MinThreshold{Field: "apy", Value: q.MinAPY})
	}
	if q.MaxAPY > 0 {
		filters = append(filters, query.MaxThreshold{Field: "apy", Value: q.MaxAPY})
	}
	if len(q.Chains) > 0 {
		filters = append(filters, query.Membership{Field: "chain", Values: q.Chains, Mode: query.MatchExact})
	}
	if len(q.Protocols) > 0 {
		filters = append(filters, query.Membership{Field: "project", Values: q.Protocols, Mode: query.MatchExact})
	}
	if len(q.Symbols) > 0 {
		filters = append(filters, query.Membership{Field: "symbol", Values: q.Symbols, Mode: query.MatchSubstring})
	}
	return filters
}

// escapePoolID percent-encodes a pool id for use in a URL path. Pool ids
// are UUIDs, so only the unreserved alphabet stays unescaped
func escapePoolID(id string) string {
	var b strings.Builder
	b.Grow(len(id))
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9',
			c == '-', c == '.', c == '_', c == '~':
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}
