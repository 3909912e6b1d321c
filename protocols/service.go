package protocols

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/llamafetch/llama-mcp/config"
	"github.com/llamafetch/llama-mcp/fetcher"
	"github.com/llamafetch/llama-mcp/metrics"
	"github.com/llamafetch/llama-mcp/query"
)

// ProtocolsQuery narrows and orders the protocols collection. Zero
// values mean "no constraint"
type ProtocolsQuery struct {
	MinTVL     float64
	Chains     []string
	Categories []string
	SortBy     string
	Ascending  bool
	Limit      int
}

// Service fetches protocol and chain TVL data from the TVL API
type Service struct {
	fetcher         fetcher.Fetcher
	config          *config.Config
	successfulFetch atomic.Bool
}

// NewService creates a new protocols service
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

// Protocols returns protocols narrowed by q. Filters apply first, then
// the sort, then the limit
func (s *Service) Protocols(ctx context.Context, q ProtocolsQuery) ([]query.Record, error) {
	url := fmt.Sprintf("%s/protocols", s.config.Fetcher.TVLAPIURL())
	records, err := s.fetchRecords(ctx, url)
	if err != nil {
		return nil, err
	}

	records = query.ApplyFilters(records, q.filters())

	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = "tvl"
	}
	records = query.SortRecords(records, sortBy, q.Ascending)

	return query.Limit(records, q.Limit), nil
}

// ProtocolTVL returns the current total value locked of one protocol in
// USD. The endpoint answers with a bare JSON number
func (s *Service) ProtocolTVL(ctx context.Context, slug string) (float64, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return 0, fmt.Errorf("protocol slug cannot be empty")
	}

	url := fmt.Sprintf("%s/tvl/%s", s.config.Fetcher.TVLAPIURL(), escapeSlug(slug))
	raw, err := s.fetcher.Resolve(ctx, s.descriptor(url), true)
	if err != nil {
		return 0, err
	}

	var tvl float64
	if err := json.Unmarshal(raw, &tvl); err != nil {
		return 0, fmt.Errorf("tvl payload for %q is not a number: %w", slug, err)
	}

	s.successfulFetch.Store(true)
	return tvl, nil
}

// Chains returns current TVL per chain, largest first
func (s *Service) Chains(ctx context.Context) ([]query.Record, error) {
	url := fmt.Sprintf("%s/v2/chains", s.config.Fetcher.TVLAPIURL())
	records, err := s.fetchRecords(ctx, url)
	if err != nil {
		return nil, err
	}
	return query.SortRecords(records, "tvl", false), nil
}

func (s *Service) fetchRecords(ctx context.Context, url string) ([]query.Record, error) {
	raw, err := s.fetcher.Resolve(ctx, s.descriptor(url), true)
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
		ForService(metrics.ServiceProtocols).
		WithTTL(s.config.Protocols.GetTTL(s.config.Fetcher.GetTTL()))
}

func (q ProtocolsQuery) filters() []query.Filter {
	var filters []query.Filter
	if q.MinTVL > 0 {
		filters = append(filters, query.MinThreshold{Field: "tvl", Value: q.MinTVL})
	}
	if len(q.Chains) > 0 {
		filters = append(filters, query.Membership{Field: "chain", Values: q.Chains, Mode: query.MatchExact})
	}
	if len(q.Categories) > 0 {
		filters = append(filters, query.Membership{Field: "category", Values: q.Categories, Mode: query.MatchExact})
	}
	return filters
}

// escapeSlug percent-encodes a protocol slug for use in a URL path
func escapeSlug(slug string) string {
	var b strings.Builder
	b.Grow(len(slug))
	for i := 0; i < len(slug); i++ {
		c := slug[i]
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
