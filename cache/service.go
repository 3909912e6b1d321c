package cache

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/llamafetch/llama-mcp/metrics"
)

// Service implements Cache with a bounded in-memory store and coalescing
// of concurrent loads for the same key
type Service struct {
	store  *Store
	group  singleflight.Group
	config Config
}

// NewService creates a new cache service with the given configuration
func NewService(config Config) *Service {
	store := NewStore(config.GetDefaultExpiration(), config.GetCleanupInterval(), config.MaxEntries)

	return &Service{
		store:  store,
		config: config,
	}
}

// Start implements core.Interface
func (s *Service) Start(ctx context.Context) error {
	if s.store == nil {
		return fmt.Errorf("cache service not properly initialized")
	}
	return nil
}

// Stop implements core.Interface. Safe to call when nothing was ever cached
func (s *Service) Stop() {
	if s.store != nil {
		s.store.Clear()
		metrics.CacheSizeGauge.Set(0)
	}
}

// GetOrLoad returns the cached payload for key, loading it with loader on
// a miss. Concurrent callers missing on the same key share one loader call
func (s *Service) GetOrLoad(key string, loader LoaderFunc, ttl time.Duration) ([]byte, error) {
	if data, found := s.store.Get(key); found {
		return data, nil
	}

	result, err, _ := s.group.Do(key, func() (interface{}, error) {
		// Another caller may have stored the payload while we waited
		if data, found := s.store.Get(key); found {
			return data, nil
		}

		data, err := loader()
		if err != nil {
			return nil, err
		}

		s.store.Set(key, data, ttl)
		metrics.CacheSizeGauge.Set(float64(s.store.ItemCount()))
		return data, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]byte), nil
}

// Get returns the cached payload for key if present and not expired
func (s *Service) Get(key string) ([]byte, bool) {
	return s.store.Get(key)
}

// Set stores a payload under key, unconditionally overwriting any prior entry
func (s *Service) Set(key string, data []byte, ttl time.Duration) {
	s.store.Set(key, data, ttl)
	metrics.CacheSizeGauge.Set(float64(s.store.ItemCount()))
}

// Delete removes the entry for key
func (s *Service) Delete(key string) {
	s.store.Delete(key)
	metrics.CacheSizeGauge.Set(float64(s.store.ItemCount()))
}

// Clear removes all entries
func (s *Service) Clear() {
	s.store.Clear()
	metrics.CacheSizeGauge.Set(0)
}

// ItemCount returns the number of stored entries
func (s *Service) ItemCount() int {
	return s.store.ItemCount()
}
