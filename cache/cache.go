package cache

import "time"

// LoaderFunc loads the payload for a key that is missing from the cache
type LoaderFunc func() ([]byte, error)

// Cache interface for the shared response cache
//
//go:generate mockgen -destination=mocks/cache.go . Cache
type Cache interface {
	// GetOrLoad returns the cached payload for key, or loads it with loader
	// on a miss. Concurrent misses for the same key share a single load.
	//
	// Parameters:
	// - key: canonical request key
	// - loader: function invoked on cache miss
	// - ttl: time to live for the loaded payload; if 0, the cache default is used
	GetOrLoad(key string, loader LoaderFunc, ttl time.Duration) ([]byte, error)

	// Get returns the cached payload for key if present and not expired
	Get(key string) ([]byte, bool)

	// Set stores a payload under key, unconditionally overwriting any
	// prior entry, expired or not
	Set(key string, data []byte, ttl time.Duration)

	// Delete removes the entry for key
	Delete(key string)

	// ItemCount returns the number of entries currently stored
	ItemCount() int
}
