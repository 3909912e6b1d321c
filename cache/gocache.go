package cache

import (
	"sort"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// entry wraps a cached payload with its store time so the bound pruner
// can evict oldest-first
type entry struct {
	data     []byte
	storedAt time.Time
}

// Store is an in-memory TTL payload store built on go-cache with an
// optional upper bound on entry count
type Store struct {
	cache      *gocache.Cache
	maxEntries int
}

// NewStore creates a new Store
// defaultExpiration: default TTL for payloads
// cleanupInterval: interval for physically removing expired payloads
// maxEntries: entry count bound, 0 disables
func NewStore(defaultExpiration, cleanupInterval time.Duration, maxEntries int) *Store {
	return &Store{
		cache:      gocache.New(defaultExpiration, cleanupInterval),
		maxEntries: maxEntries,
	}
}

// Get returns the payload for key if present and not expired
func (s *Store) Get(key string) ([]byte, bool) {
	value, found := s.cache.Get(key)
	if !found {
		return nil, false
	}
	e, ok := value.(entry)
	if !ok {
		return nil, false
	}
	return e.data, true
}

// Set stores a payload under key, overwriting any prior entry.
// If ttl is 0 the store default expiration is used
func (s *Store) Set(key string, data []byte, ttl time.Duration) {
	s.cache.Set(key, entry{data: data, storedAt: time.Now()}, ttl)
	s.enforceBound()
}

// Delete removes the entry for key
func (s *Store) Delete(key string) {
	s.cache.Delete(key)
}

// Clear removes all entries
func (s *Store) Clear() {
	s.cache.Flush()
}

// ItemCount returns the number of stored entries, including expired ones
// that have not been cleaned up yet
func (s *Store) ItemCount() int {
	return s.cache.ItemCount()
}

// enforceBound keeps the store within maxEntries: expired entries are
// removed first, then the oldest stored ones
func (s *Store) enforceBound() {
	if s.maxEntries <= 0 || s.cache.ItemCount() <= s.maxEntries {
		return
	}

	s.cache.DeleteExpired()

	excess := s.cache.ItemCount() - s.maxEntries
	if excess <= 0 {
		return
	}

	type keyedAge struct {
		key      string
		storedAt time.Time
	}

	aged := make([]keyedAge, 0, s.cache.ItemCount())
	for key, item := range s.cache.Items() {
		if e, ok := item.Object.(entry); ok {
			aged = append(aged, keyedAge{key: key, storedAt: e.storedAt})
		}
	}

	sort.Slice(aged, func(i, j int) bool {
		return aged[i].storedAt.Before(aged[j].storedAt)
	})

	for i := 0; i < excess && i < len(aged); i++ {
		s.cache.Delete(aged[i].key)
	}
}
