package cache

import "time"

// Config represents cache configuration
type Config struct {
	// DefaultExpiration default TTL for cached payloads.
	// If 0, DefaultCacheConfig values are used
	DefaultExpiration time.Duration `yaml:"default_expiration"`

	// CleanupInterval interval for physically removing expired payloads
	CleanupInterval time.Duration `yaml:"cleanup_interval"`

	// MaxEntries upper bound on the number of cached payloads.
	// When exceeded, expired entries are pruned first, then the oldest
	// stored ones. 0 disables the bound
	MaxEntries int `yaml:"max_entries"`
}

// DefaultCacheConfig returns default cache configuration
func DefaultCacheConfig() Config {
	return Config{
		DefaultExpiration: 5 * time.Minute,
		CleanupInterval:   10 * time.Minute,
		MaxEntries:        4096,
	}
}

// GetDefaultExpiration returns the configured TTL or the package default
func (c Config) GetDefaultExpiration() time.Duration {
	if c.DefaultExpiration > 0 {
		return c.DefaultExpiration
	}
	return DefaultCacheConfig().DefaultExpiration
}

// GetCleanupInterval returns the configured cleanup interval or the package default
func (c Config) GetCleanupInterval() time.Duration {
	if c.CleanupInterval > 0 {
		return c.CleanupInterval
	}
	return DefaultCacheConfig().CleanupInterval
}
