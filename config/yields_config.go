package config

import (
	"fmt"
	"time"
)

// WarmerConfig configures the periodic cache warmer for the pools endpoint
type WarmerConfig struct {
	// Enabled whether the warmer runs at all
	Enabled bool `yaml:"enabled"`

	// Interval refresh interval; must exceed the request delay
	Interval time.Duration `yaml:"interval"`
}

// YieldsFetcherConfig configures the yields.llama.fi service
type YieldsFetcherConfig struct {
	// TTL overrides the fetcher default TTL for yields responses
	TTL time.Duration `yaml:"ttl"`

	// DefaultLimit result cap applied when a tool call passes none
	DefaultLimit int `yaml:"default_limit"`

	Warmer WarmerConfig `yaml:"warmer"`
}

// Validate validates the yields configuration
func (c *YieldsFetcherConfig) Validate() error {
	if c.Warmer.Enabled && c.Warmer.Interval <= 0 {
		return fmt.Errorf("warmer interval must be greater than 0 when the warmer is enabled")
	}
	if c.DefaultLimit < 0 {
		return fmt.Errorf("default_limit cannot be negative, got %d", c.DefaultLimit)
	}
	return nil
}

// GetTTL returns the yields TTL, falling back to fallback when unset
func (c *YieldsFetcherConfig) GetTTL(fallback time.Duration) time.Duration {
	if c.TTL > 0 {
		return c.TTL
	}
	return fallback
}

// GetDefaultLimit returns the configured result cap or 20, matching the
// upstream display default
func (c *YieldsFetcherConfig) GetDefaultLimit() int {
	if c.DefaultLimit > 0 {
		return c.DefaultLimit
	}
	return 20
}
