package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/llamafetch/llama-mcp/cache"
)

// Config is the root configuration of the bridge
type Config struct {
	Fetcher FetcherConfig `yaml:"fetcher"`
	Cache   cache.Config  `yaml:"cache"`

	Prices    PricesFetcherConfig    `yaml:"prices"`
	Yields    YieldsFetcherConfig    `yaml:"yields"`
	Protocols ProtocolsFetcherConfig `yaml:"protocols"`

	// OpsPort port for the health/metrics HTTP server; 0 disables it
	OpsPort int `yaml:"ops_port"`
}

// PricesFetcherConfig configures the coins.llama.fi service
type PricesFetcherConfig struct {
	TTL time.Duration `yaml:"ttl"`
}

// GetTTL returns the prices TTL, falling back to fallback when unset
func (c *PricesFetcherConfig) GetTTL(fallback time.Duration) time.Duration {
	if c.TTL > 0 {
		return c.TTL
	}
	return fallback
}

// ProtocolsFetcherConfig configures the api.llama.fi service
type ProtocolsFetcherConfig struct {
	TTL time.Duration `yaml:"ttl"`
}

// GetTTL returns the protocols TTL, falling back to fallback when unset
func (c *ProtocolsFetcherConfig) GetTTL(fallback time.Duration) time.Duration {
	if c.TTL > 0 {
		return c.TTL
	}
	return fallback
}

// DefaultConfig returns a configuration with all defaults applied
func DefaultConfig() *Config {
	return &Config{
		Cache: cache.DefaultCacheConfig(),
		Yields: YieldsFetcherConfig{
			Warmer: WarmerConfig{
				Enabled:  false,
				Interval: 10 * time.Minute,
			},
		},
		OpsPort: 8080,
	}
}

// LoadConfig reads the YAML config at path. A missing file is not an
// error: the bridge runs fine on defaults
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates all configuration sections
func (c *Config) Validate() error {
	if err := c.Yields.Validate(); err != nil {
		return fmt.Errorf("yields configuration validation failed: %w", err)
	}
	if c.OpsPort < 0 || c.OpsPort > 65535 {
		return fmt.Errorf("ops_port must be in [0, 65535], got %d", c.OpsPort)
	}
	return nil
}
