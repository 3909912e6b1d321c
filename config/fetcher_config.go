package config

import "time"

// DeFiLlama public API base URLs
const (
	DefaultTVLAPIURL    = "https://api.llama.fi"
	DefaultCoinsAPIURL  = "https://coins.llama.fi"
	DefaultYieldsAPIURL = "https://yields.llama.fi"
)

// FetcherConfig holds the process-wide constants of the fetch layer.
// Fixed at startup, no dynamic reconfiguration
type FetcherConfig struct {
	// TTL default time-to-live for cached responses
	TTL time.Duration `yaml:"ttl"`

	// RequestDelay self-throttle spacing between outbound requests
	RequestDelay time.Duration `yaml:"request_delay"`

	// RequestTimeout total timeout per outbound request
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// UserAgent identifying User-Agent header
	UserAgent string `yaml:"user_agent"`

	// Base URL overrides, used by tests and self-hosted mirrors
	OverrideTVLAPIURL    string `yaml:"override_tvl_api_url"`
	OverrideCoinsAPIURL  string `yaml:"override_coins_api_url"`
	OverrideYieldsAPIURL string `yaml:"override_yields_api_url"`
}

func (c FetcherConfig) GetTTL() time.Duration {
	if c.TTL > 0 {
		return c.TTL
	}
	return 300 * time.Second
}

func (c FetcherConfig) GetRequestDelay() time.Duration {
	if c.RequestDelay > 0 {
		return c.RequestDelay
	}
	return 100 * time.Millisecond
}

func (c FetcherConfig) GetRequestTimeout() time.Duration {
	if c.RequestTimeout > 0 {
		return c.RequestTimeout
	}
	return 30 * time.Second
}

func (c FetcherConfig) GetUserAgent() string {
	if c.UserAgent != "" {
		return c.UserAgent
	}
	return "DefiLlama-MCP-Server/1.0"
}

// TVLAPIURL returns the api.llama.fi base URL honoring overrides
func (c FetcherConfig) TVLAPIURL() string {
	if c.OverrideTVLAPIURL != "" {
		return c.OverrideTVLAPIURL
	}
	return DefaultTVLAPIURL
}

// CoinsAPIURL returns the coins.llama.fi base URL honoring overrides
func (c FetcherConfig) CoinsAPIURL() string {
	if c.OverrideCoinsAPIURL != "" {
		return c.OverrideCoinsAPIURL
	}
	return DefaultCoinsAPIURL
}

// YieldsAPIURL returns the yields.llama.fi base URL honoring overrides
func (c FetcherConfig) YieldsAPIURL() string {
	if c.OverrideYieldsAPIURL != "" {
		return c.OverrideYieldsAPIURL
	}
	return DefaultYieldsAPIURL
}
