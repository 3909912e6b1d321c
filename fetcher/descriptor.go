package fetcher

import (
	"net/url"
	"time"
)

// Descriptor identifies one upstream GET request: an endpoint URL plus
// optional query parameters. Descriptors are value objects, never mutated
// after construction; they exist to derive cache keys and build requests
type Descriptor struct {
	URL    string
	Params map[string]string

	// Service labels the owning service for metrics attribution.
	// Not part of the cache key
	Service string

	// TTL overrides the client default time-to-live for this payload.
	// Not part of the cache key
	TTL time.Duration
}

// NewDescriptor creates a descriptor for url with optional query parameters
func NewDescriptor(rawURL string, params map[string]string) Descriptor {
	return Descriptor{URL: rawURL, Params: params}
}

// ForService returns a copy of the descriptor labeled with the owning service
func (d Descriptor) ForService(service string) Descriptor {
	d.Service = service
	return d
}

// WithTTL returns a copy of the descriptor with a payload TTL override
func (d Descriptor) WithTTL(ttl time.Duration) Descriptor {
	d.TTL = ttl
	return d
}

// CacheKey canonizes the descriptor into a deterministic cache key:
// the URL followed by query parameters sorted lexicographically by key.
// Callers passing the same logical parameters in any insertion order
// produce the same key
func (d Descriptor) CacheKey() string {
	if len(d.Params) == 0 {
		return d.URL
	}

	values := url.Values{}
	for key, value := range d.Params {
		values.Set(key, value)
	}

	// url.Values.Encode sorts by key
	return d.URL + "?" + values.Encode()
}

// RequestURL builds the full request URL including the encoded query string
func (d Descriptor) RequestURL() string {
	return d.CacheKey()
}
