package fetcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescriptor_CacheKey_OrderIndependent(t *testing.T) {
	first := NewDescriptor("https://yields.llama.fi/pools", map[string]string{
		"a": "1",
		"b": "2",
	})
	second := NewDescriptor("https://yields.llama.fi/pools", map[string]string{
		"b": "2",
		"a": "1",
	})

	assert.Equal(t, first.CacheKey(), second.CacheKey())
	assert.Equal(t, "https://yields.llama.fi/pools?a=1&b=2", first.CacheKey())
}

func TestDescriptor_CacheKey_NoParams(t *testing.T) {
	desc := NewDescriptor("https://yields.llama.fi/pools", nil)
	assert.Equal(t, "https://yields.llama.fi/pools", desc.CacheKey())

	desc = NewDescriptor("https://yields.llama.fi/pools", map[string]string{})
	assert.Equal(t, "https://yields.llama.fi/pools", desc.CacheKey())
}

func TestDescriptor_CacheKey_DifferentValuesDiffer(t *testing.T) {
	first := NewDescriptor("https://coins.llama.fi/prices/current/x", map[string]string{"searchWidth": "4h"})
	second := NewDescriptor("https://coins.llama.fi/prices/current/x", map[string]string{"searchWidth": "6h"})

	assert.NotEqual(t, first.CacheKey(), second.CacheKey())
}

func TestDescriptor_CacheKey_EncodesValues(t *testing.T) {
	desc := NewDescriptor("https://example.org/api", map[string]string{"q": "a b&c"})
	assert.Equal(t, "https://example.org/api?q=a+b%26c", desc.CacheKey())
}

func TestDescriptor_ForService_DoesNotAffectKey(t *testing.T) {
	desc := NewDescriptor("https://yields.llama.fi/pools", map[string]string{"a": "1"})
	labeled := desc.ForService("yields")

	assert.Equal(t, desc.CacheKey(), labeled.CacheKey())
	assert.Equal(t, "yields", labeled.Service)
	assert.Empty(t, desc.Service)
}
