package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llamafetch/llama-mcp/cache"
	"github.com/llamafetch/llama-mcp/config"
)

func newTestClient(t *testing.T, cfg config.FetcherConfig) *Client {
	t.Helper()
	if cfg.RequestDelay == 0 {
		// Keep tests fast
		cfg.RequestDelay = time.Millisecond
	}
	client := NewClient(cfg, cache.NewService(cache.DefaultCacheConfig()), nil)
	t.Cleanup(client.Close)
	return client
}

func TestClient_Resolve_Success(t *testing.T) {
	var gotUserAgent atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent.Store(r.Header.Get("User-Agent"))
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := newTestClient(t, config.FetcherConfig{UserAgent: "test-agent/1.0"})

	data, err := client.Resolve(context.Background(), NewDescriptor(server.URL, nil), true)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(data))
	assert.Equal(t, "test-agent/1.0", gotUserAgent.Load())
}

func TestClient_Resolve_CachesByDescriptor(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`[1,2,3]`))
	}))
	defer server.Close()

	client := newTestClient(t, config.FetcherConfig{})
	ctx := context.Background()

	_, err := client.Resolve(ctx, NewDescriptor(server.URL, map[string]string{"a": "1", "b": "2"}), true)
	require.NoError(t, err)

	// Same logical parameters in a different insertion order hit the same entry
	_, err = client.Resolve(ctx, NewDescriptor(server.URL, map[string]string{"b": "2", "a": "1"}), true)
	require.NoError(t, err)

	assert.Equal(t, int32(1), hits.Load())
}

func TestClient_Resolve_TTLExpiry(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(t, config.FetcherConfig{TTL: 40 * time.Millisecond})
	ctx := context.Background()
	desc := NewDescriptor(server.URL, nil)

	_, err := client.Resolve(ctx, desc, true)
	require.NoError(t, err)

	// Hit just before the TTL elapses
	_, err = client.Resolve(ctx, desc, true)
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())

	time.Sleep(60 * time.Millisecond)

	// Miss once the TTL has elapsed
	_, err = client.Resolve(ctx, desc, true)
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestClient_Resolve_RefreshOverwritesCache(t *testing.T) {
	var version atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if version.Load() == 0 {
			w.Write([]byte(`{"version":1}`))
		} else {
			w.Write([]byte(`{"version":2}`))
		}
	}))
	defer server.Close()

	client := newTestClient(t, config.FetcherConfig{})
	ctx := context.Background()
	desc := NewDescriptor(server.URL, nil)

	data, err := client.Resolve(ctx, desc, true)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":1}`, string(data))

	version.Store(1)

	// Cached entry still serves the old payload
	data, err = client.Resolve(ctx, desc, true)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":1}`, string(data))

	// Explicit refresh bypasses and overwrites the live entry
	data, err = client.Resolve(ctx, desc, false)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":2}`, string(data))

	// Subsequent cached reads see the refreshed payload
	data, err = client.Resolve(ctx, desc, true)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":2}`, string(data))
}

func TestClient_Resolve_HTTPStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(t, config.FetcherConfig{})

	_, err := client.Resolve(context.Background(), NewDescriptor(server.URL, nil), true)
	var statusErr *HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.Status)
	assert.Contains(t, statusErr.Body, "upstream exploded")
}

func TestClient_Resolve_EmptyResponseError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t, config.FetcherConfig{})

	_, err := client.Resolve(context.Background(), NewDescriptor(server.URL, nil), true)
	var emptyErr *EmptyResponseError
	assert.ErrorAs(t, err, &emptyErr)
}

func TestClient_Resolve_MalformedPayloadError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := newTestClient(t, config.FetcherConfig{})

	_, err := client.Resolve(context.Background(), NewDescriptor(server.URL, nil), true)
	var malformedErr *MalformedPayloadError
	assert.ErrorAs(t, err, &malformedErr)
}

func TestClient_Resolve_RequestError(t *testing.T) {
	// Grab a port that nothing listens on
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := server.URL
	server.Close()

	client := newTestClient(t, config.FetcherConfig{})

	_, err := client.Resolve(context.Background(), NewDescriptor(deadURL, nil), true)
	var reqErr *RequestError
	assert.ErrorAs(t, err, &reqErr)
}

func TestClient_Resolve_FailuresAreNotCached(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			http.Error(w, "flaky", http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := newTestClient(t, config.FetcherConfig{})
	ctx := context.Background()
	desc := NewDescriptor(server.URL, nil)

	_, err := client.Resolve(ctx, desc, true)
	assert.Error(t, err)

	data, err := client.Resolve(ctx, desc, true)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(data))
	assert.Equal(t, int32(2), hits.Load())
}

func TestClient_Close_Idempotent(t *testing.T) {
	client := NewClient(config.FetcherConfig{}, cache.NewService(cache.DefaultCacheConfig()), nil)

	// Teardown must not panic, even repeated and without any prior request
	client.Close()
	client.Close()
}
