package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsPrefix is the prefix used for all metrics
const MetricsPrefix = "llama_mcp_"

// Service constants
const (
	ServicePrices    = "prices"
	ServiceYields    = "yields"
	ServiceProtocols = "protocols"
)

var (
	// UpstreamRequestsTotal counts HTTP requests to DeFiLlama APIs
	// Cardinality: ~12 (3 services x 4 statuses)
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "upstream_requests_total",
			Help: "Total number of HTTP requests to DeFiLlama APIs per service",
		},
		[]string{"service", "status"},
	)

	// RequestLatencyHistogram tracks upstream request latency
	// Cardinality: ~3 (number of services)
	RequestLatencyHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "upstream_request_latency_seconds",
			Help: "Upstream HTTP request latency by service",
		},
		[]string{"service"},
	)

	// CacheRequestsTotal counts cache lookups by result
	// Cardinality: ~6 (3 services x hit/miss)
	CacheRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "cache_requests_total",
			Help: "Cache lookups by service and result",
		},
		[]string{"service", "result"},
	)

	// CacheSizeGauge tracks the number of entries in the shared cache
	CacheSizeGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricsPrefix + "cache_entries",
			Help: "Number of entries in the shared response cache",
		},
	)

	// WarmCycleDuration tracks the duration of cache warm cycles
	// Cardinality: ~1 (yields warmer)
	WarmCycleDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "warm_cycle_duration_seconds",
			Help: "Time taken to complete a cache warm cycle",
		},
		[]string{"service"},
	)
)
