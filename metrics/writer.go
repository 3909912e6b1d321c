package metrics

import (
	"log"
	"time"
)

// Recorder writes fetch-layer metrics. It satisfies the fetcher's
// StatusHandler interface
type Recorder struct{}

// NewRecorder creates a metrics recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// OnRequest records the outcome and latency of one upstream request
func (r *Recorder) OnRequest(service, status string, elapsed time.Duration) {
	UpstreamRequestsTotal.WithLabelValues(service, status).Inc()
	RequestLatencyHistogram.WithLabelValues(service).Observe(elapsed.Seconds())
}

// OnCacheResult records whether a resolve was served from cache
func (r *Recorder) OnCacheResult(service string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CacheRequestsTotal.WithLabelValues(service, result).Inc()
}

// RecordWarmCycle measures and records the duration of a cache warm cycle
func RecordWarmCycle(service string, start time.Time) {
	duration := time.Since(start)
	WarmCycleDuration.WithLabelValues(service).Observe(duration.Seconds())
	log.Printf("Metrics: %s warm cycle took %.2fs", service, duration.Seconds())
}
