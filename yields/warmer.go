package yields

import (
	"context"
	"log"
	"time"

	"github.com/llamafetch/llama-mcp/metrics"
	"github.com/llamafetch/llama-mcp/scheduler"
)

// Warmer keeps the pools collection warm by refetching it on a fixed
// interval, bypassing and overwriting the cached copy each cycle
type Warmer struct {
	service   *Service
	scheduler *scheduler.Scheduler

	// onRefresh, when set, runs after every warm cycle (tests)
	onRefresh func(count int, err error)
}

// NewWarmer creates a warmer refreshing the pools of service every interval
func NewWarmer(service *Service, interval time.Duration) *Warmer {
	warmer := &Warmer{service: service}
	warmer.scheduler = scheduler.New(interval, warmer.warm)
	return warmer
}

// Start begins periodic warming with an immediate first cycle
func (w *Warmer) Start(ctx context.Context) {
	w.scheduler.Start(ctx, true)
}

// Stop halts periodic warming and waits for an in-flight cycle
func (w *Warmer) Stop() {
	w.scheduler.Stop()
}

func (w *Warmer) warm(ctx context.Context) {
	start := time.Now()

	records, err := w.service.fetchPools(ctx, false)
	if err != nil {
		log.Printf("Warmer: pools refresh failed: %v", err)
	} else {
		metrics.RecordWarmCycle(metrics.ServiceYields, start)
	}

	if w.onRefresh != nil {
		w.onRefresh(len(records), err)
	}
}
