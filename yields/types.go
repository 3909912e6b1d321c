package yields

import (
	"time"

	"github.com/llamafetch/llama-mcp/query"
)

// ChartPoint is one historical data point of a yield pool
type ChartPoint struct {
	Timestamp    time.Time
	HasTimestamp bool
	APY          float64
	HasAPY       bool
	TVLUsd       float64
	HasTVL       bool
}

// chartPointFromRecord converts one chart row, degrading missing or
// malformed fields instead of failing the batch
func chartPointFromRecord(r query.Record) ChartPoint {
	point := ChartPoint{}

	point.APY, point.HasAPY = r.Number("apy")
	point.TVLUsd, point.HasTVL = r.Number("tvlUsd")

	// The chart endpoint has returned both RFC3339 strings and unix
	// seconds over time
	if ts, ok := r.Number("timestamp"); ok {
		point.Timestamp = time.Unix(int64(ts), 0).UTC()
		point.HasTimestamp = true
	} else if text := r.Text("timestamp"); text != "" {
		if parsed, err := time.Parse(time.RFC3339, text); err == nil {
			point.Timestamp = parsed.UTC()
			point.HasTimestamp = true
		}
	}

	return point
}
