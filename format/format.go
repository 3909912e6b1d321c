// Package format renders service results as markdown text for tool
// responses. All functions are pure transforms over already-fetched data
package format

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/llamafetch/llama-mcp/prices"
	"github.com/llamafetch/llama-mcp/query"
	"github.com/llamafetch/llama-mcp/yields"
)

// HumanUSD renders a dollar amount with a magnitude suffix: $1.2B, $3.4M,
// $5.6K, plain dollars below a thousand
func HumanUSD(amount float64) string {
	abs := math.Abs(amount)
	switch {
	case abs >= 1e9:
		return fmt.Sprintf("$%.2fB", amount/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("$%.2fM", amount/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("$%.2fK", amount/1e3)
	default:
		return fmt.Sprintf("$%.2f", amount)
	}
}

// Percent renders a percentage with two decimals
func Percent(value float64) string {
	return fmt.Sprintf("%.2f%%", value)
}

// UTCTime renders a unix timestamp as a compact UTC string
func UTCTime(ts int64) string {
	return time.Unix(ts, 0).UTC().Format("2006-01-02 15:04:05 UTC")
}

// Prices renders current or historical price entries, one bullet per coin
func Prices(entries []prices.CoinPrice) string {
	if len(entries) == 0 {
		return "No price data found for the requested coins."
	}

	var b strings.Builder
	for _, entry := range entries {
		label := entry.ID
		if entry.Symbol != "" {
			label = fmt.Sprintf("%s (%s)", entry.Symbol, entry.ID)
		}

		if !entry.HasPrice {
			fmt.Fprintf(&b, "- %s: price unavailable\n", label)
			continue
		}

		fmt.Fprintf(&b, "- %s: $%g", label, entry.Price)
		if entry.Confidence > 0 {
			fmt.Fprintf(&b, " (confidence %.2f)", entry.Confidence)
		}
		if entry.Timestamp > 0 {
			fmt.Fprintf(&b, " as of %s", UTCTime(entry.Timestamp))
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// Pools renders yield pool records, one bullet per pool
func Pools(records []query.Record) string {
	if len(records) == 0 {
		return "No pools matched the requested filters."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d pools:\n", len(records))
	for _, r := range records {
		fmt.Fprintf(&b, "- %s | %s on %s", poolLabel(r), r.Text("project"), orUnknown(r.Text("chain")))

		if apy, ok := r.Number("apy"); ok {
			fmt.Fprintf(&b, " | APY %s", Percent(apy))
		}
		if tvl, ok := r.Number("tvlUsd"); ok {
			fmt.Fprintf(&b, " | TVL %s", HumanUSD(tvl))
		}
		if id := r.Text("pool"); id != "" {
			fmt.Fprintf(&b, " | id %s", id)
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// ChartPoints renders the most recent tail points of a pool history,
// oldest first. tail <= 0 renders everything
func ChartPoints(points []yields.ChartPoint, tail int) string {
	if len(points) == 0 {
		return "No chart data found for this pool."
	}

	if tail > 0 && tail < len(points) {
		points = points[len(points)-tail:]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Last %d data points:\n", len(points))
	for _, p := range points {
		when := "unknown date"
		if p.HasTimestamp {
			when = p.Timestamp.Format("2006-01-02")
		}

		fmt.Fprintf(&b, "- %s:", when)
		if p.HasAPY {
			fmt.Fprintf(&b, " APY %s", Percent(p.APY))
		}
		if p.HasTVL {
			fmt.Fprintf(&b, " TVL %s", HumanUSD(p.TVLUsd))
		}
		if !p.HasAPY && !p.HasTVL {
			b.WriteString(" no data")
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// Protocols renders protocol records, one bullet per protocol
func Protocols(records []query.Record) string {
	if len(records) == 0 {
		return "No protocols matched the requested filters."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d protocols:\n", len(records))
	for _, r := range records {
		fmt.Fprintf(&b, "- %s", orUnknown(r.Text("name")))
		if category := r.Text("category"); category != "" {
			fmt.Fprintf(&b, " (%s)", category)
		}
		if tvl, ok := r.Number("tvl"); ok {
			fmt.Fprintf(&b, " | TVL %s", HumanUSD(tvl))
		}
		if chain := r.Text("chain"); chain != "" {
			fmt.Fprintf(&b, " | %s", chain)
		}
		if slug := r.Text("slug"); slug != "" {
			fmt.Fprintf(&b, " | slug %s", slug)
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// Chains renders per-chain TVL records, one bullet per chain
func Chains(records []query.Record) string {
	if len(records) == 0 {
		return "No chain TVL data available."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "TVL across %d chains:\n", len(records))
	for _, r := range records {
		fmt.Fprintf(&b, "- %s", orUnknown(r.Text("name")))
		if tvl, ok := r.Number("tvl"); ok {
			fmt.Fprintf(&b, ": %s", HumanUSD(tvl))
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// Strategies renders scored pools, best first
func Strategies(scored []yields.ScoredPool, profile yields.RiskProfile) string {
	if len(scored) == 0 {
		return "No strategies matched the requested filters."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Top %d strategies (%s profile):\n", len(scored), profile)
	for i, s := range scored {
		r := s.Record
		fmt.Fprintf(&b, "%d. %s | %s on %s | score %.1f", i+1, poolLabel(r), r.Text("project"), orUnknown(r.Text("chain")), s.Score)

		if apy, ok := r.Number("apy"); ok {
			fmt.Fprintf(&b, " | APY %s", Percent(apy))
		}
		if tvl, ok := r.Number("tvlUsd"); ok {
			fmt.Fprintf(&b, " | TVL %s", HumanUSD(tvl))
		}
		if strings.EqualFold(r.Text("ilRisk"), "yes") {
			b.WriteString(" | IL risk")
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func poolLabel(r query.Record) string {
	if symbol := r.Text("symbol"); symbol != "" {
		return symbol
	}
	return "unnamed pool"
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
