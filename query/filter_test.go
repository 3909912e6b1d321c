package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinThreshold(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		filter MinThreshold
		keep   bool
	}{
		{
			name:   "value above threshold is kept",
			record: Record{"tvlUsd": 2000000.0},
			filter: MinThreshold{Field: "tvlUsd", Value: 1000000},
			keep:   true,
		},
		{
			name:   "value equal to threshold is kept",
			record: Record{"tvlUsd": 1000000.0},
			filter: MinThreshold{Field: "tvlUsd", Value: 1000000},
			keep:   true,
		},
		{
			name:   "value below threshold is dropped",
			record: Record{"tvlUsd": 500000.0},
			filter: MinThreshold{Field: "tvlUsd", Value: 1000000},
			keep:   false,
		},
		{
			name:   "missing field reads as zero and is dropped by positive minimum",
			record: Record{},
			filter: MinThreshold{Field: "apy", Value: 5},
			keep:   false,
		},
		{
			name:   "non-numeric field reads as zero",
			record: Record{"apy": "high"},
			filter: MinThreshold{Field: "apy", Value: 5},
			keep:   false,
		},
		{
			name:   "missing field passes a zero minimum",
			record: Record{},
			filter: MinThreshold{Field: "apy", Value: 0},
			keep:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.keep, tt.filter.Keep(tt.record))
		})
	}
}

func TestMaxThreshold(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		filter MaxThreshold
		keep   bool
	}{
		{
			name:   "value below threshold is kept",
			record: Record{"apy": 3.5},
			filter: MaxThreshold{Field: "apy", Value: 5},
			keep:   true,
		},
		{
			name:   "value above threshold is dropped",
			record: Record{"apy": 9.0},
			filter: MaxThreshold{Field: "apy", Value: 5},
			keep:   false,
		},
		{
			name:   "missing field is dropped from max comparisons",
			record: Record{},
			filter: MaxThreshold{Field: "apy", Value: 5},
			keep:   false,
		},
		{
			name:   "non-numeric field is dropped from max comparisons",
			record: Record{"apy": "low"},
			filter: MaxThreshold{Field: "apy", Value: 5},
			keep:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.keep, tt.filter.Keep(tt.record))
		})
	}
}

func TestMembership(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		filter Membership
		keep   bool
	}{
		{
			name:   "exact match case-insensitive",
			record: Record{"chain": "Ethereum"},
			filter: Membership{Field: "chain", Values: []string{"ethereum"}, Mode: MatchExact},
			keep:   true,
		},
		{
			name:   "exact match rejects different chain",
			record: Record{"chain": "Polygon"},
			filter: Membership{Field: "chain", Values: []string{"ethereum", "arbitrum"}, Mode: MatchExact},
			keep:   false,
		},
		{
			name:   "substring match finds symbol in pair",
			record: Record{"symbol": "WETH-USDC"},
			filter: Membership{Field: "symbol", Values: []string{"usdc"}, Mode: MatchSubstring},
			keep:   true,
		},
		{
			name:   "substring match is case-insensitive",
			record: Record{"symbol": "weth-usdc"},
			filter: Membership{Field: "symbol", Values: []string{"WETH"}, Mode: MatchSubstring},
			keep:   true,
		},
		{
			name:   "substring match rejects absent symbol",
			record: Record{"symbol": "WBTC-DAI"},
			filter: Membership{Field: "symbol", Values: []string{"usdc"}, Mode: MatchSubstring},
			keep:   false,
		},
		{
			name:   "empty allowed set keeps everything",
			record: Record{"chain": "Solana"},
			filter: Membership{Field: "chain", Mode: MatchExact},
			keep:   true,
		},
		{
			name:   "missing field only matches nothing",
			record: Record{},
			filter: Membership{Field: "chain", Values: []string{"ethereum"}, Mode: MatchExact},
			keep:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.keep, tt.filter.Keep(tt.record))
		})
	}
}

func TestApplyFilters_Commutative(t *testing.T) {
	records := []Record{
		{"project": "A", "tvlUsd": 2000000.0, "chain": "Ethereum"},
		{"project": "B", "tvlUsd": 50.0, "chain": "Ethereum"},
		{"project": "C", "tvlUsd": 3000000.0, "chain": "Polygon"},
		{"project": "D", "tvlUsd": 150.0, "chain": "Polygon"},
	}

	minTVL := MinThreshold{Field: "tvlUsd", Value: 100}
	chains := Membership{Field: "chain", Values: []string{"eth", "ethereum"}, Mode: MatchExact}

	forward := ApplyFilters(records, []Filter{minTVL, chains})
	reversed := ApplyFilters(records, []Filter{chains, minTVL})

	assert.Equal(t, forward, reversed)
	assert.Len(t, forward, 1)
	assert.Equal(t, "A", forward[0].Text("project"))
}

func TestApplyFilters_NoFiltersReturnsInput(t *testing.T) {
	records := []Record{{"a": 1.0}, {"b": 2.0}}
	assert.Equal(t, records, ApplyFilters(records, nil))
}
