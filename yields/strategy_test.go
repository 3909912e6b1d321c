package yields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llamafetch/llama-mcp/query"
)

func TestParseRiskProfile(t *testing.T) {
	assert.Equal(t, RiskConservative, ParseRiskProfile("conservative"))
	assert.Equal(t, RiskConservative, ParseRiskProfile(" Conservative "))
	assert.Equal(t, RiskAggressive, ParseRiskProfile("aggressive"))
	assert.Equal(t, RiskBalanced, ParseRiskProfile("balanced"))
	assert.Equal(t, RiskBalanced, ParseRiskProfile(""))
	assert.Equal(t, RiskBalanced, ParseRiskProfile("yolo"))
}

func TestScoreStrategies_OrdersHighestFirst(t *testing.T) {
	records := []query.Record{
		{"pool": "deep-stable", "apy": 4.0, "tvlUsd": 1e9, "sigma": 0.1, "stablecoin": true, "ilRisk": "no"},
		{"pool": "shallow-farm", "apy": 250.0, "tvlUsd": 50000.0, "sigma": 40.0, "ilRisk": "yes"},
	}

	scored := ScoreStrategies(records, RiskConservative)
	require.Len(t, scored, 2)

	assert.Equal(t, "deep-stable", scored[0].Record.Text("pool"))
	assert.Equal(t, "shallow-farm", scored[1].Record.Text("pool"))
	assert.Greater(t, scored[0].Score, scored[1].Score)
}

func TestScoreStrategies_ProfileChangesRanking(t *testing.T) {
	records := []query.Record{
		{"pool": "safe", "apy": 3.0, "tvlUsd": 5e9, "sigma": 0.05, "stablecoin": true, "ilRisk": "no"},
		{"pool": "hot", "apy": 95.0, "tvlUsd": 2e6, "sigma": 15.0, "ilRisk": "no"},
	}

	conservative := ScoreStrategies(records, RiskConservative)
	assert.Equal(t, "safe", conservative[0].Record.Text("pool"))

	aggressive := ScoreStrategies(records, RiskAggressive)
	assert.Equal(t, "hot", aggressive[0].Record.Text("pool"))
}

func TestScoreStrategies_ImpermanentLossPenalty(t *testing.T) {
	base := query.Record{"apy": 10.0, "tvlUsd": 1e8, "sigma": 1.0}
	risky := query.Record{"apy": 10.0, "tvlUsd": 1e8, "sigma": 1.0, "ilRisk": "yes"}

	scored := ScoreStrategies([]query.Record{base, risky}, RiskBalanced)
	require.Len(t, scored, 2)

	assert.Less(t, scored[1].Score, scored[0].Score)
	assert.Nil(t, scored[0].Record["ilRisk"])
}

func TestScoreStrategies_APYSaturatesAtHundred(t *testing.T) {
	moderate := query.Record{"pool": "a", "apy": 100.0, "tvlUsd": 1e6, "sigma": 1.0}
	extreme := query.Record{"pool": "b", "apy": 100000.0, "tvlUsd": 1e6, "sigma": 1.0}

	scored := ScoreStrategies([]query.Record{moderate, extreme}, RiskAggressive)
	assert.Equal(t, scored[0].Score, scored[1].Score)
	// Equal scores keep input order
	assert.Equal(t, "a", scored[0].Record.Text("pool"))
}

func TestStabilityComponent(t *testing.T) {
	tests := []struct {
		name     string
		record   query.Record
		expected float64
	}{
		{name: "sigma zero is fully stable", record: query.Record{"sigma": 0.0}, expected: 1.0},
		{name: "sigma one halves", record: query.Record{"sigma": 1.0}, expected: 0.5},
		{name: "mean fallback", record: query.Record{"apy": 12.0, "apyMean30d": 10.0}, expected: 0.8},
		{name: "no history is neutral", record: query.Record{"apy": 12.0}, expected: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, stabilityComponent(tt.record), 1e-9)
		})
	}
}

func TestScoreStrategies_MissingFieldsStillScore(t *testing.T) {
	scored := ScoreStrategies([]query.Record{{"pool": "bare"}}, RiskBalanced)
	require.Len(t, scored, 1)
	assert.GreaterOrEqual(t, scored[0].Score, 0.0)
	assert.LessOrEqual(t, scored[0].Score, 100.0)
}
