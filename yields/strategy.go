package yields

import (
	"math"
	"sort"
	"strings"

	"github.com/llamafetch/llama-mcp/query"
)

// RiskProfile selects the component weighting used by ScoreStrategies
type RiskProfile string

const (
	RiskConservative RiskProfile = "conservative"
	RiskBalanced     RiskProfile = "balanced"
	RiskAggressive   RiskProfile = "aggressive"
)

// ParseRiskProfile resolves a user-supplied profile name, defaulting to
// balanced for empty or unknown input
func ParseRiskProfile(value string) RiskProfile {
	switch RiskProfile(strings.ToLower(strings.TrimSpace(value))) {
	case RiskConservative:
		return RiskConservative
	case RiskAggressive:
		return RiskAggressive
	default:
		return RiskBalanced
	}
}

// ScoredPool is one pool with its composite strategy score (0-100)
type ScoredPool struct {
	Record query.Record
	Score  float64
}

type strategyWeights struct {
	apy         float64
	tvl         float64
	stability   float64
	ilPenalty   float64
	stableBonus float64
}

var profileWeights = map[RiskProfile]strategyWeights{
	RiskConservative: {apy: 0.2, tvl: 0.4, stability: 0.4, ilPenalty: 0.5, stableBonus: 0.1},
	RiskBalanced:     {apy: 0.4, tvl: 0.3, stability: 0.3, ilPenalty: 0.25, stableBonus: 0.05},
	RiskAggressive:   {apy: 0.7, tvl: 0.2, stability: 0.1, ilPenalty: 0.1, stableBonus: 0},
}

// ScoreStrategies ranks pools by a weighted composite of yield, depth and
// stability under the given risk profile, highest score first. Ties keep
// their input order
func ScoreStrategies(records []query.Record, profile RiskProfile) []ScoredPool {
	weights, ok := profileWeights[profile]
	if !ok {
		weights = profileWeights[RiskBalanced]
	}

	scored := make([]ScoredPool, 0, len(records))
	for _, record := range records {
		scored = append(scored, ScoredPool{
			Record: record,
			Score:  scorePool(record, weights),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

func scorePool(r query.Record, w strategyWeights) float64 {
	score := w.apy*apyComponent(r) + w.tvl*tvlComponent(r) + w.stability*stabilityComponent(r)

	if strings.EqualFold(r.Text("ilRisk"), "yes") {
		score *= 1 - w.ilPenalty
	}
	if r.Bool("stablecoin") {
		score += w.stableBonus
	}

	return math.Round(clamp01(score)*1000) / 10
}

// apyComponent saturates at 100% APY so outlier farm rates cannot drown
// the depth and stability components
func apyComponent(r query.Record) float64 {
	apy, ok := r.Number("apy")
	if !ok || apy <= 0 {
		return 0
	}
	return clamp01(apy / 100)
}

// tvlComponent is log-scaled: $1B locked scores 1.0, $1 scores 0
func tvlComponent(r query.Record) float64 {
	tvl, ok := r.Number("tvlUsd")
	if !ok || tvl <= 1 {
		return 0
	}
	return clamp01(math.Log10(tvl) / 9)
}

// stabilityComponent prefers pools whose yield does not swing. It reads
// the 30-day APY standard deviation when upstream provides it, falls back
// to distance from the 30-day mean, and scores unknown history neutrally
func stabilityComponent(r query.Record) float64 {
	if sigma, ok := r.Number("sigma"); ok {
		return 1 / (1 + math.Abs(sigma))
	}

	apy, hasAPY := r.Number("apy")
	mean, hasMean := r.Number("apyMean30d")
	if hasAPY && hasMean {
		spread := math.Abs(apy-mean) / math.Max(mean, 1)
		return 1 - clamp01(spread)
	}

	return 0.5
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
