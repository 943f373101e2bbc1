package strategy

import (
	"math"
	"sort"

	"github.com/FairForge/guardiand/internal/store"
)

// RiskTolerance selects the caller's weight profile.
type RiskTolerance string

const (
	ToleranceConservative RiskTolerance = "conservative"
	ToleranceBalanced     RiskTolerance = "balanced"
	ToleranceAggressive   RiskTolerance = "aggressive"
)

// Weights is one scalarization weight profile. Lower weighted sums rank
// better.
type Weights struct {
	Cost    float64
	Risk    float64
	Latency float64
	User    float64
}

// weightProfiles encodes the caller preference per risk tolerance.
var weightProfiles = map[RiskTolerance]Weights{
	ToleranceConservative: {Cost: 0.30, Risk: 0.30, Latency: 0.20, User: 0.10},
	ToleranceBalanced:     {Cost: 0.35, Risk: 0.25, Latency: 0.15, User: 0.15},
	ToleranceAggressive:   {Cost: 0.40, Risk: 0.20, Latency: 0.15, User: 0.10},
}

// latencyNorms is the per-selector latency term. It depends only on the
// tolerance, not on the catalog entry being scored.
var latencyNorms = map[RiskTolerance]float64{
	ToleranceConservative: 0.3,
	ToleranceBalanced:     0.6,
	ToleranceAggressive:   0.9,
}

// neutralUserPref is the fixed user-preference term.
const neutralUserPref = 0.5

// Ranked is one scored catalog strategy.
type Ranked struct {
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	Score             float64 `json:"score"`
	MonthlyCost       float64 `json:"monthly_cost"`
	RiskReduction     float64 `json:"risk_reduction"`
	ReplicationFactor int     `json:"replication_factor"`
	CloudTier         string  `json:"cloud_tier"`
	CompressionLevel  string  `json:"compression_level"`
}

// Optimizer ranks the external strategy catalog by multi-objective
// linear scalarization. It is stateless: identical inputs always
// produce the identical ranked list.
type Optimizer struct {
	baseStoragePrice float64
	currency         float64
}

// NewOptimizer creates an optimizer. baseStoragePrice is the monthly
// per-GB price a cost multiplier of 1.0 refers to.
func NewOptimizer(baseStoragePrice, currencyFactor float64) *Optimizer {
	if baseStoragePrice <= 0 {
		baseStoragePrice = 0.023
	}
	if currencyFactor <= 0 {
		currencyFactor = 1
	}
	return &Optimizer{baseStoragePrice: baseStoragePrice, currency: currencyFactor}
}

// Rank scores every catalog entry for the given fleet size and risk
// tolerance and returns them sorted ascending by score (best first).
// Unknown tolerances score as balanced.
func (o *Optimizer) Rank(catalog []store.StrategyEntry, fleetGB float64, tolerance RiskTolerance) []Ranked {
	if fleetGB < 0 {
		fleetGB = 0
	}
	weights, ok := weightProfiles[tolerance]
	if !ok {
		tolerance = ToleranceBalanced
		weights = weightProfiles[tolerance]
	}
	latency := latencyNorms[tolerance]

	ranked := make([]Ranked, 0, len(catalog))
	for _, entry := range catalog {
		costNorm := entry.CostMultiplier
		riskNorm := 1 - entry.RiskReduction

		score := weights.Cost*costNorm +
			weights.Risk*riskNorm +
			weights.Latency*latency +
			weights.User*neutralUserPref

		monthlyCost := fleetGB * o.baseStoragePrice * entry.CostMultiplier * o.currency

		ranked = append(ranked, Ranked{
			Name:              entry.Name,
			Description:       entry.Description,
			Score:             math.Round(score*1000) / 1000,
			MonthlyCost:       math.Round(monthlyCost*100) / 100,
			RiskReduction:     math.Round(entry.RiskReduction*1000) / 10,
			ReplicationFactor: entry.ReplicationFactor,
			CloudTier:         entry.CloudTier,
			CompressionLevel:  entry.Compression,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score < ranked[j].Score
	})
	return ranked
}
