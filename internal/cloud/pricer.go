package cloud

import (
	"math"
	"sort"
	"strings"

	"github.com/FairForge/guardiand/internal/store"
)

// Option is one cloud storage placement for a workload, priced for a
// concrete size.
type Option struct {
	Provider         string  `json:"provider"`
	Tier             string  `json:"tier"`
	MonthlyCostPerGB float64 `json:"monthly_cost_per_gb"`
	RetrievalTime    string  `json:"retrieval_time"`
	TotalCost        float64 `json:"total_cost"`
	SavingsPercent   float64 `json:"savings_percent"`
}

// candidate names a provider tier eligible for a storage tier.
type candidate struct {
	provider  string
	cloudTier string
	retrieval string
}

// tierCandidates is the fixed, ordered candidate list per tier. Prices
// come from the external pricing table at query time.
var tierCandidates = map[store.TierLevel][]candidate{
	store.TierHot: {
		{"aws", "standard", "Instant"},
		{"azure", "hot", "Instant"},
		{"gcp", "standard", "Instant"},
	},
	store.TierWarm: {
		{"aws", "intelligent_tiering", "Instant"},
		{"azure", "cool", "Instant"},
		{"gcp", "nearline", "Instant"},
	},
	store.TierCold: {
		{"aws", "glacier_instant", "3-5 hours"},
		{"azure", "archive", "12 hours"},
		{"gcp", "coldline", "Instant"},
	},
	store.TierArchive: {
		{"aws", "glacier_deep", "12-48 hours"},
		{"azure", "archive", "12 hours"},
		{"gcp", "archive", "Instant"},
	},
}

// Pricer ranks cloud placements by total monthly cost.
type Pricer struct {
	pricing  store.CloudPricing
	currency float64
}

// NewPricer creates a pricer over an external pricing table.
func NewPricer(pricing store.CloudPricing, currencyFactor float64) *Pricer {
	if currencyFactor <= 0 {
		currencyFactor = 1
	}
	return &Pricer{pricing: pricing, currency: currencyFactor}
}

// Options prices every candidate for the tier and returns them sorted
// ascending by total cost. Unknown tiers fall back to the COLD list.
// Savings are relative to the aws/standard baseline.
func (p *Pricer) Options(tier store.TierLevel, sizeGB float64) []Option {
	if sizeGB < 0 {
		sizeGB = 0
	}

	candidates, ok := tierCandidates[tier]
	if !ok {
		candidates = tierCandidates[store.TierCold]
	}
	baseline := p.pricing.Price("aws", "standard")

	options := make([]Option, 0, len(candidates))
	for _, c := range candidates {
		costPerGB := p.pricing.Price(c.provider, c.cloudTier)

		savings := 0.0
		if baseline > 0 {
			savings = (1 - costPerGB/baseline) * 100
		}

		options = append(options, Option{
			Provider:         strings.ToUpper(c.provider),
			Tier:             c.cloudTier,
			MonthlyCostPerGB: round2(costPerGB * p.currency),
			RetrievalTime:    c.retrieval,
			TotalCost:        round2(sizeGB * costPerGB * p.currency),
			SavingsPercent:   math.Round(savings*10) / 10,
		})
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].TotalCost < options[j].TotalCost
	})
	return options
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
