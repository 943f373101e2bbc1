package cloud

import (
	"testing"

	"github.com/FairForge/guardiand/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPricing() store.CloudPricing {
	return store.CloudPricing{
		"aws": {
			"standard":            0.023,
			"intelligent_tiering": 0.0125,
			"glacier_instant":     0.004,
			"glacier_deep":        0.00099,
		},
		"azure": {
			"hot":     0.0184,
			"cool":    0.01,
			"archive": 0.00099,
		},
		"gcp": {
			"standard": 0.02,
			"nearline": 0.01,
			"coldline": 0.004,
			"archive":  0.0012,
		},
	}
}

func TestPricer_Options_SortedAscending(t *testing.T) {
	p := NewPricer(testPricing(), 1)

	for _, tier := range []store.TierLevel{store.TierHot, store.TierWarm, store.TierCold, store.TierArchive} {
		t.Run(string(tier), func(t *testing.T) {
			options := p.Options(tier, 100)
			require.Len(t, options, 3)
			for i := 1; i < len(options); i++ {
				assert.LessOrEqual(t, options[i-1].TotalCost, options[i].TotalCost)
			}
		})
	}
}

func TestPricer_Options_HotTier(t *testing.T) {
	p := NewPricer(testPricing(), 1)
	options := p.Options(store.TierHot, 100)
	require.Len(t, options, 3)

	// azure hot (0.0184) < gcp standard (0.02) < aws standard (0.023)
	assert.Equal(t, "AZURE", options[0].Provider)
	assert.InDelta(t, 1.84, options[0].TotalCost, 0.001)
	assert.Equal(t, "AWS", options[2].Provider)
	assert.InDelta(t, 2.30, options[2].TotalCost, 0.001)

	// aws standard is the savings baseline.
	assert.Zero(t, options[2].SavingsPercent)
	assert.Greater(t, options[0].SavingsPercent, 0.0)
}

func TestPricer_Options_UnknownTierFallsBackToCold(t *testing.T) {
	p := NewPricer(testPricing(), 1)

	unknown := p.Options(store.TierLevel("FROZEN"), 50)
	cold := p.Options(store.TierCold, 50)
	assert.Equal(t, cold, unknown)
}

func TestPricer_Options_CurrencyFactor(t *testing.T) {
	usd := NewPricer(testPricing(), 1).Options(store.TierArchive, 1000)
	inr := NewPricer(testPricing(), 83).Options(store.TierArchive, 1000)

	require.Len(t, inr, 3)
	for i := range usd {
		assert.InDelta(t, usd[i].TotalCost*83, inr[i].TotalCost, 0.5)
		// Savings are a pure ratio; currency cancels.
		assert.Equal(t, usd[i].SavingsPercent, inr[i].SavingsPercent)
	}
}

func TestPricer_Options_NegativeSizeClamped(t *testing.T) {
	options := NewPricer(testPricing(), 1).Options(store.TierHot, -10)
	require.Len(t, options, 3)
	for _, o := range options {
		assert.Zero(t, o.TotalCost)
	}
}

func TestPricer_Options_MissingPricingIsZero(t *testing.T) {
	options := NewPricer(store.CloudPricing{}, 1).Options(store.TierHot, 100)
	require.Len(t, options, 3)
	for _, o := range options {
		assert.Zero(t, o.TotalCost)
		assert.Zero(t, o.SavingsPercent)
	}
}
