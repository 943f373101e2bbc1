package tiering

import (
	"testing"
	"time"

	"github.com/FairForge/guardiand/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestAccessClassifier_Classify(t *testing.T) {
	c := NewAccessClassifier()
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	t.Run("fresh busy file is hot", func(t *testing.T) {
		got := c.Classify(now.Add(-24*time.Hour), 2000, 1<<30, now)
		assert.Equal(t, store.TierHot, got.Tier)
		assert.Greater(t, got.Confidence, 0.5)
		assert.Equal(t, 1.0, got.FrequencyScore)
	})

	t.Run("stale untouched file is archive", func(t *testing.T) {
		got := c.Classify(now.Add(-420*24*time.Hour), 0, 40<<30, now)
		assert.Equal(t, store.TierArchive, got.Tier)
		assert.Zero(t, got.RecencyScore)
		assert.Zero(t, got.FrequencyScore)
	})

	t.Run("moderate file lands warm", func(t *testing.T) {
		got := c.Classify(now.Add(-100*24*time.Hour), 400, 5<<30, now)
		assert.Equal(t, store.TierWarm, got.Tier)
	})

	t.Run("confidence stays in range", func(t *testing.T) {
		cases := []struct {
			age   time.Duration
			count int
			size  int64
		}{
			{0, 0, 0},
			{time.Hour, 1000000, 1 << 40},
			{10000 * 24 * time.Hour, 0, 1},
		}
		for _, tc := range cases {
			got := c.Classify(now.Add(-tc.age), tc.count, tc.size, now)
			assert.GreaterOrEqual(t, got.Confidence, 0.0)
			assert.LessOrEqual(t, got.Confidence, 1.0)
		}
	})

	t.Run("future access timestamps clamp to zero days", func(t *testing.T) {
		got := c.Classify(now.Add(48*time.Hour), 2000, 1<<30, now)
		assert.Equal(t, 1.0, got.RecencyScore)
	})

	t.Run("deterministic for fixed now", func(t *testing.T) {
		a := c.Classify(now.Add(-30*24*time.Hour), 77, 3<<30, now)
		b := c.Classify(now.Add(-30*24*time.Hour), 77, 3<<30, now)
		assert.Equal(t, a, b)
	})
}
