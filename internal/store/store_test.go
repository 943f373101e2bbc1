package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Lookups(t *testing.T) {
	s := NewMemoryStore(DemoSeed())
	ctx := context.Background()

	t.Run("drive found", func(t *testing.T) {
		d, err := s.Drive(ctx, "drive-001")
		require.NoError(t, err)
		assert.Equal(t, "drive-001", d.ID)
	})

	t.Run("drive missing", func(t *testing.T) {
		_, err := s.Drive(ctx, "drive-999")
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
	})

	t.Run("file found", func(t *testing.T) {
		f, err := s.File(ctx, "file-001")
		require.NoError(t, err)
		assert.Equal(t, "sql", f.Extension)
	})

	t.Run("file missing", func(t *testing.T) {
		_, err := s.File(ctx, "nope")
		assert.True(t, IsNotFound(err))
	})
}

func TestMemoryStore_AcknowledgeAlert(t *testing.T) {
	s := NewMemoryStore(DemoSeed())
	ctx := context.Background()

	alerts := s.Alerts(ctx)
	require.NotEmpty(t, alerts)
	id := alerts[0].ID
	assert.False(t, alerts[0].Acknowledged)

	require.NoError(t, s.AcknowledgeAlert(ctx, id))

	// Idempotent: a second ack succeeds and the flag stays set.
	require.NoError(t, s.AcknowledgeAlert(ctx, id))

	for _, a := range s.Alerts(ctx) {
		if a.ID == id {
			assert.True(t, a.Acknowledged)
		}
	}

	err := s.AcknowledgeAlert(ctx, "missing-alert")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestMemoryStore_ReadsReturnSnapshots(t *testing.T) {
	s := NewMemoryStore(DemoSeed())
	ctx := context.Background()

	drives := s.Drives(ctx)
	drives[0].ID = "mutated"

	again := s.Drives(ctx)
	assert.NotEqual(t, "mutated", again[0].ID)
}

func TestCloudPricing_Price(t *testing.T) {
	p := DemoSeed().CloudPricing
	assert.Equal(t, 0.023, p.Price("aws", "standard"))
	assert.Zero(t, p.Price("aws", "no-such-tier"))
	assert.Zero(t, p.Price("no-such-provider", "standard"))
}
