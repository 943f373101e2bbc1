package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, 1.0, cfg.Pricing.CurrencyFactor)
	assert.Equal(t, 1.5, cfg.Pricing.ROIThreshold)
	assert.Equal(t, 0.023, cfg.Pricing.StorageCostPerGBMonth)
}

func TestLoad_YAMLOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
server:
  port: 9100
pricing:
  currency_factor: 83
  roi_threshold: 2.0
data:
  seed_path: /etc/guardiand/fleet.yaml
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, 83.0, cfg.Pricing.CurrencyFactor)
	assert.Equal(t, 2.0, cfg.Pricing.ROIThreshold)
	assert.Equal(t, "/etc/guardiand/fleet.yaml", cfg.Data.SeedPath)
	// Untouched keys keep their defaults.
	assert.Equal(t, 2.0, cfg.Pricing.ComputeCostPerHour)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	t.Setenv("GUARDIAND_PORT", "9200")
	t.Setenv("GUARDIAND_ROI_THRESHOLD", "3.5")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 9200, cfg.Server.Port)
	assert.Equal(t, 3.5, cfg.Pricing.ROIThreshold)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/does/not/exist.yaml")
	assert.Error(t, err)
}
