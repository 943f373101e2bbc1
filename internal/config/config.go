package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Pricing PricingConfig `yaml:"pricing"`
	Data    DataConfig    `yaml:"data"`
}

type ServerConfig struct {
	Port           int    `yaml:"port" default:"8000"`
	LogLevel       string `yaml:"log_level" default:"info"`
	RequestsPerSec int    `yaml:"requests_per_sec" default:"50"`
	Burst          int    `yaml:"burst" default:"100"`
}

// PricingConfig holds the runtime cost parameters the decision core
// consumes. Currency conversion is a pure multiplier; all base prices
// are USD per unit.
type PricingConfig struct {
	CurrencyFactor        float64 `yaml:"currency_factor" default:"1.0"`
	StorageCostPerGBMonth float64 `yaml:"storage_cost_per_gb_month" default:"0.023"`
	ComputeCostPerHour    float64 `yaml:"compute_cost_per_hour" default:"2.0"`
	ROIThreshold          float64 `yaml:"roi_threshold" default:"1.5"`
	ThroughputGBPerHour   float64 `yaml:"throughput_gb_per_hour" default:"2.0"`
}

type DataConfig struct {
	// SeedPath points at a YAML fleet seed file. Empty means the
	// built-in demo fleet.
	SeedPath string `yaml:"seed_path"`
}

// Default returns the standard configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           8000,
			LogLevel:       "info",
			RequestsPerSec: 50,
			Burst:          100,
		},
		Pricing: PricingConfig{
			CurrencyFactor:        1.0,
			StorageCostPerGBMonth: 0.023,
			ComputeCostPerHour:    2.0,
			ROIThreshold:          1.5,
			ThroughputGBPerHour:   2.0,
		},
	}
}

// Load reads a YAML config file over the defaults, then applies env
// overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 - operator-supplied path
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	LoadFromEnv(cfg)
	return cfg, nil
}
