package config

import (
	"os"
	"strconv"
)

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv(cfg *Config) {
	if port := os.Getenv("GUARDIAND_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}

	if logLevel := os.Getenv("GUARDIAND_LOG_LEVEL"); logLevel != "" {
		cfg.Server.LogLevel = logLevel
	}

	if factor := os.Getenv("GUARDIAND_CURRENCY_FACTOR"); factor != "" {
		if f, err := strconv.ParseFloat(factor, 64); err == nil && f > 0 {
			cfg.Pricing.CurrencyFactor = f
		}
	}

	if threshold := os.Getenv("GUARDIAND_ROI_THRESHOLD"); threshold != "" {
		if f, err := strconv.ParseFloat(threshold, 64); err == nil && f > 0 {
			cfg.Pricing.ROIThreshold = f
		}
	}

	if seed := os.Getenv("GUARDIAND_SEED_PATH"); seed != "" {
		cfg.Data.SeedPath = seed
	}
}

// GetEnvOrDefault returns environment variable or default value
func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
