package store

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// SeedData is the YAML document a MemoryStore is built from. It carries
// the fleet records plus the external pricing and strategy configuration.
type SeedData struct {
	Drives       []Drive         `yaml:"drives"`
	Files        []File          `yaml:"files"`
	CloudPricing CloudPricing    `yaml:"cloud_pricing"`
	Strategies   []StrategyEntry `yaml:"tiering_strategies"`
	Alerts       []Alert         `yaml:"alerts"`
}

// LoadSeed reads and decodes a seed file.
func LoadSeed(path string) (*SeedData, error) {
	data, err := os.ReadFile(path) // #nosec G304 - operator-supplied path
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var seed SeedData
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("decode seed file %s: %w", path, err)
	}
	return &seed, nil
}

// DemoSeed returns a small built-in fleet so the server runs without a
// seed file: one healthy drive, one degraded, one failing, and files
// spread across tiers and extensions.
func DemoSeed() *SeedData {
	now := time.Now().UTC()
	day := 24 * time.Hour

	return &SeedData{
		Drives: []Drive{
			{
				ID: "drive-001", Name: "WD Red Pro 8TB", Type: "HDD",
				CapacityBytes: 8 << 40, UsedBytes: 5 << 40, Temperature: 36,
				SMART: map[string]float64{
					"reallocated_sector_ct": 0,
					"seek_error_rate":       100,
					"power_on_hours":        8200,
					"raw_read_error_rate":   2,
					"udma_crc_errors":       0,
					"pending_sectors":       0,
				},
				LastUpdated: now,
			},
			{
				ID: "drive-002", Name: "Seagate IronWolf 4TB", Type: "HDD",
				CapacityBytes: 4 << 40, UsedBytes: 3 << 40, Temperature: 44,
				SMART: map[string]float64{
					"reallocated_sector_ct": 24,
					"seek_error_rate":       82,
					"power_on_hours":        41000,
					"raw_read_error_rate":   55,
					"udma_crc_errors":       3,
					"pending_sectors":       8,
				},
				LastUpdated: now,
			},
			{
				ID: "drive-003", Name: "Samsung 870 EVO 2TB", Type: "SSD",
				CapacityBytes: 2 << 40, UsedBytes: 1 << 40, Temperature: 51,
				SMART: map[string]float64{
					"reallocated_sector_ct": 60,
					"seek_error_rate":       40,
					"power_on_hours":        62000,
					"raw_read_error_rate":   310,
					"udma_crc_errors":       14,
					"pending_sectors":       22,
				},
				LastUpdated: now,
			},
		},
		Files: []File{
			{
				ID: "file-001", Name: "orders.sql", Path: "/data/db/orders.sql",
				SizeBytes: 6 << 30, Extension: "sql", Tier: TierHot,
				AccessCount: 1800, LastAccessed: now.Add(-12 * time.Hour),
				Created: now.Add(-400 * day), Modified: now.Add(-day),
				RiskLevel: RiskCritical,
			},
			{
				ID: "file-002", Name: "app.log", Path: "/var/log/app.log",
				SizeBytes: 12 << 30, Extension: "log", Tier: TierHot,
				AccessCount: 40, LastAccessed: now.Add(-90 * day),
				Created: now.Add(-300 * day), Modified: now.Add(-90 * day),
				RiskLevel: RiskLow,
			},
			{
				ID: "file-003", Name: "holiday.mp4", Path: "/media/holiday.mp4",
				SizeBytes: 9 << 30, Extension: "mp4", Tier: TierWarm,
				AccessCount: 3, LastAccessed: now.Add(-200 * day),
				Created: now.Add(-700 * day), Modified: now.Add(-700 * day),
				RiskLevel: RiskLow,
			},
			{
				ID: "file-004", Name: "telemetry.csv", Path: "/data/export/telemetry.csv",
				SizeBytes: 3 << 30, Extension: "csv", Tier: TierWarm,
				AccessCount: 450, LastAccessed: now.Add(-2 * day),
				Created: now.Add(-60 * day), Modified: now.Add(-2 * day),
				RiskLevel: RiskMedium,
			},
			{
				ID: "file-005", Name: "backup-2019.tar", Path: "/backup/backup-2019.tar",
				SizeBytes: 40 << 30, Extension: "tar", Tier: TierCold,
				AccessCount: 0, LastAccessed: now.Add(-600 * day),
				Created: now.Add(-2100 * day), Modified: now.Add(-2100 * day),
				RiskLevel: RiskLow,
			},
			{
				ID: "file-006", Name: "scan.jpg", Path: "/media/scan.jpg",
				SizeBytes: 200 << 20, Extension: "jpg", Tier: TierWarm,
				AccessCount: 12, LastAccessed: now.Add(-30 * day),
				Created: now.Add(-90 * day), Modified: now.Add(-90 * day),
				RiskLevel: RiskLow,
			},
			{
				ID: "file-007", Name: "ledger.json", Path: "/data/ledger.json",
				SizeBytes: 2 << 30, Extension: "json", Tier: TierCold,
				AccessCount: 900, LastAccessed: now.Add(-day),
				Created: now.Add(-150 * day), Modified: now.Add(-day),
				RiskLevel: RiskCritical,
			},
		},
		CloudPricing: CloudPricing{
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
		},
		Strategies: []StrategyEntry{
			{
				Key: "conservative", Name: "Conservative",
				Description:    "Keep data close, replicate heavily, compress lightly",
				CostMultiplier: 1.4, RiskReduction: 0.85, ReplicationFactor: 3,
				CloudTier: "standard", Compression: "light",
			},
			{
				Key: "balanced", Name: "Balanced",
				Description:    "Blend cost and durability with moderate tiering",
				CostMultiplier: 1.0, RiskReduction: 0.65, ReplicationFactor: 2,
				CloudTier: "intelligent_tiering", Compression: "medium",
			},
			{
				Key: "aggressive", Name: "Aggressive",
				Description:    "Push cold data deep and compress everything",
				CostMultiplier: 0.6, RiskReduction: 0.40, ReplicationFactor: 1,
				CloudTier: "glacier_instant", Compression: "heavy",
			},
		},
		Alerts: []Alert{
			{
				ID:                uuid.New().String(),
				DriveID:           "drive-003",
				Severity:          "critical",
				Message:           "Reallocated sector count climbing rapidly",
				RecommendedAction: "Back up critical files and schedule replacement",
				Timestamp:         now.Add(-2 * time.Hour),
			},
			{
				ID:                uuid.New().String(),
				DriveID:           "drive-002",
				Severity:          "high",
				Message:           "Pending sector count above threshold",
				RecommendedAction: "Run extended SMART self-test",
				Timestamp:         now.Add(-26 * time.Hour),
			},
		},
	}
}
