package store

import "time"

// RiskLevel buckets a health score or file criticality.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

// TierLevel represents storage tier levels.
type TierLevel string

const (
	TierHot     TierLevel = "HOT"
	TierWarm    TierLevel = "WARM"
	TierCold    TierLevel = "COLD"
	TierArchive TierLevel = "ARCHIVE"
)

// Drive is one physical drive with its latest SMART snapshot.
// HealthScore, RiskLevel and PredictedFailureDays are derived fields,
// recomputed from SMART on every read path that needs them.
type Drive struct {
	ID                   string             `yaml:"id" json:"id"`
	Name                 string             `yaml:"name" json:"name"`
	Type                 string             `yaml:"type" json:"type"`
	CapacityBytes        int64              `yaml:"capacity" json:"capacity"`
	UsedBytes            int64              `yaml:"used" json:"used"`
	HealthScore          float64            `yaml:"health_score" json:"health_score"`
	RiskLevel            RiskLevel          `yaml:"risk_level" json:"risk_level"`
	Temperature          int                `yaml:"temperature" json:"temperature"`
	PredictedFailureDays *int               `yaml:"predicted_failure_days" json:"predicted_failure_days"`
	SMART                map[string]float64 `yaml:"smart_data" json:"smart_data"`
	LastUpdated          time.Time          `yaml:"last_updated" json:"last_updated"`
}

// File is one tracked file with its access metadata. Tier is the file's
// current placement; recommended tiers are computed, never written back.
type File struct {
	ID           string    `yaml:"id" json:"id"`
	Name         string    `yaml:"name" json:"name"`
	Path         string    `yaml:"path" json:"path"`
	SizeBytes    int64     `yaml:"size" json:"size"`
	Extension    string    `yaml:"extension" json:"extension"`
	Tier         TierLevel `yaml:"tier" json:"tier"`
	AccessCount  int       `yaml:"access_count" json:"access_count"`
	LastAccessed time.Time `yaml:"last_accessed" json:"last_accessed"`
	Created      time.Time `yaml:"created" json:"created"`
	Modified     time.Time `yaml:"modified" json:"modified"`
	RiskLevel    RiskLevel `yaml:"risk_level" json:"risk_level"`
}

// Alert is a drive-health alert. Acknowledged is the only mutable
// persisted field in the system; the transition is one-way false->true.
type Alert struct {
	ID                string    `yaml:"id" json:"id"`
	DriveID           string    `yaml:"drive_id" json:"drive_id"`
	Severity          string    `yaml:"severity" json:"severity"`
	Message           string    `yaml:"message" json:"message"`
	RecommendedAction string    `yaml:"recommended_action" json:"recommended_action"`
	Timestamp         time.Time `yaml:"timestamp" json:"timestamp"`
	Acknowledged      bool      `yaml:"acknowledged" json:"acknowledged"`
}

// CloudPricing maps provider -> cloud tier name -> monthly cost per GB.
type CloudPricing map[string]map[string]float64

// Price looks up a provider/tier price. Missing entries return 0.
func (p CloudPricing) Price(provider, tier string) float64 {
	return p[provider][tier]
}

// StrategyEntry is one external strategy-catalog entry consumed by the
// optimizer. The catalog is configuration, not computed state.
type StrategyEntry struct {
	Key               string  `yaml:"key" json:"key"`
	Name              string  `yaml:"name" json:"name"`
	Description       string  `yaml:"description" json:"description"`
	CostMultiplier    float64 `yaml:"cost_multiplier" json:"cost_multiplier"`
	RiskReduction     float64 `yaml:"risk_reduction" json:"risk_reduction"`
	ReplicationFactor int     `yaml:"replication_factor" json:"replication_factor"`
	CloudTier         string  `yaml:"cloud_tier" json:"cloud_tier"`
	Compression       string  `yaml:"compression" json:"compression"`
}
