package tiering

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/FairForge/guardiand/internal/smart"
	"github.com/FairForge/guardiand/internal/store"
	"go.uber.org/zap"
)

// Migration urgencies.
const (
	UrgencyImmediate = "IMMEDIATE"
	Urgency7Days     = "7_DAYS"
	Urgency30Days    = "30_DAYS"
)

// Drive health thresholds for the planner's override and urgency rules.
const (
	overrideHealthBelow = 50.0
	failingHealthBelow  = 40.0
)

// tierUnitCosts is the monthly cost per GB by tier, before currency
// conversion.
var tierUnitCosts = map[store.TierLevel]float64{
	store.TierHot:     0.023,
	store.TierWarm:    0.0125,
	store.TierCold:    0.004,
	store.TierArchive: 0.00099,
}

// Recommendation is one proposed tier migration. Recommendations are
// derived per request and never stored.
type Recommendation struct {
	FileID           string          `json:"file_id"`
	FileName         string          `json:"file_name"`
	CurrentTier      store.TierLevel `json:"current_tier"`
	RecommendedTier  store.TierLevel `json:"recommended_tier"`
	RecommendedCloud string          `json:"recommended_cloud"`
	EstimatedSavings float64         `json:"estimated_savings"`
	MigrationUrgency string          `json:"migration_urgency"`
	Reason           string          `json:"reason"`
	Confidence       float64         `json:"confidence"`
}

// PlanSummary counts the transitions in a plan.
type PlanSummary struct {
	HotToWarm          int `json:"hot_to_warm"`
	WarmToCold         int `json:"warm_to_cold"`
	ColdToArchive      int `json:"cold_to_archive"`
	CriticalMigrations int `json:"critical_migrations"`
}

// Plan is the fleet-wide tiering plan.
type Plan struct {
	TotalRecommendations  int              `json:"total_recommendations"`
	TotalEstimatedSavings float64          `json:"total_estimated_savings"`
	Recommendations       []Recommendation `json:"recommendations"`
	Summary               PlanSummary      `json:"summary"`
}

// Planner orchestrates the access classifier and drive health over the
// full file and drive collections.
type Planner struct {
	classifier *AccessClassifier
	scorer     *smart.HealthScorer
	currency   float64
	logger     *zap.Logger
}

// NewPlanner creates a planner. currencyFactor converts USD unit costs
// into the operator's reporting currency.
func NewPlanner(currencyFactor float64, logger *zap.Logger) *Planner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if currencyFactor <= 0 {
		currencyFactor = 1
	}
	return &Planner{
		classifier: NewAccessClassifier(),
		scorer:     smart.NewHealthScorer(),
		currency:   currencyFactor,
		logger:     logger,
	}
}

// BuildPlan classifies every file, applies the drive-health override,
// and aggregates the resulting migrations. Only files whose recommended
// tier differs from their current tier produce a recommendation. The
// returned recommendation list is the top 20 by savings; totals and the
// summary cover all recommendations.
func (p *Planner) BuildPlan(files []store.File, drives []store.Drive, now time.Time) Plan {
	// Drive health is recomputed from SMART; the override only needs
	// existence, not which drive qualified.
	anyDegraded := false
	anyFailing := false
	for _, d := range drives {
		score := p.scorer.Score(d.SMART)
		if score < overrideHealthBelow {
			anyDegraded = true
		}
		if score < failingHealthBelow {
			anyFailing = true
		}
	}

	var all []Recommendation
	var totalSavings float64

	for _, f := range files {
		c := p.classifier.Classify(f.LastAccessed, f.AccessCount, f.SizeBytes, now)

		recommended := c.Tier
		reason := fmt.Sprintf("Access pattern: %.0f%% frequency, %.0f%% recency",
			c.FrequencyScore*100, c.RecencyScore*100)

		// Pre-emptive protection: critical files leave degraded fleets
		// for the hot tier regardless of access pattern. Confidence
		// still reports the classifier's value for the pre-override
		// assignment.
		if anyDegraded && f.RiskLevel == store.RiskCritical {
			recommended = store.TierHot
			reason = "Drive health override: critical file pinned to HOT"
		}

		if recommended == f.Tier {
			continue
		}

		sizeGB := float64(f.SizeBytes) / (1 << 30)
		savings := (sizeGB*UnitCost(f.Tier) - sizeGB*UnitCost(recommended)) * p.currency
		savings = math.Round(savings*100) / 100

		urgency := Urgency30Days
		switch {
		case f.RiskLevel == store.RiskCritical && anyFailing:
			urgency = UrgencyImmediate
		case c.Confidence > 0.8:
			urgency = Urgency7Days
		}

		all = append(all, Recommendation{
			FileID:           f.ID,
			FileName:         f.Name,
			CurrentTier:      f.Tier,
			RecommendedTier:  recommended,
			RecommendedCloud: "AWS S3 " + string(recommended),
			EstimatedSavings: savings,
			MigrationUrgency: urgency,
			Reason:           reason,
			Confidence:       c.Confidence,
		})
		totalSavings += savings
	}

	summary := PlanSummary{}
	for _, r := range all {
		switch {
		case r.CurrentTier == store.TierHot && r.RecommendedTier == store.TierWarm:
			summary.HotToWarm++
		case r.CurrentTier == store.TierWarm && r.RecommendedTier == store.TierCold:
			summary.WarmToCold++
		case r.CurrentTier == store.TierCold && r.RecommendedTier == store.TierArchive:
			summary.ColdToArchive++
		}
		if r.MigrationUrgency == UrgencyImmediate {
			summary.CriticalMigrations++
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].EstimatedSavings > all[j].EstimatedSavings
	})
	top := all
	if len(top) > 20 {
		top = top[:20]
	}

	p.logger.Debug("tiering plan built",
		zap.Int("files", len(files)),
		zap.Int("recommendations", len(all)),
		zap.Bool("health_override", anyDegraded))

	return Plan{
		TotalRecommendations:  len(all),
		TotalEstimatedSavings: math.Round(totalSavings*100) / 100,
		Recommendations:       top,
		Summary:               summary,
	}
}

// UnitCost returns the monthly USD cost per GB for a tier. Unknown
// tiers price as HOT.
func UnitCost(tier store.TierLevel) float64 {
	if c, ok := tierUnitCosts[tier]; ok {
		return c
	}
	return tierUnitCosts[store.TierHot]
}
