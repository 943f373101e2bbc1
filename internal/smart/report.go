package smart

import (
	"math"

	"github.com/FairForge/guardiand/internal/store"
)

// Factor is one named contributor to a drive's health assessment.
type Factor struct {
	Name   string  `json:"factor"`
	Impact float64 `json:"impact"`
}

// Report is the full health analysis for one drive.
type Report struct {
	DriveID              string          `json:"drive_id"`
	HealthScore          float64         `json:"health_score"`
	RiskLevel            store.RiskLevel `json:"risk_level"`
	PredictedFailureDays *int            `json:"predicted_failure_days"`
	TopFactors           []Factor        `json:"top_factors"`
	Recommendations      []string        `json:"recommendations"`
}

// Analyze scores one drive and assembles the detail report served by the
// drive-health endpoint.
func Analyze(scorer *HealthScorer, predictor *FailurePredictor, drive store.Drive) Report {
	score := scorer.Score(drive.SMART)

	return Report{
		DriveID:              drive.ID,
		HealthScore:          math.Round(score*10) / 10,
		RiskLevel:            RiskLevel(score),
		PredictedFailureDays: predictor.Predict(score, drive.SMART),
		TopFactors: []Factor{
			{Name: "Reallocated Sectors", Impact: attr(drive.SMART, AttrReallocatedSectors, 0) * 0.35},
			{Name: "Power-On Hours", Impact: math.Min(attr(drive.SMART, AttrPowerOnHours, 0)/100000, 0.25)},
			{Name: "Read Error Rate", Impact: math.Min(attr(drive.SMART, AttrRawReadErrorRate, 0)/10, 30) / 100 * 0.15},
		},
		Recommendations: recommendations(score),
	}
}

func recommendations(score float64) []string {
	recs := make([]string, 0, 3)

	if score < 50 {
		recs = append(recs, "Schedule backup within 7 days")
	} else {
		recs = append(recs, "Monitor closely")
	}
	if score < 70 {
		recs = append(recs, "Enable cloud sync for critical files")
	} else {
		recs = append(recs, "Standard monitoring")
	}
	if score < 40 {
		recs = append(recs, "Consider drive replacement")
	} else {
		recs = append(recs, "No immediate action needed")
	}
	return recs
}
