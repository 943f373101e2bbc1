package api

import (
	"math"
	"net/http"

	"github.com/FairForge/guardiand/internal/store"
	"github.com/FairForge/guardiand/internal/tiering"
)

type tierStats struct {
	Files  int     `json:"files"`
	SizeGB float64 `json:"size_gb"`
}

// handleDashboard aggregates fleet state into the overview document.
// Every derived number is recomputed from the current records.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	drives := s.repo.Drives(r.Context())
	files := s.repo.Files(r.Context())
	alerts := s.repo.Alerts(r.Context())

	var totalCapacity, totalUsed int64
	var healthSum float64
	var criticalDrives, highRiskDrives int

	for _, d := range drives {
		totalCapacity += d.CapacityBytes
		totalUsed += d.UsedBytes

		scored := s.scoreDrive(d)
		healthSum += scored.HealthScore
		switch scored.RiskLevel {
		case store.RiskCritical:
			criticalDrives++
		case store.RiskHigh:
			highRiskDrives++
		}
	}

	avgHealth := 0.0
	utilization := 0.0
	if len(drives) > 0 {
		avgHealth = math.Round(healthSum/float64(len(drives))*10) / 10
	}
	if totalCapacity > 0 {
		utilization = math.Round(float64(totalUsed)/float64(totalCapacity)*1000) / 10
	}

	tierDistribution := make(map[store.TierLevel]tierStats)
	var monthlyCost float64
	for _, f := range files {
		stats := tierDistribution[f.Tier]
		stats.Files++
		sizeGB := float64(f.SizeBytes) / (1 << 30)
		stats.SizeGB = math.Round((stats.SizeGB+sizeGB)*100) / 100
		tierDistribution[f.Tier] = stats

		monthlyCost += sizeGB * tiering.UnitCost(f.Tier) * s.config.Pricing.CurrencyFactor
	}

	var unacknowledged []store.Alert
	var criticalAlerts, highAlerts int
	for _, a := range alerts {
		if a.Acknowledged {
			continue
		}
		unacknowledged = append(unacknowledged, a)
		switch a.Severity {
		case "critical":
			criticalAlerts++
		case "high":
			highAlerts++
		}
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"storage_summary": map[string]interface{}{
			"total_capacity":      totalCapacity,
			"total_used":          totalUsed,
			"utilization_percent": utilization,
			"total_files":         len(files),
		},
		"health_summary": map[string]interface{}{
			"average_health_score": avgHealth,
			"critical_drives":      criticalDrives,
			"high_risk_drives":     highRiskDrives,
			"healthy_drives":       len(drives) - criticalDrives - highRiskDrives,
		},
		"tier_distribution": tierDistribution,
		"cost_summary": map[string]interface{}{
			"estimated_monthly_cost": math.Round(monthlyCost*100) / 100,
		},
		"alerts": map[string]interface{}{
			"total":    len(unacknowledged),
			"critical": criticalAlerts,
			"high":     highAlerts,
			"items":    unacknowledged,
		},
	})
}
