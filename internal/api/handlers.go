package api

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/FairForge/guardiand/internal/cloud"
	"github.com/FairForge/guardiand/internal/compression"
	"github.com/FairForge/guardiand/internal/smart"
	"github.com/FairForge/guardiand/internal/store"
	"github.com/FairForge/guardiand/internal/strategy"
	"github.com/FairForge/guardiand/internal/tiering"
	"github.com/gorilla/mux"
)

// scoreDrive fills a drive's derived fields from its SMART snapshot.
func (s *Server) scoreDrive(d store.Drive) store.Drive {
	score := s.scorer.Score(d.SMART)
	d.HealthScore = math.Round(score*10) / 10
	d.RiskLevel = smart.RiskLevel(score)
	d.PredictedFailureDays = s.predictor.Predict(score, d.SMART)
	return d
}

func (s *Server) handleListDrives(w http.ResponseWriter, r *http.Request) {
	drives := s.repo.Drives(r.Context())
	for i := range drives {
		drives[i] = s.scoreDrive(drives[i])
	}
	s.writeJSON(w, http.StatusOK, drives)
}

func (s *Server) handleGetDrive(w http.ResponseWriter, r *http.Request) {
	drive, err := s.repo.Drive(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, s.scoreDrive(drive))
}

func (s *Server) handleDriveHealth(w http.ResponseWriter, r *http.Request) {
	drive, err := s.repo.Drive(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, err)
		return
	}

	report := smart.Analyze(s.scorer, s.predictor, drive)
	s.writeJSON(w, http.StatusOK, struct {
		smart.Report
		Confidence float64 `json:"confidence"`
	}{Report: report, Confidence: 0.92})
}

func (s *Server) handleListFiles(w http.ResponseWriter, r *http.Request) {
	files := s.repo.Files(r.Context())

	if tier := r.URL.Query().Get("tier"); tier != "" {
		want := store.TierLevel(strings.ToUpper(tier))
		filtered := files[:0]
		for _, f := range files {
			if f.Tier == want {
				filtered = append(filtered, f)
			}
		}
		files = filtered
	}
	s.writeJSON(w, http.StatusOK, files)
}

func (s *Server) handleGetFile(w http.ResponseWriter, r *http.Request) {
	file, err := s.repo.File(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, struct {
		store.File
		AccessAnalysis      tiering.Classification `json:"access_analysis"`
		CompressionAnalysis compression.Advice     `json:"compression_analysis"`
		SizeFormatted       string                 `json:"size_formatted"`
	}{
		File:                file,
		AccessAnalysis:      s.classifier.Classify(file.LastAccessed, file.AccessCount, file.SizeBytes, time.Now()),
		CompressionAnalysis: s.advisor.Advise(file.Extension, file.SizeBytes),
		SizeFormatted:       formatBytes(file.SizeBytes),
	})
}

type tieringPlanRequest struct {
	MaxCost       *float64 `json:"max_cost"`
	Region        string   `json:"region"`
	RiskTolerance string   `json:"risk_tolerance"`
}

func (s *Server) handleTieringPlan(w http.ResponseWriter, r *http.Request) {
	req := tieringPlanRequest{Region: "us-east-1", RiskTolerance: "balanced"}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
	}
	if req.RiskTolerance == "" {
		req.RiskTolerance = "balanced"
	}

	files := s.repo.Files(r.Context())
	drives := s.repo.Drives(r.Context())

	plan := s.planner.BuildPlan(files, drives, time.Now())

	var fleetGB float64
	for _, f := range files {
		fleetGB += float64(f.SizeBytes) / (1 << 30)
	}
	strategies := s.optimizer.Rank(s.repo.Strategies(r.Context()), fleetGB, strategy.RiskTolerance(req.RiskTolerance))

	s.writeJSON(w, http.StatusOK, struct {
		tiering.Plan
		StrategyOptions []strategy.Ranked `json:"strategy_options"`
	}{Plan: plan, StrategyOptions: strategies})
}

type compressionRecommendation struct {
	FileID           string  `json:"file_id"`
	FileName         string  `json:"file_name"`
	CurrentSize      int64   `json:"current_size"`
	CompressedSize   int64   `json:"compressed_size"`
	CompressionRatio float64 `json:"compression_ratio"`
	Algorithm        string  `json:"algorithm"`
	MonthlySavings   float64 `json:"monthly_savings"`
	CompressionTime  int     `json:"compression_time"`
	ROIScore         float64 `json:"roi_score"`
	Recommend        bool    `json:"recommend"`
}

func (s *Server) handleCompression(w http.ResponseWriter, r *http.Request) {
	minROI := s.config.Pricing.ROIThreshold
	if raw := r.URL.Query().Get("min_roi"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid min_roi"})
			return
		}
		minROI = v
	}

	var recs []compressionRecommendation
	var totalSavings float64
	var totalReduction int64

	for _, f := range s.repo.Files(r.Context()) {
		advice := s.advisor.Advise(f.Extension, f.SizeBytes)
		if !advice.Recommend || advice.ROIScore < minROI {
			continue
		}

		recs = append(recs, compressionRecommendation{
			FileID:           f.ID,
			FileName:         f.Name,
			CurrentSize:      f.SizeBytes,
			CompressedSize:   advice.CompressedSize,
			CompressionRatio: advice.CompressionRatio,
			Algorithm:        advice.Algorithm,
			MonthlySavings:   advice.MonthlySavings,
			CompressionTime:  advice.CompressionTimeMinutes,
			ROIScore:         advice.ROIScore,
			Recommend:        true,
		})
		totalSavings += advice.MonthlySavings
		totalReduction += f.SizeBytes - advice.CompressedSize
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].ROIScore > recs[j].ROIScore
	})
	if len(recs) > 15 {
		recs = recs[:15]
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"total_recommendations": len(recs),
		"total_monthly_savings": math.Round(totalSavings*100) / 100,
		"total_size_reduction":  formatBytes(totalReduction),
		"recommendations":       recs,
	})
}

func (s *Server) handleCloudOptions(w http.ResponseWriter, r *http.Request) {
	tier := store.TierLevel(strings.ToUpper(r.URL.Query().Get("tier")))
	if tier == "" {
		tier = store.TierCold
	}

	sizeGB := 100.0
	if raw := r.URL.Query().Get("size_gb"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid size_gb"})
			return
		}
		sizeGB = v
	}

	pricer := cloud.NewPricer(s.repo.Pricing(r.Context()), s.config.Pricing.CurrencyFactor)
	s.writeJSON(w, http.StatusOK, pricer.Options(tier, sizeGB))
}

func (s *Server) handleListAlerts(w http.ResponseWriter, r *http.Request) {
	alerts := s.repo.Alerts(r.Context())

	if severity := r.URL.Query().Get("severity"); severity != "" {
		want := strings.ToLower(severity)
		filtered := alerts[:0]
		for _, a := range alerts {
			if a.Severity == want {
				filtered = append(filtered, a)
			}
		}
		alerts = filtered
	}
	s.writeJSON(w, http.StatusOK, alerts)
}

func (s *Server) handleAcknowledgeAlert(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.repo.AcknowledgeAlert(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{
		"message":  "Alert acknowledged",
		"alert_id": id,
	})
}

func (s *Server) handleApplyPlan(w http.ResponseWriter, r *http.Request) {
	planID := r.URL.Query().Get("plan_id")
	if planID == "" {
		planID = "default"
	}

	// All cloud actions are advisory; nothing is executed.
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "simulated",
		"message":   "Tiering plan execution simulated",
		"plan_id":   planID,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleExportLifecycle(w http.ResponseWriter, r *http.Request) {
	provider := r.URL.Query().Get("provider")
	if provider == "" {
		provider = "aws"
	}

	policy, err := cloud.ExportLifecycle(provider)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	s.writeJSON(w, http.StatusOK, policy)
}

func formatBytes(size int64) string {
	value := float64(size)
	for _, unit := range []string{"B", "KB", "MB", "GB", "TB"} {
		if value < 1024 {
			return fmt.Sprintf("%.2f %s", value, unit)
		}
		value /= 1024
	}
	return fmt.Sprintf("%.2f PB", value)
}
