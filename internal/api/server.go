package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/FairForge/guardiand/internal/compression"
	"github.com/FairForge/guardiand/internal/config"
	"github.com/FairForge/guardiand/internal/smart"
	"github.com/FairForge/guardiand/internal/store"
	"github.com/FairForge/guardiand/internal/strategy"
	"github.com/FairForge/guardiand/internal/tiering"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Server is the HTTP surface over the decision core. It marshals the
// core functions' results and holds no decision logic of its own.
type Server struct {
	config     *config.Config
	logger     *zap.Logger
	router     *mux.Router
	httpServer *http.Server
	metrics    *Metrics

	repo       store.Repository
	scorer     *smart.HealthScorer
	predictor  *smart.FailurePredictor
	classifier *tiering.AccessClassifier
	planner    *tiering.Planner
	advisor    *compression.Advisor
	optimizer  *strategy.Optimizer

	startTime time.Time
}

// NewServer wires the decision components over an injected repository.
func NewServer(cfg *config.Config, logger *zap.Logger, repo store.Repository) *Server {
	s := &Server{
		config:     cfg,
		logger:     logger,
		router:     mux.NewRouter(),
		metrics:    NewMetrics(),
		repo:       repo,
		scorer:     smart.NewHealthScorer(),
		predictor:  smart.NewFailurePredictor(),
		classifier: tiering.NewAccessClassifier(),
		planner:    tiering.NewPlanner(cfg.Pricing.CurrencyFactor, logger),
		advisor: compression.NewAdvisor(compression.Pricing{
			StorageCostPerGBMonth:   cfg.Pricing.StorageCostPerGBMonth,
			ComputeCostPerHour:      cfg.Pricing.ComputeCostPerHour,
			CurrencyFactor:          cfg.Pricing.CurrencyFactor,
			ROIThreshold:            cfg.Pricing.ROIThreshold,
			BaseThroughputGBPerHour: cfg.Pricing.ThroughputGBPerHour,
		}),
		optimizer: strategy.NewOptimizer(cfg.Pricing.StorageCostPerGBMonth, cfg.Pricing.CurrencyFactor),
		startTime: time.Now(),
	}

	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s
}

func (s *Server) setupRoutes() {
	s.router.HandleFunc("/", s.handleRoot).Methods("GET")
	s.router.HandleFunc("/health", s.handleHealth).Methods("GET")
	s.router.Handle("/metrics", s.metrics.Handler()).Methods("GET")

	s.router.HandleFunc("/api/drives", s.handleListDrives).Methods("GET")
	s.router.HandleFunc("/api/drives/{id}", s.handleGetDrive).Methods("GET")
	s.router.HandleFunc("/api/drives/{id}/health", s.handleDriveHealth).Methods("GET")

	s.router.HandleFunc("/api/files", s.handleListFiles).Methods("GET")
	s.router.HandleFunc("/api/files/{id}", s.handleGetFile).Methods("GET")

	s.router.HandleFunc("/api/tiering-plan", s.handleTieringPlan).Methods("POST")
	s.router.HandleFunc("/api/compression", s.handleCompression).Methods("GET")
	s.router.HandleFunc("/api/cloud-options", s.handleCloudOptions).Methods("GET")

	s.router.HandleFunc("/api/alerts", s.handleListAlerts).Methods("GET")
	s.router.HandleFunc("/api/alerts/{id}/acknowledge", s.handleAcknowledgeAlert).Methods("POST")

	s.router.HandleFunc("/api/dashboard", s.handleDashboard).Methods("GET")
	s.router.HandleFunc("/api/apply-plan", s.handleApplyPlan).Methods("POST")
	s.router.HandleFunc("/api/export/lifecycle", s.handleExportLifecycle).Methods("GET")

	s.router.Use(s.loggingMiddleware)
	s.router.Use(s.rateLimitMiddleware(s.config.Server.RequestsPerSec, s.config.Server.Burst))
}

// Router exposes the handler for tests and embedding.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start runs the HTTP server until Shutdown.
func (s *Server) Start() error {
	s.logger.Info("server listening", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("listen: %w", err)
	}
	return nil
}

// Shutdown drains the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "GuardianD - Intelligent Storage Orchestration",
		"version": "0.1.0",
		"status":  "operational",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"version": "0.1.0",
		"uptime":  time.Since(s.startTime).Seconds(),
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		elapsed := time.Since(start)
		s.metrics.ObserveRequest(r.Method, r.URL.Path, rec.status, elapsed.Seconds())
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", elapsed))
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if store.IsNotFound(err) {
		status = http.StatusNotFound
	}
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
