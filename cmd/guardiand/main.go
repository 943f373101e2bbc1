// cmd/guardiand/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/FairForge/guardiand/internal/api"
	"github.com/FairForge/guardiand/internal/config"
	"github.com/FairForge/guardiand/internal/store"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load(os.Getenv("GUARDIAND_CONFIG"))
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	// Seed the repository from the fleet file, or fall back to the
	// built-in demo fleet.
	var seed *store.SeedData
	if cfg.Data.SeedPath != "" {
		seed, err = store.LoadSeed(cfg.Data.SeedPath)
		if err != nil {
			logger.Fatal("failed to load seed data", zap.Error(err))
		}
		logger.Info("loaded fleet seed", zap.String("path", cfg.Data.SeedPath))
	} else {
		seed = store.DemoSeed()
		logger.Info("using built-in demo fleet")
	}

	repo := store.NewMemoryStore(seed)
	server := api.NewServer(cfg, logger, repo)

	// Handle shutdown gracefully
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("shutdown error", zap.Error(err))
		}
		os.Exit(0)
	}()

	fmt.Printf("\n")
	fmt.Printf("╔══════════════════════════════════════╗\n")
	fmt.Printf("║       GuardianD Server Started       ║\n")
	fmt.Printf("╠══════════════════════════════════════╣\n")
	fmt.Printf("║  API: http://localhost:%-13d ║\n", cfg.Server.Port)
	fmt.Printf("║  Drives: %d  Files: %-16d ║\n", len(seed.Drives), len(seed.Files))
	fmt.Printf("╚══════════════════════════════════════╝\n")
	fmt.Printf("\n")

	if err := server.Start(); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
