package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"seo-provisioner/internal/app"
	"seo-provisioner/internal/core/config"
	"seo-provisioner/internal/core/logger"
	"seo-provisioner/internal/core/server"
	"seo-provisioner/internal/features/provisioning/handler"

	"go.uber.org/zap"
)

// @title SEO Provisioner API
// @version 1.0
// @description Provisions and manages SEO tool accounts (RankingCoach, Marketgoo) for a hosting platform.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Initialize Provisioning Service & Handler
	provisioningSvc, err := app.NewProvisioningService(cfg)
	if err != nil {
		l.Fatal("Failed to configure providers", zap.Error(err))
	}
	provisioningHdl := handler.NewProvisioningHandler(provisioningSvc)

	srv := server.New(cfg)

	// Register Routes
	provisioningHdl.RegisterRoutes(srv.App)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		l.Info("Shutting down server")
		if err := srv.Shutdown(); err != nil {
			l.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
