package cli

import (
	"fmt"
	"os"

	seoapp "seo-provisioner/internal/app"
	"seo-provisioner/internal/core/config"
	"seo-provisioner/internal/core/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func wireApp() (*app, error) {
	cfg, err := config.Load(configDir())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	correlationID := uuid.NewString()
	logger.Get().Debug("seoctl started", zap.String("correlation_id", correlationID))

	svc, err := seoapp.NewProvisioningService(cfg)
	if err != nil {
		return nil, err
	}

	return &app{service: svc, correlationID: correlationID}, nil
}

// configDir is where the .env file is looked up.
func configDir() string {
	if dir := os.Getenv("SEOCTL_CONFIG_DIR"); dir != "" {
		return dir
	}
	return "."
}
