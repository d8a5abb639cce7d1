package app

import (
	"fmt"
	"net/http"

	"seo-provisioner/internal/core/config"
	"seo-provisioner/internal/core/httpclient"
	"seo-provisioner/internal/core/logger"
	"seo-provisioner/internal/core/proxy"
	"seo-provisioner/internal/features/provisioning/adapters/marketgoo"
	"seo-provisioner/internal/features/provisioning/adapters/rankingcoach"
	"seo-provisioner/internal/features/provisioning/ports"
	"seo-provisioner/internal/features/provisioning/service"

	"go.uber.org/zap"
)

// NewHTTPClient builds the outbound client shared by every vendor adapter.
func NewHTTPClient(cfg *config.AppConfig) *http.Client {
	return httpclient.NewClient(httpclient.Options{
		Timeout:        cfg.HTTP.Timeout(),
		ConnectTimeout: cfg.HTTP.ConnectTimeout(),
		Headers: map[string]string{
			"User-Agent":   cfg.HTTP.UserAgent,
			"Accept":       "application/json",
			"Content-Type": "application/json",
		},
		Proxy: proxy.Settings{
			Enabled:  cfg.Proxy.Enabled,
			Hostname: cfg.Proxy.Hostname,
			Port:     cfg.Proxy.Port,
			Username: cfg.Proxy.Username,
			Password: cfg.Proxy.Password,
		},
	})
}

// BuildProviders creates a provider for every vendor with credentials configured.
func BuildProviders(cfg *config.AppConfig, client *http.Client) ([]ports.SeoProvider, error) {
	l := logger.Get()
	var providers []ports.SeoProvider

	if cfg.RankingCoach.Enabled() {
		rc, err := rankingcoach.NewProvider(rankingcoach.ConfigurationFrom(cfg.RankingCoach), client)
		if err != nil {
			return nil, fmt.Errorf("invalid %s configuration: %w", rankingcoach.ProviderName, err)
		}
		providers = append(providers, rc)
		l.Info("Provider registered",
			zap.String("provider", rankingcoach.ProviderName),
			logger.Masked("username", cfg.RankingCoach.Username),
			zap.Bool("sandbox", cfg.RankingCoach.Sandbox),
		)
	}

	if cfg.Marketgoo.Enabled() {
		mg, err := marketgoo.NewProvider(marketgoo.ConfigurationFrom(cfg.Marketgoo), client)
		if err != nil {
			return nil, fmt.Errorf("invalid %s configuration: %w", marketgoo.ProviderName, err)
		}
		providers = append(providers, mg)
		l.Info("Provider registered",
			zap.String("provider", marketgoo.ProviderName),
			zap.String("url", cfg.Marketgoo.URL),
		)
	}

	if len(providers) == 0 {
		return nil, config.ErrNoProviders
	}

	return providers, nil
}

// NewProvisioningService wires the configured providers into the service.
func NewProvisioningService(cfg *config.AppConfig) (*service.ProvisioningService, error) {
	providers, err := BuildProviders(cfg, NewHTTPClient(cfg))
	if err != nil {
		return nil, err
	}
	return service.NewProvisioningService(providers), nil
}
