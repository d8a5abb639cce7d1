package marketgoo

import (
	"strings"

	"seo-provisioner/internal/core/config"
	"seo-provisioner/internal/features/provisioning/domain"
)

// Configuration holds the partner API credentials.
type Configuration struct {
	// URL is the partner API host, e.g. https://partner.marketgoo.com.
	URL    string `json:"url" validate:"required,url"`
	APIKey string `json:"api_key" validate:"required"`
}

// ConfigurationFrom maps application config onto the vendor configuration.
func ConfigurationFrom(cfg config.MarketgooConfig) Configuration {
	return Configuration{URL: cfg.URL, APIKey: cfg.APIKey}
}

// Validate checks the credentials.
func (c Configuration) Validate() error {
	return domain.Validate(&c)
}

func (c Configuration) endpoint(path string) string {
	return strings.TrimRight(c.URL, "/") + path
}
