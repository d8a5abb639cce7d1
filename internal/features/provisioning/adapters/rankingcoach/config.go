package rankingcoach

import (
	"strings"

	"seo-provisioner/internal/core/config"
	"seo-provisioner/internal/features/provisioning/domain"
)

// DefaultURL is the vendor host used when none is configured.
const DefaultURL = "https://www.rankingcoach.com"

// Configuration holds the reseller API credentials. It is immutable once built.
type Configuration struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
	Sandbox  bool   `json:"sandbox"`
	// URL is the vendor host without any API path.
	URL string `json:"url" validate:"omitempty,url"`
}

// ConfigurationFrom maps application config onto the vendor configuration.
func ConfigurationFrom(cfg config.RankingCoachConfig) Configuration {
	return Configuration{
		Username: cfg.Username,
		Password: cfg.Password,
		Sandbox:  cfg.Sandbox,
		URL:      cfg.URL,
	}
}

// Validate checks the credentials.
func (c Configuration) Validate() error {
	return domain.Validate(&c)
}

func (c Configuration) host() string {
	if c.URL == "" {
		return DefaultURL
	}
	return strings.TrimRight(c.URL, "/")
}

// BaseURL is the command root: /api_test/ in sandbox mode, /api/ otherwise.
func (c Configuration) BaseURL() string {
	if c.Sandbox {
		return c.host() + "/api_test/"
	}
	return c.host() + "/api/"
}
