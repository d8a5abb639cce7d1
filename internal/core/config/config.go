package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// HTTP holds the outbound HTTP client settings shared by all vendors.
	HTTP HTTPConfig `mapstructure:",squash"`

	// Proxy holds the optional outbound proxy used for vendor calls.
	Proxy ProxyConfig `mapstructure:",squash"`

	// RankingCoach holds the RankingCoach API credentials.
	RankingCoach RankingCoachConfig `mapstructure:",squash"`

	// Marketgoo holds the Marketgoo API credentials.
	Marketgoo MarketgooConfig `mapstructure:",squash"`
}

// HTTPConfig holds outbound HTTP transport settings.
type HTTPConfig struct {
	// TimeoutSeconds bounds a whole request/response cycle.
	TimeoutSeconds int `mapstructure:"HTTP_TIMEOUT_SECONDS" default:"30"`
	// ConnectTimeoutSeconds bounds establishing the TCP connection.
	ConnectTimeoutSeconds int `mapstructure:"HTTP_CONNECT_TIMEOUT_SECONDS" default:"5"`
	// UserAgent is sent with every vendor request.
	UserAgent string `mapstructure:"HTTP_USER_AGENT" default:"seo-provisioner/1.0"`
}

// Timeout returns the request timeout as a time.Duration.
func (c HTTPConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ConnectTimeout returns the dial timeout as a time.Duration.
func (c HTTPConfig) ConnectTimeout() time.Duration {
	return time.Duration(c.ConnectTimeoutSeconds) * time.Second
}

// ProxyConfig holds the outbound proxy settings.
type ProxyConfig struct {
	Enabled  bool   `mapstructure:"PROXY_ENABLED"`
	Hostname string `mapstructure:"PROXY_HOSTNAME"`
	Port     int    `mapstructure:"PROXY_PORT"`
	Username string `mapstructure:"PROXY_USERNAME"`
	Password string `mapstructure:"PROXY_PASSWORD"`
}

// RankingCoachConfig holds the RankingCoach reseller credentials.
type RankingCoachConfig struct {
	// Username is the reseller API username.
	Username string `mapstructure:"RANKINGCOACH_USERNAME"`
	// Password is the reseller API password.
	Password string `mapstructure:"RANKINGCOACH_PASSWORD"`
	// Sandbox routes commands to the test API instead of production.
	Sandbox bool `mapstructure:"RANKINGCOACH_SANDBOX" default:"false"`
	// URL is the vendor host, without the API path.
	URL string `mapstructure:"RANKINGCOACH_URL" default:"https://www.rankingcoach.com"`
}

// Enabled reports whether any RankingCoach credentials were supplied.
func (c RankingCoachConfig) Enabled() bool {
	return c.Username != "" || c.Password != ""
}

// MarketgooConfig holds the Marketgoo partner credentials.
type MarketgooConfig struct {
	// URL is the partner API host, e.g. https://partner.marketgoo.com.
	URL string `mapstructure:"MARKETGOO_URL"`
	// APIKey is sent as the X-Auth-Token header.
	APIKey string `mapstructure:"MARKETGOO_API_KEY"`
}

// Enabled reports whether any Marketgoo credentials were supplied.
func (c MarketgooConfig) Enabled() bool {
	return c.URL != "" || c.APIKey != ""
}

// ErrNoProviders is returned when no vendor has credentials configured.
var ErrNoProviders = errors.New("no seo provider configured: set RANKINGCOACH_* or MARKETGOO_* variables")

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	if !config.RankingCoach.Enabled() && !config.Marketgoo.Enabled() {
		return nil, ErrNoProviders
	}

	return &config, nil
}

// processTags binds every tagged field to its env var and registers defaults in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key == "" {
			continue
		}

		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}

		if defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") != "true" {
			continue
		}

		if val.Field(i).IsZero() {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}
