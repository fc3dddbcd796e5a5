package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	Storefront  StorefrontConfig
	Refresh     RefreshConfig
	LogLevel    string
}

// StorefrontConfig is used to call the storefront API for entity data and
// persistence
type StorefrontConfig struct {
	BaseURL string // e.g. http://storefront:5000/api
	APIKey  string // STOREFRONT_API_KEY, sent as a bearer token
}

// RefreshConfig controls the background collection refresh loop
type RefreshConfig struct {
	Interval time.Duration
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("REFRESH_INTERVAL", "5m")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	interval, err := time.ParseDuration(getEnvOrViper("REFRESH_INTERVAL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %w", err)
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		Storefront: StorefrontConfig{
			BaseURL: strings.TrimSpace(getEnvOrViper("STOREFRONT_API_URL", "")),
			APIKey:  strings.TrimSpace(getEnvOrViper("STOREFRONT_API_KEY", "")),
		},
		Refresh:  RefreshConfig{Interval: interval},
		LogLevel: getEnvOrViper("LOG_LEVEL", "info"),
	}

	// Validate required fields
	if cfg.Storefront.BaseURL == "" {
		return nil, fmt.Errorf("STOREFRONT_API_URL is required")
	}

	return cfg, nil
}

// getEnvOrViper prefers the process environment over viper's .env values
func getEnvOrViper(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	if v := viper.GetString(key); v != "" {
		return v
	}
	return fallback
}
