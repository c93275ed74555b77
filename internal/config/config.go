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
	API         APIConfig
	CORS        CORSConfig
	NoticeTTL   time.Duration
	LogLevel    string
}

type APIConfig struct {
	URL     string
	Timeout time.Duration
}

type CORSConfig struct {
	AllowOrigins []string
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
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", "30")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")
	viper.SetDefault("NOTICE_TTL_SECONDS", "2")
	viper.SetDefault("LOG_LEVEL", "info")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	timeout, err := parseSeconds(getEnvOrViper("HTTP_TIMEOUT_SECONDS", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT_SECONDS: %w", err)
	}
	noticeTTL, err := parseSeconds(getEnvOrViper("NOTICE_TTL_SECONDS", "2"))
	if err != nil {
		return nil, fmt.Errorf("invalid NOTICE_TTL_SECONDS: %w", err)
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		API: APIConfig{
			URL:     getEnvOrViper("STOREFRONT_API_URL", ""),
			Timeout: timeout,
		},
		CORS: CORSConfig{
			AllowOrigins: splitOrigins(getEnvOrViper("CORS_ALLOW_ORIGINS", "*")),
		},
		NoticeTTL: noticeTTL,
		LogLevel:  getEnvOrViper("LOG_LEVEL", "info"),
	}

	// Validate required fields
	if cfg.API.URL == "" {
		return nil, fmt.Errorf("STOREFRONT_API_URL is required")
	}

	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}

func parseSeconds(val string) (time.Duration, error) {
	secs, err := time.ParseDuration(val + "s")
	if err != nil {
		return 0, err
	}
	return secs, nil
}

func splitOrigins(val string) []string {
	parts := strings.Split(val, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
