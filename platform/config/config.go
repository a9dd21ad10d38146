// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
}

// SocrataConfig provides settings for the SECOP open-data API.
type SocrataConfig interface {
	GetDatasetURL() string
	GetAppToken() string
	GetInteractiveTimeout() time.Duration
	GetExportTimeout() time.Duration
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                string
	HTTPAddr           string
	CORSAllowAll       bool
	CORSOrigins        []string
	DatasetURL         string
	AppToken           string
	InteractiveTimeout time.Duration
	ExportTimeout      time.Duration
}

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }

// SocrataConfig implementation
func (c *Config) GetDatasetURL() string                { return c.DatasetURL }
func (c *Config) GetAppToken() string                  { return c.AppToken }
func (c *Config) GetInteractiveTimeout() time.Duration { return c.InteractiveTimeout }
func (c *Config) GetExportTimeout() time.Duration      { return c.ExportTimeout }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                getEnv("APP_ENV", "development"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:       corsAllowAll,
		CORSOrigins:        corsOrigins,
		DatasetURL:         getEnv("SECOP_DATASET_URL", "https://www.datos.gov.co/resource/p6dx-8zbt.json"),
		AppToken:           getEnv("SECOP_APP_TOKEN", ""),
		InteractiveTimeout: mustDuration(getEnv("SECOP_INTERACTIVE_TIMEOUT", "10s")),
		ExportTimeout:      mustDuration(getEnv("SECOP_EXPORT_TIMEOUT", "30s")),
	}

	if cfg.DatasetURL == "" {
		return nil, fmt.Errorf("SECOP_DATASET_URL is required")
	}
	if cfg.InteractiveTimeout <= 0 || cfg.ExportTimeout <= 0 {
		return nil, fmt.Errorf("SECOP_INTERACTIVE_TIMEOUT and SECOP_EXPORT_TIMEOUT must be positive durations")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
