// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"

	"voilib/internal/endpoint"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// voilib API location, resolved into a base URL once at startup.
	APIHost       string
	APIPort       string
	APIPrefix     string
	APIPortPolicy endpoint.Policy

	// Valkey (Redis-compatible cache)
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// PostgreSQL connection, only used when search analytics is enabled.
	AnalyticsEnabled bool
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string

	// Requests per minute allowed from a single client IP.
	RateLimit int
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if a value cannot be
// parsed or a critical value is missing in production mode.
func Load() (*Config, error) {
	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		APIHost:   envOrDefault("API_HOST", endpoint.DefaultHost),
		APIPort:   envOrDefault("API_PORT", endpoint.DefaultPort),
		APIPrefix: envOrDefault("API_PREFIX", endpoint.DefaultPrefix),

		ValkeyHost:     envOrDefault("VALKEY_HOST", "localhost"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		DBHost:     envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "voilib"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOrDefault("POSTGRES_DB", "voilib"),
	}

	policy, err := endpoint.ParsePolicy(os.Getenv("API_PORT_POLICY"))
	if err != nil {
		return nil, fmt.Errorf("API_PORT_POLICY: %w", err)
	}
	cfg.APIPortPolicy = policy

	cfg.AnalyticsEnabled, err = strconv.ParseBool(envOrDefault("ANALYTICS_ENABLED", "false"))
	if err != nil {
		return nil, fmt.Errorf("ANALYTICS_ENABLED must be a boolean: %w", err)
	}

	cfg.RateLimit, err = strconv.Atoi(envOrDefault("RATE_LIMIT_PER_MINUTE", "120"))
	if err != nil || cfg.RateLimit <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_PER_MINUTE must be a positive integer, got %q", os.Getenv("RATE_LIMIT_PER_MINUTE"))
	}

	if cfg.Env == "production" && cfg.AnalyticsEnabled {
		if cfg.DBPassword == "changeme" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production when analytics is enabled")
		}
	}

	return cfg, nil
}

// Endpoint returns the voilib API endpoint described by the configuration.
func (c *Config) Endpoint() endpoint.Endpoint {
	return endpoint.Endpoint{
		Host:   c.APIHost,
		Port:   c.APIPort,
		Prefix: c.APIPrefix,
		Policy: c.APIPortPolicy,
	}
}

// DSN returns the PostgreSQL connection string. Credentials are escaped.
func (c *Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
