// Package config provides configuration loading and validation for the
// pipeline board server and CLI. Configuration is loaded from YAML files with
// environment variable overrides using a layered system:
// defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig     `koanf:"server"`
	Log       LogConfig        `koanf:"log"`
	Client    ClientConfig     `koanf:"client"`
	Telemetry TelemetryConfig  `koanf:"telemetry"`
	Store     StoreConfig      `koanf:"store"`
	Seed      SeedConfig       `koanf:"seed"`
	Board     BoardConfig      `koanf:"board"`
	Pipelines []PipelineConfig `koanf:"pipelines"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds downstream HTTP client settings.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds the client-side token bucket. A zero rate disables
// limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	Burst             int     `koanf:"burst"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// StoreConfig holds the SQLite database location.
type StoreConfig struct {
	DSN string `koanf:"dsn"`
}

// SeedConfig points at data written to the store at start-up. Empty values
// skip the corresponding step.
type SeedConfig struct {
	FormsDir      string `koanf:"forms_dir"`
	Opportunities string `koanf:"opportunities"`
}

// BoardConfig holds presentation and fan-out settings for boards.
type BoardConfig struct {
	DefaultCurrency string `koanf:"default_currency"`
	EntityNoun      string `koanf:"entity_noun"`
	Concurrency     int    `koanf:"concurrency"`
}

// PipelineConfig defines one pipeline and its ordered stages.
type PipelineConfig struct {
	Key    string   `koanf:"key"`
	Label  string   `koanf:"label"`
	Stages []string `koanf:"stages"`
}
