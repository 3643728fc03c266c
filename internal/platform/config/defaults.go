package config

import "github.com/jsamuelsen11/pipeline-board/internal/domain/pipeline"

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitRPS   = 20.0
	defaultRateLimitBurst = 10

	defaultBoardConcurrency = 4
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"client.base_url":                        "http://localhost:8080",
		"client.timeout":                         "30s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "10s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  defaultRateLimitRPS,
		"client.rate_limit.burst":                defaultRateLimitBurst,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "pipeline-board",

		"store.dsn": "data/pipeline-board.db",

		"seed.forms_dir":     "",
		"seed.opportunities": "",

		"board.default_currency": "₹",
		"board.entity_noun":      "deal",
		"board.concurrency":      defaultBoardConcurrency,
	}
}

// Catalog builds the pipeline catalog from the configured definitions,
// preserving their order.
func (c *Config) Catalog() *pipeline.Catalog {
	defs := make([]pipeline.Pipeline, 0, len(c.Pipelines))
	for _, p := range c.Pipelines {
		label := p.Label
		if label == "" {
			label = p.Key
		}
		defs = append(defs, pipeline.Pipeline{
			Key:    p.Key,
			Label:  label,
			Stages: append([]string(nil), p.Stages...),
		})
	}
	return pipeline.NewCatalog(defs...)
}
