package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jsamuelsen11/pipeline-board/internal/domain/pipeline"
)

// problems collects every violation of one section.
type problems []error

// require records a problem built from format and args unless ok holds.
func (p *problems) require(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

// oneOf records a problem unless value is one of allowed.
func (p *problems) oneOf(key, value string, allowed ...string) {
	p.require(slices.Contains(allowed, value),
		"%s must be one of: %s; got %q", key, strings.Join(allowed, ", "), value)
}

func (p problems) err() error {
	return errors.Join(p...)
}

// Validate reports every invalid value across all sections at once.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Client.validate(),
		c.Telemetry.validate(),
		c.Store.validate(),
		c.Board.validate(),
		validatePipelines(c.Pipelines),
	)
}

func (s *ServerConfig) validate() error {
	var p problems
	p.require(s.Port >= 1 && s.Port <= 65535, "server.port must be between 1 and 65535, got %d", s.Port)
	p.require(s.ReadTimeout > 0, "server.read_timeout must be positive, got %s", s.ReadTimeout)
	p.require(s.WriteTimeout > 0, "server.write_timeout must be positive, got %s", s.WriteTimeout)
	return p.err()
}

func (l *LogConfig) validate() error {
	var p problems
	p.oneOf("log.level", l.Level, "debug", "info", "warn", "error")
	p.oneOf("log.format", l.Format, "json", "text")
	return p.err()
}

func (cl *ClientConfig) validate() error {
	var p problems
	p.require(cl.BaseURL != "", "client.base_url must not be empty")
	p.require(cl.Timeout > 0, "client.timeout must be positive, got %s", cl.Timeout)
	p.require(cl.Retry.MaxAttempts >= 1, "client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts)
	p.require(cl.Retry.Multiplier > 0, "client.retry.multiplier must be positive, got %g", cl.Retry.Multiplier)
	p.require(cl.CircuitBreaker.MaxFailures >= 1,
		"client.circuit_breaker.max_failures must be >= 1, got %d", cl.CircuitBreaker.MaxFailures)

	rps := cl.RateLimit.RequestsPerSecond
	p.require(rps >= 0, "client.rate_limit.requests_per_second must not be negative, got %g", rps)
	p.require(rps <= 0 || cl.RateLimit.Burst >= 1,
		"client.rate_limit.burst must be >= 1 when limiting, got %d", cl.RateLimit.Burst)
	return p.err()
}

// validate checks the exporter only when telemetry is on.
func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}
	var p problems
	p.oneOf("telemetry.exporter", t.Exporter, "stdout", "otlp")
	p.require(t.Exporter != "otlp" || t.Endpoint != "", "telemetry.endpoint must not be empty when exporter is otlp")
	return p.err()
}

func (s *StoreConfig) validate() error {
	var p problems
	p.require(strings.TrimSpace(s.DSN) != "", "store.dsn must not be empty")
	return p.err()
}

func (b *BoardConfig) validate() error {
	var p problems
	p.require(strings.TrimSpace(b.EntityNoun) != "", "board.entity_noun must not be empty")
	p.require(b.Concurrency >= 1, "board.concurrency must be >= 1, got %d", b.Concurrency)
	return p.err()
}

// validatePipelines checks each definition with the domain rules and
// rejects keys that appear twice.
func validatePipelines(defs []PipelineConfig) error {
	if len(defs) == 0 {
		return errors.New("pipelines must define at least one pipeline")
	}

	var p problems
	seen := make(map[string]int, len(defs))
	for i, d := range defs {
		def := pipeline.Pipeline{Key: d.Key, Label: d.Label, Stages: d.Stages}
		if err := def.Validate(); err != nil {
			p = append(p, fmt.Errorf("pipelines[%d]: %w", i, err))
		}
		if first, dup := seen[d.Key]; dup {
			p = append(p, fmt.Errorf("pipelines[%d]: duplicate key %q, first defined at pipelines[%d]", i, d.Key, first))
			continue
		}
		seen[d.Key] = i
	}
	return p.err()
}
