package config_test

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/pipeline-board/internal/platform/config"
)

// repoConfigs is the checked-in configs directory.
const repoConfigs = "../../../configs"

// environ returns a fixed environment for WithEnviron.
func environ(vars ...string) config.Option {
	return config.WithEnviron(func() []string { return vars })
}

func TestLoad_Profiles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		profile string
		check   func(t *testing.T, cfg *config.Config)
	}{
		{
			profile: "local",
			check: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				if cfg.Log != (config.LogConfig{Level: "debug", Format: "text"}) {
					t.Errorf("Log = %+v, want debug/text", cfg.Log)
				}
				if cfg.Telemetry.Enabled {
					t.Error("Telemetry.Enabled = true, want false")
				}
				if cfg.Seed.Opportunities == "" {
					t.Error("Seed.Opportunities is empty, want the sample board")
				}
			},
		},
		{
			profile: "prod",
			check: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				if cfg.Log != (config.LogConfig{Level: "info", Format: "json"}) {
					t.Errorf("Log = %+v, want info/json", cfg.Log)
				}
				if !cfg.Telemetry.Enabled || cfg.Telemetry.Exporter != "otlp" || cfg.Telemetry.Endpoint == "" {
					t.Errorf("Telemetry = %+v, want otlp with endpoint", cfg.Telemetry)
				}
				if cfg.Seed.Opportunities != "" {
					t.Errorf("Seed.Opportunities = %q, want no sample board in prod", cfg.Seed.Opportunities)
				}
				if !strings.HasPrefix(cfg.Store.DSN, "/var/lib/") {
					t.Errorf("Store.DSN = %q, want a /var/lib path", cfg.Store.DSN)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.profile, func(t *testing.T) {
			t.Parallel()

			cfg, err := config.Load(tt.profile, config.WithConfigDir(repoConfigs), environ())
			if err != nil {
				t.Fatalf("Load(%q) error = %v", tt.profile, err)
			}

			// Shared by every profile through base.yaml.
			if cfg.Server.Host != "0.0.0.0" || cfg.Server.Port != 8080 {
				t.Errorf("Server = %s:%d, want 0.0.0.0:8080", cfg.Server.Host, cfg.Server.Port)
			}
			if cfg.Client.Retry.MaxAttempts != 3 || cfg.Client.CircuitBreaker.MaxFailures != 5 {
				t.Errorf("Client = %+v, want base retry and breaker", cfg.Client)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoad_PipelinesKeepFileOrder(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load("local", config.WithConfigDir(repoConfigs), environ())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	keys := make([]string, 0, len(cfg.Pipelines))
	for _, p := range cfg.Pipelines {
		keys = append(keys, p.Key)
		if len(p.Stages) != 6 {
			t.Errorf("pipeline %q has %d stages, want 6", p.Key, len(p.Stages))
		}
	}
	if want := []string{"lift", "amc", "parking"}; !slices.Equal(keys, want) {
		t.Errorf("pipeline keys = %v, want %v", keys, want)
	}

	p, err := cfg.Catalog().Get("amc")
	if err != nil {
		t.Fatalf("Catalog().Get(amc) error = %v", err)
	}
	if p.DefaultStage() != "New AMC Enquiry" {
		t.Errorf("DefaultStage() = %q, want %q", p.DefaultStage(), "New AMC Enquiry")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load("local", config.WithConfigDir(repoConfigs), environ(
		"APP_SERVER_PORT=9090",
		"APP_SERVER_READ_TIMEOUT=15s",
		"APP_CLIENT_RETRY_MAX_ATTEMPTS=7",
		"APP_STORE_DSN=/tmp/board.db",
		"APP_BOARD_DEFAULT_CURRENCY=$",
		"APP_PROFILE=local",
		"APP_NOT_A_KEY=1",
		"SERVER_PORT=1",
	))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 15s", cfg.Server.ReadTimeout)
	}
	if cfg.Client.Retry.MaxAttempts != 7 {
		t.Errorf("Client.Retry.MaxAttempts = %d, want 7", cfg.Client.Retry.MaxAttempts)
	}
	if cfg.Store.DSN != "/tmp/board.db" {
		t.Errorf("Store.DSN = %q, want /tmp/board.db", cfg.Store.DSN)
	}
	if cfg.Board.DefaultCurrency != "$" {
		t.Errorf("Board.DefaultCurrency = %q, want $", cfg.Board.DefaultCurrency)
	}
}

func TestLoad_DefaultsFillUnsetKeys(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, "base.yaml", `
pipelines:
  - key: lift
    stages: [New Enquiry, Closed Won]
`)
	writeConfig(t, dir, "dev.yaml", "log:\n  format: text\n")

	cfg, err := config.Load("dev", config.WithConfigDir(dir), environ())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Board != (config.BoardConfig{DefaultCurrency: "₹", EntityNoun: "deal", Concurrency: 4}) {
		t.Errorf("Board = %+v, want built-in defaults", cfg.Board)
	}
	if cfg.Client.RateLimit != (config.RateLimitConfig{RequestsPerSecond: 20, Burst: 10}) {
		t.Errorf("Client.RateLimit = %+v, want 20 rps / burst 10", cfg.Client.RateLimit)
	}
	if cfg.Store.DSN != "data/pipeline-board.db" {
		t.Errorf("Store.DSN = %q, want default path", cfg.Store.DSN)
	}
	if got := cfg.Catalog().All()[0].Label; got != "lift" {
		t.Errorf("Label = %q, want the key when no label is set", got)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		profile string
		env     []string
		want    string
	}{
		{name: "empty profile", profile: " ", want: "must not be empty"},
		{name: "path separator", profile: "../prod", want: "path separators"},
		{name: "traversal", profile: "..", want: "path traversal"},
		{name: "missing profile file", profile: "staging", want: "staging.yaml"},
		{name: "invalid override", profile: "local", env: []string{"APP_LOG_LEVEL=verbose"}, want: "log.level"},
		{name: "unparseable override", profile: "local", env: []string{"APP_SERVER_PORT=eighty"}, want: "unmarshalling"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.Load(tt.profile, config.WithConfigDir(repoConfigs), environ(tt.env...))
			if err == nil {
				t.Fatalf("Load(%q) error = nil, want %q", tt.profile, tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load(%q) error = %v, want mention of %q", tt.profile, err, tt.want)
			}
		})
	}
}

func TestValidate_SectionErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(c *config.Config)
		want   string
	}{
		{
			name:   "port out of range",
			mutate: func(c *config.Config) { c.Server.Port = 0 },
			want:   "server.port",
		},
		{
			name:   "unknown log level",
			mutate: func(c *config.Config) { c.Log.Level = "verbose" },
			want:   "log.level",
		},
		{
			name: "otlp without endpoint",
			mutate: func(c *config.Config) {
				c.Telemetry = config.TelemetryConfig{Enabled: true, Exporter: "otlp"}
			},
			want: "telemetry",
		},
		{
			name:   "empty dsn",
			mutate: func(c *config.Config) { c.Store.DSN = "" },
			want:   "store.dsn",
		},
		{
			name:   "zero concurrency",
			mutate: func(c *config.Config) { c.Board.Concurrency = 0 },
			want:   "board.concurrency",
		},
		{
			name:   "empty noun",
			mutate: func(c *config.Config) { c.Board.EntityNoun = " " },
			want:   "board.entity_noun",
		},
		{
			name:   "no pipelines",
			mutate: func(c *config.Config) { c.Pipelines = nil },
			want:   "at least one pipeline",
		},
		{
			name: "duplicate pipeline",
			mutate: func(c *config.Config) {
				c.Pipelines = append(c.Pipelines, c.Pipelines[0])
			},
			want: "duplicate key",
		},
		{
			name:   "pipeline without stages",
			mutate: func(c *config.Config) { c.Pipelines[0].Stages = nil },
			want:   "pipelines[0]",
		},
		{
			name:   "negative rate",
			mutate: func(c *config.Config) { c.Client.RateLimit.RequestsPerSecond = -1 },
			want:   "requests_per_second",
		},
		{
			name: "limiting without burst",
			mutate: func(c *config.Config) {
				c.Client.RateLimit = config.RateLimitConfig{RequestsPerSecond: 5}
			},
			want: "client.rate_limit.burst",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validBaseConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() returned nil, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	if err := validBaseConfig().Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile(%s) error: %v", name, err)
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Client: config.ClientConfig{
			BaseURL: "http://localhost:8081",
			Timeout: 30 * time.Second,
			Retry: config.RetryConfig{
				MaxAttempts:     3,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     10 * time.Second,
				Multiplier:      2.0,
			},
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 1,
			},
		},
		Telemetry: config.TelemetryConfig{
			Enabled:  false,
			Exporter: "stdout",
		},
		Store: config.StoreConfig{DSN: ":memory:"},
		Board: config.BoardConfig{
			DefaultCurrency: "₹",
			EntityNoun:      "deal",
			Concurrency:     4,
		},
		Pipelines: []config.PipelineConfig{
			{Key: "lift", Label: "Lift", Stages: []string{"New Enquiry", "Site Visit", "Closed Won"}},
		},
	}
}
