// Command server runs the board API. It loads the APP_PROFILE configuration,
// seeds the SQLite store with form schemas and opportunities, wires the
// handlers with samber/do and serves until SIGINT or SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/pipeline-board/internal/adapters/http"
	"github.com/jsamuelsen11/pipeline-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/pipeline-board/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/pipeline-board/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/pipeline-board/internal/adapters/seed"
	"github.com/jsamuelsen11/pipeline-board/internal/adapters/store/sqlite"
	"github.com/jsamuelsen11/pipeline-board/internal/app"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/pipeline"
	"github.com/jsamuelsen11/pipeline-board/internal/platform/config"
	"github.com/jsamuelsen11/pipeline-board/internal/platform/health"
	"github.com/jsamuelsen11/pipeline-board/internal/platform/logging"
	"github.com/jsamuelsen11/pipeline-board/internal/platform/telemetry"
	"github.com/jsamuelsen11/pipeline-board/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log, os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	providers, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := providers.Shutdown(flushCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, providers.Metrics)
	registerDependencies(ctx, injector, cfg, logger)

	store, err := do.Invoke[*sqlite.Store](injector)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("store close error", slog.Any("error", err))
		}
	}()

	seeder := do.MustInvoke[*seed.Seeder](injector)
	if _, err := seeder.Run(ctx, cfg.Seed.FormsDir, cfg.Seed.Opportunities); err != nil {
		return fmt.Errorf("seeding store: %w", err)
	}

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}
	do.MustInvoke[ports.HealthRegistry](injector).Register(store)

	serverErr := make(chan error, 1)
	go func() { serverErr <- server.Start() }()

	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}
	<-serverErr

	logger.Info("shutdown complete")
	return nil
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*sqlite.Store, error) {
		return sqlite.Open(ctx, cfg.Store.DSN)
	})

	do.Provide(injector, func(_ do.Injector) (*pipeline.Catalog, error) {
		return cfg.Catalog(), nil
	})

	do.Provide(injector, func(i do.Injector) (*seed.Seeder, error) {
		store := do.MustInvoke[*sqlite.Store](i)
		catalog := do.MustInvoke[*pipeline.Catalog](i)
		return seed.New(store.Forms(), store, catalog, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.PipelineService, error) {
		store := do.MustInvoke[*sqlite.Store](i)
		catalog := do.MustInvoke[*pipeline.Catalog](i)
		return app.NewPipelineService(catalog, store, store, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.FormService, error) {
		forms := do.MustInvoke[*sqlite.Store](i).Forms()
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewFormService(forms, forms, metrics, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.PipelineHandler, error) {
		svc := do.MustInvoke[ports.PipelineService](i)
		return handlers.NewPipelineHandler(svc, dto.BoardOptions{
			EntityNoun:      cfg.Board.EntityNoun,
			DefaultCurrency: cfg.Board.DefaultCurrency,
		}), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.OpportunityHandler, error) {
		svc := do.MustInvoke[ports.PipelineService](i)
		return handlers.NewOpportunityHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.FormHandler, error) {
		svc := do.MustInvoke[ports.FormService](i)
		return handlers.NewFormHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		pipelineH := do.MustInvoke[*handlers.PipelineHandler](i)
		opportunityH := do.MustInvoke[*handlers.OpportunityHandler](i)
		formH := do.MustInvoke[*handlers.FormHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(pipelineH, opportunityH, formH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
