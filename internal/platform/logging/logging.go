// Package logging builds the service's slog loggers and carries them through
// request contexts.
//
//	logger := logging.New(cfg.Log, os.Stderr)
//	ctx = logging.WithLogger(ctx, logger.With(slog.String("request_id", id)))
//	logging.FromContext(ctx).ErrorContext(ctx, "failed to load board",
//	    slog.String("operation", "GetBoard"),
//	    slog.String("pipeline", key),
//	    slog.Any("error", err),
//	)
//
// Error entries name the operation and the entity they concern and carry the
// whole chain under "error". Every handler built here runs attributes through
// the masq redactor in redact.go.
package logging

import (
	"context"
	"io"
	"log/slog"

	"github.com/jsamuelsen11/pipeline-board/internal/platform/config"
)

// FormatText selects slog's key=value output. Any other format is JSON.
const FormatText = "text"

type contextKey struct{}

// New returns a logger writing to w at cfg.Level. An unknown level logs at
// info. Debug loggers also report the source location of each entry.
func New(cfg config.LogConfig, w io.Writer) *slog.Logger {
	level := ParseLevel(cfg.Level)

	opts := &slog.HandlerOptions{
		Level:       level,
		AddSource:   level <= slog.LevelDebug,
		ReplaceAttr: redactor(),
	}

	if cfg.Format == FormatText {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel accepts the names slog understands ("debug", "WARN",
// "info+2"...) in any case and falls back to info.
func ParseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
