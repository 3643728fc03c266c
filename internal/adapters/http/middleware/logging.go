package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jsamuelsen11/pipeline-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/pipeline-board/internal/platform/logging"
)

// Logging returns middleware that logs each request once it completes. It
// stores a child logger enriched with the request and correlation IDs via
// logging.WithLogger for handlers and services to use.
//
// The completion entry names the chi route pattern rather than the raw path
// so that moves of different opportunities group together. 5xx responses log
// at error level and 4xx at warn. Redirects from the legacy form endpoints
// include their Location.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, child)

			if child.Enabled(ctx, slog.LevelDebug) {
				child.LogAttrs(ctx, slog.LevelDebug, "request started",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Attr{Key: "headers", Value: slog.GroupValue(RedactHeaders(r.Header)...)},
				)
			}

			rw := newStatusRecorder(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("route", routePattern(r)),
				slog.Int("status", rw.status),
				slog.Int64("bytes", rw.bytes),
				slog.Duration("duration", time.Since(start)),
			}
			if dto.IsXHR(r) {
				attrs = append(attrs, slog.Bool("xhr", true))
			}
			if rw.status >= http.StatusMultipleChoices && rw.status < http.StatusBadRequest {
				if loc := rw.Header().Get("Location"); loc != "" {
					attrs = append(attrs, slog.String("location", loc))
				}
			}
			child.LogAttrs(ctx, levelForStatus(rw.status), "request completed", attrs...)
		})
	}
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// RedactHeaders converts request headers into slog attributes, replacing
// sensitive values with "[REDACTED]". Multi-value headers are joined with a
// comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for key, vals := range headers {
		if logging.IsSensitiveHeader(key) {
			attrs = append(attrs, slog.String(key, "[REDACTED]"))
			continue
		}
		attrs = append(attrs, slog.String(key, strings.Join(vals, ",")))
	}
	return attrs
}
