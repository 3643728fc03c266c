package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/pipeline-board/internal/adapters/http/dto"
)

// msgUnexpected is shown by board scripts when a handler panicked.
const msgUnexpected = "Something went wrong. Please try again."

// errInternalServer is reported to non-script callers after a panic. The
// panic value and stack trace are only logged.
var errInternalServer = errors.New("internal server error")

// Recovery returns middleware that recovers from panics in downstream
// handlers. The panic is logged with its stack trace. Board scripts get the
// {"success": false} envelope with status 500 so the card stays where it
// was; other callers get an RFC 9457 500 response. Nothing is written when
// the handler already started its response.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newStatusRecorder(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)
				if rw.started {
					return
				}
				writeAborted(rw, r, http.StatusInternalServerError, msgUnexpected, errInternalServer)
			}()

			next.ServeHTTP(rw, r)
		})
	}
}

// writeAborted answers a request the middleware had to cut short.
func writeAborted(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if dto.IsXHR(r) {
		dto.WriteFailure(w, status, message)
		return
	}
	dto.WriteErrorResponse(w, r, err)
}
