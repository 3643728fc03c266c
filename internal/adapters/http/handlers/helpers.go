package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/pipeline-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/pipeline-board/internal/domain"
	"github.com/jsamuelsen11/pipeline-board/internal/platform/logging"
)

// maxJSONBodyBytes caps request bodies. Submissions carry attachment
// references, not the photos themselves.
const maxJSONBodyBytes = 1 << 20

// fieldError is a ValidationError for a single field.
func fieldError(field, msg string) error {
	return &domain.ValidationError{Fields: map[string]string{field: msg}}
}

// parseID reads the path parameter param as an opportunity or record ID.
func parseID(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil {
		return 0, fieldError(param, "must be a valid integer")
	}
	return id, nil
}

// parseVersion reads the optional "version" query parameter. Absent means
// the latest schema version, reported as 0.
func parseVersion(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("version")
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fieldError("version", "must be a non-negative integer")
	}
	return v, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "writing response",
			slog.Int("status", status),
			slog.Any("error", err),
		)
	}
}

// requestBody is a JSON request that checks its own fields after decoding.
type requestBody interface {
	Validate() error
}

// decodeRequest decodes r's body into dst and validates it. On failure the
// problem response is already written and false is returned.
func decodeRequest[T requestBody](w http.ResponseWriter, r *http.Request, dst T) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		msg := "invalid JSON"
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			msg = "exceeds " + strconv.Itoa(maxJSONBodyBytes) + " bytes"
		}
		dto.WriteErrorResponse(w, r, fieldError("body", msg))
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
