package dto

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// IsXHR reports whether r was sent by a board script
// (X-Requested-With: XMLHttpRequest).
func IsXHR(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("X-Requested-With"), "XMLHttpRequest")
}

// IsAsync reports whether the caller wants a JSON answer instead of a
// redirect: either a board script or a client whose Accept header names
// JSON.
func IsAsync(r *http.Request) bool {
	return IsXHR(r) || strings.Contains(r.Header.Get("Accept"), "application/json")
}

// WriteFailure writes the {"success": false, "message": ...} envelope board
// scripts understand.
func WriteFailure(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(FailureResponse{Success: false, Message: message}); err != nil {
		slog.Error("failed to encode failure response", slog.Any("error", err))
	}
}
