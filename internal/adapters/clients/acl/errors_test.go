package acl

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jsamuelsen11/pipeline-board/internal/domain"
)

func response(status int, contentType, body string) *http.Response {
	resp := &http.Response{StatusCode: status, Header: http.Header{}}
	if contentType != "" {
		resp.Header.Set("Content-Type", contentType)
	}
	if body != "" {
		resp.Body = io.NopCloser(strings.NewReader(body))
	}
	return resp
}

func TestTranslateHTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		resp        *http.Response
		wantErr     error
		wantMessage string
	}{
		{
			name:        "unknown pipeline keeps server detail",
			resp:        response(404, problemMediaType, `{"detail":"pipeline \"boats\" not found"}`),
			wantErr:     domain.ErrNotFound,
			wantMessage: `pipeline "boats" not found`,
		},
		{
			name:        "problem json with charset",
			resp:        response(409, problemMediaType+"; charset=utf-8", `{"detail":"opportunity 4 already converted"}`),
			wantErr:     domain.ErrConflict,
			wantMessage: "opportunity 4 already converted",
		},
		{
			name:        "plain json body is not a problem",
			resp:        response(409, "application/json", `{"detail":"ignored"}`),
			wantErr:     domain.ErrConflict,
			wantMessage: "Conflict",
		},
		{
			name:        "malformed problem falls back to status text",
			resp:        response(403, problemMediaType, `{"detail":`),
			wantErr:     domain.ErrForbidden,
			wantMessage: "Forbidden",
		},
		{
			name:        "no body",
			resp:        response(401, "", ""),
			wantErr:     domain.ErrForbidden,
			wantMessage: "Unauthorized",
		},
		{
			name:        "bare 422",
			resp:        response(422, "text/plain", "bad"),
			wantErr:     domain.ErrValidation,
			wantMessage: "Unprocessable Entity",
		},
		{
			name:        "throttled",
			resp:        response(429, "", ""),
			wantErr:     domain.ErrUnavailable,
			wantMessage: "Too Many Requests",
		},
		{
			name:        "handler timeout",
			resp:        response(504, problemMediaType, `{"detail":"request timed out"}`),
			wantErr:     domain.ErrUnavailable,
			wantMessage: "request timed out",
		},
		{
			name:        "any 5xx",
			resp:        response(507, "", ""),
			wantErr:     domain.ErrUnavailable,
			wantMessage: "Insufficient Storage",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := TranslateHTTPError(tt.resp)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("TranslateHTTPError() = %v, want %v", err, tt.wantErr)
			}
			if !strings.HasPrefix(err.Error(), tt.wantMessage+": ") {
				t.Errorf("TranslateHTTPError() = %q, want message %q", err, tt.wantMessage)
			}
		})
	}
}

func TestTranslateHTTPError_FieldErrors(t *testing.T) {
	t.Parallel()

	body := `{
		"detail": "request body has invalid fields",
		"errors": [
			{"location": "body.door", "message": "is required"},
			{"location": "body.photos", "message": "at least 2 photos required when every answer is clear"},
			{"location": "version", "message": "must not be negative"}
		]
	}`

	err := TranslateHTTPError(response(http.StatusUnprocessableEntity, problemMediaType, body))

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("TranslateHTTPError() = %T, want *domain.ValidationError", err)
	}
	want := map[string]string{
		"door":    "is required",
		"photos":  "at least 2 photos required when every answer is clear",
		"version": "must not be negative",
	}
	if diff := cmp.Diff(want, verr.Fields); diff != "" {
		t.Errorf("Fields mismatch (-want +got):\n%s", diff)
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Error("field errors should still match domain.ErrValidation")
	}
}

func TestTranslateHTTPError_UnclassifiedStatus(t *testing.T) {
	t.Parallel()

	err := TranslateHTTPError(response(http.StatusTeapot, "", ""))

	for _, sentinel := range []error{
		domain.ErrNotFound, domain.ErrValidation, domain.ErrConflict,
		domain.ErrForbidden, domain.ErrUnavailable,
	} {
		if errors.Is(err, sentinel) {
			t.Errorf("TranslateHTTPError(418) matched %v", sentinel)
		}
	}
	if !strings.Contains(err.Error(), "unexpected status 418") {
		t.Errorf("TranslateHTTPError(418) = %q, want unexpected status", err)
	}
}
