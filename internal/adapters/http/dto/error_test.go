package dto_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/pipeline-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/pipeline-board/internal/domain"
)

func TestNewErrorResponse_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"unknown opportunity", fmt.Errorf("fetching opportunity 7: %w", domain.ErrNotFound), http.StatusNotFound},
		{"stage outside pipeline", &domain.ValidationError{Fields: map[string]string{"stage": "is not a stage of lift"}}, http.StatusBadRequest},
		{"already converted", fmt.Errorf("converting opportunity 7: %w", domain.ErrConflict), http.StatusConflict},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"collaborator down", domain.ErrUnavailable, http.StatusBadGateway},
		{"store query timed out", fmt.Errorf("loading board: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{"unclassified", errors.New("disk full"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, "/api/v1/pipelines/lift/board", http.NoBody)
			got := dto.NewErrorResponse(r, tt.err)

			if got.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", got.Status, tt.wantStatus)
			}
			if got.Title != http.StatusText(tt.wantStatus) {
				t.Errorf("Title = %q, want %q", got.Title, http.StatusText(tt.wantStatus))
			}
			if got := dto.StatusCode(tt.err); got != tt.wantStatus {
				t.Errorf("StatusCode() = %d, want %d", got, tt.wantStatus)
			}
		})
	}
}

func TestNewErrorResponse_Detail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "plain error keeps its text",
			err:  fmt.Errorf("pipeline %q: %w", "boats", domain.ErrNotFound),
			want: `pipeline "boats": not found`,
		},
		{
			name: "remote message wins",
			err:  fmt.Errorf("wrapped: %w", &domain.RemoteError{Message: "Opportunity is locked.", Err: domain.ErrRejected}),
			want: "Opportunity is locked.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodPost, "/sales/opportunities/7/stage", http.NoBody)
			got := dto.NewErrorResponse(r, tt.err)

			if got.Detail != tt.want {
				t.Errorf("Detail = %q, want %q", got.Detail, tt.want)
			}
			if got.Instance != "/sales/opportunities/7/stage" {
				t.Errorf("Instance = %q, want %q", got.Instance, "/sales/opportunities/7/stage")
			}
			if got.Type != "about:blank" {
				t.Errorf("Type = %q, want %q", got.Type, "about:blank")
			}
		})
	}
}

func TestWriteErrorResponse_FormFieldErrors(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/forms/amc-visit/submissions", http.NoBody)

	dto.WriteErrorResponse(w, r, &domain.ValidationError{Fields: map[string]string{
		"door_photo": "Photo evidence is required for 'Door' when marked NG",
		"door":       "is required",
		"evidence":   "At least one photo is required when any item is marked NG",
	}})

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/problem+json")
	}

	var resp dto.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}

	wantLocations := []string{"body.door", "body.door_photo", "body.evidence"}
	if len(resp.Errors) != len(wantLocations) {
		t.Fatalf("len(Errors) = %d, want %d", len(resp.Errors), len(wantLocations))
	}
	for i, want := range wantLocations {
		if resp.Errors[i].Location != want {
			t.Errorf("Errors[%d].Location = %q, want %q", i, resp.Errors[i].Location, want)
		}
	}
	if resp.Errors[0].Message != "is required" {
		t.Errorf("Errors[0].Message = %q, want %q", resp.Errors[0].Message, "is required")
	}
}

func TestNewErrorResponse_NoFieldErrorsOutsideValidation(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/forms/amc-visit", http.NoBody)
	got := dto.NewErrorResponse(r, domain.ErrNotFound)

	if got.Errors != nil {
		t.Errorf("Errors = %v, want nil for non-validation error", got.Errors)
	}
}

func TestIsAsync(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		headers   map[string]string
		wantXHR   bool
		wantAsync bool
	}{
		{name: "plain form post", headers: nil},
		{name: "board script", headers: map[string]string{"X-Requested-With": "XMLHttpRequest"}, wantXHR: true, wantAsync: true},
		{name: "header case ignored", headers: map[string]string{"X-Requested-With": "xmlhttprequest"}, wantXHR: true, wantAsync: true},
		{name: "json client", headers: map[string]string{"Accept": "application/json"}, wantAsync: true},
		{name: "html browser", headers: map[string]string{"Accept": "text/html,application/xhtml+xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodPost, "/sales/opportunities/7/stage", http.NoBody)
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}

			if got := dto.IsXHR(r); got != tt.wantXHR {
				t.Errorf("IsXHR() = %v, want %v", got, tt.wantXHR)
			}
			if got := dto.IsAsync(r); got != tt.wantAsync {
				t.Errorf("IsAsync() = %v, want %v", got, tt.wantAsync)
			}
		})
	}
}

func TestWriteFailure(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	dto.WriteFailure(w, http.StatusBadRequest, "Invalid stage selected.")

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/json")
	}

	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
	if body["success"] != false {
		t.Errorf("success = %v, want false", body["success"])
	}
	if body["message"] != "Invalid stage selected." {
		t.Errorf("message = %v, want %q", body["message"], "Invalid stage selected.")
	}
}
