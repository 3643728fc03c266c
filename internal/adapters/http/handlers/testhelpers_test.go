package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/pipeline-board/internal/domain/form"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/pipeline"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func liftPipeline() pipeline.Pipeline {
	return pipeline.Pipeline{
		Key:    "lift",
		Label:  "Lift",
		Stages: []string{"New Enquiry", "Site Visit", "Closed Won"},
	}
}

func validOpportunity() pipeline.Opportunity {
	return pipeline.Opportunity{
		ID:       7,
		Title:    "Tower A",
		Pipeline: "lift",
		Stage:    "Site Visit",
		Amount:   decimal.RequireFromString("1250000.50"),
		Currency: "₹",
	}
}

func validSchema() form.Schema {
	return form.Normalize(form.Schema{
		ID:      "amc-visit",
		Version: 2,
		Name:    "AMC Visit",
		Sections: []form.Section{{
			Title: "Car",
			Fields: []form.Field{
				{ID: "door", Label: "Door", Type: form.TypeSelect, Options: []string{"OK", "Not OK"}, Required: true},
				{
					ID: "door_photo", Label: "Door photo", Type: form.TypePhoto,
					Requirement: &form.Requirement{DependsOn: "door", DisqualifyingValues: []string{"Not OK"}},
				},
			},
		}},
	})
}

// formRequest builds a form-encoded POST, flagged as XHR when xhr is set.
func formRequest(target string, values url.Values, xhr bool) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if xhr {
		req.Header.Set("X-Requested-With", "XMLHttpRequest")
	}
	return req
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
