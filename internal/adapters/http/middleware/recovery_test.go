package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsamuelsen11/pipeline-board/internal/adapters/http/middleware"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func stageRequest(xhr bool) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/sales/opportunities/7/stage", strings.NewReader("stage=Proposal"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if xhr {
		req.Header.Set("X-Requested-With", "XMLHttpRequest")
	}
	return req
}

func TestRecovery_PassesThrough(t *testing.T) {
	t.Parallel()

	handler := middleware.Recovery(discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":true}`))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, stageRequest(true))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != `{"success":true}` {
		t.Errorf("body = %q, want %q", rec.Body.String(), `{"success":true}`)
	}
}

func TestRecovery_AnswersInCallerDialect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		xhr             bool
		panicValue      any
		wantContentType string
	}{
		{name: "board script gets envelope", xhr: true, panicValue: "nil board", wantContentType: "application/json"},
		{name: "form post gets problem", panicValue: "nil board", wantContentType: "application/problem+json"},
		{name: "non-string panic", panicValue: 42, wantContentType: "application/problem+json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := middleware.Recovery(discardLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				panic(tt.panicValue)
			}))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, stageRequest(tt.xhr))

			if rec.Code != http.StatusInternalServerError {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
			}
			if ct := rec.Header().Get("Content-Type"); ct != tt.wantContentType {
				t.Errorf("Content-Type = %q, want %q", ct, tt.wantContentType)
			}

			var body map[string]any
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decoding response body: %v", err)
			}
			if tt.xhr {
				if body["success"] != false || body["message"] == "" {
					t.Errorf("body = %v, want failure envelope with message", body)
				}
				return
			}
			if body["title"] != "Internal Server Error" {
				t.Errorf("title = %v, want %q", body["title"], "Internal Server Error")
			}
			if strings.Contains(rec.Body.String(), "nil board") {
				t.Error("response leaks the panic value")
			}
		})
	}
}

func TestRecovery_LogsPanicWithStack(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Recovery(testLogger(&buf))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("aggregate underflow")
	}))

	handler.ServeHTTP(httptest.NewRecorder(), stageRequest(false))

	out := buf.String()
	for _, want := range []string{"panic recovered", "aggregate underflow", "goroutine", "/sales/opportunities/7/stage"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q", want)
		}
	}
}

func TestRecovery_KeepsStartedResponse(t *testing.T) {
	t.Parallel()

	handler := middleware.Recovery(discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusSeeOther)
		panic("late panic")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, stageRequest(false))

	if rec.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
}
