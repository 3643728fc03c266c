package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/jsamuelsen11/pipeline-board/internal/platform/httpclient"
)

// maxResponseBodySize caps how much of a board or stage response is read.
const maxResponseBodySize = 1 << 20

// Requester sends the board server's two kinds of request: JSON reads and
// form posts made the way a board script makes them. Every response is read
// in full and the body closed before it is interpreted.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester returns a Requester sending through client.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Requester{client: client, logger: logger}
}

// Response is a board server answer read in full. Stage and conversion
// endpoints attach {"success": false, "message": ...} to error statuses, so
// callers get the response whatever its status.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode/100 == 2
}

// IsRedirect reports a 3xx status, e.g. a conversion answering with the new
// project's location.
func (r *Response) IsRedirect() bool {
	return r.StatusCode/100 == 3
}

// Err translates the response into a domain error.
func (r *Response) Err() error {
	return translateStatus(r.StatusCode, decodeProblemDetail(r.Header.Get("Content-Type"), r.Body))
}

// Do sends a JSON request to path and decodes a wantStatus answer into
// respBody. reqBody and respBody may be nil. Any other status becomes a
// domain error.
func (r *Requester) Do(ctx context.Context, method, path string, wantStatus int, reqBody, respBody any) error {
	var body io.Reader = http.NoBody
	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("encoding %s %s body: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.resolve(path), body)
	if err != nil {
		return fmt.Errorf("building %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.exchange(req)
	if err != nil {
		return err
	}
	if resp.StatusCode != wantStatus {
		r.logger.WarnContext(ctx, "unexpected status",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", wantStatus),
		)
		return resp.Err()
	}
	if respBody == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body, respBody); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

// PostForm posts values form-encoded with X-Requested-With: XMLHttpRequest,
// so the board server answers with JSON instead of redirecting.
func (r *Requester) PostForm(ctx context.Context, path string, values url.Values) (*Response, error) {
	var body io.Reader = http.NoBody
	if len(values) > 0 {
		body = strings.NewReader(values.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.resolve(path), body)
	if err != nil {
		return nil, fmt.Errorf("building POST %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")

	return r.exchange(req)
}

// BaseURL returns the board server root.
func (r *Requester) BaseURL() string {
	return r.client.BaseURL()
}

// CircuitBreakerState reports the underlying client's breaker state.
func (r *Requester) CircuitBreakerState() string {
	return r.client.CircuitBreakerState()
}

// resolve joins path to the base URL unless it is already absolute.
func (r *Requester) resolve(path string) string {
	if u, err := url.Parse(path); err == nil && u.IsAbs() {
		return path
	}
	return r.client.BaseURL() + path
}

// exchange sends req and reads the answer. An exhausted retry on a 5xx still
// carries the last response, which is returned for translation; only a
// failure without any response is an error.
func (r *Requester) exchange(req *http.Request) (*Response, error) {
	ctx := req.Context()

	resp, err := r.client.Do(ctx, req)
	if resp == nil {
		r.logger.ErrorContext(ctx, "request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			r.logger.WarnContext(ctx, "closing response body", slog.Any("error", cerr))
		}
	}()

	body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if readErr != nil {
		return nil, fmt.Errorf("reading %s %s response: %w", req.Method, req.URL.Path, readErr)
	}
	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: body}, nil
}
