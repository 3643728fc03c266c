// Package acl implements the Anti-Corruption Layer that translates between
// the remote pipeline collaborator's wire formats and domain types. Board
// payload translators live in the acl/board subpackage; shared error mapping
// and the request lifecycle live here.
package acl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/pipeline-board/internal/domain"
)

const (
	maxErrorBodySize = 1 << 20 // 1 MB
	problemMediaType = "application/problem+json"
)

// problemDetail is the subset of an RFC 9457 body the board server sends.
type problemDetail struct {
	Detail string        `json:"detail"`
	Errors []errorDetail `json:"errors"`
}

type errorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// statusErrors classifies the 4xx statuses the board server uses. Any 5xx
// is domain.ErrUnavailable.
var statusErrors = map[int]error{
	http.StatusBadRequest:          domain.ErrValidation,
	http.StatusUnprocessableEntity: domain.ErrValidation,
	http.StatusUnauthorized:        domain.ErrForbidden,
	http.StatusForbidden:           domain.ErrForbidden,
	http.StatusNotFound:            domain.ErrNotFound,
	http.StatusConflict:            domain.ErrConflict,
	http.StatusTooManyRequests:     domain.ErrUnavailable,
}

// TranslateHTTPError maps a non-success response to a domain error. A
// problem+json body supplies the message; a 400 or 422 listing field errors
// becomes a *domain.ValidationError keyed by field name.
func TranslateHTTPError(resp *http.Response) error {
	var body []byte
	if resp.Body != nil {
		body, _ = io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	}
	return translateStatus(resp.StatusCode, decodeProblemDetail(resp.Header.Get("Content-Type"), body))
}

func translateStatus(status int, pd problemDetail) error {
	detail := pd.Detail
	if detail == "" {
		detail = http.StatusText(status)
	}

	sentinel, ok := statusErrors[status]
	if !ok && status >= http.StatusInternalServerError {
		sentinel, ok = domain.ErrUnavailable, true
	}
	if !ok {
		return fmt.Errorf("unexpected status %d: %s", status, detail)
	}

	if errors.Is(sentinel, domain.ErrValidation) && len(pd.Errors) > 0 {
		return toValidationError(pd.Errors)
	}
	return fmt.Errorf("%s: %w", detail, sentinel)
}

// decodeProblemDetail parses body when contentType is problem+json, with or
// without parameters. Anything else yields the zero value.
func decodeProblemDetail(contentType string, body []byte) problemDetail {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != problemMediaType {
		return problemDetail{}
	}

	var pd problemDetail
	if err := json.Unmarshal(body, &pd); err != nil {
		return problemDetail{}
	}
	return pd
}

// toValidationError keys field errors by name; the server reports them at
// "body.<field>" locations.
func toValidationError(details []errorDetail) *domain.ValidationError {
	fields := make(map[string]string, len(details))
	for _, d := range details {
		fields[strings.TrimPrefix(d.Location, "body.")] = d.Message
	}
	return &domain.ValidationError{Fields: fields}
}
