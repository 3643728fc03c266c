package logging

import (
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"github.com/m-mizutani/masq"
)

// sensitiveHeaders are lowercase header names whose values never reach a
// log. Board scripts send the CSRF token as a header.
var sensitiveHeaders = []string{
	"authorization",
	"cookie",
	"x-api-key",
	"x-csrftoken",
	"x-csrf-token",
}

// sensitiveFields are attribute keys redacted wherever they appear. The
// legacy stage and convert forms post their token as csrfmiddlewaretoken.
var sensitiveFields = []string{
	"password",
	"secret",
	"token",
	"csrfmiddlewaretoken",
	"csrf_token",
}

var (
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

	// Three dot-separated segments of at least 10 characters, so version
	// strings and decimal amounts are left alone.
	jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

	inlineSecretPattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey|csrfmiddlewaretoken)\s*[:=]\s*[^\s&]+`)
)

// IsSensitiveHeader reports whether the value of header name must be
// redacted. The comparison ignores case.
func IsSensitiveHeader(name string) bool {
	return slices.Contains(sensitiveHeaders, strings.ToLower(name))
}

// redactor builds the masq ReplaceAttr hook shared by every handler. Keys
// are matched by name and by prefix; values are also scanned for bearer
// tokens, JWTs and inline keys that escaped call-site redaction.
func redactor() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(sensitiveHeaders)+len(sensitiveFields)+5)
	for _, name := range sensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	opts = append(opts,
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(inlineSecretPattern),
	)
	return masq.New(opts...)
}
