package httpclient

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/pipeline-board/internal/platform/config"
	"github.com/jsamuelsen11/pipeline-board/internal/platform/logging"
)

// jitterFraction bounds the random spread applied to each delay (±25%).
const jitterFraction = 0.25

// retryPolicy is the unexported copy of config.RetryConfig.
type retryPolicy struct {
	maxAttempts int
	initial     time.Duration
	ceiling     time.Duration
	multiplier  float64
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	return retryPolicy{
		maxAttempts: cfg.MaxAttempts,
		initial:     cfg.InitialInterval,
		ceiling:     cfg.MaxInterval,
		multiplier:  cfg.Multiplier,
	}
}

// attempts returns how many times a request with method may be sent.
// Stage changes and conversions are POSTs and get exactly one attempt.
func (p retryPolicy) attempts(method string) int {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return p.maxAttempts
	default:
		return 1
	}
}

// delay returns the wait before retry number attempt (1 is the first retry):
// exponential from initial, capped at ceiling, with jitter. A Retry-After
// hint from the server raises the delay but never past ceiling.
func (p retryPolicy) delay(attempt int, hint time.Duration) time.Duration {
	d := float64(p.initial) * math.Pow(p.multiplier, float64(attempt-1))
	d = min(d, float64(p.ceiling))

	d += d * jitterFraction * (2*secureRandFloat64() - 1)
	d = max(d, 0)

	if hint > time.Duration(d) {
		return min(hint, p.ceiling)
	}
	return time.Duration(d)
}

// send runs the attempt loop for req. The final response is stored in *resp
// rather than returned; the caller owns its body.
func (c *Client) send(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.policy.maxAttempts <= 0 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.policy.maxAttempts)
	}

	body, err := snapshotBody(req)
	if err != nil {
		return err
	}

	attempts := c.policy.attempts(req.Method)
	var (
		lastErr error
		hint    time.Duration
	)
	for attempt := range attempts {
		if attempt > 0 {
			if err := c.pause(ctx, req, attempt, hint, lastErr); err != nil {
				return err
			}
		}
		rewind(req, body)

		r, err := c.http.Do(req)
		if err != nil {
			if !isRetryable(err) {
				return err
			}
			lastErr, hint = err, 0
			continue
		}

		if !isRetryableStatus(r.StatusCode) {
			*resp = r
			return nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.peer)
		if attempt == attempts-1 {
			*resp = r
			return lastErr
		}
		hint = retryAfter(r.Header.Get("Retry-After"), time.Now())
		discard(r)
	}
	return lastErr
}

// pause logs the upcoming retry and waits for it unless ctx ends first.
func (c *Client) pause(ctx context.Context, req *http.Request, attempt int, hint time.Duration, cause error) error {
	wait := c.policy.delay(attempt, hint)

	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("peer_service", c.peer),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.policy.maxAttempts),
		slog.Duration("backoff", wait),
		slog.Any("error", cause),
	)

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// retryAfter parses a Retry-After header given either as delay seconds or
// as an HTTP date. Unparseable or past values yield zero.
func retryAfter(v string, now time.Time) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return max(time.Duration(secs)*time.Second, 0)
	}
	if at, err := http.ParseTime(v); err == nil {
		return max(at.Sub(now), 0)
	}
	return 0
}

// snapshotBody reads and closes the request body so that every attempt can
// replay it. A nil body yields nil.
func snapshotBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	_ = req.Body.Close()
	return b, nil
}

func rewind(req *http.Request, body []byte) {
	if body == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
}

// discard drains and closes a response that is about to be retried, which
// lets the transport reuse the connection.
func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

const (
	significandBits = 53
	uint64Bits      = 64
)

// secureRandFloat64 returns a value in [0, 1) from crypto/rand.
func secureRandFloat64() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0
	}
	return float64(binary.BigEndian.Uint64(b[:])>>(uint64Bits-significandBits)) / float64(uint64(1)<<significandBits)
}

// isRetryable reports whether a transport error is worth another attempt.
// Everything except cancellation and an expired deadline is.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus reports 429 and every 5xx.
func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
