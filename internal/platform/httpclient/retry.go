package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/go-admin-workflow/internal/platform/logging"
)

// jitterFraction spreads each delay over ±25% of its nominal value.
const jitterFraction = 0.25

// retryPolicy is the exponential backoff schedule of one client.
type retryPolicy struct {
	maxAttempts int
	initial     time.Duration
	ceiling     time.Duration
	multiplier  float64
}

// delay returns the pause before retry number attempt (1 is the first
// retry): initial*multiplier^(attempt-1), capped at ceiling, then jittered.
func (p retryPolicy) delay(attempt int) time.Duration {
	d := float64(p.initial) * math.Pow(p.multiplier, float64(attempt-1))
	d = min(d, float64(p.ceiling))
	d += d * jitterFraction * (2*rand.Float64() - 1) //nolint:gosec // jitter, not a secret
	return time.Duration(max(d, 0))
}

// doWithRetry writes the final response to resp instead of returning it so
// the bodyclose linter follows ownership to Do's caller.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.policy.maxAttempts < 1 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.policy.maxAttempts)
	}

	body, err := snapshotBody(req)
	if err != nil {
		return err
	}

	attempts := 1
	if replayable(req) {
		attempts = c.policy.maxAttempts
	}

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
		if body != nil {
			req.Body = io.NopCloser(bytes.NewReader(body))
			req.ContentLength = int64(len(body))
		}

		r, err := c.http.Do(req)
		if err != nil {
			if !retryableErr(err) {
				return err
			}
			lastErr, hint = err, 0
			continue
		}
		if !retryableStatus(r.StatusCode) {
			*resp = r
			return nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.peer)
		if attempt == attempts-1 {
			*resp = r
			return lastErr
		}
		hint = retryAfter(r.Header.Get("Retry-After"))
		_, _ = io.Copy(io.Discard, r.Body)
		_ = r.Body.Close()
	}
	return lastErr
}

// replayable reports whether sending req twice is safe. A blind retry of an
// article create without an Idempotency-Key could persist it twice.
func replayable(req *http.Request) bool {
	switch req.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	}
	return req.Header.Get(HeaderIdempotencyKey) != ""
}

// snapshotBody consumes and closes the request body so each attempt can
// replay it. A nil body yields nil.
func snapshotBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer func() { _ = req.Body.Close() }()
	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

// pause waits out the backoff for attempt, or the server's Retry-After hint
// when that is longer. Both are capped by the policy ceiling.
func (c *Client) pause(ctx context.Context, req *http.Request, attempt int, hint time.Duration, lastErr error) error {
	wait := c.policy.delay(attempt)
	if hint > wait {
		wait = min(hint, c.policy.ceiling)
	}

	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("peer_service", c.peer),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.policy.maxAttempts),
		slog.Duration("backoff", wait),
		slog.Any("error", lastErr),
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

// retryAfter parses a Retry-After header given in seconds or as an HTTP date.
// Unparsable or past values yield zero.
func retryAfter(v string) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(max(secs, 0)) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil {
		return max(time.Until(at), 0)
	}
	return 0
}

// retryableErr rejects cancellation and deadlines; any transport failure is
// worth another attempt.
func retryableErr(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// retryableStatus is true for 429 and every 5xx.
func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
