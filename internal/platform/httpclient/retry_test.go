package httpclient

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"
)

func TestRetryPolicy_Delay(t *testing.T) {
	t.Parallel()

	policy := retryPolicy{
		initial:    100 * time.Millisecond,
		ceiling:    500 * time.Millisecond,
		multiplier: 2.0,
	}

	tests := []struct {
		attempt int
		nominal time.Duration
	}{
		{attempt: 1, nominal: 100 * time.Millisecond},
		{attempt: 2, nominal: 200 * time.Millisecond},
		{attempt: 3, nominal: 400 * time.Millisecond},
		{attempt: 4, nominal: 500 * time.Millisecond}, // capped
		{attempt: 10, nominal: 500 * time.Millisecond},
	}

	for _, tt := range tests {
		lo := time.Duration(float64(tt.nominal) * (1 - jitterFraction))
		hi := time.Duration(float64(tt.nominal) * (1 + jitterFraction))
		for range 200 {
			if d := policy.delay(tt.attempt); d < lo || d > hi {
				t.Fatalf("delay(%d) = %v, want within [%v, %v]", tt.attempt, d, lo, hi)
			}
		}
	}
}

func TestRetryAfter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want time.Duration
	}{
		{name: "absent", in: "", want: 0},
		{name: "seconds", in: "3", want: 3 * time.Second},
		{name: "negative seconds", in: "-4", want: 0},
		{name: "garbage", in: "soon", want: 0},
		{name: "date in the past", in: "Wed, 21 Oct 2015 07:28:00 GMT", want: 0},
	}

	for _, tt := range tests {
		if got := retryAfter(tt.in); got != tt.want {
			t.Errorf("%s: retryAfter(%q) = %v, want %v", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestRetryAfter_FutureDate(t *testing.T) {
	t.Parallel()

	at := time.Now().Add(30 * time.Second).UTC().Format(http.TimeFormat)
	got := retryAfter(at)
	if got <= 20*time.Second || got > 30*time.Second {
		t.Errorf("retryAfter(%q) = %v, want about 30s", at, got)
	}
}

func TestRetryableErr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "canceled", err: context.Canceled, want: false},
		{name: "deadline", err: context.DeadlineExceeded, want: false},
		{name: "wrapped deadline", err: &net.OpError{Op: "read", Err: context.DeadlineExceeded}, want: false},
		{name: "refused dial", err: &net.OpError{Op: "dial", Err: errors.New("connection refused")}, want: true},
		{name: "unknown", err: errors.New("unexpected EOF"), want: true},
	}

	for _, tt := range tests {
		if got := retryableErr(tt.err); got != tt.want {
			t.Errorf("%s: retryableErr() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRetryableStatus(t *testing.T) {
	t.Parallel()

	for code, want := range map[int]bool{
		http.StatusOK:                  false,
		http.StatusCreated:             false,
		http.StatusNotFound:            false,
		http.StatusConflict:            false,
		http.StatusUnprocessableEntity: false,
		http.StatusTooManyRequests:     true,
		http.StatusInternalServerError: true,
		http.StatusBadGateway:          true,
		http.StatusServiceUnavailable:  true,
	} {
		if got := retryableStatus(code); got != want {
			t.Errorf("retryableStatus(%d) = %v, want %v", code, got, want)
		}
	}
}

func TestReplayable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		method string
		key    string
		want   bool
	}{
		{method: http.MethodGet, want: true},
		{method: http.MethodPut, want: true},
		{method: http.MethodDelete, want: true},
		{method: http.MethodPost, want: false},
		{method: http.MethodPost, key: "9b1deb4d", want: true},
		{method: http.MethodPatch, want: false},
	}

	for _, tt := range tests {
		req, _ := http.NewRequestWithContext(context.Background(), tt.method, "http://article-api/api/v1/articles", http.NoBody)
		if tt.key != "" {
			req.Header.Set(HeaderIdempotencyKey, tt.key)
		}
		if got := replayable(req); got != tt.want {
			t.Errorf("replayable(%s, key=%q) = %v, want %v", tt.method, tt.key, got, tt.want)
		}
	}
}
