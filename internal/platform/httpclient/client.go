// Package httpclient is the outbound HTTP client used by the remote article
// backend. Every call passes, in order, through a circuit breaker, an optional
// rate limiter, request/correlation ID propagation, a client span and the
// retry loop:
//
//	client := httpclient.New(&cfg.Client, "article-api", metrics, logger)
//	resp, err := client.Do(ctx, req)
//
// Only replayable requests are retried: idempotent methods, and anything that
// carries an Idempotency-Key header. A 429 or 503 answer with Retry-After is
// honored up to the configured maximum interval.
//
// Inbound middleware seeds the IDs with WithRequestID and WithCorrelationID.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/go-admin-workflow/internal/platform/config"
	"github.com/jsamuelsen11/go-admin-workflow/internal/platform/telemetry"
)

// HeaderIdempotencyKey marks a non-idempotent request as safe to retry.
const HeaderIdempotencyKey = "Idempotency-Key"

const tracerName = "github.com/jsamuelsen11/go-admin-workflow/internal/platform/httpclient"

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// propagated lists the context values copied onto every outbound request.
var propagated = []struct {
	key    any
	header string
}{
	{requestIDKey{}, "X-Request-ID"},
	{correlationIDKey{}, "X-Correlation-ID"},
}

// WithRequestID stores the inbound request ID for propagation.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID stores the inbound correlation ID for propagation.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// Client talks to one downstream service. It is safe for concurrent use.
type Client struct {
	http    *http.Client
	baseURL string
	peer    string
	breaker *gobreaker.CircuitBreaker[struct{}]
	limiter *rate.Limiter // nil disables limiting
	policy  retryPolicy
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New builds a Client for the downstream named peer. A nil metrics skips
// instrument recording.
func New(cfg *config.ClientConfig, peer string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	c := &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		peer:    peer,
		policy: retryPolicy{
			maxAttempts: cfg.Retry.MaxAttempts,
			initial:     cfg.Retry.InitialInterval,
			ceiling:     cfg.Retry.MaxInterval,
			multiplier:  cfg.Retry.Multiplier,
		},
		metrics: metrics,
		logger:  logger,
	}

	maxFailures := cfg.CircuitBreaker.MaxFailures
	c.breaker = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        peer,
		MaxRequests: clampUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= maxFailures
		},
		// An operator closing the tab says nothing about the backend.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	if rps := cfg.RateLimit.RequestsPerSecond; rps > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rps), cfg.RateLimit.BurstSize)
	}
	return c
}

// Do sends req. The caller owns resp.Body whenever resp is non-nil, which
// includes the final answer of an exhausted retry loop (returned together
// with the error). Breaker rejections and transport failures return a nil
// response. Statuses below 500 other than 429 are not errors here; mapping
// them is the caller's job.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	var resp *http.Response
	_, err := c.breaker.Execute(func() (struct{}, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return struct{}{}, err
			}
		}

		for _, p := range propagated {
			if id, _ := ctx.Value(p.key).(string); id != "" {
				req.Header.Set(p.header, id)
			}
		}

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()
		req = req.WithContext(spanCtx)

		sendErr := c.doWithRetry(spanCtx, req, &resp)
		if resp != nil {
			span.SetAttributes(telemetry.AttrHTTPStatus.Int(resp.StatusCode))
		}
		if sendErr != nil {
			span.RecordError(sendErr)
			span.SetStatus(codes.Error, sendErr.Error())
		}
		return struct{}{}, sendErr
	})

	c.record(ctx, req.Method, time.Since(start), resp, err)
	return resp, err
}

// BaseURL returns the configured root of the downstream API.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Name returns the downstream name used in spans, metrics and readiness.
func (c *Client) Name() string {
	return c.peer
}

// HealthCheck derives readiness from the breaker state without any network
// call: closed is healthy, half-open is degraded and open is failing.
func (c *Client) HealthCheck(_ context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.peer)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.peer)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.peer, state)
	}
}

func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, req.Method+" "+c.peer,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			telemetry.AttrHTTPMethod.String(req.Method),
			attribute.String("url.full", req.URL.String()),
			attribute.String("server.address", req.URL.Host),
			telemetry.AttrPeerService.String(c.peer),
		),
	)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	return ctx, span
}

// record runs outside the breaker so rejected calls are counted too.
func (c *Client) record(ctx context.Context, method string, elapsed time.Duration, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	status, result := 0, "error"
	if resp != nil {
		status = resp.StatusCode
		if status < http.StatusBadRequest {
			result = "success"
		}
	}
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		result = "circuit_open"
	case errors.Is(err, context.Canceled):
		result = "canceled"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.peer),
		telemetry.AttrResult.String(result),
	)
	c.metrics.ClientRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

func clampUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}
