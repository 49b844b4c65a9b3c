package middleware

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/go-admin-workflow/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/go-admin-workflow/internal/adapters/http/middleware"

// OpenTelemetry opens a server span per request, continuing any W3C trace
// context found in the headers, and records the server request metrics.
//
// The span starts named after the method alone. Once a chi route matched, it
// is renamed "METHOD pattern" and the pattern labels the metrics too, so
// article ids never multiply span names or metric series. A nil metrics
// skips recording.
func OpenTelemetry(metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := otel.Tracer(tracerName).Start(ctx, r.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					telemetry.AttrHTTPMethod.String(r.Method),
					attribute.String("url.path", r.URL.Path),
				),
			)
			defer span.End()

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			status := rw.statusCode
			labels := []attribute.KeyValue{
				telemetry.AttrHTTPMethod.String(r.Method),
				telemetry.AttrHTTPStatus.Int(status),
			}
			if route := routePattern(ctx); route != "" {
				span.SetName(r.Method + " " + route)
				labels = append(labels, telemetry.AttrHTTPRoute.String(route))
			}
			span.SetAttributes(labels[1:]...)
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}

			if metrics == nil {
				return
			}
			result := "success"
			if status >= http.StatusBadRequest {
				result = "error"
			}
			attrs := metric.WithAttributes(append(labels, telemetry.AttrResult.String(result))...)
			metrics.ServerRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
			metrics.ServerRequestTotal.Add(ctx, 1, attrs)
		})
	}
}
