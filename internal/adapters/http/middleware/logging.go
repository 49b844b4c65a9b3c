package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-admin-workflow/internal/platform/logging"
)

// Logging returns middleware that logs request start and completion events.
// It stores a child logger enriched with the request and correlation IDs via
// logging.WithLogger for downstream use.
//
// Completion is logged at Info, Warn for 4xx and Error for 5xx, and carries
// the matched chi route pattern so admin actions group in log queries. At
// Debug the redacted headers and query parameters are logged as well.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, child)

			child.InfoContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)

			if child.Enabled(ctx, slog.LevelDebug) {
				child.DebugContext(ctx, "request details",
					slog.Any("headers", slog.GroupValue(RedactHeaders(r.Header)...)),
					slog.Any("query", slog.GroupValue(RedactQuery(r.URL.Query())...)),
				)
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routePattern(ctx)),
				slog.Int("status", rw.statusCode),
				slog.Int64("bytes", rw.written),
				slog.Duration("duration", time.Since(start)),
			}
			if target := rw.redirectTarget(); target != "" {
				attrs = append(attrs, slog.String("redirect", target))
			}
			child.LogAttrs(ctx, completionLevel(rw.statusCode), "request completed", attrs...)
		})
	}
}

func completionLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// routePattern returns the chi pattern matched for the request, "" outside a
// chi router.
func routePattern(ctx context.Context) string {
	if rctx := chi.RouteContext(ctx); rctx != nil {
		return rctx.RoutePattern()
	}
	return ""
}
