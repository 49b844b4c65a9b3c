// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// Every route runs behind:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout
//
// and admin routes additionally behind AdminStack:
//
//	Session → Actor → Locale → AppContext → AdminHandler
//
// Each middleware is a func(http.Handler) http.Handler composable with Chain.
package middleware

import "net/http"

// responseWriter records the status and body size of a response for the
// recovery, otel and logging middleware.
type responseWriter struct {
	http.ResponseWriter
	statusCode    int
	headerWritten bool
	written       int64
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

// WriteHeader records the first status code; later calls are dropped.
func (rw *responseWriter) WriteHeader(code int) {
	if rw.headerWritten {
		return
	}
	rw.statusCode = code
	rw.headerWritten = true
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.headerWritten = true
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// redirectTarget returns the Location of a 3xx response and "" for anything
// else. Admin actions mostly end in a redirect, so this is what the
// completion log shows as the outcome.
func (rw *responseWriter) redirectTarget() string {
	if rw.statusCode < http.StatusMultipleChoices || rw.statusCode >= http.StatusBadRequest {
		return ""
	}
	return rw.Header().Get("Location")
}

// Unwrap exposes the wrapped writer to http.ResponseController.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
