package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/go-admin-workflow/internal/adapters/http/dto"
)

var errInternalServer = errors.New("internal server error")

// Recovery turns a panicking admin action into a problem+json 500 and logs
// the panic value with its stack. Nothing about the panic reaches the client.
// When the handler already started the response only the log is written.
// http.ErrAbortHandler is re-raised so net/http aborts the connection quietly.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				logger.LogAttrs(r.Context(), slog.LevelError, "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("route", routePattern(r.Context())),
					// RequestID runs inside Recovery and echoes the ID on the response.
					slog.String("request_id", rw.Header().Get(headerRequestID)),
				)
				if !rw.headerWritten {
					dto.WriteErrorResponse(rw, r, errInternalServer)
				}
			}()
			next.ServeHTTP(rw, r)
		})
	}
}
