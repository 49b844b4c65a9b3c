package middleware

import (
	"context"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/go-admin-workflow/internal/adapters/http/dto"
)

// Timeout returns middleware that bounds each request by timeout. The handler
// runs on its own goroutine against a buffered writer and a context carrying
// the deadline, which the engine passes on to persistence and audit calls.
//
// When the deadline passes first, the client gets a 504 problem+json response
// and every later write by the handler fails with http.ErrHandlerTimeout. A
// handler panic is re-raised on the calling goroutine.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			tw := &timeoutWriter{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if p := recover(); p != nil {
						panicked <- p
						return
					}
					close(done)
				}()
				next.ServeHTTP(tw, r.WithContext(ctx))
			}()

			select {
			case p := <-panicked:
				// Re-raised on the serving goroutine so Recovery sees it.
				panic(p)
			case <-done:
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.copyTo(w)
			case <-ctx.Done():
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.timedOut = true
				dto.WriteErrorResponse(w, r, ctx.Err())
			}
		})
	}
}

// timeoutWriter buffers the handler's response until it is known whether the
// handler or the deadline won.
type timeoutWriter struct {
	mu          sync.Mutex
	header      http.Header
	buf         []byte
	statusCode  int
	wroteHeader bool
	timedOut    bool
}

func (tw *timeoutWriter) Header() http.Header {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	return tw.header
}

func (tw *timeoutWriter) Write(b []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	tw.writeHeaderLocked(http.StatusOK)
	tw.buf = append(tw.buf, b...)
	return len(b), nil
}

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut {
		return
	}
	tw.writeHeaderLocked(code)
}

func (tw *timeoutWriter) writeHeaderLocked(code int) {
	if tw.wroteHeader {
		return
	}
	tw.statusCode = code
	tw.wroteHeader = true
}

// copyTo replays the buffered response. Callers hold tw.mu.
func (tw *timeoutWriter) copyTo(w http.ResponseWriter) {
	maps.Copy(w.Header(), tw.header)
	if tw.wroteHeader {
		w.WriteHeader(tw.statusCode)
	}
	if len(tw.buf) > 0 {
		_, _ = w.Write(tw.buf)
	}
}
