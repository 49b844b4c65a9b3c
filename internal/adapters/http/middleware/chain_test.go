package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-admin-workflow/internal/adapters/http/middleware"
	appctx "github.com/jsamuelsen11/go-admin-workflow/internal/app/context"
)

// trace records the order in which wrapped layers run.
type trace struct{ steps []string }

func (tr *trace) layer(name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tr.steps = append(tr.steps, "+"+name)
			next.ServeHTTP(w, r)
			tr.steps = append(tr.steps, "-"+name)
		})
	}
}

func TestChain_Order(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		layers []string
		want   []string
	}{
		{name: "empty", want: []string{"list"}},
		{name: "single", layers: []string{"session"}, want: []string{"+session", "list", "-session"}},
		{
			name:   "admin scope",
			layers: []string{"session", "actor", "locale"},
			want:   []string{"+session", "+actor", "+locale", "list", "-locale", "-actor", "-session"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tr := &trace{}
			mws := make([]func(http.Handler) http.Handler, 0, len(tt.layers))
			for _, l := range tt.layers {
				mws = append(mws, tr.layer(l))
			}
			h := middleware.Chain(mws...)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				tr.steps = append(tr.steps, "list")
			}))

			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/admin/article/list", http.NoBody))

			if !slices.Equal(tr.steps, tt.want) {
				t.Errorf("steps = %v, want %v", tr.steps, tt.want)
			}
		})
	}
}

func TestChain_ServerStack(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := testLogger(&buf)

	var reqID, corrID string
	h := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		middleware.Logging(logger),
		middleware.Timeout(5*time.Second),
	)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID = middleware.RequestIDFromContext(r.Context())
		corrID = middleware.CorrelationIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/article/batch", http.NoBody)
	req.Header.Set("X-Correlation-ID", "corr-batch-7")
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if reqID == "" || rec.Header().Get("X-Request-ID") != reqID {
		t.Errorf("request id: context %q, header %q", reqID, rec.Header().Get("X-Request-ID"))
	}
	if corrID != "corr-batch-7" || rec.Header().Get("X-Correlation-ID") != corrID {
		t.Errorf("correlation id: context %q, header %q", corrID, rec.Header().Get("X-Correlation-ID"))
	}

	out := buf.String()
	for _, want := range []string{"request started", "request completed", "correlation_id=corr-batch-7"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q", want)
		}
	}
}

func TestAdminStack_ResolvesRequestScope(t *testing.T) {
	t.Parallel()

	var matched string
	stack := middleware.AdminStack(
		middleware.SessionOptions{CookieName: "admin_session", TTL: time.Hour},
		func(accept string) string {
			matched = accept
			return "fr"
		},
	)

	handler := stack(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if middleware.SessionIDFromContext(ctx) == "" {
			t.Error("session id not in context")
		}
		if got := middleware.ActorFromContext(ctx).Username; got != "alice" {
			t.Errorf("actor = %q, want alice", got)
		}
		if got := middleware.LocaleFromContext(ctx); got != "fr" {
			t.Errorf("locale = %q, want fr", got)
		}
		if appctx.FromContext(ctx) == nil {
			t.Error("request context not attached")
		}
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/article/list", http.NoBody)
	req.Header.Set("X-Forwarded-User", "alice")
	req.Header.Set("X-Forwarded-Roles", "ROLE_EDITOR")
	req.Header.Set("Accept-Language", "fr-CA,fr;q=0.9")
	handler.ServeHTTP(rec, req)

	if matched != "fr-CA,fr;q=0.9" {
		t.Errorf("locale matcher got %q, want the Accept-Language header", matched)
	}
	if !strings.Contains(rec.Header().Get("Set-Cookie"), "admin_session=") {
		t.Errorf("Set-Cookie = %q, want a new admin_session cookie", rec.Header().Get("Set-Cookie"))
	}
}
