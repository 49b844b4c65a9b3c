package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-admin-workflow/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-admin-workflow/internal/platform/logging"
)

// records decodes JSON log output into one map per line.
func records(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var rec map[string]any
		if err := dec.Decode(&rec); err != nil {
			t.Fatalf("decoding log record: %v", err)
		}
		out = append(out, rec)
	}
	return out
}

func TestLogging_StartAndCompletionRecords(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := middleware.RequestID()(middleware.CorrelationID()(
		middleware.Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logging.FromContext(r.Context()).Info("article created")
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte("created"))
		})),
	))

	req := httptest.NewRequest(http.MethodPost, "/admin/article/create", http.NoBody)
	req.Header.Set("X-Request-ID", "req-log-1")
	req.Header.Set("X-Correlation-ID", "corr-log-1")
	h.ServeHTTP(httptest.NewRecorder(), req)

	recs := records(t, &buf)
	if len(recs) != 3 {
		t.Fatalf("got %d records, want 3", len(recs))
	}

	wantMsgs := []string{"request started", "article created", "request completed"}
	for i, rec := range recs {
		if rec["msg"] != wantMsgs[i] {
			t.Errorf("record %d msg = %v, want %q", i, rec["msg"], wantMsgs[i])
		}
		// The handler's own record goes through the enriched context logger.
		if rec["request_id"] != "req-log-1" || rec["correlation_id"] != "corr-log-1" {
			t.Errorf("record %d ids = %v/%v, want req-log-1/corr-log-1", i, rec["request_id"], rec["correlation_id"])
		}
	}

	done := recs[2]
	if done["method"] != http.MethodPost || done["path"] != "/admin/article/create" {
		t.Errorf("completion method/path = %v %v", done["method"], done["path"])
	}
	if done["status"] != float64(http.StatusCreated) {
		t.Errorf("completion status = %v, want 201", done["status"])
	}
	if done["bytes"] != float64(len("created")) {
		t.Errorf("completion bytes = %v, want %d", done["bytes"], len("created"))
	}
	if _, ok := done["duration"]; !ok {
		t.Error("completion record missing duration")
	}
}

func TestLogging_CompletionLevelFollowsStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status    int
		wantLevel string
	}{
		{status: http.StatusFound, wantLevel: "level=INFO"},
		{status: http.StatusForbidden, wantLevel: "level=WARN"},
		{status: http.StatusInternalServerError, wantLevel: "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))

			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/admin/article/list", http.NoBody))

			var completed string
			for _, line := range strings.Split(buf.String(), "\n") {
				if strings.Contains(line, "request completed") {
					completed = line
				}
			}
			if !strings.Contains(completed, tt.wantLevel) {
				t.Errorf("completion line = %q, want %s", completed, tt.wantLevel)
			}
		})
	}
}

func TestLogging_RecordsRoutePattern(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := chi.NewRouter()
	r.Use(middleware.Logging(testLogger(&buf)))
	r.Get("/admin/article/{id}/edit", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/admin/article/42/edit", http.NoBody))

	if !strings.Contains(buf.String(), "route=/admin/article/{id}/edit") {
		t.Errorf("log output missing route pattern, got: %s", buf.String())
	}
}

func TestLogging_DebugDetailsAreRedacted(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/admin/article/list?filter%5Btitle%5D=launch&_csrf_token=tok-123", http.NoBody)
	req.Header.Set("Cookie", "admin_session=abc")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	if strings.Contains(out, "tok-123") || strings.Contains(out, "admin_session=abc") {
		t.Errorf("debug details leaked a token: %s", out)
	}
	if !strings.Contains(out, "launch") {
		t.Errorf("debug details missing list filter, got: %s", out)
	}
}

func TestLogging_RecordsRedirectTarget(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/admin/article/list", http.StatusSeeOther)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/admin/article/7/delete", http.NoBody))

	if !strings.Contains(buf.String(), "redirect=/admin/article/list") {
		t.Errorf("log output missing redirect target, got: %s", buf.String())
	}
}
