package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/jsamuelsen11/go-admin-workflow/internal/adapters/http/middleware"
)

var uuidPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// traceIDs runs RequestID then CorrelationID and reports the IDs the handler
// saw together with the recorded response.
func traceIDs(reqID, corrID string) (gotReq, gotCorr string, rec *httptest.ResponseRecorder) {
	h := middleware.RequestID()(middleware.CorrelationID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		gotReq = middleware.RequestIDFromContext(r.Context())
		gotCorr = middleware.CorrelationIDFromContext(r.Context())
	})))

	req := httptest.NewRequest(http.MethodPost, "/admin/article/batch", http.NoBody)
	if reqID != "" {
		req.Header.Set("X-Request-ID", reqID)
	}
	if corrID != "" {
		req.Header.Set("X-Correlation-ID", corrID)
	}
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return gotReq, gotCorr, rec
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	atLimit := "trace:" + strings.Repeat("a1_.", 30) + "zz"

	tests := []struct {
		name     string
		in       string
		wantKept bool
	}{
		{name: "absent", in: ""},
		{name: "well formed", in: "incoming-123", wantKept: true},
		{name: "at length limit", in: atLimit, wantKept: true},
		{name: "line break", in: "abc\nlevel=ERROR msg=forged"},
		{name: "spaces", in: "two words"},
		{name: "too long", in: strings.Repeat("a", 129)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, _, rec := traceIDs(tt.in, "")

			if tt.wantKept && got != tt.in {
				t.Errorf("request ID = %q, want %q kept", got, tt.in)
			}
			if !tt.wantKept && !uuidPattern.MatchString(got) {
				t.Errorf("request ID = %q, want a generated UUID v4", got)
			}
			if h := rec.Header().Get("X-Request-ID"); h != got {
				t.Errorf("X-Request-ID = %q, want %q", h, got)
			}
		})
	}
}

func TestRequestID_Unique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{}, 100)
	for range 100 {
		id, _, _ := traceIDs("", "")
		seen[id] = struct{}{}
	}
	if len(seen) != 100 {
		t.Errorf("unique IDs = %d, want 100", len(seen))
	}
}

func TestCorrelationID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		reqID  string
		corrID string
		want   string
	}{
		{name: "inbound kept", reqID: "req-1", corrID: "corr-abc", want: "corr-abc"},
		{name: "absent uses request id", reqID: "req-2", want: "req-2"},
		{name: "malformed uses request id", reqID: "req-77", corrID: "flow<script>", want: "req-77"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, got, rec := traceIDs(tt.reqID, tt.corrID)
			if got != tt.want {
				t.Errorf("correlation ID = %q, want %q", got, tt.want)
			}
			if h := rec.Header().Get("X-Correlation-ID"); h != tt.want {
				t.Errorf("X-Correlation-ID = %q, want %q", h, tt.want)
			}
		})
	}
}

func TestTraceIDContext(t *testing.T) {
	t.Parallel()

	bare := context.Background()
	if got := middleware.RequestIDFromContext(bare); got != "" {
		t.Errorf("RequestIDFromContext(bare) = %q, want empty", got)
	}
	if got := middleware.CorrelationIDFromContext(bare); got != "" {
		t.Errorf("CorrelationIDFromContext(bare) = %q, want empty", got)
	}

	ctx := middleware.WithCorrelationID(middleware.WithRequestID(bare, "req-9"), "corr-9")
	if got := middleware.RequestIDFromContext(ctx); got != "req-9" {
		t.Errorf("RequestIDFromContext = %q, want req-9", got)
	}
	if got := middleware.CorrelationIDFromContext(ctx); got != "corr-9" {
		t.Errorf("CorrelationIDFromContext = %q, want corr-9", got)
	}
}
