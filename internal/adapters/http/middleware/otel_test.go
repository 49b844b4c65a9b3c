package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/go-admin-workflow/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-admin-workflow/internal/platform/telemetry"
)

// Span tests are not parallel: they replace the global TracerProvider.

func setupTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	t.Cleanup(func() {
		_ = tp.Shutdown(t.Context())
	})

	return exporter
}

func spanAttrs(s sdktrace.ReadOnlySpan) map[string]any {
	out := make(map[string]any)
	for _, kv := range s.Attributes() {
		out[string(kv.Key)] = kv.Value.AsInterface()
	}
	return out
}

func TestOpenTelemetry_ServerSpan(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		status     int
		wantStatus codes.Code
	}{
		{name: "list", method: http.MethodGet, path: "/admin/article/list", status: http.StatusOK, wantStatus: codes.Unset},
		{name: "missing subject", method: http.MethodPost, path: "/admin/article/42/edit", status: http.StatusNotFound, wantStatus: codes.Unset},
		{name: "batch failure", method: http.MethodPost, path: "/admin/article/batch", status: http.StatusInternalServerError, wantStatus: codes.Error},
	}

	for _, tt := range tests {
		exporter := setupTracer(t)

		h := middleware.OpenTelemetry(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tt.status)
		}))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, http.NoBody))

		if rec.Code != tt.status {
			t.Errorf("%s: status = %d, want %d", tt.name, rec.Code, tt.status)
		}
		spans := exporter.GetSpans().Snapshots()
		if len(spans) != 1 {
			t.Fatalf("%s: got %d spans, want 1", tt.name, len(spans))
		}
		span := spans[0]

		// Outside a router the raw path would give one span name per article.
		if span.Name() != tt.method {
			t.Errorf("%s: span name = %q, want %q", tt.name, span.Name(), tt.method)
		}
		if span.SpanKind() != oteltrace.SpanKindServer {
			t.Errorf("%s: span kind = %v, want server", tt.name, span.SpanKind())
		}
		attrs := spanAttrs(span)
		if attrs["http.request.method"] != tt.method {
			t.Errorf("%s: http.request.method = %v", tt.name, attrs["http.request.method"])
		}
		if attrs["http.response.status_code"] != int64(tt.status) {
			t.Errorf("%s: http.response.status_code = %v", tt.name, attrs["http.response.status_code"])
		}
		if attrs["url.path"] != tt.path {
			t.Errorf("%s: url.path = %v", tt.name, attrs["url.path"])
		}
		if span.Status().Code != tt.wantStatus {
			t.Errorf("%s: span status = %v, want %v", tt.name, span.Status().Code, tt.wantStatus)
		}
	}
}

func TestOpenTelemetry_ContinuesInboundTrace(t *testing.T) {
	exporter := setupTracer(t)

	const traceID = "4bf92f3577b34da6a3ce929d0e0e4736"
	h := middleware.OpenTelemetry(nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/admin/article/list", http.NoBody)
	req.Header.Set("traceparent", "00-"+traceID+"-00f067aa0ba902b7-01")
	h.ServeHTTP(httptest.NewRecorder(), req)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	if got := spans[0].SpanContext.TraceID().String(); got != traceID {
		t.Errorf("trace id = %s, want %s", got, traceID)
	}
	if !spans[0].Parent.IsRemote() {
		t.Error("parent span context should be remote")
	}
}

func TestOpenTelemetry_NilMetrics(t *testing.T) {
	t.Parallel()

	h := middleware.OpenTelemetry(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/article/list", http.NoBody))

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
}

func TestOpenTelemetry_NamesSpanAfterRoutePattern(t *testing.T) {
	exporter := setupTracer(t)

	r := chi.NewRouter()
	r.Use(middleware.OpenTelemetry(nil))
	r.Get("/admin/article/{id}/history/{revision}/view", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/admin/article/42/history/3/view", http.NoBody))

	spans := exporter.GetSpans()
	if len(spans) == 0 {
		t.Fatal("no spans recorded")
	}
	want := "GET /admin/article/{id}/history/{revision}/view"
	if spans[0].Name != want {
		t.Errorf("span name = %q, want %q", spans[0].Name, want)
	}

	var route string
	for _, a := range spans[0].Attributes {
		if a.Key == "http.route" {
			route = a.Value.AsString()
		}
	}
	if route != "/admin/article/{id}/history/{revision}/view" {
		t.Errorf("http.route attr = %q", route)
	}
}

func TestOpenTelemetry_MetricsLabelledByRoute(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(t.Context()) })
	metrics, err := telemetry.NewMetrics(mp, "go-admin-workflow")
	if err != nil {
		t.Fatalf("NewMetrics error = %v", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.OpenTelemetry(metrics))
	r.Get("/admin/article/{id}/show", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	for _, path := range []string{"/admin/article/1/show", "/admin/article/2/show"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, http.NoBody))
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(t.Context(), &rm); err != nil {
		t.Fatalf("Collect error = %v", err)
	}

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "http.server.request.total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("data = %T, want Sum[int64]", m.Data)
			}
			if len(sum.DataPoints) != 1 {
				t.Fatalf("got %d series, want one for the route", len(sum.DataPoints))
			}
			dp := sum.DataPoints[0]
			route, _ := dp.Attributes.Value("http.route")
			if route.AsString() != "/admin/article/{id}/show" || dp.Value != 2 {
				t.Errorf("series = (%q, %d), want (%q, 2)", route.AsString(), dp.Value, "/admin/article/{id}/show")
			}
			return
		}
	}
	t.Fatal("http.server.request.total not recorded")
}
