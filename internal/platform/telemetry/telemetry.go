// Package telemetry wires OpenTelemetry tracing and metrics for the admin
// server. Spans and metrics go either to stdout, for local work, or to an
// OTLP/HTTP collector:
//
//	tp, err := telemetry.InitTracer(ctx, "admin", telemetry.ExporterOTLP, "http://collector:4318")
//	defer tp.Shutdown(ctx)
//
//	mp, err := telemetry.InitMeter(ctx, "admin", telemetry.ExporterStdout, "")
//	metrics, err := telemetry.NewMetrics(mp, "admin")
//	metrics.AdminActionTotal.Add(ctx, 1, metric.WithAttributes(...))
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Supported exporter names.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// Attribute keys shared by spans and metric labels. The HTTP keys follow the
// current OpenTelemetry semantic conventions.
var (
	AttrHTTPMethod  = attribute.Key("http.request.method")
	AttrHTTPStatus  = attribute.Key("http.response.status_code")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")

	AttrAdminResource = attribute.Key("admin.resource")
	AttrAdminAction   = attribute.Key("admin.action")
)

var errEmptyEndpoint = errors.New("otlp exporter requires an endpoint")

// Metrics holds the instruments recorded by the HTTP layers and the admin
// orchestrator.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	AdminActionTotal metric.Int64Counter
	AdminBatchTotal  metric.Int64Counter
}

// InitTracer installs a global TracerProvider batching spans to the chosen
// exporter, along with W3C trace-context and baggage propagation. The caller
// shuts the provider down on exit.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string) (*sdktrace.TracerProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, err
	}

	var exp sdktrace.SpanExporter
	switch exporter {
	case ExporterStdout:
		exp, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
	case ExporterOTLP:
		var c collector
		if c, err = parseCollector(endpoint); err == nil {
			exp, err = otlptracehttp.New(ctx, c.traceOptions()...)
		}
	default:
		err = unsupported(exporter)
	}
	if err != nil {
		return nil, fmt.Errorf("span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exp), sdktrace.WithResource(res))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp, nil
}

// InitMeter installs a global MeterProvider exporting periodically to the
// chosen exporter. The caller shuts the provider down on exit.
func InitMeter(ctx context.Context, serviceName, exporter, endpoint string) (*sdkmetric.MeterProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, err
	}

	var exp sdkmetric.Exporter
	switch exporter {
	case ExporterStdout:
		exp, err = stdoutmetric.New()
	case ExporterOTLP:
		var c collector
		if c, err = parseCollector(endpoint); err == nil {
			exp, err = otlpmetrichttp.New(ctx, c.metricOptions()...)
		}
	default:
		err = unsupported(exporter)
	}
	if err != nil {
		return nil, fmt.Errorf("metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)
	return mp, nil
}

type counterSpec struct {
	dst               *metric.Int64Counter
	name, desc, units string
}

type histogramSpec struct {
	dst        *metric.Float64Histogram
	name, desc string
}

// NewMetrics registers every instrument on a meter scoped to serviceName.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(serviceName)
	m := &Metrics{}

	for _, h := range []histogramSpec{
		{&m.ServerRequestDuration, "http.server.request.duration", "Duration of incoming HTTP requests"},
		{&m.ClientRequestDuration, "http.client.request.duration", "Duration of outgoing HTTP requests"},
	} {
		inst, err := meter.Float64Histogram(h.name, metric.WithDescription(h.desc), metric.WithUnit("s"))
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", h.name, err)
		}
		*h.dst = inst
	}

	for _, c := range []counterSpec{
		{&m.ServerRequestTotal, "http.server.request.total", "Total number of incoming HTTP requests", "{request}"},
		{&m.ClientRequestTotal, "http.client.request.total", "Total number of outgoing HTTP requests", "{request}"},
		{&m.AdminActionTotal, "admin.action.total", "Admin actions by resource, action and outcome", "{action}"},
		{&m.AdminBatchTotal, "admin.batch.total", "Batch action requests by stage reached", "{request}"},
	} {
		inst, err := meter.Int64Counter(c.name, metric.WithDescription(c.desc), metric.WithUnit(c.units))
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", c.name, err)
		}
		*c.dst = inst
	}

	return m, nil
}

func newResource(serviceName string) (*resource.Resource, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(serviceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}
	return res, nil
}

func unsupported(exporter string) error {
	return fmt.Errorf("unsupported exporter %q", exporter)
}

// collector is an OTLP/HTTP endpoint split into what the exporters take.
type collector struct {
	hostPort string
	insecure bool
}

// parseCollector accepts "http://host:port", "https://host:port" or a bare
// "host:port", which is treated as plain HTTP.
func parseCollector(endpoint string) (collector, error) {
	if endpoint == "" {
		return collector{}, errEmptyEndpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return collector{hostPort: endpoint, insecure: true}, nil
	}
	return collector{hostPort: u.Host, insecure: u.Scheme != "https"}, nil
}

func (c collector) traceOptions() []otlptracehttp.Option {
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(c.hostPort)}
	if c.insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return opts
}

func (c collector) metricOptions() []otlpmetrichttp.Option {
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(c.hostPort)}
	if c.insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	return opts
}
