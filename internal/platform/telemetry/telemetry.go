// Package telemetry sets up OpenTelemetry tracing and metrics for the
// service and owns the instruments and attribute keys shared by the HTTP
// layer, the entry store client, and the validation service.
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

	"github.com/jsamuelsen11/timesheet-service/internal/platform/config"
)

// Exporters accepted in telemetry.exporter.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// Metric attribute keys.
var (
	AttrHTTPMethod     = attribute.Key("http.method")
	AttrHTTPStatus     = attribute.Key("http.status_code")
	AttrHTTPRoute      = attribute.Key("http.route")
	AttrPeerService    = attribute.Key("peer.service")
	AttrResult         = attribute.Key("result")
	AttrValidationKind = attribute.Key("timesheet.validation.kind")
	AttrStoreDriver    = attribute.Key("timesheet.store.driver")
)

// Values of AttrResult.
const (
	ResultValid   = "valid"
	ResultInvalid = "invalid"
	ResultError   = "error"
)

var (
	errUnsupportedExporter = errors.New("unsupported exporter")
	errMissingEndpoint     = errors.New("endpoint is required for the otlp exporter")
)

// Metrics are the instruments recorded by the service.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// ValidationTotal counts entry and batch validations by kind and result.
	ValidationTotal        metric.Int64Counter
	DuplicateCheckDuration metric.Float64Histogram
	BatchSize              metric.Int64Histogram
}

// Providers owns the SDK providers installed by Setup. A disabled setup
// leaves every field nil, and callers treat nil Metrics as "record nothing".
type Providers struct {
	Tracer  *sdktrace.TracerProvider
	Meter   *sdkmetric.MeterProvider
	Metrics *Metrics
}

// Setup installs global tracer and meter providers plus the W3C trace
// context and baggage propagators, then registers the service instruments.
func Setup(ctx context.Context, cfg config.TelemetryConfig) (*Providers, error) {
	if !cfg.Enabled {
		return &Providers{}, nil
	}
	if err := checkExporter(cfg.Exporter, cfg.Endpoint); err != nil {
		return nil, err
	}

	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
	))
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	spans, err := spanExporter(ctx, cfg.Exporter, cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}
	readings, err := metricExporter(ctx, cfg.Exporter, cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	p := &Providers{
		Tracer: sdktrace.NewTracerProvider(sdktrace.WithBatcher(spans), sdktrace.WithResource(res)),
		Meter: sdkmetric.NewMeterProvider(
			sdkmetric.WithReader(sdkmetric.NewPeriodicReader(readings)),
			sdkmetric.WithResource(res),
		),
	}
	if p.Metrics, err = NewMetrics(p.Meter, cfg.ServiceName); err != nil {
		return nil, errors.Join(err, p.Shutdown(ctx))
	}

	otel.SetTracerProvider(p.Tracer)
	otel.SetMeterProvider(p.Meter)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return p, nil
}

// Shutdown flushes and stops both providers. It is a no-op after a
// disabled Setup.
func (p *Providers) Shutdown(ctx context.Context) error {
	var errs []error
	if p.Tracer != nil {
		if err := p.Tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if p.Meter != nil {
		if err := p.Meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

// NewMetrics registers the service instruments on a meter named after the
// service.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(serviceName)
	var errs []error
	note := func(name string, err error) {
		if err != nil {
			errs = append(errs, fmt.Errorf("creating %s: %w", name, err))
		}
	}
	seconds := func(name, desc string) metric.Float64Histogram {
		h, err := meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
		note(name, err)
		return h
	}
	counter := func(name, desc, unit string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
		note(name, err)
		return c
	}

	batchSize, err := meter.Int64Histogram("timesheet.batch.size",
		metric.WithDescription("Entries per validated batch"),
		metric.WithUnit("{entry}"),
	)
	note("timesheet.batch.size", err)

	m := &Metrics{
		ServerRequestDuration:  seconds("http.server.request.duration", "Duration of incoming HTTP requests"),
		ServerRequestTotal:     counter("http.server.request.total", "Incoming HTTP requests", "{request}"),
		ClientRequestDuration:  seconds("http.client.request.duration", "Duration of entry store HTTP calls"),
		ClientRequestTotal:     counter("http.client.request.total", "Entry store HTTP calls", "{request}"),
		ValidationTotal:        counter("timesheet.validation.total", "Timesheet validations", "{validation}"),
		DuplicateCheckDuration: seconds("timesheet.duplicate_check.duration", "Duration of duplicate entry lookups"),
		BatchSize:              batchSize,
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return m, nil
}

func checkExporter(exporter, endpoint string) error {
	switch exporter {
	case ExporterStdout:
		return nil
	case ExporterOTLP:
		if endpoint == "" {
			return errMissingEndpoint
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", errUnsupportedExporter, exporter)
	}
}

func spanExporter(ctx context.Context, exporter, endpoint string) (sdktrace.SpanExporter, error) {
	if exporter == ExporterStdout {
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
	host, secure := collector(endpoint)
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(host)}
	if !secure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return otlptracehttp.New(ctx, opts...)
}

func metricExporter(ctx context.Context, exporter, endpoint string) (sdkmetric.Exporter, error) {
	if exporter == ExporterStdout {
		return stdoutmetric.New()
	}
	host, secure := collector(endpoint)
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(host)}
	if !secure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	return otlpmetrichttp.New(ctx, opts...)
}

// collector splits an OTLP endpoint such as "https://otel:4318" into the
// host:port the exporters want and whether TLS is used. A bare host:port
// is returned as-is and treated as plaintext.
func collector(endpoint string) (hostPort string, secure bool) {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint, false
	}
	return u.Host, u.Scheme == "https"
}
