package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/timesheet-service/internal/platform/telemetry"
)

const tracerName = "timesheet-service/http"

// OpenTelemetry continues the caller's W3C trace in a server span and,
// when metrics is non-nil, records request duration and count.
//
// After routing the span is renamed to the chi pattern, for example
// "POST /api/v1/timesheet-entries/validate", and the same pattern labels
// the metrics. Requests that match no route keep the raw path in the span
// name and get no route label.
func OpenTelemetry(metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	tracer := otel.GetTracerProvider().Tracer(tracerName)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := tracer.Start(ctx, r.Method+" "+r.URL.Path,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					telemetry.AttrHTTPMethod.String(r.Method),
					attribute.String("url.path", r.URL.Path),
				),
			)
			defer span.End()

			rw := record(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			labels := []attribute.KeyValue{
				telemetry.AttrHTTPMethod.String(r.Method),
				telemetry.AttrHTTPStatus.Int(rw.status),
			}
			if route := routePattern(r); route != "" {
				span.SetName(r.Method + " " + route)
				labels = append(labels, telemetry.AttrHTTPRoute.String(route))
			}
			span.SetAttributes(labels...)
			if rw.status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(rw.status))
			}

			if metrics != nil {
				recordServerMetrics(ctx, metrics, labels, rw.status, time.Since(start))
			}
		})
	}
}

func recordServerMetrics(ctx context.Context, m *telemetry.Metrics, labels []attribute.KeyValue, status int, elapsed time.Duration) {
	result := "success"
	if status >= http.StatusBadRequest {
		result = "error"
	}
	attrs := metric.WithAttributes(append(labels, telemetry.AttrResult.String(result))...)
	m.ServerRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	m.ServerRequestTotal.Add(ctx, 1, attrs)
}

// routePattern is the chi pattern matched for r, or "" outside a chi router.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		return rctx.RoutePattern()
	}
	return ""
}
