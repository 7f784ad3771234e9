// Package httpclient is the outbound client for the timesheet entry service.
// Each call passes through, in order:
//
//	breaker -> rate limiter -> ID headers -> client span -> retry -> transport
//
// Inbound middleware and the CLI put request and correlation IDs on the
// context with WithRequestID and WithCorrelationID; Do copies them onto the
// outbound request.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/timesheet-service/internal/platform/config"
	"github.com/jsamuelsen11/timesheet-service/internal/platform/logging"
	"github.com/jsamuelsen11/timesheet-service/internal/platform/telemetry"
)

type idHeader string

// Context keys double as the outbound header names.
const (
	requestIDHeader     idHeader = "X-Request-ID"
	correlationIDHeader idHeader = "X-Correlation-ID"
)

// WithRequestID stores the request ID sent as X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDHeader, id)
}

// WithCorrelationID stores the correlation ID sent as X-Correlation-ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDHeader, id)
}

// Client calls the entry service with breaker, rate limit, retry and
// tracing applied.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	serviceName string
	breaker     *gobreaker.CircuitBreaker[*http.Response]
	limiter     *rate.Limiter // nil when unlimited
	retry       retryPolicy
	metrics     *telemetry.Metrics
	tracer      trace.Tracer
}

// New builds a client for the service named serviceName, which labels
// spans, metrics and breaker logs. Nil metrics disables recording. A
// configured token URL adds an OAuth2 client-credentials bearer token to
// every request.
func New(cfg *config.ClientConfig, serviceName string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	logger = logging.OrDiscard(logger)

	c := &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout, Transport: newTransport(cfg)},
		baseURL:     cfg.BaseURL,
		serviceName: serviceName,
		retry:       newRetryPolicy(cfg.Retry),
		metrics:     metrics,
		tracer:      otel.GetTracerProvider().Tracer("timesheet-service/httpclient"),
	}
	if rps := cfg.RateLimit.RequestsPerSecond; rps > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rps), cfg.RateLimit.BurstSize)
	}

	c.breaker = gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        serviceName,
		MaxRequests: clampUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		// A fail-fast batch cancels sibling lookups; that says nothing about
		// the entry service.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
	return c
}

// Do sends req. On success the response body is open and belongs to the
// caller. When retries run out on a retryable status both the final
// response and an error are returned, and the caller still closes the
// body. Breaker rejections and transport failures return a nil response.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}
		for _, key := range []idHeader{requestIDHeader, correlationIDHeader} {
			if id, _ := ctx.Value(key).(string); id != "" {
				req.Header.Set(string(key), id)
			}
		}

		ctx, span := c.tracer.Start(ctx, req.Method+" "+c.serviceName,
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(
				telemetry.AttrHTTPMethod.String(req.Method),
				attribute.String("url.full", req.URL.String()),
				telemetry.AttrPeerService.String(c.serviceName),
			),
		)
		defer span.End()
		otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
		req = req.WithContext(ctx)

		var resp *http.Response
		err := c.send(ctx, req, &resp)
		if resp != nil {
			span.SetAttributes(telemetry.AttrHTTPStatus.Int(resp.StatusCode))
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return resp, err
	})

	c.record(ctx, req.Method, time.Since(start), resp, err)
	return resp, err
}

func newTransport(cfg *config.ClientConfig) http.RoundTripper {
	if cfg.Auth.TokenURL == "" {
		return http.DefaultTransport
	}

	cc := &clientcredentials.Config{
		ClientID:     cfg.Auth.ClientID,
		ClientSecret: cfg.Auth.ClientSecret,
		TokenURL:     cfg.Auth.TokenURL,
		Scopes:       cfg.Auth.Scopes,
	}
	// Token fetches skip the breaker and retries but share the timeout.
	tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{Timeout: cfg.Timeout})

	return &oauth2.Transport{
		Source: oauth2.ReuseTokenSource(nil, cc.TokenSource(tokenCtx)),
		Base:   http.DefaultTransport,
	}
}

// BaseURL is the entry service root the client was configured with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Name identifies the entry service in health reports.
func (c *Client) Name() string {
	return c.serviceName
}

// HealthCheck reads the breaker without calling the service: closed is
// healthy, half-open is degraded and open is failing.
func (c *Client) HealthCheck(context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.serviceName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.serviceName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.serviceName, state)
	}
}

// record is called outside the breaker so rejected calls are counted.
func (c *Client) record(ctx context.Context, method string, elapsed time.Duration, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	status, result := 0, "error"
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		result = "circuit_open"
	case resp != nil:
		status = resp.StatusCode
		if status < http.StatusBadRequest {
			result = "success"
		}
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.serviceName),
		telemetry.AttrResult.String(result),
	)
	c.metrics.ClientRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

func clampUint32(v int) uint32 {
	return uint32(min(max(v, 0), math.MaxUint32))
}
