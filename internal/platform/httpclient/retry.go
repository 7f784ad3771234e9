package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/timesheet-service/internal/platform/config"
	"github.com/jsamuelsen11/timesheet-service/internal/platform/logging"
)

// jitter spreads each backoff uniformly over ±25% of its nominal value.
const jitter = 0.25

// retryPolicy is the exponential backoff schedule for one client.
type retryPolicy struct {
	attempts   int
	initial    time.Duration
	ceiling    time.Duration
	multiplier float64
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	return retryPolicy{
		attempts:   max(cfg.MaxAttempts, 1),
		initial:    cfg.InitialInterval,
		ceiling:    cfg.MaxInterval,
		multiplier: cfg.Multiplier,
	}
}

// backoff is the pause before retry n, counting the first retry as 1. The
// nominal delay grows by multiplier per retry and stops at the ceiling
// before jitter is applied.
func (p retryPolicy) backoff(n int) time.Duration {
	d := float64(p.initial)
	for range n - 1 {
		d *= p.multiplier
		if d >= float64(p.ceiling) {
			break
		}
	}
	d = min(d, float64(p.ceiling))
	d += d * jitter * (2*rand.Float64() - 1)
	return time.Duration(max(d, 0))
}

// pause picks the wait before retry n. A Retry-After hint from the entry
// service wins over the schedule but never exceeds the ceiling.
func (p retryPolicy) pause(n int, hint time.Duration) time.Duration {
	if hint > 0 {
		return min(hint, p.ceiling)
	}
	return p.backoff(n)
}

// send runs req under the retry policy. The request body is buffered once
// and replayed on every attempt.
//
// The response is stored through out so the caller owns closing it. After
// the last attempt fails on a retryable status, out holds that response
// with its body unread and the returned error is non-nil.
func (c *Client) send(ctx context.Context, req *http.Request, out **http.Response) error {
	body, err := snapshotBody(req)
	if err != nil {
		return err
	}

	var (
		lastErr error
		hint    time.Duration
	)
	for n := range c.retry.attempts {
		if n > 0 {
			delay := c.retry.pause(n, hint)
			logging.FromContext(ctx).WarnContext(ctx, "retrying entry service call",
				slog.String("method", req.Method),
				slog.String("url", req.URL.String()),
				slog.String("peer_service", c.serviceName),
				slog.Int("attempt", n+1),
				slog.Int("max_attempts", c.retry.attempts),
				slog.Duration("backoff", delay),
				slog.Any("error", lastErr),
			)
			if err := sleep(ctx, delay); err != nil {
				return err
			}
		}

		if body != nil {
			req.Body = io.NopCloser(bytes.NewReader(body))
			req.ContentLength = int64(len(body))
		}

		resp, err := c.httpClient.Do(req)
		hint = 0
		switch {
		case err != nil:
			if !retryableError(err) {
				return err
			}
			lastErr = err
			continue
		case !retryableStatus(resp.StatusCode):
			*out = resp
			return nil
		}

		lastErr = fmt.Errorf("%s answered %d", c.serviceName, resp.StatusCode)
		if n == c.retry.attempts-1 {
			*out = resp
			return lastErr
		}
		hint = retryAfter(resp.Header, time.Now())
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}
	return lastErr
}

// snapshotBody drains and closes req.Body. A nil body stays nil.
func snapshotBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer req.Body.Close()
	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("buffering request body: %w", err)
	}
	return b, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// retryAfter reads a Retry-After header given as delta-seconds or an
// HTTP-date. It returns 0 when the header is missing or unusable.
func retryAfter(h http.Header, now time.Time) time.Duration {
	v := h.Get("Retry-After")
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(max(secs, 0)) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil && at.After(now) {
		return at.Sub(now)
	}
	return 0
}

// retryableError is false only once the caller has given up; transport
// failures of any other kind are worth another attempt.
func retryableError(err error) bool {
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
