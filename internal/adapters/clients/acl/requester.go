package acl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/timesheet-service/internal/domain"
	"github.com/jsamuelsen11/timesheet-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/timesheet-service/internal/platform/logging"
)

// Requester turns entries API calls into decoded bodies or domain errors.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester wraps client, whose BaseURL is the entries API root.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logging.OrDiscard(logger)}
}

// Get decodes a 200 answer from GET {base}{path}?{query} into out.
//
// Error statuses go through TranslateHTTPError, including the last answer
// of an exhausted retry. Transport failures and breaker rejections come
// back as domain.ErrUnavailable unless the caller's context ended first.
func (r *Requester) Get(ctx context.Context, path string, query url.Values, out any) error {
	u := r.client.BaseURL() + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return fmt.Errorf("building GET %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer func() {
			if cerr := resp.Body.Close(); cerr != nil {
				r.logger.WarnContext(ctx, "closing entries API response", slog.Any("error", cerr))
			}
		}()
	}

	switch {
	case resp != nil && resp.StatusCode != http.StatusOK:
		r.logger.WarnContext(ctx, "entries API rejected lookup",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)
		return TranslateHTTPError(resp)
	case err != nil:
		r.logger.ErrorContext(ctx, "entries API unreachable",
			slog.String("path", path),
			slog.Any("error", err),
		)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("GET %s: %w", path, err)
		}
		return fmt.Errorf("GET %s: %w: %w", path, domain.ErrUnavailable, err)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding GET %s: %w", path, err)
	}
	return nil
}

// HealthCheck reports the client's breaker state.
func (r *Requester) HealthCheck(ctx context.Context) error {
	return r.client.HealthCheck(ctx)
}
