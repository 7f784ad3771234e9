package acl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/timesheet-service/internal/adapters/clients/acl/entry"
	"github.com/jsamuelsen11/timesheet-service/internal/domain"
	"github.com/jsamuelsen11/timesheet-service/internal/domain/timesheet"
	"github.com/jsamuelsen11/timesheet-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/timesheet-service/internal/platform/logging"
	"github.com/jsamuelsen11/timesheet-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.EntryStore    = (*EntryClient)(nil)
	_ ports.HealthChecker = (*EntryClient)(nil)
)

const entriesPath = "/api/v1/timesheet-entries"

// EntryClient is the outbound adapter for the downstream timesheet entries
// API. It implements [ports.EntryStore].
//
// The underlying [httpclient.Client] provides circuit breaking, rate
// limiting, retry with exponential backoff, OpenTelemetry tracing, and
// optional OAuth2 client credentials for every outbound call. HTTP errors
// are mapped to domain errors by [TranslateHTTPError].
type EntryClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewEntryClient creates an EntryClient that sends requests through the
// given [httpclient.Client], whose BaseURL points at the entries API root.
func NewEntryClient(client *httpclient.Client, logger *slog.Logger) *EntryClient {
	logger = logging.OrDiscard(logger)
	return &EntryClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// FindByKey lists entries matching key via GET /api/v1/timesheet-entries and
// returns the first one whose ID is not excludeID. It returns
// [domain.ErrNotFound] only for a list with no such entry; any failed list
// request, a 404 included, is [domain.ErrUnavailable].
func (c *EntryClient) FindByKey(ctx context.Context, key timesheet.EntryKey, excludeID *int64) (*timesheet.ExistingEntry, error) {
	var dto entry.EntryListResponseDTO
	if err := c.req.Get(ctx, entriesPath, entry.ToFindQuery(key, excludeID), &dto); err != nil {
		return nil, listFailure(err)
	}

	found, ok := entry.FirstMatch(dto, excludeID)
	if !ok {
		return nil, fmt.Errorf("entry %s: %w", key, domain.ErrNotFound)
	}

	c.logger.DebugContext(ctx, "entry store match",
		slog.Int64("id", found.ID),
		slog.String("status", found.Status.String()),
	)
	return &found, nil
}

// listFailure keeps a failed list request off the not-found path. The
// collection route always exists, so a 404 means a misrouted call.
func listFailure(err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, domain.ErrNotFound):
		return fmt.Errorf("listing entries: %s: %w", err, domain.ErrUnavailable)
	case errors.Is(err, domain.ErrUnavailable):
		return err
	}
	return fmt.Errorf("listing entries: %w: %w", domain.ErrUnavailable, err)
}
