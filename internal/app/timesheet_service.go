// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	appctx "github.com/jsamuelsen11/timesheet-service/internal/app/context"
	"github.com/jsamuelsen11/timesheet-service/internal/app/fanout"
	"github.com/jsamuelsen11/timesheet-service/internal/domain"
	"github.com/jsamuelsen11/timesheet-service/internal/domain/timesheet"
	"github.com/jsamuelsen11/timesheet-service/internal/platform/logging"
	"github.com/jsamuelsen11/timesheet-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/timesheet-service/internal/ports"
)

// Compile-time check that TimesheetService implements ports.TimesheetService.
var _ ports.TimesheetService = (*TimesheetService)(nil)

// Default option values, applied when an Options field is zero.
const (
	DefaultDuplicateCheckTimeout = 5 * time.Second
	DefaultBatchConcurrency      = 1
	DefaultMaxBatchSize          = 500
)

// Options tunes validation behavior.
type Options struct {
	// DuplicateCheckTimeout bounds each entry store lookup. A lookup that
	// times out fails the same way as a store error.
	DuplicateCheckTimeout time.Duration

	// BatchConcurrency is the number of entries of a batch validated at
	// once. 1 validates strictly in input order.
	BatchConcurrency int

	// MaxBatchSize is the largest accepted batch.
	MaxBatchSize int
}

func (o Options) withDefaults() Options {
	if o.DuplicateCheckTimeout <= 0 {
		o.DuplicateCheckTimeout = DefaultDuplicateCheckTimeout
	}
	if o.BatchConcurrency < 1 {
		o.BatchConcurrency = DefaultBatchConcurrency
	}
	if o.MaxBatchSize < 1 {
		o.MaxBatchSize = DefaultMaxBatchSize
	}
	return o
}

// TimesheetService implements ports.TimesheetService. Field and hour rules
// come from the timesheet domain package; this service adds the duplicate
// lookup against the EntryStore port, batch orchestration, and the
// logging and metrics around them.
type TimesheetService struct {
	store   ports.EntryStore
	opts    Options
	metrics *telemetry.Metrics
	logger  *slog.Logger
	tracer  trace.Tracer

	newBatchID func() string
}

// NewTimesheetService creates a TimesheetService backed by the given entry
// store. If metrics is nil, metric recording is skipped. A nil logger
// discards output.
func NewTimesheetService(store ports.EntryStore, opts Options, metrics *telemetry.Metrics, logger *slog.Logger) *TimesheetService {
	return &TimesheetService{
		store:      store,
		opts:       opts.withDefaults(),
		metrics:    metrics,
		logger:     logging.OrDiscard(logger),
		tracer:     otel.GetTracerProvider().Tracer("timesheet-service/app"),
		newBatchID: newULID,
	}
}

func newULID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// ValidateEntry runs the field and hour rules and, only when both pass,
// the duplicate lookup.
func (s *TimesheetService) ValidateEntry(ctx context.Context, entry timesheet.EntryData) (timesheet.ValidationResult, error) {
	ctx, span := s.tracer.Start(ctx, "TimesheetService.ValidateEntry")
	defer span.End()

	s.logger.DebugContext(ctx, "validating entry",
		slog.String("employee_id", entry.EmployeeID),
		slog.String("date_worked", entry.DateWorked),
	)

	result, err := s.validateEntry(ctx, entry)
	if err != nil {
		s.logger.ErrorContext(ctx, "entry validation could not complete",
			slog.String("operation", "ValidateEntry"),
			slog.String("employee_id", entry.EmployeeID),
			slog.Any("error", err),
		)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.recordValidation(ctx, "entry", telemetry.ResultError)
		return timesheet.ValidationResult{}, err
	}

	span.SetAttributes(attribute.Bool("timesheet.valid", result.Valid))
	s.recordValidation(ctx, "entry", resultLabel(result.Valid))
	return result, nil
}

// validateEntry is the unlogged core shared by ValidateEntry and
// ValidateBatch.
func (s *TimesheetService) validateEntry(ctx context.Context, entry timesheet.EntryData) (timesheet.ValidationResult, error) {
	errs := timesheet.ValidateFields(entry)
	errs = append(errs, timesheet.ValidateHours(entry.StandardHours, entry.OvertimeHours)...)

	// The store is consulted only for entries that are otherwise valid.
	if len(errs) == 0 {
		dup, err := s.CheckDuplicate(ctx, entry.Key(), entry.EntryID)
		if err != nil {
			return timesheet.ValidationResult{}, err
		}
		if dup.Exists {
			errs = append(errs, timesheet.RuleDuplicate.Message())
		}
	}

	return timesheet.NewValidationResult(errs), nil
}

// ValidateBatch validates entries and reports the invalid ones by input
// index. With BatchConcurrency 1 entries are validated one after another;
// otherwise they are fanned out, and the result is still ordered by index.
// The first operational failure aborts the batch and is returned as is.
func (s *TimesheetService) ValidateBatch(ctx context.Context, entries []timesheet.EntryData) (timesheet.BatchValidationResult, error) {
	batchID := s.newBatchID()
	logger := s.logger.With(slog.String("batch_id", batchID))

	ctx, span := s.tracer.Start(ctx, "TimesheetService.ValidateBatch", trace.WithAttributes(
		attribute.String("timesheet.batch_id", batchID),
		attribute.Int("timesheet.batch_size", len(entries)),
	))
	defer span.End()

	logger.InfoContext(ctx, "validating batch", slog.Int("entries", len(entries)))

	if len(entries) > s.opts.MaxBatchSize {
		return timesheet.BatchValidationResult{}, &domain.ValidationError{Fields: map[string]string{
			"entries": fmt.Sprintf("must contain at most %d entries, got %d", s.opts.MaxBatchSize, len(entries)),
		}}
	}

	if s.metrics != nil {
		s.metrics.BatchSize.Record(ctx, int64(len(entries)))
	}

	results, err := s.validateAll(ctx, entries)
	if err != nil {
		logger.ErrorContext(ctx, "batch validation aborted",
			slog.String("operation", "ValidateBatch"),
			slog.Any("error", err),
		)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.recordValidation(ctx, "batch", telemetry.ResultError)
		return timesheet.BatchValidationResult{}, err
	}

	result := timesheet.NewBatchValidationResult(batchID, results)

	logger.InfoContext(ctx, "batch validated",
		slog.Bool("valid", result.Valid),
		slog.Int("invalid_entries", len(result.EntryErrors)),
	)
	span.SetAttributes(attribute.Bool("timesheet.valid", result.Valid))
	s.recordValidation(ctx, "batch", resultLabel(result.Valid))
	return result, nil
}

// validateAll validates entries with up to BatchConcurrency in flight. The
// first duplicate-check failure aborts the rest of the batch.
func (s *TimesheetService) validateAll(ctx context.Context, entries []timesheet.EntryData) ([]timesheet.ValidationResult, error) {
	return fanout.Map(ctx, s.opts.BatchConcurrency, entries,
		func(ctx context.Context, i int, entry timesheet.EntryData) (timesheet.ValidationResult, error) {
			r, err := s.validateEntry(ctx, entry)
			if err != nil {
				return r, fmt.Errorf("validating entry %d: %w", i, err)
			}
			return r, nil
		})
}

// CheckDuplicate looks up an entry with the same key, other than excludeID.
// Key components are trimmed and NFKC-normalized before the lookup.
func (s *TimesheetService) CheckDuplicate(ctx context.Context, key timesheet.EntryKey, excludeID *int64) (timesheet.DuplicateCheckResult, error) {
	if missing := key.Missing(); len(missing) > 0 {
		return timesheet.DuplicateCheckResult{}, fmt.Errorf("%w: duplicate check requires %s",
			domain.ErrInvalidArgument, strings.Join(missing, ", "))
	}
	key = key.Normalize()

	existing, err := s.lookup(ctx, key, excludeID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return timesheet.DuplicateCheckResult{Exists: false}, nil
	case err != nil:
		s.logger.ErrorContext(ctx, "duplicate check failed",
			slog.String("operation", "CheckDuplicate"),
			slog.String("employee_id", key.EmployeeID),
			slog.String("date_worked", key.DateWorked),
			slog.String("project_code", key.ProjectCode),
			slog.String("cost_code", key.CostCode),
			slog.Any("error", err),
		)
		return timesheet.DuplicateCheckResult{}, &timesheet.DuplicateCheckError{Err: err}
	case existing == nil:
		// A store that reports neither an entry nor ErrNotFound is treated as
		// having found nothing.
		return timesheet.DuplicateCheckResult{Exists: false}, nil
	}

	s.logger.DebugContext(ctx, "duplicate entry found",
		slog.String("key", key.String()),
		slog.Int64("existing_id", existing.ID),
	)
	return timesheet.DuplicateCheckResult{Exists: true, Entry: existing}, nil
}

// lookup queries the store once per key and exclusion within a request,
// bounded by DuplicateCheckTimeout.
func (s *TimesheetService) lookup(ctx context.Context, key timesheet.EntryKey, excludeID *int64) (*timesheet.ExistingEntry, error) {
	return appctx.GetOrFetch(ctx, appctx.FromContext(ctx), lookupCacheKey(key, excludeID),
		func(ctx context.Context) (*timesheet.ExistingEntry, error) {
			ctx, cancel := context.WithTimeout(ctx, s.opts.DuplicateCheckTimeout)
			defer cancel()

			start := time.Now()
			entry, err := s.findWithDeadline(ctx, key, excludeID)
			s.recordLookup(ctx, start, err)
			return entry, err
		})
}

// findWithDeadline calls the store and returns ctx.Err() as soon as ctx is
// done, even if the store does not observe cancellation itself.
func (s *TimesheetService) findWithDeadline(ctx context.Context, key timesheet.EntryKey, excludeID *int64) (*timesheet.ExistingEntry, error) {
	type found struct {
		entry *timesheet.ExistingEntry
		err   error
	}

	done := make(chan found, 1)
	go func() {
		entry, err := s.store.FindByKey(ctx, key, excludeID)
		done <- found{entry: entry, err: err}
	}()

	select {
	case f := <-done:
		return f.entry, f.err
	case <-ctx.Done():
		return nil, fmt.Errorf("entry store lookup: %w", ctx.Err())
	}
}

// Summarize groups entries by ISO week and day.
func (s *TimesheetService) Summarize(ctx context.Context, entries []timesheet.EntryData) timesheet.Summary {
	summary := timesheet.Summarize(entries)

	s.logger.DebugContext(ctx, "summarized entries",
		slog.Int("entries", len(entries)),
		slog.Int("weeks", len(summary.Weeks)),
		slog.Int("skipped", summary.Skipped),
	)
	return summary
}

// lookupCacheKey quotes every key component so that codes containing the
// separator cannot collide ("A/B"+"C" versus "A"+"B/C").
func lookupCacheKey(key timesheet.EntryKey, excludeID *int64) string {
	exclude := "-"
	if excludeID != nil {
		exclude = strconv.FormatInt(*excludeID, 10)
	}
	parts := []string{key.EmployeeID, key.DateWorked, key.ProjectCode, key.CostCode}
	for i, p := range parts {
		parts[i] = strconv.Quote(p)
	}
	return "entry:" + strings.Join(parts, "/") + ":exclude:" + exclude
}

func resultLabel(valid bool) string {
	if valid {
		return telemetry.ResultValid
	}
	return telemetry.ResultInvalid
}

func (s *TimesheetService) recordValidation(ctx context.Context, kind, result string) {
	if s.metrics == nil {
		return
	}
	s.metrics.ValidationTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrValidationKind.String(kind),
		telemetry.AttrResult.String(result),
	))
}

func (s *TimesheetService) recordLookup(ctx context.Context, start time.Time, err error) {
	if s.metrics == nil {
		return
	}
	result := "found"
	switch {
	case errors.Is(err, domain.ErrNotFound):
		result = "not_found"
	case err != nil:
		result = telemetry.ResultError
	}
	s.metrics.DuplicateCheckDuration.Record(ctx, time.Since(start).Seconds(),
		metric.WithAttributes(telemetry.AttrResult.String(result)))
}
