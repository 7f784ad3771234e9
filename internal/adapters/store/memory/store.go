// Package memory provides an in-process entry store. It backs local
// development and the CLI, optionally seeded from a YAML fixture.
package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/timesheet-service/internal/domain"
	"github.com/jsamuelsen11/timesheet-service/internal/domain/timesheet"
	"github.com/jsamuelsen11/timesheet-service/internal/platform/logging"
	"github.com/jsamuelsen11/timesheet-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.EntryStore    = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Entry is a persisted timesheet entry.
type Entry struct {
	ID            int64
	Key           timesheet.EntryKey
	StandardHours decimal.Decimal
	OvertimeHours decimal.Decimal
	Status        timesheet.Status
}

// Store is a concurrency-safe EntryStore held in memory. Entries are kept in
// insertion order and keys are stored normalized.
type Store struct {
	mu      sync.RWMutex
	entries []Entry
	nextID  int64

	tracer trace.Tracer
	logger *slog.Logger
}

// New creates an empty Store.
func New(logger *slog.Logger) *Store {
	return &Store{
		nextID: 1,
		tracer: otel.GetTracerProvider().Tracer("timesheet-service/store/memory"),
		logger: logging.OrDiscard(logger),
	}
}

// Add stores e and returns its ID. A zero ID is replaced by the next free
// one; an explicit ID already in use is rejected with domain.ErrConflict.
func (s *Store) Add(e Entry) (int64, error) {
	if missing := e.Key.Missing(); len(missing) > 0 {
		return 0, &domain.ValidationError{Fields: map[string]string{missing[0]: domain.MsgRequired}}
	}
	if e.Status == "" {
		e.Status = timesheet.StatusDraft
	}
	if !e.Status.IsValid() {
		return 0, &domain.ValidationError{Fields: map[string]string{"status": domain.MsgInvalid}}
	}
	e.Key = e.Key.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == 0 {
		e.ID = s.nextID
	}
	for i := range s.entries {
		if s.entries[i].ID == e.ID {
			return 0, fmt.Errorf("entry %d: %w", e.ID, domain.ErrConflict)
		}
	}
	if e.ID >= s.nextID {
		s.nextID = e.ID + 1
	}

	s.entries = append(s.entries, e)
	return e.ID, nil
}

// FindByKey returns the earliest added entry with the given key whose ID is
// not excludeID, or domain.ErrNotFound.
func (s *Store) FindByKey(ctx context.Context, key timesheet.EntryKey, excludeID *int64) (*timesheet.ExistingEntry, error) {
	ctx, span := s.tracer.Start(ctx, "memory.FindByKey", trace.WithAttributes(
		attribute.String("timesheet.entry_key", key.String()),
	))
	defer span.End()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key = key.Normalize()

	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.entries {
		e := &s.entries[i]
		if e.Key != key || (excludeID != nil && e.ID == *excludeID) {
			continue
		}
		span.SetAttributes(attribute.Int64("timesheet.entry_id", e.ID))
		return &timesheet.ExistingEntry{
			ID:     e.ID,
			Hours:  e.StandardHours.Add(e.OvertimeHours),
			Status: e.Status,
		}, nil
	}

	return nil, fmt.Errorf("entry %s: %w", key, domain.ErrNotFound)
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Name returns the health check identifier.
func (s *Store) Name() string {
	return "entry-store"
}

// HealthCheck always succeeds; an in-process store cannot be unreachable.
func (s *Store) HealthCheck(_ context.Context) error {
	return nil
}
