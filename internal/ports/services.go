package ports

import (
	"context"

	"github.com/jsamuelsen11/timesheet-service/internal/domain/timesheet"
)

// TimesheetService defines the service port for timesheet entry validation.
// Implemented by the application layer; called by inbound adapters (HTTP
// handlers and the CLI).
//
// Two failure channels are kept apart: rule violations are returned as data
// in the result, while an error return means validity could not be
// determined at all (for example the entry store was unreachable).
type TimesheetService interface {
	// ValidateEntry checks one entry against the field and hour rules and,
	// only when those pass, against the entry store for duplicates.
	// Returns a *timesheet.DuplicateCheckError if the store lookup fails.
	ValidateEntry(ctx context.Context, entry timesheet.EntryData) (timesheet.ValidationResult, error)

	// ValidateBatch validates entries in order and reports errors per input
	// index. The first operational failure aborts the batch and is returned.
	// Returns domain.ErrValidation if the batch exceeds the configured size.
	ValidateBatch(ctx context.Context, entries []timesheet.EntryData) (timesheet.BatchValidationResult, error)

	// CheckDuplicate looks up an existing entry with the given key other
	// than excludeID.
	// Returns domain.ErrInvalidArgument if any key component is blank and a
	// *timesheet.DuplicateCheckError if the store lookup fails.
	CheckDuplicate(ctx context.Context, key timesheet.EntryKey, excludeID *int64) (timesheet.DuplicateCheckResult, error)

	// Summarize groups entries by ISO week and day.
	Summarize(ctx context.Context, entries []timesheet.EntryData) timesheet.Summary
}
