package timesheet

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/timesheet-service/internal/domain"
)

func TestNewValidationResult(t *testing.T) {
	t.Parallel()

	r := NewValidationResult(nil)
	if !r.Valid {
		t.Error("Valid = false, want true for no errors")
	}
	if r.Errors == nil || len(r.Errors) != 0 {
		t.Errorf("Errors = %#v, want empty non-nil slice", r.Errors)
	}

	r = NewValidationResult([]string{MsgProject})
	if r.Valid {
		t.Error("Valid = true, want false with errors")
	}
}

func TestNewBatchValidationResult(t *testing.T) {
	t.Parallel()

	results := []ValidationResult{
		NewValidationResult(nil),
		NewValidationResult([]string{MsgProject}),
		NewValidationResult(nil),
		NewValidationResult([]string{MsgNegative, MsgMaxDaily}),
	}

	got := NewBatchValidationResult("batch-1", results)
	if got.Valid {
		t.Error("Valid = true, want false")
	}
	if got.BatchID != "batch-1" {
		t.Errorf("BatchID = %q, want %q", got.BatchID, "batch-1")
	}
	if len(got.EntryErrors) != 2 {
		t.Fatalf("len(EntryErrors) = %d, want 2", len(got.EntryErrors))
	}
	if got.EntryErrors[0].Index != 1 || got.EntryErrors[1].Index != 3 {
		t.Errorf("indices = [%d %d], want [1 3]", got.EntryErrors[0].Index, got.EntryErrors[1].Index)
	}
	if len(got.EntryErrors[1].Errors) != 2 {
		t.Errorf("EntryErrors[1].Errors = %q, want two messages", got.EntryErrors[1].Errors)
	}
}

func TestNewBatchValidationResult_Empty(t *testing.T) {
	t.Parallel()

	got := NewBatchValidationResult("", nil)
	if !got.Valid {
		t.Error("Valid = false, want true for empty batch")
	}
	if got.EntryErrors == nil || len(got.EntryErrors) != 0 {
		t.Errorf("EntryErrors = %#v, want empty non-nil slice", got.EntryErrors)
	}
}

func TestDuplicateCheckError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := error(&DuplicateCheckError{Err: cause})

	if err.Error() != MsgDuplicateCheckFailed {
		t.Errorf("Error() = %q, want %q", err.Error(), MsgDuplicateCheckFailed)
	}
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Error("errors.Is(err, ErrUnavailable) = false, want true")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if errors.Is(err, domain.ErrValidation) {
		t.Error("errors.Is(err, ErrValidation) = true, want false")
	}
}
