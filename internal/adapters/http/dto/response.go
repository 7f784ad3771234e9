// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
//
// Hours are encoded as decimal strings ("7.75") so that clients never see a
// binary floating-point rounding of a value the service compared exactly.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/timesheet-service/internal/domain/timesheet"
)

// ValidationResponse is the result of validating one entry.
type ValidationResponse struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

// EntryErrorsResponse lists the messages for one invalid batch entry. Index
// is the entry's position in the batch. Row is set for imported files and
// names the source row, which differs from Index when blank rows were
// skipped.
type EntryErrorsResponse struct {
	Index  int      `json:"index"`
	Row    int      `json:"row,omitempty"`
	Errors []string `json:"errors"`
}

// BatchValidationResponse is the result of validating a batch.
type BatchValidationResponse struct {
	BatchID     string                `json:"batch_id"`
	IsValid     bool                  `json:"is_valid"`
	EntryErrors []EntryErrorsResponse `json:"entry_errors"`
}

// ExistingEntryResponse describes a persisted entry.
type ExistingEntryResponse struct {
	ID     int64           `json:"id"`
	Hours  decimal.Decimal `json:"hours"`
	Status string          `json:"status"`
}

// DuplicateCheckResponse is the result of a duplicate lookup.
type DuplicateCheckResponse struct {
	Exists bool                   `json:"exists"`
	Entry  *ExistingEntryResponse `json:"entry,omitempty"`
}

// DayTotalResponse is one day of a summary.
type DayTotalResponse struct {
	Date          string          `json:"date"`
	StandardHours decimal.Decimal `json:"standard_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	TotalHours    decimal.Decimal `json:"total_hours"`
	Entries       int             `json:"entries"`
}

// WeekTotalResponse is one ISO week of a summary.
type WeekTotalResponse struct {
	Week          string             `json:"week"`
	WeekStart     string             `json:"week_start"`
	StandardHours decimal.Decimal    `json:"standard_hours"`
	OvertimeHours decimal.Decimal    `json:"overtime_hours"`
	TotalHours    decimal.Decimal    `json:"total_hours"`
	Days          []DayTotalResponse `json:"days"`
}

// SummaryResponse groups entry hours by week and day.
type SummaryResponse struct {
	Weeks      []WeekTotalResponse `json:"weeks"`
	TotalHours decimal.Decimal     `json:"total_hours"`
	Skipped    int                 `json:"skipped"`
}

// ToValidationResponse converts a domain ValidationResult.
func ToValidationResponse(r timesheet.ValidationResult) ValidationResponse {
	return ValidationResponse{IsValid: r.Valid, Errors: nonNil(r.Errors)}
}

// ToBatchValidationResponse converts a domain BatchValidationResult.
func ToBatchValidationResponse(r timesheet.BatchValidationResult) BatchValidationResponse {
	entryErrs := make([]EntryErrorsResponse, len(r.EntryErrors))
	for i, e := range r.EntryErrors {
		entryErrs[i] = EntryErrorsResponse{Index: e.Index, Errors: nonNil(e.Errors)}
	}
	return BatchValidationResponse{
		BatchID:     r.BatchID,
		IsValid:     r.Valid,
		EntryErrors: entryErrs,
	}
}

// ToImportValidationResponse is ToBatchValidationResponse with the source
// row of every failing entry; rowOf maps a batch index to its row.
func ToImportValidationResponse(r timesheet.BatchValidationResult, rowOf func(index int) int) BatchValidationResponse {
	resp := ToBatchValidationResponse(r)
	for i := range resp.EntryErrors {
		resp.EntryErrors[i].Row = rowOf(resp.EntryErrors[i].Index)
	}
	return resp
}

// ToDuplicateCheckResponse converts a domain DuplicateCheckResult.
func ToDuplicateCheckResponse(r timesheet.DuplicateCheckResult) DuplicateCheckResponse {
	resp := DuplicateCheckResponse{Exists: r.Exists}
	if r.Entry != nil {
		resp.Entry = &ExistingEntryResponse{
			ID:     r.Entry.ID,
			Hours:  r.Entry.Hours,
			Status: r.Entry.Status.String(),
		}
	}
	return resp
}

// ToSummaryResponse converts a domain Summary.
func ToSummaryResponse(s timesheet.Summary) SummaryResponse {
	weeks := make([]WeekTotalResponse, len(s.Weeks))
	for i, w := range s.Weeks {
		days := make([]DayTotalResponse, len(w.Days))
		for j, d := range w.Days {
			days[j] = DayTotalResponse{
				Date:          d.Date,
				StandardHours: d.StandardHours,
				OvertimeHours: d.OvertimeHours,
				TotalHours:    d.TotalHours,
				Entries:       d.Entries,
			}
		}
		weeks[i] = WeekTotalResponse{
			Week:          w.Week,
			WeekStart:     w.WeekStart,
			StandardHours: w.StandardHours,
			OvertimeHours: w.OvertimeHours,
			TotalHours:    w.TotalHours,
			Days:          days,
		}
	}
	return SummaryResponse{Weeks: weeks, TotalHours: s.TotalHours, Skipped: s.Skipped}
}

func nonNil(errs []string) []string {
	if errs == nil {
		return []string{}
	}
	return errs
}

// Health states reported by the liveness and readiness endpoints.
const (
	HealthUp       = "up"
	HealthDown     = "down"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
)

// HealthResponse is the body of the /health endpoints. Checks is omitted on
// liveness.
type HealthResponse struct {
	Status string                         `json:"status"`
	Checks map[string]HealthCheckResponse `json:"checks,omitempty"`
}

// HealthCheckResponse is the state of one dependency.
type HealthCheckResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// ToHealthResponse folds checker results into a readiness body. The
// service is ready only when every check passed.
func ToHealthResponse(results map[string]error) HealthResponse {
	resp := HealthResponse{
		Status: HealthReady,
		Checks: make(map[string]HealthCheckResponse, len(results)),
	}
	for name, err := range results {
		if err == nil {
			resp.Checks[name] = HealthCheckResponse{Status: HealthUp}
			continue
		}
		resp.Checks[name] = HealthCheckResponse{Status: HealthDown, Error: err.Error()}
		resp.Status = HealthNotReady
	}
	return resp
}
