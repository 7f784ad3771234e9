package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/timesheet-service/internal/domain"
	"github.com/jsamuelsen11/timesheet-service/internal/domain/timesheet"
)

// EntryRequest is one timesheet entry in a request body. Hours accept JSON
// numbers or decimal strings; omitted hours are zero. Rule checks on the
// values are reported in the validation result, not as request errors.
type EntryRequest struct {
	EmployeeID    string          `json:"employee_id"`
	DateWorked    string          `json:"date_worked"`
	ProjectCode   string          `json:"project_code"`
	CostCode      string          `json:"cost_code"`
	StandardHours decimal.Decimal `json:"standard_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	EntryID       *int64          `json:"entry_id,omitempty"`
}

// ToDomain converts the request to domain entry data.
func (r *EntryRequest) ToDomain() timesheet.EntryData {
	return timesheet.EntryData{
		EmployeeID:    r.EmployeeID,
		DateWorked:    r.DateWorked,
		ProjectCode:   r.ProjectCode,
		CostCode:      r.CostCode,
		StandardHours: r.StandardHours,
		OvertimeHours: r.OvertimeHours,
		EntryID:       r.EntryID,
	}
}

// Validate accepts every decodable entry.
func (r *EntryRequest) Validate() error {
	return nil
}

// EntryListRequest is the body of the batch validation and summary
// endpoints. An empty list is allowed; a missing one is not.
type EntryListRequest struct {
	Entries []EntryRequest `json:"entries"`
}

// Validate checks that the entries list is present.
// Returns a *domain.ValidationError if it is not.
func (r *EntryListRequest) Validate() error {
	if r.Entries == nil {
		return &domain.ValidationError{Fields: map[string]string{"entries": domain.MsgRequired}}
	}
	return nil
}

// ToDomain converts the entries in order.
func (r *EntryListRequest) ToDomain() []timesheet.EntryData {
	entries := make([]timesheet.EntryData, len(r.Entries))
	for i := range r.Entries {
		entries[i] = r.Entries[i].ToDomain()
	}
	return entries
}
