package timesheet

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"
)

// EntryData is one line of worked time submitted for validation.
// EntryID is set only when an already persisted entry is being edited, so
// that it is not reported as a duplicate of itself.
type EntryData struct {
	EmployeeID    string
	DateWorked    string
	ProjectCode   string
	CostCode      string
	StandardHours decimal.Decimal
	OvertimeHours decimal.Decimal
	EntryID       *int64
}

// TotalHours returns standard plus overtime hours.
func (e EntryData) TotalHours() decimal.Decimal {
	return e.StandardHours.Add(e.OvertimeHours)
}

// Key returns the duplicate-detection key of the entry.
func (e EntryData) Key() EntryKey {
	return EntryKey{
		EmployeeID:  e.EmployeeID,
		DateWorked:  e.DateWorked,
		ProjectCode: e.ProjectCode,
		CostCode:    e.CostCode,
	}
}

// EntryKey identifies an entry for duplicate detection: two entries with the
// same key describe the same employee, day, project, and cost code.
type EntryKey struct {
	EmployeeID  string
	DateWorked  string
	ProjectCode string
	CostCode    string
}

// Normalize trims each component and folds it to Unicode NFKC so that
// full-width or compatibility forms of a code compare equal.
func (k EntryKey) Normalize() EntryKey {
	return EntryKey{
		EmployeeID:  normalizeComponent(k.EmployeeID),
		DateWorked:  normalizeComponent(k.DateWorked),
		ProjectCode: normalizeComponent(k.ProjectCode),
		CostCode:    normalizeComponent(k.CostCode),
	}
}

// Missing returns the names of the components that are blank after trimming,
// in declaration order.
func (k EntryKey) Missing() []string {
	var missing []string
	if strings.TrimSpace(k.EmployeeID) == "" {
		missing = append(missing, "employee_id")
	}
	if strings.TrimSpace(k.DateWorked) == "" {
		missing = append(missing, "date_worked")
	}
	if strings.TrimSpace(k.ProjectCode) == "" {
		missing = append(missing, "project_code")
	}
	if strings.TrimSpace(k.CostCode) == "" {
		missing = append(missing, "cost_code")
	}
	return missing
}

// String renders the key as employee/date/project/cost.
func (k EntryKey) String() string {
	return k.EmployeeID + "/" + k.DateWorked + "/" + k.ProjectCode + "/" + k.CostCode
}

func normalizeComponent(s string) string {
	return norm.NFKC.String(strings.TrimSpace(s))
}

// Status is the approval state of a persisted entry.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// ExistingEntry is the read-only projection of a persisted entry returned by
// an entry store lookup.
type ExistingEntry struct {
	ID     int64
	Hours  decimal.Decimal
	Status Status
}
