// Package entry implements the Anti-Corruption Layer translators for the
// downstream timesheet entries API.
package entry

import "github.com/shopspring/decimal"

// EntryDTO matches the downstream entry schema. Hours may be sent either as
// JSON numbers or as decimal strings.
type EntryDTO struct {
	ID            int64           `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	DateWorked    string          `json:"date_worked"`
	ProjectCode   string          `json:"project_code"`
	CostCode      string          `json:"cost_code"`
	StandardHours decimal.Decimal `json:"standard_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	Status        string          `json:"status"`
}

// EntryListResponseDTO matches the downstream list response schema.
type EntryListResponseDTO struct {
	Entries []EntryDTO `json:"entries"`
	Count   int64      `json:"count"`
}
