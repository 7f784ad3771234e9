package timesheet

import "github.com/shopspring/decimal"

// Rule identifies a single validation rule. Each rule has exactly one
// user-facing message.
type Rule string

const (
	RuleEmployeeID Rule = "employee_id"
	RuleDateWorked Rule = "date_worked"
	RuleProject    Rule = "project_code"
	RuleCostCode   Rule = "cost_code"
	RuleNegative   Rule = "negative_hours"
	RuleIncrement  Rule = "hour_increment"
	RuleMaxDaily   Rule = "max_daily_hours"
	RuleDuplicate  Rule = "duplicate_entry"
)

// Messages returned in ValidationResult.Errors.
const (
	MsgEmployeeID = "Employee ID is required and must be valid"
	MsgDateWorked = "Date worked is required and must be valid"
	MsgProject    = "Project code is required"
	MsgCostCode   = "Cost code is required"
	MsgNegative   = "Hours cannot be negative"
	MsgIncrement  = "Hours must be in quarter-hour increments (0.25)"
	MsgMaxDaily   = "Total hours cannot exceed 16 hours per day"
	MsgDuplicate  = "A duplicate entry already exists for this employee, date, project, and cost code"

	// MsgDuplicateCheckFailed is the text of a DuplicateCheckError. It is never
	// part of a ValidationResult.
	MsgDuplicateCheckFailed = "Failed to check for duplicate entries. Please try again."
)

var ruleMessages = map[Rule]string{
	RuleEmployeeID: MsgEmployeeID,
	RuleDateWorked: MsgDateWorked,
	RuleProject:    MsgProject,
	RuleCostCode:   MsgCostCode,
	RuleNegative:   MsgNegative,
	RuleIncrement:  MsgIncrement,
	RuleMaxDaily:   MsgMaxDaily,
	RuleDuplicate:  MsgDuplicate,
}

// Message returns the user-facing message for r, or "" for an unknown rule.
func (r Rule) Message() string {
	return ruleMessages[r]
}

// String implements fmt.Stringer.
func (r Rule) String() string {
	return string(r)
}

// Hour thresholds. Hours are compared as exact decimals.
var (
	MaxDailyHours = decimal.NewFromInt(16)
	HourIncrement = decimal.RequireFromString("0.25")
)

// DateLayout is the only accepted shape for EntryData.DateWorked.
const DateLayout = "2006-01-02"
