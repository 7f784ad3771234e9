package timesheet

import (
	"regexp"
	"strings"
	"time"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// fieldRules run in field order.
var fieldRules = []struct {
	rule Rule
	ok   func(EntryData) bool
}{
	{RuleEmployeeID, func(e EntryData) bool { return strings.TrimSpace(e.EmployeeID) != "" }},
	{RuleDateWorked, func(e EntryData) bool { return IsValidDate(e.DateWorked) }},
	{RuleProject, func(e EntryData) bool { return strings.TrimSpace(e.ProjectCode) != "" }},
	{RuleCostCode, func(e EntryData) bool { return strings.TrimSpace(e.CostCode) != "" }},
}

// ValidateFields checks the required fields of an entry and returns the
// messages of the failed rules in field order. It never panics on malformed
// input; an entry with every field well-formed yields nil.
func ValidateFields(e EntryData) []string {
	var errs []string
	for _, fr := range fieldRules {
		if !fr.ok(e) {
			errs = append(errs, fr.rule.Message())
		}
	}
	return errs
}

// IsValidDate reports whether s is literally YYYY-MM-DD and names a real
// calendar day (2025-02-30 is rejected).
func IsValidDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
