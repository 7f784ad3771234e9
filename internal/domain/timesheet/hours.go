package timesheet

import "github.com/shopspring/decimal"

// ValidateHours applies the hour rules to a standard/overtime pair. The three
// checks are independent, so a single call can report up to three messages.
//
// A negative value in either bucket produces one combined message; callers
// are not told which bucket was negative.
func ValidateHours(standard, overtime decimal.Decimal) []string {
	var errs []string

	if standard.IsNegative() || overtime.IsNegative() {
		errs = append(errs, RuleNegative.Message())
	}
	if !isQuarterHour(standard) || !isQuarterHour(overtime) {
		errs = append(errs, RuleIncrement.Message())
	}
	if standard.Add(overtime).GreaterThan(MaxDailyHours) {
		errs = append(errs, RuleMaxDaily.Message())
	}

	return errs
}

func isQuarterHour(h decimal.Decimal) bool {
	return h.Mod(HourIncrement).IsZero()
}
