package timesheet

import (
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// DayTotal is the hour total for one calendar day.
type DayTotal struct {
	Date          string
	StandardHours decimal.Decimal
	OvertimeHours decimal.Decimal
	TotalHours    decimal.Decimal
	Entries       int
}

// WeekTotal is the hour total for one ISO week, with its days in date order.
type WeekTotal struct {
	Week          string
	WeekStart     string
	StandardHours decimal.Decimal
	OvertimeHours decimal.Decimal
	TotalHours    decimal.Decimal
	Days          []DayTotal
}

// Summary groups entries by ISO week and day.
// Skipped counts entries whose date could not be parsed.
type Summary struct {
	Weeks      []WeekTotal
	TotalHours decimal.Decimal
	Skipped    int
}

// Summarize totals the entries per day and per ISO week. Weeks and days are
// sorted ascending. Entries with an invalid DateWorked are counted in Skipped
// and otherwise ignored; hours are summed as given.
func Summarize(entries []EntryData) Summary {
	days := make(map[string]*DayTotal)
	var skipped int

	for _, e := range entries {
		if !IsValidDate(e.DateWorked) {
			skipped++
			continue
		}
		d, ok := days[e.DateWorked]
		if !ok {
			d = &DayTotal{Date: e.DateWorked}
			days[e.DateWorked] = d
		}
		d.StandardHours = d.StandardHours.Add(e.StandardHours)
		d.OvertimeHours = d.OvertimeHours.Add(e.OvertimeHours)
		d.TotalHours = d.TotalHours.Add(e.TotalHours())
		d.Entries++
	}

	dates := make([]string, 0, len(days))
	for date := range days {
		dates = append(dates, date)
	}
	// YYYY-MM-DD sorts chronologically as a string.
	slices.Sort(dates)

	summary := Summary{Weeks: []WeekTotal{}, Skipped: skipped}
	var current *WeekTotal
	for _, date := range dates {
		t, _ := time.Parse(DateLayout, date)
		label := ISOWeekLabel(t)
		if current == nil || current.Week != label {
			summary.Weeks = append(summary.Weeks, WeekTotal{
				Week:      label,
				WeekStart: WeekStart(t).Format(DateLayout),
			})
			current = &summary.Weeks[len(summary.Weeks)-1]
		}
		d := days[date]
		current.Days = append(current.Days, *d)
		current.StandardHours = current.StandardHours.Add(d.StandardHours)
		current.OvertimeHours = current.OvertimeHours.Add(d.OvertimeHours)
		current.TotalHours = current.TotalHours.Add(d.TotalHours)
		summary.TotalHours = summary.TotalHours.Add(d.TotalHours)
	}

	return summary
}

// WeekStart returns the Monday of the ISO week containing t.
func WeekStart(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	monday := t.AddDate(0, 0, -(wd - 1))
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, t.Location())
}

// ISOWeekLabel returns a label like "2026-W09".
func ISOWeekLabel(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}
