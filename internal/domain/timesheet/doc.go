// Package timesheet holds the timesheet entry model and the pure validation
// rules applied to it: required fields, hour rules, and the weekly summary.
// Rules that need the entry store (duplicate detection) live in the
// application layer, which composes these functions with a ports.EntryStore.
package timesheet
