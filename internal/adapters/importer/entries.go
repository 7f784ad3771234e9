package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jsamuelsen11/timesheet-service/internal/domain"
	"github.com/jsamuelsen11/timesheet-service/internal/domain/timesheet"
)

// Serial numbers outside this range are not treated as Excel dates
// (1982-10-04 to 2173-10-14).
const (
	minDateSerial = 30000
	maxDateSerial = 100000
)

// dateLayouts are the non-ISO date shapes accepted in imported files.
var dateLayouts = []string{
	"1/2/2006",
	"01/02/2006",
	"2006/01/02",
	"1/2/06",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// rowsToEntries converts a header row plus data rows. Blank rows are
// skipped. Row numbers are 1-based and count the header.
func rowsToEntries(rows [][]string) (File, error) {
	if len(rows) == 0 {
		return File{}, fileError("no header row")
	}

	index := make(map[column]int)
	for i, h := range rows[0] {
		if c, ok := lookupColumn(h); ok {
			if _, dup := index[c]; !dup {
				index[c] = i
			}
		}
	}
	if len(index) == 0 {
		return File{}, fileError("header row has no recognized columns")
	}

	f := File{
		Entries: make([]timesheet.EntryData, 0, len(rows)-1),
		Rows:    make([]int, 0, len(rows)-1),
	}
	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		var cells [numColumns]string
		for c, idx := range index {
			if idx < len(row) {
				cells[c] = strings.TrimSpace(row[idx])
			}
		}
		e, err := toEntry(cells)
		if err != nil {
			return File{}, rowError(fmt.Sprintf("row %d", i+2), err)
		}
		f.Entries = append(f.Entries, e)
		f.Rows = append(f.Rows, i+2)
	}
	return f, nil
}

// recordsToEntries converts decoded JSON or YAML objects.
func recordsToEntries(records []map[string]any) (File, error) {
	f := File{
		Entries: make([]timesheet.EntryData, 0, len(records)),
		Rows:    make([]int, 0, len(records)),
	}
	for i, rec := range records {
		var cells [numColumns]string
		for k, v := range rec {
			if c, ok := lookupColumn(k); ok {
				cells[c] = strings.TrimSpace(cellString(v))
			}
		}
		e, err := toEntry(cells)
		if err != nil {
			return File{}, rowError(fmt.Sprintf("entry %d", i), err)
		}
		f.Entries = append(f.Entries, e)
		f.Rows = append(f.Rows, i+1)
	}
	return f, nil
}

// cellError names the column whose value could not be read.
type cellError struct {
	col column
}

func (e cellError) Error() string { return e.col.String() + " " + domain.MsgInvalid }

func rowError(where string, err error) *domain.ValidationError {
	if ce, ok := err.(cellError); ok {
		return &domain.ValidationError{Fields: map[string]string{
			where + ": " + ce.col.String(): domain.MsgInvalid,
		}}
	}
	return &domain.ValidationError{Fields: map[string]string{where: err.Error()}}
}

func toEntry(cells [numColumns]string) (timesheet.EntryData, error) {
	standard, err := parseHours(cells[colStandardHours])
	if err != nil {
		return timesheet.EntryData{}, cellError{colStandardHours}
	}
	overtime, err := parseHours(cells[colOvertimeHours])
	if err != nil {
		return timesheet.EntryData{}, cellError{colOvertimeHours}
	}

	var entryID *int64
	if s := cells[colEntryID]; s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return timesheet.EntryData{}, cellError{colEntryID}
		}
		entryID = &id
	}

	return timesheet.EntryData{
		EmployeeID:    cells[colEmployeeID],
		DateWorked:    normalizeDate(cells[colDateWorked]),
		ProjectCode:   cells[colProjectCode],
		CostCode:      cells[colCostCode],
		StandardHours: standard,
		OvertimeHours: overtime,
		EntryID:       entryID,
	}, nil
}

func parseHours(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// normalizeDate rewrites Excel serials and common spreadsheet date shapes to
// YYYY-MM-DD. Anything else is returned unchanged for the validator to
// reject.
func normalizeDate(s string) string {
	if s == "" || timesheet.IsValidDate(s) {
		return s
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if serial >= minDateSerial && serial <= maxDateSerial {
			if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
				return t.Format(timesheet.DateLayout)
			}
		}
		return s
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(timesheet.DateLayout)
		}
	}
	return s
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
