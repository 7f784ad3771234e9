package importer

import (
	"strings"
)

// column is a recognized entry attribute.
type column int

const (
	colEmployeeID column = iota
	colDateWorked
	colProjectCode
	colCostCode
	colStandardHours
	colOvertimeHours
	colEntryID
	numColumns
)

var columnNames = [numColumns]string{
	colEmployeeID:    "employee_id",
	colDateWorked:    "date_worked",
	colProjectCode:   "project_code",
	colCostCode:      "cost_code",
	colStandardHours: "standard_hours",
	colOvertimeHours: "overtime_hours",
	colEntryID:       "entry_id",
}

func (c column) String() string { return columnNames[c] }

// headerAliases maps normalized header text to a column. Keys are lower case
// with spaces, dashes, and camel-case boundaries collapsed to underscores.
var headerAliases = map[string]column{
	"employee_id":     colEmployeeID,
	"employee":        colEmployeeID,
	"employee_number": colEmployeeID,
	"emp_id":          colEmployeeID,
	"date_worked":     colDateWorked,
	"date":            colDateWorked,
	"work_date":       colDateWorked,
	"project_code":    colProjectCode,
	"project":         colProjectCode,
	"job":             colProjectCode,
	"cost_code":       colCostCode,
	"cost":            colCostCode,
	"standard_hours":  colStandardHours,
	"hours":           colStandardHours,
	"regular_hours":   colStandardHours,
	"st":              colStandardHours,
	"overtime_hours":  colOvertimeHours,
	"overtime":        colOvertimeHours,
	"ot":              colOvertimeHours,
	"entry_id":        colEntryID,
	"id":              colEntryID,
}

// lookupColumn resolves a header cell or object key to a column.
func lookupColumn(header string) (column, bool) {
	c, ok := headerAliases[normalizeHeader(header)]
	return c, ok
}

// normalizeHeader lower-cases header and joins its words with underscores,
// so that "Employee ID", "employee-id", and "employeeId" all become
// "employee_id".
func normalizeHeader(header string) string {
	var b strings.Builder
	prevLower := false
	pendingSep := false
	for _, r := range strings.TrimSpace(header) {
		switch {
		case r == ' ' || r == '-' || r == '_' || r == '.':
			pendingSep = b.Len() > 0
			prevLower = false
			continue
		case r >= 'A' && r <= 'Z':
			if prevLower {
				pendingSep = true
			}
			r += 'a' - 'A'
			prevLower = false
		default:
			prevLower = r >= 'a' && r <= 'z' || r >= '0' && r <= '9'
		}
		if pendingSep {
			b.WriteByte('_')
			pendingSep = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
