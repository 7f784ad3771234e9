package importer

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/jsamuelsen11/timesheet-service/internal/domain"
	"github.com/jsamuelsen11/timesheet-service/internal/domain/timesheet"
)

func workbook(t *testing.T, rows ...[]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("CoordinatesToCellName() error = %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("SetSheetRow() error = %v", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer() error = %v", err)
	}
	return buf.Bytes()
}

func assertEntry(t *testing.T, got timesheet.EntryData, employee, date, project, cost, standard, overtime string) {
	t.Helper()

	if got.EmployeeID != employee || got.DateWorked != date || got.ProjectCode != project || got.CostCode != cost {
		t.Errorf("entry = %s/%s/%s/%s, want %s/%s/%s/%s",
			got.EmployeeID, got.DateWorked, got.ProjectCode, got.CostCode, employee, date, project, cost)
	}
	if got.StandardHours.String() != standard {
		t.Errorf("StandardHours = %s, want %s", got.StandardHours, standard)
	}
	if got.OvertimeHours.String() != overtime {
		t.Errorf("OvertimeHours = %s, want %s", got.OvertimeHours, overtime)
	}
}

func TestReadEntries_XLSX(t *testing.T) {
	t.Parallel()

	data := workbook(t,
		[]any{"Employee ID", "Date", "Project", "Cost Code", "Hours", "OT"},
		[]any{"E1", 45659, "P1", "C1", 7.5, 0.25},
		[]any{nil, nil, nil, nil, nil, nil},
		[]any{"E2", "2025-01-03", "P2", "C2", 8, nil},
	)

	got, err := ReadEntries(bytes.NewReader(data), "week.XLSX")
	if err != nil {
		t.Fatalf("ReadEntries() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(got))
	}
	assertEntry(t, got[0], "E1", "2025-01-02", "P1", "C1", "7.5", "0.25")
	assertEntry(t, got[1], "E2", "2025-01-03", "P2", "C2", "8", "0")
}

func TestReadEntries_XLSX_BadHours(t *testing.T) {
	t.Parallel()

	data := workbook(t,
		[]any{"employee_id", "date_worked", "project_code", "cost_code", "standard_hours"},
		[]any{"E1", "2025-01-02", "P1", "C1", "eight"},
	)

	_, err := ReadEntries(bytes.NewReader(data), "week.xlsx")

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("ReadEntries() error = %v, want *domain.ValidationError", err)
	}
	if msg, ok := verr.Fields["row 2: standard_hours"]; !ok || msg != domain.MsgInvalid {
		t.Errorf("Fields = %v, want row 2: standard_hours %q", verr.Fields, domain.MsgInvalid)
	}
}

func TestReadEntries_CSV(t *testing.T) {
	t.Parallel()

	csv := "\ufeffemployee_id,date_worked,project_code,cost_code,standard_hours,overtime_hours,entry_id\n" +
		"E1,2025-01-02,P1,C1,8,0,\n" +
		",,,,,,\n" +
		"E1, 1/6/2025,P1,C1,7.75,1.5,42\n"

	got, err := ReadEntries(strings.NewReader(csv), "entries.csv")
	if err != nil {
		t.Fatalf("ReadEntries() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(got))
	}
	assertEntry(t, got[0], "E1", "2025-01-02", "P1", "C1", "8", "0")
	if got[0].EntryID != nil {
		t.Errorf("EntryID = %d, want nil", *got[0].EntryID)
	}
	assertEntry(t, got[1], "E1", "2025-01-06", "P1", "C1", "7.75", "1.5")
	if got[1].EntryID == nil || *got[1].EntryID != 42 {
		t.Errorf("EntryID = %v, want 42", got[1].EntryID)
	}
}

func TestRead_SourceRows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		body     string
		wantRows []int
	}{
		{
			name:     "csv skips blank rows",
			filename: "entries.csv",
			body:     "employee_id,standard_hours\nE1,8\n,\nE2,8\n\nE3,8\n",
			wantRows: []int{2, 4, 6},
		},
		{
			name:     "json counts records",
			filename: "entries.json",
			body:     `[{"employee_id":"E1"},{"employee_id":"E2"}]`,
			wantRows: []int{1, 2},
		},
		{
			name:     "empty json list",
			filename: "entries.json",
			body:     `{"entries":[]}`,
			wantRows: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Read(strings.NewReader(tt.body), tt.filename)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !slices.Equal(got.Rows, tt.wantRows) {
				t.Errorf("Rows = %v, want %v", got.Rows, tt.wantRows)
			}
			if len(got.Entries) != len(got.Rows) {
				t.Errorf("%d entries for %d rows", len(got.Entries), len(got.Rows))
			}
			if got.Row(len(got.Rows)) != 0 || got.Row(-1) != 0 {
				t.Error("Row() out of range should be 0")
			}
		})
	}
}

func TestReadEntries_CSV_InvalidDateKept(t *testing.T) {
	t.Parallel()

	csv := "employee_id,date_worked,project_code,cost_code\nE1,2025-13-40,P1,C1\n"

	got, err := ReadEntries(strings.NewReader(csv), "entries.csv")
	if err != nil {
		t.Fatalf("ReadEntries() error = %v", err)
	}
	if got[0].DateWorked != "2025-13-40" {
		t.Errorf("DateWorked = %q, want it unchanged", got[0].DateWorked)
	}
	if !got[0].StandardHours.IsZero() || !got[0].OvertimeHours.IsZero() {
		t.Errorf("missing hour columns should read as zero, got %s/%s", got[0].StandardHours, got[0].OvertimeHours)
	}
}

func TestReadEntries_JSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{
			name: "top-level list",
			body: `[{"employeeId":"E1","dateWorked":"2025-01-02","projectCode":"P1","costCode":"C1","standardHours":0.1,"overtimeHours":"0.2"}]`,
		},
		{
			name: "entries object",
			body: `{"entries":[{"employee_id":"E1","date_worked":"2025-01-02","project_code":"P1","cost_code":"C1","standard_hours":0.1,"overtime_hours":0.2}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ReadEntries(strings.NewReader(tt.body), "entries.json")
			if err != nil {
				t.Fatalf("ReadEntries() error = %v", err)
			}
			if len(got) != 1 {
				t.Fatalf("len(entries) = %d, want 1", len(got))
			}
			assertEntry(t, got[0], "E1", "2025-01-02", "P1", "C1", "0.1", "0.2")
			if got[0].TotalHours().String() != "0.3" {
				t.Errorf("TotalHours = %s, want exactly 0.3", got[0].TotalHours())
			}
		})
	}
}

func TestReadEntries_YAML(t *testing.T) {
	t.Parallel()

	body := `entries:
  - employee_id: E1
    date_worked: 2025-01-02
    project_code: P1
    cost_code: "03-300"
    standard_hours: 7.75
    overtime_hours: 1
    entry_id: 9
`

	got, err := ReadEntries(strings.NewReader(body), "entries.yml")
	if err != nil {
		t.Fatalf("ReadEntries() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(got))
	}
	assertEntry(t, got[0], "E1", "2025-01-02", "P1", "03-300", "7.75", "1")
	if got[0].EntryID == nil || *got[0].EntryID != 9 {
		t.Errorf("EntryID = %v, want 9", got[0].EntryID)
	}
}

func TestReadEntries_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		filename  string
		body      string
		wantField string
	}{
		{name: "unsupported extension", filename: "entries.txt", body: "x", wantField: "file"},
		{name: "not a workbook", filename: "entries.xlsx", body: "plain text", wantField: "file"},
		{name: "not a legacy workbook", filename: "entries.xls", body: "plain text", wantField: "file"},
		{name: "empty csv", filename: "entries.csv", body: "", wantField: "file"},
		{name: "unknown headers", filename: "entries.csv", body: "a,b\n1,2\n", wantField: "file"},
		{name: "bad overtime", filename: "entries.csv", body: "employee_id,overtime_hours\nE1,x\n", wantField: "row 2: overtime_hours"},
		{name: "bad entry id", filename: "entries.csv", body: "employee_id,entry_id\nE1,abc\n", wantField: "row 2: entry_id"},
		{name: "invalid json", filename: "entries.json", body: "{", wantField: "file"},
		{name: "json scalar", filename: "entries.json", body: "42", wantField: "file"},
		{name: "json object without entries", filename: "entries.json", body: `{"rows":[]}`, wantField: "file"},
		{name: "json non-object entry", filename: "entries.json", body: `[1]`, wantField: "file"},
		{name: "bad json hours", filename: "entries.json", body: `[{"standard_hours":"lots"}]`, wantField: "entry 0: standard_hours"},
		{name: "invalid yaml", filename: "entries.yaml", body: "entries: [", wantField: "file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ReadEntries(strings.NewReader(tt.body), tt.filename)

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("ReadEntries() error = %v, want *domain.ValidationError", err)
			}
			if _, ok := verr.Fields[tt.wantField]; !ok {
				t.Errorf("Fields = %v, want key %q", verr.Fields, tt.wantField)
			}
		})
	}
}

func TestReadEntries_TooLarge(t *testing.T) {
	t.Parallel()

	big := bytes.Repeat([]byte("a"), MaxFileSize+1)
	_, err := ReadEntries(bytes.NewReader(big), "entries.csv")
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("ReadEntries() error = %v, want ErrValidation", err)
	}
}

func TestNormalizeHeader(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"Employee ID":     "employee_id",
		"employee-id":     "employee_id",
		"employeeId":      "employee_id",
		"  Cost Code ":    "cost_code",
		"OT":              "ot",
		"standard_hours":  "standard_hours",
		"Overtime  Hours": "overtime_hours",
	}

	for in, want := range tests {
		if got := normalizeHeader(in); got != want {
			t.Errorf("normalizeHeader(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeDate(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"2025-01-02":          "2025-01-02",
		"45659":               "2025-01-02",
		"45659.5":             "2025-01-02",
		"1/2/2025":            "2025-01-02",
		"2025/01/02":          "2025-01-02",
		"2025-01-02 08:00:00": "2025-01-02",
		"12":                  "12",
		"2025-13-40":          "2025-13-40",
		"":                    "",
		"next tuesday":        "next tuesday",
	}

	for in, want := range tests {
		if got := normalizeDate(in); got != want {
			t.Errorf("normalizeDate(%q) = %q, want %q", in, got, want)
		}
	}
}
