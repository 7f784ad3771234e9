// Package importer reads timesheet entries from uploaded files. Spreadsheets
// (xlsx, xlsm, xls) and CSV are read as a header row followed by one entry
// per row; JSON and YAML hold a list of entry objects, either at the top
// level or under an "entries" key.
package importer

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/jsamuelsen11/timesheet-service/internal/domain"
	"github.com/jsamuelsen11/timesheet-service/internal/domain/timesheet"
)

// MaxFileSize is the largest file ReadEntries accepts.
const MaxFileSize = 10 << 20

// maxRows bounds the rows read from a legacy xls workbook.
const maxRows = 100000

// Extensions returns the accepted file extensions.
func Extensions() []string {
	return []string{".xlsx", ".xlsm", ".xls", ".csv", ".json", ".yaml", ".yml"}
}

// File is a parsed entries file. Rows[i] is where Entries[i] came from: the
// 1-based sheet row (the header is row 1) for spreadsheets and CSV, or the
// 1-based record position for JSON and YAML. Blank sheet rows are skipped,
// so batch indexes and rows can differ.
type File struct {
	Entries []timesheet.EntryData
	Rows    []int
}

// Row returns the source row of the entry at batch index i, or 0.
func (f File) Row(i int) int {
	if i < 0 || i >= len(f.Rows) {
		return 0
	}
	return f.Rows[i]
}

// ReadEntries parses the file named filename from r and drops the row
// positions. See Read.
func ReadEntries(r io.Reader, filename string) ([]timesheet.EntryData, error) {
	f, err := Read(r, filename)
	return f.Entries, err
}

// Read parses the file named filename from r. The format is chosen by
// extension. Malformed content is reported as a *domain.ValidationError;
// rule checks on the entries themselves are left to the validator.
func Read(r io.Reader, filename string) (File, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return File{}, fmt.Errorf("reading %s: %w", filename, err)
	}
	if len(data) > MaxFileSize {
		return File{}, fileError(fmt.Sprintf("exceeds %d bytes", MaxFileSize))
	}

	var (
		rows    [][]string
		records []map[string]any
	)
	structured := false

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".xlsx", ".xlsm":
		rows, err = readWorkbookRows(bytes.NewReader(data))
	case ".xls":
		rows, err = readLegacyWorkbookRows(bytes.NewReader(data))
	case ".csv":
		rows, err = readCSVRows(bytes.NewReader(data))
	case ".json":
		structured = true
		records, err = decodeJSONRecords(data)
	case ".yaml", ".yml":
		structured = true
		records, err = decodeYAMLRecords(data)
	default:
		return File{}, fileError(fmt.Sprintf("unsupported format %q, want one of %s",
			ext, strings.Join(Extensions(), ", ")))
	}
	if err != nil {
		return File{}, err
	}

	if structured {
		return recordsToEntries(records)
	}
	return rowsToEntries(rows)
}

func fileError(msg string) *domain.ValidationError {
	return &domain.ValidationError{Fields: map[string]string{"file": msg}}
}
