package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// readWorkbookRows returns the raw cell values of the first sheet of an
// OOXML workbook. Dates come back as serial numbers.
func readWorkbookRows(r io.Reader) ([][]string, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fileError(fmt.Sprintf("not a readable workbook: %v", err))
	}
	defer func() { _ = file.Close() }()

	sheet := file.GetSheetName(0)
	if sheet == "" {
		return nil, fileError("no worksheet found")
	}

	rows, err := file.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	return rows, nil
}

// readLegacyWorkbookRows reads a BIFF (.xls) workbook with a single sheet.
func readLegacyWorkbookRows(r io.ReadSeeker) ([][]string, error) {
	workbook, err := xls.OpenReader(r, "utf-8")
	if err != nil {
		return nil, fileError(fmt.Sprintf("not a readable workbook: %v", err))
	}
	switch n := workbook.NumSheets(); {
	case n == 0:
		return nil, fileError("no worksheet found")
	case n > 1:
		return nil, fileError("multiple worksheets found, upload a file with a single sheet")
	}
	return workbook.ReadAllCells(maxRows), nil
}

// readCSVRows keeps one slot per line after the header, so the row numbers
// reported for entries match the file even though encoding/csv drops empty
// lines. A record spanning several lines takes the number of its first.
func readCSVRows(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var rows [][]string
	headerLine := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, fileError(fmt.Sprintf("line %d: %v", perr.Line, perr.Err))
			}
			return nil, fmt.Errorf("reading csv: %w", err)
		}

		line, _ := cr.FieldPos(0)
		if rows == nil {
			headerLine = line
			if len(rec) > 0 {
				rec[0] = strings.TrimPrefix(rec[0], "\ufeff")
			}
		}
		for len(rows) < line-headerLine {
			rows = append(rows, nil)
		}
		rows = append(rows, rec)
	}
	return rows, nil
}
