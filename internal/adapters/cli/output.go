package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jsamuelsen11/timesheet-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/timesheet-service/internal/adapters/importer"
	"github.com/jsamuelsen11/timesheet-service/internal/domain/timesheet"
)

// JSON output uses the HTTP API's response shapes so that scripts can treat
// both the same way.

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func writeBatchResult(w io.Writer, format string, file importer.File, r timesheet.BatchValidationResult) error {
	if format == OutputJSON {
		return writeJSON(w, dto.ToImportValidationResponse(r, file.Row))
	}

	total := len(file.Entries)
	if r.Valid {
		_, err := fmt.Fprintf(w, "batch %s: all %d entries valid\n", r.BatchID, total)
		return err
	}

	if _, err := fmt.Fprintf(w, "batch %s: %d of %d entries invalid\n\n", r.BatchID, len(r.EntryErrors), total); err != nil {
		return err
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "INDEX\tROW\tERROR")
	for _, e := range r.EntryErrors {
		for _, msg := range e.Errors {
			fmt.Fprintf(tw, "%d\t%d\t%s\n", e.Index, file.Row(e.Index), msg)
		}
	}
	return tw.Flush()
}

func writeSummary(w io.Writer, format string, s timesheet.Summary) error {
	if format == OutputJSON {
		return writeJSON(w, dto.ToSummaryResponse(s))
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "WEEK\tDATE\tSTANDARD\tOVERTIME\tTOTAL\tENTRIES")
	for _, wk := range s.Weeks {
		for _, d := range wk.Days {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\n",
				wk.Week, d.Date, d.StandardHours, d.OvertimeHours, d.TotalHours, d.Entries)
		}
		fmt.Fprintf(tw, "%s\tweek of %s\t%s\t%s\t%s\t\n",
			wk.Week, wk.WeekStart, wk.StandardHours, wk.OvertimeHours, wk.TotalHours)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\ntotal %s hours\n", s.TotalHours); err != nil {
		return err
	}
	if s.Skipped > 0 {
		if _, err := fmt.Fprintf(w, "skipped %d entries with an invalid date\n", s.Skipped); err != nil {
			return err
		}
	}
	return nil
}

func writeDuplicateResult(w io.Writer, format string, r timesheet.DuplicateCheckResult) error {
	if format == OutputJSON {
		return writeJSON(w, dto.ToDuplicateCheckResponse(r))
	}

	if !r.Exists {
		_, err := fmt.Fprintln(w, "no existing entry")
		return err
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tHOURS\tSTATUS")
	fmt.Fprintf(tw, "%d\t%s\t%s\n", r.Entry.ID, r.Entry.Hours, r.Entry.Status)
	return tw.Flush()
}
