package handlers

import (
	"errors"
	"net/http"

	"github.com/jsamuelsen11/timesheet-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/timesheet-service/internal/adapters/importer"
	"github.com/jsamuelsen11/timesheet-service/internal/domain"
	"github.com/jsamuelsen11/timesheet-service/internal/domain/timesheet"
	"github.com/jsamuelsen11/timesheet-service/internal/ports"
)

// importFormField is the multipart field carrying an uploaded entries file.
const importFormField = "file"

// multipartOverhead allows for form boundaries and headers around the file.
const multipartOverhead = 1 << 20

// TimesheetHandler handles timesheet entry validation requests.
type TimesheetHandler struct {
	svc ports.TimesheetService
}

// NewTimesheetHandler creates a new TimesheetHandler with the given service port.
func NewTimesheetHandler(svc ports.TimesheetService) *TimesheetHandler {
	return &TimesheetHandler{svc: svc}
}

// ValidateEntry handles POST /api/v1/timesheet-entries/validate.
func (h *TimesheetHandler) ValidateEntry(w http.ResponseWriter, r *http.Request) {
	var req dto.EntryRequest
	if !bind(w, r, &req) {
		return
	}

	result, err := h.svc.ValidateEntry(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToValidationResponse(result))
}

// ValidateBatch handles POST /api/v1/timesheet-entries/validate/batch.
func (h *TimesheetHandler) ValidateBatch(w http.ResponseWriter, r *http.Request) {
	var req dto.EntryListRequest
	if !bind(w, r, &req) {
		return
	}

	result, err := h.svc.ValidateBatch(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToBatchValidationResponse(result))
}

// ValidateImport handles POST /api/v1/timesheet-entries/validate/import. The
// request is a multipart form whose "file" field holds a spreadsheet, CSV,
// JSON, or YAML file of entries.
func (h *TimesheetHandler) ValidateImport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, importer.MaxFileSize+multipartOverhead)

	file, header, err := r.FormFile(importFormField)
	if err != nil {
		msg := "is required"
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			msg = "is too large"
		}
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{importFormField: msg},
		})
		return
	}
	defer func() { _ = file.Close() }()

	imported, err := importer.Read(file, header.Filename)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	result, err := h.svc.ValidateBatch(r.Context(), imported.Entries)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToImportValidationResponse(result, imported.Row))
}

// CheckDuplicate handles GET /api/v1/timesheet-entries/duplicates.
func (h *TimesheetHandler) CheckDuplicate(w http.ResponseWriter, r *http.Request) {
	excludeID, err := parseOptionalID(r, "exclude_id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	q := r.URL.Query()
	key := timesheet.EntryKey{
		EmployeeID:  q.Get("employee_id"),
		DateWorked:  q.Get("date_worked"),
		ProjectCode: q.Get("project_code"),
		CostCode:    q.Get("cost_code"),
	}

	result, err := h.svc.CheckDuplicate(r.Context(), key, excludeID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToDuplicateCheckResponse(result))
}

// Summarize handles POST /api/v1/timesheet-entries/summary.
func (h *TimesheetHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req dto.EntryListRequest
	if !bind(w, r, &req) {
		return
	}

	summary := h.svc.Summarize(r.Context(), req.ToDomain())
	writeJSON(w, r, http.StatusOK, dto.ToSummaryResponse(summary))
}
