package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/timesheet-service/internal/domain/timesheet"
)

// validEntry is an eight-hour day that passes every rule.
func validEntry() timesheet.EntryData {
	return timesheet.EntryData{
		EmployeeID:    "E1",
		DateWorked:    "2025-01-02",
		ProjectCode:   "P1",
		CostCode:      "C1",
		StandardHours: decimal.NewFromInt(8),
		OvertimeHours: decimal.Zero,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshalling request body: %v", err)
	}
	return bytes.NewBuffer(b)
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshalling response %q: %v", rec.Body.String(), err)
	}
	return out
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
