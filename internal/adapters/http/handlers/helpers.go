package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jsamuelsen11/timesheet-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/timesheet-service/internal/domain"
	"github.com/jsamuelsen11/timesheet-service/internal/platform/logging"
)

// maxBodyBytes caps JSON request bodies. A batch at the default size limit
// needs well under a megabyte.
const maxBodyBytes = 4 << 20

// requestBody is a request DTO that checks its own shape.
type requestBody interface {
	Validate() error
}

// bind decodes the JSON body into dst and validates it. On failure it has
// already written the problem response and returns false.
func bind[T requestBody](w http.ResponseWriter, r *http.Request, dst T) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil {
		msg := "invalid JSON"
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			msg = "is too large"
		}
		err = &domain.ValidationError{Fields: map[string]string{"body": msg}}
	} else {
		err = dst.Validate()
	}

	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

// parseOptionalID reads an int64 query parameter; absent means nil.
func parseOptionalID(r *http.Request, param string) (*int64, error) {
	raw := r.URL.Query().Get(param)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, &domain.ValidationError{Fields: map[string]string{param: "must be a valid integer"}}
	}
	return &id, nil
}

// writeJSON sends v with status. The header is already out when encoding
// fails, so the failure is only logged.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encoding response",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
}
