package dto

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strconv"

	"github.com/jsamuelsen11/timesheet-service/internal/domain"
	"github.com/jsamuelsen11/timesheet-service/internal/domain/timesheet"
	"github.com/jsamuelsen11/timesheet-service/internal/platform/logging"
)

// RetryAfterSeconds is advertised on 503 responses. A failed duplicate
// lookup is usually a breaker that reopens within this window.
const RetryAfterSeconds = 5

const internalDetail = "internal error"

// ErrorResponse is an RFC 9457 Problem Details body.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one rejected request field.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// NewErrorResponse describes err for the client. A duplicate-check failure
// shows only its retry message and unclassified errors show a fixed detail,
// so neither leaks downstream error text.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := statusOf(err)
	resp := NewProblem(r, status, err.Error())

	var dupErr *timesheet.DuplicateCheckError
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &dupErr):
		resp.Detail = dupErr.Error()
	case errors.As(err, &verr):
		resp.Errors = fieldDetails(verr.Fields)
	case status == http.StatusInternalServerError:
		resp.Detail = internalDetail
	}
	return resp
}

// WriteErrorResponse writes err as application/problem+json. Server-side
// failures are logged with the full chain, since the body hides it.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)
	if resp.Status >= http.StatusInternalServerError {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "request failed",
			slog.Int("status", resp.Status),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
	WriteProblem(w, r, resp)
}

// WriteProblem writes resp with its own status. 503 responses advertise
// RetryAfterSeconds.
func WriteProblem(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/problem+json")
	if resp.Status == http.StatusServiceUnavailable {
		w.Header().Set("Retry-After", strconv.Itoa(RetryAfterSeconds))
	}
	w.WriteHeader(resp.Status)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encoding error response", slog.Any("error", err))
	}
}

// NewProblem builds a bare problem for status, without a domain error.
func NewProblem(r *http.Request, status int, detail string) ErrorResponse {
	return ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.RequestURI,
	}
}

// statusOf maps domain sentinels to HTTP statuses. A duplicate-check
// failure is always 503, whatever the downstream cause unwraps to, and
// ErrUnavailable is tested before the deadline so a timed-out lookup stays
// a 503 as well.
func statusOf(err error) int {
	var dupErr *timesheet.DuplicateCheckError
	switch {
	case errors.As(err, &dupErr):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// fieldDetails lists field errors ordered by location.
func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{Location: "body." + field, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int { return cmp.Compare(a.Location, b.Location) })
	return details
}
