// Package acl implements the Anti-Corruption Layer between the downstream
// timesheet entries API and the timesheet domain. Wire types and their
// translators live in the acl/entry subpackage; the client, the request
// lifecycle, and the shared HTTP error mapping live here.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/timesheet-service/internal/domain"
)

// maxProblemBytes caps how much of an error body is decoded.
const maxProblemBytes = 1 << 20

// problemDetail is the RFC 7807 body the entries API sends on failure.
type problemDetail struct {
	Detail string         `json:"detail"`
	Errors []problemField `json:"errors"`
}

type problemField struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// statusErrors maps downstream statuses onto domain sentinels. 429 counts as
// unavailable so that a throttled entries API surfaces as a retryable
// duplicate-check failure rather than a client error.
var statusErrors = map[int]error{
	http.StatusNotFound:            domain.ErrNotFound,
	http.StatusBadRequest:          domain.ErrValidation,
	http.StatusUnprocessableEntity: domain.ErrValidation,
	http.StatusConflict:            domain.ErrConflict,
	http.StatusUnauthorized:        domain.ErrForbidden,
	http.StatusForbidden:           domain.ErrForbidden,
	http.StatusTooManyRequests:     domain.ErrUnavailable,
}

// TranslateHTTPError converts a non-2xx entries API response into a domain
// error. Field-level problems on 400/422 become a *domain.ValidationError.
func TranslateHTTPError(resp *http.Response) error {
	pd := readProblem(resp)

	detail := pd.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	sentinel, ok := statusErrors[resp.StatusCode]
	if !ok && resp.StatusCode >= http.StatusInternalServerError {
		sentinel, ok = domain.ErrUnavailable, true
	}
	if !ok {
		return fmt.Errorf("entries API: unexpected status %d: %s", resp.StatusCode, detail)
	}

	if sentinel == domain.ErrValidation && len(pd.Errors) > 0 {
		return fieldErrors(pd.Errors)
	}
	return fmt.Errorf("entries API: %s: %w", detail, sentinel)
}

// readProblem decodes an application/problem+json body. Any other body, or
// one that fails to decode, yields the zero value.
func readProblem(resp *http.Response) problemDetail {
	var pd problemDetail
	if resp.Body == nil || !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/problem+json") {
		return pd
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxProblemBytes))
	if err != nil {
		return pd
	}
	if err := json.Unmarshal(raw, &pd); err != nil {
		return problemDetail{}
	}
	return pd
}

// fieldErrors keys messages by bare field name; the API reports locations
// as "body.<field>" or "query.<param>".
func fieldErrors(problems []problemField) *domain.ValidationError {
	fields := make(map[string]string, len(problems))
	for _, p := range problems {
		name := p.Location
		for _, prefix := range []string{"body.", "query."} {
			name = strings.TrimPrefix(name, prefix)
		}
		fields[name] = p.Message
	}
	return &domain.ValidationError{Fields: fields}
}
