package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/timesheet-service/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders renders headers as a "headers" log group, sorted by name.
// Values of logging.SensitiveHeaders are replaced with [REDACTED]; repeated
// values are comma-joined.
func RedactHeaders(headers http.Header) slog.Attr {
	attrs := make([]any, 0, len(headers))
	for _, name := range slices.Sorted(maps.Keys(headers)) {
		value := redacted
		if !logging.SensitiveHeaders[strings.ToLower(name)] {
			value = strings.Join(headers[name], ",")
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return slog.Group("headers", attrs...)
}
