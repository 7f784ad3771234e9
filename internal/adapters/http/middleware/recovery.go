package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/timesheet-service/internal/adapters/http/dto"
)

// Recovery logs a handler panic with its stack. If the response has not
// started it answers with a generic 500 problem; the panic value stays in
// the log. http.ErrAbortHandler passes through to net/http.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := record(w)
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
				)
				if rw.started {
					return
				}
				dto.WriteErrorResponse(rw, r, fmt.Errorf("handler panic: %v", v))
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
