package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/timesheet-service/internal/platform/logging"
)

// Logging puts a logger tagged with request_id and correlation_id on the
// request context, then logs the request's arrival and outcome. The outcome
// level follows the status class (see completionLevel).
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			began := time.Now()
			ctx := r.Context()

			reqLog := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, reqLog)
			where := []any{slog.String("method", r.Method), slog.String("path", r.URL.Path)}

			arrival := where
			if r.ContentLength > 0 {
				arrival = append(arrival[:len(arrival):len(arrival)], slog.Int64("content_length", r.ContentLength))
			}
			reqLog.InfoContext(ctx, "request started", arrival...)
			if reqLog.Enabled(ctx, slog.LevelDebug) {
				reqLog.DebugContext(ctx, "request headers", RedactHeaders(r.Header))
			}

			rw := record(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			reqLog.Log(ctx, completionLevel(rw.status), "request completed", append(where,
				slog.String("route", routePattern(r)),
				slog.Int("status", rw.status),
				slog.Int64("bytes", rw.bytes),
				slog.Duration("duration", time.Since(began)),
			)...)
		})
	}
}

// completionLevel is ERROR for 5xx, WARN for 4xx and INFO otherwise.
func completionLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	}
	return slog.LevelInfo
}
