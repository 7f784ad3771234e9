// Package logging builds the service's slog loggers and carries them on the
// context. Request middleware stores a logger already tagged with
// request_id and correlation_id, so callers should prefer FromContext:
//
//	logging.FromContext(ctx).ErrorContext(ctx, "duplicate check failed",
//	    slog.String("operation", "CheckDuplicate"),
//	    slog.String("employee_id", key.EmployeeID),
//	    slog.Any("error", err),
//	)
//
// Error records name the operation and the entry they concern, and pass the
// whole error chain through slog.Any.
package logging

import (
	"context"
	"io"
	"log/slog"
)

type contextKey struct{}

// New returns a logger writing to w. Level accepts the slog level names in
// any case ("debug", "WARN") and falls back to info. Format "text" selects
// the text handler; anything else writes JSON. Debug loggers add source
// locations. Every handler passes attributes through the masq redactor.
func New(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: redactAttr(),
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// OrDiscard lets constructors accept a nil logger.
func OrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return Discard()
	}
	return logger
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
