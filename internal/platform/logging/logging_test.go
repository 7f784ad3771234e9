package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/jsamuelsen11/timesheet-service/internal/platform/logging"
)

func TestNew_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level      string
		emitted    slog.Level
		wantOutput bool
	}{
		{level: "debug", emitted: slog.LevelDebug, wantOutput: true},
		{level: "DEBUG", emitted: slog.LevelDebug, wantOutput: true},
		{level: "info", emitted: slog.LevelDebug, wantOutput: false},
		{level: "info", emitted: slog.LevelInfo, wantOutput: true},
		{level: "Warn", emitted: slog.LevelInfo, wantOutput: false},
		{level: "warn", emitted: slog.LevelWarn, wantOutput: true},
		{level: "error", emitted: slog.LevelWarn, wantOutput: false},
		{level: "error", emitted: slog.LevelError, wantOutput: true},
		{level: "verbose", emitted: slog.LevelDebug, wantOutput: false},
		{level: "", emitted: slog.LevelInfo, wantOutput: true},
	}

	for _, tt := range tests {
		t.Run(tt.level+"/"+tt.emitted.String(), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New(tt.level, "json", &buf).Log(context.Background(), tt.emitted, "entry checked")

			if got := buf.Len() > 0; got != tt.wantOutput {
				t.Errorf("New(%q) emitted %s record = %v, want %v", tt.level, tt.emitted, got, tt.wantOutput)
			}
		})
	}
}

func TestNew_Formats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   []string
	}{
		{format: "json", want: []string{`"level":"INFO"`, `"msg":"batch validated"`, `"entries":3`}},
		{format: "text", want: []string{"level=INFO", `msg="batch validated"`, "entries=3"}},
		{format: "logfmt", want: []string{`"level":"INFO"`}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", tt.format, &buf).Info("batch validated", slog.Int("entries", 3))

			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output = %q, want %q", buf.String(), want)
				}
			}
		})
	}
}

func TestNew_SourceOnlyAtDebug(t *testing.T) {
	t.Parallel()

	for level, want := range map[string]bool{"debug": true, "info": false} {
		var buf bytes.Buffer
		logging.New(level, "json", &buf).Warn("x")

		if got := strings.Contains(buf.String(), `"source"`); got != want {
			t.Errorf("New(%q) source present = %v, want %v", level, got, want)
		}
	}
}

func TestNew_Redaction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		attr     slog.Attr
		secret   string
		redacted bool
	}{
		{name: "authorization header", attr: slog.String("authorization", "Bearer supersecret-token"), secret: "supersecret-token", redacted: true},
		{name: "password", attr: slog.String("password", "hunter2"), secret: "hunter2", redacted: true},
		{name: "oauth client secret", attr: slog.String("client_secret", "s3cr3t-value"), secret: "s3cr3t-value", redacted: true},
		{name: "bearer in free text", attr: slog.String("raw_header", "Bearer eyJhbGciOiJSUzI1NiJ9"), secret: "eyJhbGciOiJSUzI1NiJ9", redacted: true},
		{name: "inline api key", attr: slog.String("note", "retry with api_key=abc123"), secret: "abc123", redacted: true},
		{name: "employee id", attr: slog.String("employee_id", "E1001"), secret: "E1001", redacted: false},
		{name: "route", attr: slog.String("path", "/api/v1/timesheet-entries/validate"), secret: "/api/v1/timesheet-entries/validate", redacted: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", "json", &buf).Info("event", tt.attr)

			leaked := strings.Contains(buf.String(), tt.secret)
			if tt.redacted && leaked {
				t.Errorf("output = %q, want %q redacted", buf.String(), tt.secret)
			}
			if !tt.redacted && !leaked {
				t.Errorf("output = %q, want %q kept", buf.String(), tt.secret)
			}
		})
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	if got := logging.FromContext(context.Background()); got != slog.Default() {
		t.Error("FromContext without logger should return slog.Default()")
	}

	first := logging.New("info", "json", &bytes.Buffer{})
	second := logging.New("info", "json", &bytes.Buffer{})

	ctx := logging.WithLogger(context.Background(), first)
	if logging.FromContext(ctx) != first {
		t.Error("FromContext did not return the stored logger")
	}
	if logging.FromContext(logging.WithLogger(ctx, second)) != second {
		t.Error("inner WithLogger should shadow the outer logger")
	}
}

func TestOrDiscard(t *testing.T) {
	t.Parallel()

	if logging.OrDiscard(nil) == nil {
		t.Fatal("OrDiscard(nil) = nil, want discard logger")
	}

	logger := logging.New("info", "json", &bytes.Buffer{})
	if got := logging.OrDiscard(logger); got != logger {
		t.Error("OrDiscard(logger) returned a different logger")
	}
}
