package middleware_test

import (
	"log/slog"
	"net/http"
	"testing"

	"github.com/jsamuelsen11/timesheet-service/internal/adapters/http/middleware"
)

func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	headers := http.Header{
		"X-Request-Id":        {"r-1"},
		"Authorization":       {"Bearer secret-token"},
		"Proxy-Authorization": {"Basic dXNlcjpwYXNz"},
		"X-Api-Key":           {"my-api-key-value"},
		"Cookie":              {"session=abc123"},
		"Set-Cookie":          {"session=abc123"},
		"Accept":              {"text/csv", "application/json"},
		"Content-Type":        {"multipart/form-data"},
	}

	got := middleware.RedactHeaders(headers)

	if got.Key != "headers" || got.Value.Kind() != slog.KindGroup {
		t.Fatalf("RedactHeaders() = %v, want a headers group", got)
	}

	want := []struct{ name, value string }{
		{"Accept", "text/csv,application/json"},
		{"Authorization", "[REDACTED]"},
		{"Content-Type", "multipart/form-data"},
		{"Cookie", "[REDACTED]"},
		{"Proxy-Authorization", "[REDACTED]"},
		{"Set-Cookie", "[REDACTED]"},
		{"X-Api-Key", "[REDACTED]"},
		{"X-Request-Id", "r-1"},
	}
	attrs := got.Value.Group()
	if len(attrs) != len(want) {
		t.Fatalf("len(attrs) = %d, want %d", len(attrs), len(want))
	}
	for i, w := range want {
		if attrs[i].Key != w.name || attrs[i].Value.String() != w.value {
			t.Errorf("attrs[%d] = %s=%q, want %s=%q", i, attrs[i].Key, attrs[i].Value.String(), w.name, w.value)
		}
	}
}

func TestRedactHeaders_Empty(t *testing.T) {
	t.Parallel()

	if n := len(middleware.RedactHeaders(http.Header{}).Value.Group()); n != 0 {
		t.Errorf("len(attrs) = %d, want 0", n)
	}
}
