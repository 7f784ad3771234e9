package middleware_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/jsamuelsen11/timesheet-service/internal/adapters/http/middleware"
	appctx "github.com/jsamuelsen11/timesheet-service/internal/app/context"
	"github.com/jsamuelsen11/timesheet-service/internal/platform/logging"
)

func TestAppContext_MemoSharedWithinRequest(t *testing.T) {
	t.Parallel()

	var fetches atomic.Int32
	lookup := func(context.Context) (int, error) {
		fetches.Add(1)
		return 42, nil
	}

	handler := middleware.AppContext()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		rc := appctx.FromContext(r.Context())
		if rc == nil {
			t.Fatal("no RequestContext on request")
		}
		for range 2 {
			if _, err := appctx.GetOrFetch(r.Context(), rc, "entry:E1/2025-01-06/P1/C1", lookup); err != nil {
				t.Errorf("GetOrFetch() error = %v", err)
			}
		}
	}))

	for range 2 {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/validate", http.NoBody))
	}

	// One fetch per request: memoized within, never across.
	if got := fetches.Load(); got != 2 {
		t.Errorf("fetches = %d, want 2", got)
	}
}

func TestAppContext_LogsMemoSize(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	handler := middleware.AppContext()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		rc := appctx.FromContext(r.Context())
		for _, key := range []string{"a", "b"} {
			_, _ = appctx.GetOrFetch(r.Context(), rc, key, func(context.Context) (string, error) { return key, nil })
		}
	}))

	req := httptest.NewRequest(http.MethodPost, "/validate/batch", http.NoBody)
	req = req.WithContext(logging.WithLogger(req.Context(), logger))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !strings.Contains(buf.String(), "keys=2") {
		t.Errorf("log = %q, want keys=2", buf.String())
	}
}

func TestAppContext_QuietWhenNothingMemoized(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	handler := middleware.AppContext()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/health/live", http.NoBody)
	req = req.WithContext(logging.WithLogger(req.Context(), logger))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if buf.Len() != 0 {
		t.Errorf("log = %q, want empty", buf.String())
	}
}
