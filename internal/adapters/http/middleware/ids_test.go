package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/jsamuelsen11/timesheet-service/internal/adapters/http/middleware"
)

var uuidPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// serveIDs runs RequestID then CorrelationID and reports what the handler saw.
func serveIDs(t *testing.T, reqID, corrID string) (gotReq, gotCorr string, rec *httptest.ResponseRecorder) {
	t.Helper()

	handler := middleware.RequestID()(middleware.CorrelationID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		gotReq = middleware.RequestIDFromContext(r.Context())
		gotCorr = middleware.CorrelationIDFromContext(r.Context())
	})))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/timesheet-entries/validate", http.NoBody)
	if reqID != "" {
		req.Header.Set("X-Request-ID", reqID)
	}
	if corrID != "" {
		req.Header.Set("X-Correlation-ID", corrID)
	}
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return gotReq, gotCorr, rec
}

func TestIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		inReq    string
		inCorr   string
		wantReq  string // "uuid" means a freshly minted UUIDv4
		wantCorr string // "req" means equal to the request ID
	}{
		{name: "both minted", wantReq: "uuid", wantCorr: "req"},
		{name: "request id reused", inReq: "incoming-123", wantReq: "incoming-123", wantCorr: "req"},
		{name: "both reused", inReq: "incoming-123", inCorr: "corr-abc", wantReq: "incoming-123", wantCorr: "corr-abc"},
		{name: "trace style id kept", inReq: "00-4bf92f3577b34da6.b7ad6b7169203331:01", wantReq: "00-4bf92f3577b34da6.b7ad6b7169203331:01", wantCorr: "req"},
		{name: "malformed request id replaced", inReq: "bad id\r\nX-Admin: 1", wantReq: "uuid", wantCorr: "req"},
		{name: "oversized request id replaced", inReq: strings.Repeat("a", 129), wantReq: "uuid", wantCorr: "req"},
		{name: "malformed correlation id falls back", inReq: "incoming-123", inCorr: "<script>", wantReq: "incoming-123", wantCorr: "req"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gotReq, gotCorr, rec := serveIDs(t, tt.inReq, tt.inCorr)

			switch tt.wantReq {
			case "uuid":
				if !uuidPattern.MatchString(gotReq) {
					t.Errorf("request ID = %q, want a UUIDv4", gotReq)
				}
			default:
				if gotReq != tt.wantReq {
					t.Errorf("request ID = %q, want %q", gotReq, tt.wantReq)
				}
			}

			wantCorr := tt.wantCorr
			if wantCorr == "req" {
				wantCorr = gotReq
			}
			if gotCorr != wantCorr {
				t.Errorf("correlation ID = %q, want %q", gotCorr, wantCorr)
			}

			if h := rec.Header().Get("X-Request-ID"); h != gotReq {
				t.Errorf("response X-Request-ID = %q, want %q", h, gotReq)
			}
			if h := rec.Header().Get("X-Correlation-ID"); h != gotCorr {
				t.Errorf("response X-Correlation-ID = %q, want %q", h, gotCorr)
			}
		})
	}
}

func TestIDsFromContext_Empty(t *testing.T) {
	t.Parallel()

	if id := middleware.RequestIDFromContext(context.Background()); id != "" {
		t.Errorf("RequestIDFromContext = %q, want empty", id)
	}
	if id := middleware.CorrelationIDFromContext(context.Background()); id != "" {
		t.Errorf("CorrelationIDFromContext = %q, want empty", id)
	}
}

func TestWithIDs_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := middleware.WithCorrelationID(middleware.WithRequestID(context.Background(), "req-1"), "corr-1")

	if got := middleware.RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("RequestIDFromContext = %q, want %q", got, "req-1")
	}
	if got := middleware.CorrelationIDFromContext(ctx); got != "corr-1" {
		t.Errorf("CorrelationIDFromContext = %q, want %q", got, "corr-1")
	}
}
