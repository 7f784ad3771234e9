package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/timesheet-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/timesheet-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/timesheet-service/mocks"
)

func TestLiveness_NeverConsultsRegistry(t *testing.T) {
	t.Parallel()

	// No expectations: any registry call fails the test.
	h := handlers.NewHealthHandler(mocks.NewMockHealthRegistry(t))

	rec := httptest.NewRecorder()
	h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	requireStatus(t, rec, http.StatusOK)

	got := decodeJSON[dto.HealthResponse](t, rec)
	if got.Status != dto.HealthUp {
		t.Errorf("status = %q, want %q", got.Status, dto.HealthUp)
	}
	if got.Checks != nil {
		t.Errorf("checks = %v, want omitted", got.Checks)
	}
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		results    map[string]error
		wantCode   int
		wantStatus string
		wantChecks map[string]dto.HealthCheckResponse
	}{
		{
			name:       "no checkers is ready",
			results:    map[string]error{},
			wantCode:   http.StatusOK,
			wantStatus: dto.HealthReady,
			wantChecks: nil,
		},
		{
			name:       "entry store up",
			results:    map[string]error{"timesheet-entries": nil},
			wantCode:   http.StatusOK,
			wantStatus: dto.HealthReady,
			wantChecks: map[string]dto.HealthCheckResponse{
				"timesheet-entries": {Status: dto.HealthUp},
			},
		},
		{
			name: "one check down",
			results: map[string]error{
				"timesheet-entries": errors.New("circuit breaker open"),
				"seed-file":         nil,
			},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: dto.HealthNotReady,
			wantChecks: map[string]dto.HealthCheckResponse{
				"timesheet-entries": {Status: dto.HealthDown, Error: "circuit breaker open"},
				"seed-file":         {Status: dto.HealthUp},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.results)

			rec := httptest.NewRecorder()
			handlers.NewHealthHandler(registry).Readiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			requireStatus(t, rec, tt.wantCode)

			got := decodeJSON[dto.HealthResponse](t, rec)
			if got.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", got.Status, tt.wantStatus)
			}
			if len(got.Checks) != len(tt.wantChecks) {
				t.Fatalf("checks = %v, want %v", got.Checks, tt.wantChecks)
			}
			for name, want := range tt.wantChecks {
				if got.Checks[name] != want {
					t.Errorf("checks[%s] = %+v, want %+v", name, got.Checks[name], want)
				}
			}
		})
	}
}
