package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/timesheet-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/timesheet-service/internal/platform/logging"
	"github.com/jsamuelsen11/timesheet-service/internal/ports"
)

// HealthHandler serves the liveness and readiness endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
}

func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness reports that the process is serving requests. It never consults
// the entry store.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.HealthResponse{Status: dto.HealthUp})
}

// Readiness runs every registered check and answers 503 when any fails.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp := dto.ToHealthResponse(h.registry.CheckAll(r.Context()))

	if resp.Status != dto.HealthReady {
		down := make([]string, 0, len(resp.Checks))
		for name, c := range resp.Checks {
			if c.Status == dto.HealthDown {
				down = append(down, name)
			}
		}
		logging.FromContext(r.Context()).WarnContext(r.Context(), "readiness check failed",
			slog.Any("down", down),
		)
		writeJSON(w, r, http.StatusServiceUnavailable, resp)
		return
	}

	writeJSON(w, r, http.StatusOK, resp)
}
