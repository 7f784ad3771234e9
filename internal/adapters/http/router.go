// Package http is the inbound REST adapter: routes, server lifecycle, and
// the problem+json answers for unknown routes.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/timesheet-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/timesheet-service/internal/adapters/http/handlers"
)

// NewRouter mounts the health endpoints and the timesheet entry API behind the
// given middleware, applied in order.
func NewRouter(
	timesheetHandler *handlers.TimesheetHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteProblem(w, r, dto.NewProblem(r, http.StatusNotFound, "no route for "+r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteProblem(w, r, dto.NewProblem(r, http.StatusMethodNotAllowed, r.Method+" is not supported here"))
	})

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1/timesheet-entries", func(r chi.Router) {
		r.Post("/validate", timesheetHandler.ValidateEntry)
		r.Post("/validate/batch", timesheetHandler.ValidateBatch)
		r.Post("/validate/import", timesheetHandler.ValidateImport)
		r.Get("/duplicates", timesheetHandler.CheckDuplicate)
		r.Post("/summary", timesheetHandler.Summarize)
	})

	return r
}
