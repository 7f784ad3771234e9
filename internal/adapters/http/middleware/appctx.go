package middleware

import (
	"log/slog"
	"net/http"

	appctx "github.com/jsamuelsen11/timesheet-service/internal/app/context"
	"github.com/jsamuelsen11/timesheet-service/internal/platform/logging"
)

// AppContext attaches a fresh duplicate-lookup memo to every request, so two
// entries in one batch that share a key hit the entry store once. It must
// run after CorrelationID so the memo's embedded context carries the IDs.
func AppContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc := appctx.New(r.Context())
			next.ServeHTTP(w, r.WithContext(appctx.WithRequestContext(r.Context(), rc)))

			if n := rc.Len(); n > 0 {
				logging.FromContext(r.Context()).DebugContext(r.Context(), "duplicate lookups memoized",
					slog.Int("keys", n),
				)
			}
		})
	}
}
