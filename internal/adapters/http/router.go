// Package http provides the inbound HTTP adapter of the story server,
// including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/game-narrative-script/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all story server routes registered.
// Middleware is applied globally in the order given, inside the chi mux so
// that route patterns are visible to it.
func NewRouter(
	actHandler *handlers.ActHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// Read-only story API.
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/acts", actHandler.ListActs)
		r.Get("/acts/{name}", actHandler.GetAct)
	})

	return r
}
