package health

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers the liveness and readiness probes.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)
}
