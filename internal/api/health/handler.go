package health

import (
	"context"
	"net/http"
	"time"

	"github.com/liutentor/tentor-backend/internal/pkg/response"
)

// ReadinessProber reports whether the backing store answers queries.
type ReadinessProber interface {
	Ready(ctx context.Context) error
}

type Handler struct {
	prober  ReadinessProber
	started time.Time
}

func NewHandler(prober ReadinessProber) *Handler {
	return &Handler{
		prober:  prober,
		started: time.Now(),
	}
}

// Liveness handles GET /health - Process liveness with uptime
func (h *Handler) Liveness(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(h.started).Round(time.Second).String(),
	})
}

// Readiness handles GET /ready - Verifies the data store answers a probe query
func (h *Handler) Readiness(w http.ResponseWriter, r *http.Request) {
	if err := h.prober.Ready(r.Context()); err != nil {
		response.JSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":   "error",
			"database": "disconnected",
		})
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{
		"status":   "ok",
		"database": "connected",
	})
}
