package chat

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers the standalone completion route. Older
// clients call /chat/completion/{examId}; it serves the same handler as
// /exams/exam/{examId}/chat.
func RegisterRoutes(r chi.Router, h *Handler, middleware ...func(http.Handler) http.Handler) {
	r.Route("/chat", func(r chi.Router) {
		r.With(middleware...).Post("/completion/{examId}", h.GenerateAIResponse)
	})
}
