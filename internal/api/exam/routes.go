package exam

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chatapi "github.com/liutentor/tentor-backend/internal/api/chat"
)

// RegisterRoutes registers exam archive routes. The chat handler is
// mounted here as well since /exams/exam/{examId}/chat shares the
// resource path.
func RegisterRoutes(r chi.Router, h *Handler, chatHandler *chatapi.Handler, chatMiddleware ...func(http.Handler) http.Handler) {
	r.Route("/exams", func(r chi.Router) {
		r.Get("/{courseCode}", h.GetCourseExams)
		r.Get("/exam/{examId}", h.GetExamWithSolutions)
		r.With(chatMiddleware...).Post("/exam/{examId}/chat", chatHandler.GenerateAIResponse)
	})
}
