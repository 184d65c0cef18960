package exam

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/liutentor/tentor-backend/internal/entity"
	"github.com/liutentor/tentor-backend/internal/pkg/logger"
	"github.com/liutentor/tentor-backend/internal/pkg/response"
	"github.com/liutentor/tentor-backend/internal/pkg/validator"
	"go.uber.org/zap"
)

type Handler struct {
	usecase   ExamUsecase
	validator *validator.Validator
}

func NewHandler(usecase ExamUsecase, validator *validator.Validator) *Handler {
	return &Handler{
		usecase:   usecase,
		validator: validator,
	}
}

// GetCourseExams handles GET /exams/{courseCode} - List course exams with statistics
func (h *Handler) GetCourseExams(w http.ResponseWriter, r *http.Request) {
	courseCode := chi.URLParam(r, "courseCode")

	ctx := logger.AddFields(r.Context(),
		zap.String("course_code", courseCode),
		zap.String("action", "GetCourseExams"),
	)

	if err := h.validator.ValidateCourseCode(courseCode); err != nil {
		ctxzap.Warn(ctx, "invalid course code", zap.Error(err))
		response.Error(w, http.StatusNotFound, fmt.Sprintf("Hittade inga tentor för kurskoden: %s", courseCode))
		return
	}

	listing, err := h.usecase.GetCourseExams(ctx, courseCode)
	if err != nil {
		h.handleUsecaseError(ctx, w, err, courseCode)
		return
	}

	response.Success(w, toCourseExamsDTO(listing))
}

// GetExamWithSolutions handles GET /exams/exam/{examId} - Single exam with nested solutions
func (h *Handler) GetExamWithSolutions(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "examId")

	ctx := logger.AddFields(r.Context(),
		zap.String("exam_id", rawID),
		zap.String("action", "GetExamWithSolutions"),
	)

	examID, err := h.validator.ParseExamID(rawID)
	if err != nil {
		ctxzap.Warn(ctx, "invalid exam id", zap.Error(err))
		response.Error(w, http.StatusNotFound, fmt.Sprintf("Kunde inte hitta tenta med ID: %s", rawID))
		return
	}

	result, err := h.usecase.GetExamWithSolutions(ctx, examID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err, rawID)
		return
	}

	response.Success(w, toExamWithSolutionsDTO(result))
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error, subject string) {
	switch {
	case errors.Is(err, entity.ErrExamNotFound):
		ctxzap.Info(ctx, "exam not found", zap.Error(err))
		response.Error(w, http.StatusNotFound, fmt.Sprintf("Kunde inte hitta tenta med ID: %s", subject))
	case errors.Is(err, entity.ErrCourseNotFound):
		ctxzap.Info(ctx, "course not found", zap.Error(err))
		response.Error(w, http.StatusNotFound, fmt.Sprintf("Hittade inga tentor för kurskoden: %s", subject))
	case errors.Is(err, entity.ErrUpstream):
		ctxzap.Error(ctx, "store failure", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, err.Error())
	default:
		ctxzap.Error(ctx, "exam lookup failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
