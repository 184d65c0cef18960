package chat

import (
	"context"
	"encoding/json"
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
	usecase   ChatUsecase
	validator *validator.Validator
}

func NewHandler(usecase ChatUsecase, validator *validator.Validator) *Handler {
	return &Handler{
		usecase:   usecase,
		validator: validator,
	}
}

// GenerateAIResponse handles the chat completion endpoints - Streams model output for a given exam
func (h *Handler) GenerateAIResponse(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "examId")

	ctx := logger.AddFields(r.Context(),
		zap.String("exam_id", rawID),
		zap.String("action", "GenerateAIResponse"),
	)

	examID, err := h.validator.ParseExamID(rawID)
	if err != nil {
		ctxzap.Warn(ctx, "invalid exam id", zap.Error(err))
		response.Error(w, http.StatusNotFound, fmt.Sprintf("Hitta ingen tenta med ID: %s", rawID))
		return
	}

	var req entity.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			ctxzap.Warn(ctx, "request body too large", zap.Error(err))
			response.Error(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.ValidateChatRequest(&req); err != nil {
		ctxzap.Warn(ctx, "failed to validate request", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	stream, err := h.usecase.StreamCompletion(ctx, examID, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err, rawID)
		return
	}

	h.relay(ctx, w, stream)
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error, rawID string) {
	switch {
	case errors.Is(err, entity.ErrExamNotFound):
		ctxzap.Info(ctx, "exam not found", zap.Error(err))
		response.Error(w, http.StatusNotFound, fmt.Sprintf("Kunde inte hitta tenta med ID: %s", rawID))
	case errors.Is(err, entity.ErrDocumentUnavailable):
		ctxzap.Error(ctx, "document fetch failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "exam document could not be retrieved")
	case errors.Is(err, entity.ErrInvalidParameter):
		ctxzap.Warn(ctx, "invalid chat payload", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, entity.ErrModelInvocation):
		ctxzap.Error(ctx, "model invocation failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "model invocation failed")
	case errors.Is(err, entity.ErrUpstream):
		ctxzap.Error(ctx, "store failure", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, err.Error())
	default:
		ctxzap.Error(ctx, "model invocation setup failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
