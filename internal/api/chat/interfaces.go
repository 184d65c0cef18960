package chat

import (
	"context"

	"github.com/liutentor/tentor-backend/internal/entity"
)

// ChatUsecase assembles the prompt context and starts the model stream
type ChatUsecase interface {
	StreamCompletion(ctx context.Context, examID int64, req *entity.ChatRequest) (entity.ChunkStream, error)
}
