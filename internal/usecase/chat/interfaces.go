package chat

import (
	"context"

	"github.com/liutentor/tentor-backend/internal/entity"
)

// ExamRepository resolves exam records
type ExamRepository interface {
	GetExam(ctx context.Context, id int64) (*entity.Exam, error)
}

// SolutionRepository resolves the answer key of an exam
type SolutionRepository interface {
	GetFirstByExam(ctx context.Context, examID int64) (*entity.Solution, error)
}

// DocumentFetcher resolves a document locator to content or a
// reference; implementations decide which form they return.
type DocumentFetcher interface {
	FetchDocument(ctx context.Context, locator string) (*entity.Document, error)
}

// ModelConnector issues a model invocation for an assembled context
type ModelConnector interface {
	StreamCompletion(ctx context.Context, pc *entity.PromptContext) (entity.ChunkStream, error)
}
