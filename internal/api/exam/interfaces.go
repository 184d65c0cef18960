package exam

import (
	"context"

	"github.com/liutentor/tentor-backend/internal/entity"
)

// ExamUsecase resolves exam archive lookups
type ExamUsecase interface {
	GetCourseExams(ctx context.Context, courseCode string) (*entity.CourseExams, error)
	GetExamWithSolutions(ctx context.Context, examID int64) (*entity.ExamWithSolutions, error)
}
