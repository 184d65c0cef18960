package exam

import (
	"context"

	"github.com/liutentor/tentor-backend/internal/entity"
)

// ExamRepository lists and resolves exam records
type ExamRepository interface {
	GetExam(ctx context.Context, id int64) (*entity.Exam, error)
	ListByCourse(ctx context.Context, courseCode string) ([]*entity.Exam, error)
	Ping(ctx context.Context) error
}

// SolutionRepository lists solution rows for an exam
type SolutionRepository interface {
	ListByExam(ctx context.Context, examID int64) ([]*entity.Solution, error)
}

// StatsRepository lists pass-rate statistics for a course
type StatsRepository interface {
	ListByCourse(ctx context.Context, courseCode string) ([]*entity.CourseStat, error)
}
