package exam

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/liutentor/tentor-backend/internal/entity"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// Usecase serves read-only exam archive lookups.
type Usecase struct {
	exams     ExamRepository
	solutions SolutionRepository
	stats     StatsRepository
	logger    *zap.Logger
}

func NewUsecase(
	exams ExamRepository,
	solutions SolutionRepository,
	stats StatsRepository,
	logger *zap.Logger,
) *Usecase {
	return &Usecase{
		exams:     exams,
		solutions: solutions,
		stats:     stats,
		logger:    logger,
	}
}

// GetCourseExams lists a course's exams joined with sitting statistics.
// Course codes are stored uppercase; lookups are case-insensitive.
func (u *Usecase) GetCourseExams(ctx context.Context, courseCode string) (*entity.CourseExams, error) {
	code := strings.ToUpper(courseCode)

	exams, err := u.exams.ListByCourse(ctx, code)
	if err != nil {
		return nil, err
	}
	if len(exams) == 0 {
		return nil, entity.ErrCourseNotFound
	}

	stats, err := u.stats.ListByCourse(ctx, code)
	if err != nil {
		return nil, err
	}

	statsByDate := make(map[string]*entity.CourseStat, len(stats))
	for _, stat := range stats {
		statsByDate[stat.ExamDate.Format(dateLayout)] = stat
	}

	result := &entity.CourseExams{
		CourseCode: code,
		Entries:    make([]entity.CourseExamEntry, 0, len(exams)),
	}

	for _, ex := range exams {
		entry := entity.CourseExamEntry{Exam: ex}
		if stat, ok := statsByDate[ex.ExamDate.Format(dateLayout)]; ok {
			entry.Stat = stat
			if result.CourseNameSwe == nil {
				result.CourseNameSwe = stat.CourseNameSwe
			}
			if result.CourseNameEng == nil {
				result.CourseNameEng = stat.CourseNameEng
			}
		}
		result.Entries = append(result.Entries, entry)
	}

	ctxzap.Debug(ctx, "course exams resolved",
		zap.String("course_code", code),
		zap.Int("exam_count", len(exams)),
		zap.Int("stat_count", len(stats)),
	)

	return result, nil
}

// GetExamWithSolutions resolves one exam with its nested solution rows.
func (u *Usecase) GetExamWithSolutions(ctx context.Context, examID int64) (*entity.ExamWithSolutions, error) {
	ex, err := u.exams.GetExam(ctx, examID)
	if err != nil {
		return nil, err
	}

	solutions, err := u.solutions.ListByExam(ctx, examID)
	if err != nil {
		return nil, err
	}

	return &entity.ExamWithSolutions{
		Exam:      ex,
		Solutions: solutions,
	}, nil
}

// Ready probes the backing store for the readiness endpoint.
func (u *Usecase) Ready(ctx context.Context) error {
	return u.exams.Ping(ctx)
}
