package exam

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/liutentor/tentor-backend/internal/entity"
	"go.uber.org/zap"
)

type stubExamRepo struct {
	exams   []*entity.Exam
	getExam *entity.Exam
	err     error
	pingErr error
}

func (s *stubExamRepo) GetExam(ctx context.Context, id int64) (*entity.Exam, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.getExam, nil
}

func (s *stubExamRepo) ListByCourse(ctx context.Context, courseCode string) ([]*entity.Exam, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.exams, nil
}

func (s *stubExamRepo) Ping(ctx context.Context) error { return s.pingErr }

type stubSolutionRepo struct {
	solutions []*entity.Solution
}

func (s *stubSolutionRepo) ListByExam(ctx context.Context, examID int64) ([]*entity.Solution, error) {
	return s.solutions, nil
}

type stubStatsRepo struct {
	stats []*entity.CourseStat
}

func (s *stubStatsRepo) ListByCourse(ctx context.Context, courseCode string) ([]*entity.CourseStat, error) {
	return s.stats, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGetCourseExams_JoinsStatsByDate(t *testing.T) {
	nameSwe := "Linjär algebra"
	passRate := 0.55

	exams := &stubExamRepo{exams: []*entity.Exam{
		{ID: 1, CourseCode: "TATA24", ExamDate: date(2024, 1, 10)},
		{ID: 2, CourseCode: "TATA24", ExamDate: date(2024, 6, 5)},
	}}
	stats := &stubStatsRepo{stats: []*entity.CourseStat{
		{CourseCode: "TATA24", ExamDate: date(2024, 1, 10), CourseNameSwe: &nameSwe, PassRate: &passRate},
	}}

	uc := NewUsecase(exams, &stubSolutionRepo{}, stats, zap.NewNop())

	got, err := uc.GetCourseExams(context.Background(), "tata24")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.CourseCode != "TATA24" {
		t.Fatalf("expected uppercased course code, got %q", got.CourseCode)
	}
	if got.CourseNameSwe == nil || *got.CourseNameSwe != nameSwe {
		t.Fatal("expected course name taken from statistics")
	}
	if len(got.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got.Entries))
	}
	if got.Entries[0].Stat == nil || got.Entries[0].Stat.PassRate != &passRate {
		t.Fatal("expected first sitting joined with its statistics")
	}
	if got.Entries[1].Stat != nil {
		t.Fatal("expected second sitting without statistics")
	}
}

func TestGetCourseExams_EmptyCourseIsNotFound(t *testing.T) {
	uc := NewUsecase(&stubExamRepo{}, &stubSolutionRepo{}, &stubStatsRepo{}, zap.NewNop())

	_, err := uc.GetCourseExams(context.Background(), "XXXX99")
	if !errors.Is(err, entity.ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestGetExamWithSolutions(t *testing.T) {
	exams := &stubExamRepo{getExam: &entity.Exam{ID: 9, CourseCode: "TDDD86"}}
	solutions := &stubSolutionRepo{solutions: []*entity.Solution{{ID: 1, ExamID: 9}}}

	uc := NewUsecase(exams, solutions, &stubStatsRepo{}, zap.NewNop())

	got, err := uc.GetExamWithSolutions(context.Background(), 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Exam.ID != 9 || len(got.Solutions) != 1 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestReady_ReflectsStoreHealth(t *testing.T) {
	healthy := NewUsecase(&stubExamRepo{}, &stubSolutionRepo{}, &stubStatsRepo{}, zap.NewNop())
	if err := healthy.Ready(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	down := NewUsecase(&stubExamRepo{pingErr: errors.New("connection refused")}, &stubSolutionRepo{}, &stubStatsRepo{}, zap.NewNop())
	if err := down.Ready(context.Background()); err == nil {
		t.Fatal("expected error when the store is unreachable")
	}
}
