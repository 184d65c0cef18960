package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/liutentor/tentor-backend/internal/entity"
)

// ExamRepository defines the interface for exam lookups
type ExamRepository interface {
	GetExam(ctx context.Context, id int64) (*entity.Exam, error)
	ListByCourse(ctx context.Context, courseCode string) ([]*entity.Exam, error)
	Ping(ctx context.Context) error
}

var _ ExamRepository = &ExamPostgres{}

// ExamPostgres implements ExamRepository using PostgreSQL
type ExamPostgres struct {
	db *pgxpool.Pool
}

func NewExamPostgres(db *pgxpool.Pool) *ExamPostgres {
	return &ExamPostgres{db: db}
}

func (r *ExamPostgres) GetExam(ctx context.Context, id int64) (*entity.Exam, error) {
	const query = `
		SELECT e.id, e.course_code, e.exam_date, e.exam_name, e.pdf_url, e.created_at,
		       EXISTS (SELECT 1 FROM solutions s WHERE s.exam_id = e.id) AS has_solution
		FROM exams e
		WHERE e.id = $1`

	var exam entity.Exam
	err := r.db.QueryRow(ctx, query, id).Scan(
		&exam.ID,
		&exam.CourseCode,
		&exam.ExamDate,
		&exam.ExamName,
		&exam.PDFURL,
		&exam.CreatedAt,
		&exam.HasSolution,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrExamNotFound
		}
		return nil, fmt.Errorf("%w: get exam: %v", entity.ErrUpstream, err)
	}

	return &exam, nil
}

func (r *ExamPostgres) ListByCourse(ctx context.Context, courseCode string) ([]*entity.Exam, error) {
	const query = `
		SELECT e.id, e.course_code, e.exam_date, e.exam_name, e.pdf_url, e.created_at,
		       EXISTS (SELECT 1 FROM solutions s WHERE s.exam_id = e.id) AS has_solution
		FROM exams e
		WHERE e.course_code = $1
		ORDER BY e.exam_date DESC`

	rows, err := r.db.Query(ctx, query, courseCode)
	if err != nil {
		return nil, fmt.Errorf("%w: list exams: %v", entity.ErrUpstream, err)
	}
	defer rows.Close()

	var exams []*entity.Exam
	for rows.Next() {
		var exam entity.Exam
		if err := rows.Scan(
			&exam.ID,
			&exam.CourseCode,
			&exam.ExamDate,
			&exam.ExamName,
			&exam.PDFURL,
			&exam.CreatedAt,
			&exam.HasSolution,
		); err != nil {
			return nil, fmt.Errorf("%w: scan exam: %v", entity.ErrUpstream, err)
		}
		exams = append(exams, &exam)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate exams: %v", entity.ErrUpstream, err)
	}

	return exams, nil
}

// Ping verifies store reachability for the readiness probe.
func (r *ExamPostgres) Ping(ctx context.Context) error {
	var id int64
	err := r.db.QueryRow(ctx, `SELECT id FROM exams LIMIT 1`).Scan(&id)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: ping: %v", entity.ErrUpstream, err)
	}
	return nil
}
