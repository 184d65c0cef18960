package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/liutentor/tentor-backend/internal/entity"
)

// SolutionRepository defines the interface for solution lookups
type SolutionRepository interface {
	GetFirstByExam(ctx context.Context, examID int64) (*entity.Solution, error)
	ListByExam(ctx context.Context, examID int64) ([]*entity.Solution, error)
}

var _ SolutionRepository = &SolutionPostgres{}

// SolutionPostgres implements SolutionRepository using PostgreSQL
type SolutionPostgres struct {
	db *pgxpool.Pool
}

func NewSolutionPostgres(db *pgxpool.Pool) *SolutionPostgres {
	return &SolutionPostgres{db: db}
}

// GetFirstByExam returns the first solution row for an exam, or nil
// when none exists. Absence is a valid state, not an error.
func (r *SolutionPostgres) GetFirstByExam(ctx context.Context, examID int64) (*entity.Solution, error) {
	const query = `
		SELECT id, exam_id, solution_name, pdf_url, created_at
		FROM solutions
		WHERE exam_id = $1
		ORDER BY id
		LIMIT 1`

	var sol entity.Solution
	err := r.db.QueryRow(ctx, query, examID).Scan(
		&sol.ID,
		&sol.ExamID,
		&sol.SolutionName,
		&sol.PDFURL,
		&sol.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: get solution: %v", entity.ErrUpstream, err)
	}

	return &sol, nil
}

func (r *SolutionPostgres) ListByExam(ctx context.Context, examID int64) ([]*entity.Solution, error) {
	const query = `
		SELECT id, exam_id, solution_name, pdf_url, created_at
		FROM solutions
		WHERE exam_id = $1
		ORDER BY id`

	rows, err := r.db.Query(ctx, query, examID)
	if err != nil {
		return nil, fmt.Errorf("%w: list solutions: %v", entity.ErrUpstream, err)
	}
	defer rows.Close()

	var solutions []*entity.Solution
	for rows.Next() {
		var sol entity.Solution
		if err := rows.Scan(
			&sol.ID,
			&sol.ExamID,
			&sol.SolutionName,
			&sol.PDFURL,
			&sol.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scan solution: %v", entity.ErrUpstream, err)
		}
		solutions = append(solutions, &sol)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate solutions: %v", entity.ErrUpstream, err)
	}

	return solutions, nil
}
