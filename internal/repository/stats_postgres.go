package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/liutentor/tentor-backend/internal/entity"
)

// StatsRepository defines the interface for course statistics lookups
type StatsRepository interface {
	ListByCourse(ctx context.Context, courseCode string) ([]*entity.CourseStat, error)
}

var _ StatsRepository = &StatsPostgres{}

// StatsPostgres implements StatsRepository using PostgreSQL
type StatsPostgres struct {
	db *pgxpool.Pool
}

func NewStatsPostgres(db *pgxpool.Pool) *StatsPostgres {
	return &StatsPostgres{db: db}
}

func (r *StatsPostgres) ListByCourse(ctx context.Context, courseCode string) ([]*entity.CourseStat, error) {
	const query = `
		SELECT course_code, exam_date, course_name_swe, course_name_eng, pass_rate, statistics
		FROM course_stats
		WHERE course_code = $1
		ORDER BY exam_date DESC`

	rows, err := r.db.Query(ctx, query, courseCode)
	if err != nil {
		return nil, fmt.Errorf("%w: list course stats: %v", entity.ErrUpstream, err)
	}
	defer rows.Close()

	var stats []*entity.CourseStat
	for rows.Next() {
		var stat entity.CourseStat
		if err := rows.Scan(
			&stat.CourseCode,
			&stat.ExamDate,
			&stat.CourseNameSwe,
			&stat.CourseNameEng,
			&stat.PassRate,
			&stat.Statistics,
		); err != nil {
			return nil, fmt.Errorf("%w: scan course stat: %v", entity.ErrUpstream, err)
		}
		stats = append(stats, &stat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate course stats: %v", entity.ErrUpstream, err)
	}

	return stats, nil
}
