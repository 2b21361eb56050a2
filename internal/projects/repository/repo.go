package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/timeledger/project-billing-api/internal/projects/domain"
)

// invalid_text_representation, raised for ids that are not UUIDs.
const pgInvalidTextRepresentation = "22P02"

const projectColumns = `id, project_name, task_owner, project_type, start_time, end_time,
       hourly_rate, created_at, duration_minutes, total_value`

// ProjectRepository stores projects in the PostgreSQL "projects" table.
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Insert writes p and returns the stored row, including the store-assigned
// id and created_at.
func (r *ProjectRepository) Insert(ctx context.Context, p domain.NewProject) (*domain.Project, error) {
	const q = `
INSERT INTO projects (project_name, task_owner, project_type, start_time, end_time,
                      hourly_rate, duration_minutes, total_value)
VALUES ($1, $2, $3, $4::timestamptz, $5::timestamptz, $6, $7, $8)
RETURNING ` + projectColumns + `;
`
	row := r.db.QueryRowContext(ctx, q,
		p.ProjectName, p.TaskOwner, p.ProjectType, p.StartTime, p.EndTime,
		p.HourlyRate, p.DurationMinutes, p.TotalValue,
	)

	out, err := scanProject(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("insert returned no rows")
		}
		return nil, fmt.Errorf("failed to insert project: %w", err)
	}
	return out, nil
}

// List returns every project, newest first.
func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	q := `
SELECT ` + projectColumns + `
FROM projects
ORDER BY ` + domain.ListOrdering().SQL() + `;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return out, nil
}

// GetByID returns the project with the given id.
func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	const q = `
SELECT ` + projectColumns + `
FROM projects
WHERE id = $1;
`
	p, err := scanProject(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// Delete removes the project with the given id.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM projects WHERE id = $1;`

	result, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		if isInvalidID(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProject(s scanner) (*domain.Project, error) {
	var (
		p        domain.Project
		duration sql.NullFloat64
		total    sql.NullFloat64
	)
	err := s.Scan(
		&p.ID, &p.ProjectName, &p.TaskOwner, &p.ProjectType, &p.StartTime, &p.EndTime,
		&p.HourlyRate, &p.CreatedAt, &duration, &total,
	)
	if err != nil {
		return nil, err
	}
	p.DurationMinutes = duration.Float64
	p.TotalValue = total.Float64
	return &p, nil
}

// isInvalidID reports whether err is PostgreSQL rejecting the id literal,
// for either driver.
func isInvalidID(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pgInvalidTextRepresentation
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgInvalidTextRepresentation
	}
	return false
}
