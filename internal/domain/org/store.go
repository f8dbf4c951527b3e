package org

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"hrms/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

const departmentColumns = `id, name, COALESCE(description, ''), COALESCE(manager_id::text, ''), employee_count, created_at, updated_at`

func scanDepartment(row pgx.Row) (Department, error) {
	var d Department
	err := row.Scan(&d.ID, &d.Name, &d.Description, &d.ManagerID, &d.EmployeeCount, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Department{}, ErrDepartmentNotFound
	}
	return d, err
}

func (s *Store) ListDepartments(ctx context.Context) ([]Department, error) {
	rows, err := s.DB.Query(ctx, `SELECT `+departmentColumns+` FROM departments ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Department, 0)
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// CreateDepartment inserts dept with its current headcount already filled in.
func (s *Store) CreateDepartment(ctx context.Context, dept Department) (Department, error) {
	created, err := scanDepartment(s.DB.QueryRow(ctx, `
    INSERT INTO departments (name, description, manager_id, employee_count)
    VALUES ($1, $2, $3, (
      SELECT COUNT(1) FROM employees
      WHERE department = $1 AND status NOT IN ('TERMINATED', 'RESIGNED')
    ))
    RETURNING `+departmentColumns,
		dept.Name, nullIfEmpty(dept.Description), nullIfEmpty(dept.ManagerID)))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Department{}, ErrDuplicateDepartment
		}
		return Department{}, err
	}
	return created, nil
}

// RecountEmployees recomputes employee_count for every department from the
// employees that are not terminated or resigned, returning the number of
// departments whose count changed.
func (s *Store) RecountEmployees(ctx context.Context) (int, error) {
	tag, err := s.DB.Exec(ctx, `
    UPDATE departments d
    SET employee_count = counts.total,
        updated_at = now()
    FROM (
      SELECT dep.id, COUNT(e.id) AS total
      FROM departments dep
      LEFT JOIN employees e
        ON e.department = dep.name AND e.status NOT IN ('TERMINATED', 'RESIGNED')
      GROUP BY dep.id
    ) counts
    WHERE d.id = counts.id AND d.employee_count <> counts.total
  `)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
