package attendance

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"hrms/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

const attendanceColumns = `id, employee_id, date, check_in, check_out, status, working_hours, overtime_hours,
           COALESCE(notes, ''), created_at, updated_at`

var sortColumns = map[string]string{
	"date":         "date",
	"status":       "status",
	"workingHours": "working_hours",
	"createdAt":    "created_at",
}

func scanAttendance(row pgx.Row) (Attendance, error) {
	var a Attendance
	err := row.Scan(&a.ID, &a.EmployeeID, &a.Date, &a.CheckIn, &a.CheckOut, &a.Status, &a.WorkingHours,
		&a.OvertimeHours, &a.Notes, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// Upsert writes the one record an employee has on a date, replacing any
// earlier marking of that date.
func (s *Store) Upsert(ctx context.Context, a Attendance) (Attendance, error) {
	saved, err := scanAttendance(s.DB.QueryRow(ctx, `
    INSERT INTO attendance (employee_id, date, check_in, check_out, status, working_hours, overtime_hours, notes)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    ON CONFLICT (employee_id, date) DO UPDATE
    SET check_in = EXCLUDED.check_in,
        check_out = EXCLUDED.check_out,
        status = EXCLUDED.status,
        working_hours = EXCLUDED.working_hours,
        overtime_hours = EXCLUDED.overtime_hours,
        notes = EXCLUDED.notes,
        updated_at = now()
    RETURNING `+attendanceColumns,
		a.EmployeeID, a.Date, a.CheckIn, a.CheckOut, a.Status, a.WorkingHours, a.OvertimeHours, nullIfEmpty(a.Notes)))
	if err != nil {
		return Attendance{}, fmt.Errorf("upsert attendance: %w", err)
	}
	return saved, nil
}

func (s *Store) List(ctx context.Context, filter ListFilter) ([]Attendance, int, error) {
	var clauses []string
	var args []any
	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		clauses = append(clauses, fmt.Sprintf("employee_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		clauses = append(clauses, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		clauses = append(clauses, fmt.Sprintf("date >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		clauses = append(clauses, fmt.Sprintf("date <= $%d", len(args)))
	}
	where := ""
	if len(clauses) > 0 {
		where = " WHERE " + strings.Join(clauses, " AND ")
	}

	var total int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM attendance"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	order := "date DESC, id"
	if column, ok := sortColumns[filter.SortKey]; ok {
		order = column
		if filter.SortDesc {
			order += " DESC"
		}
		order += ", id"
	}
	query := "SELECT " + attendanceColumns + " FROM attendance" + where + " ORDER BY " + order
	if filter.Limit > 0 {
		args = append(args, filter.Limit, filter.Offset)
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]Attendance, 0)
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, a)
	}
	return out, total, rows.Err()
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
