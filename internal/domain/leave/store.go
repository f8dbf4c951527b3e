package leave

import (
	"context"
	"errors"
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

const leaveColumns = `id, employee_id, leave_type, start_date, end_date, total_days, reason, status,
           COALESCE(approved_by::text, ''), approved_at, COALESCE(notes, ''), created_at, updated_at`

var sortColumns = map[string]string{
	"startDate": "start_date",
	"endDate":   "end_date",
	"totalDays": "total_days",
	"leaveType": "leave_type",
	"status":    "status",
	"createdAt": "created_at",
}

func scanLeave(row pgx.Row) (Leave, error) {
	var l Leave
	err := row.Scan(&l.ID, &l.EmployeeID, &l.LeaveType, &l.StartDate, &l.EndDate, &l.TotalDays, &l.Reason, &l.Status,
		&l.ApprovedBy, &l.ApprovedAt, &l.Notes, &l.CreatedAt, &l.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Leave{}, ErrNotFound
	}
	return l, err
}

func (s *Store) InTx(ctx context.Context, fn func(StoreAPI) error) error {
	return querier.InTx(ctx, s.DB, func(tx pgx.Tx) error {
		return fn(&Store{DB: tx})
	})
}

func (s *Store) Create(ctx context.Context, l Leave) (Leave, error) {
	created, err := scanLeave(s.DB.QueryRow(ctx, `
    INSERT INTO leaves (employee_id, leave_type, start_date, end_date, total_days, reason, status, notes)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    RETURNING `+leaveColumns,
		l.EmployeeID, l.LeaveType, l.StartDate, l.EndDate, l.TotalDays, l.Reason, l.Status, nullIfEmpty(l.Notes)))
	if err != nil {
		return Leave{}, fmt.Errorf("create leave: %w", err)
	}
	return created, nil
}

func (s *Store) Get(ctx context.Context, id string) (Leave, error) {
	if !querier.ValidID(id) {
		return Leave{}, ErrNotFound
	}
	return scanLeave(s.DB.QueryRow(ctx, `SELECT `+leaveColumns+` FROM leaves WHERE id = $1`, id))
}

func (s *Store) Lock(ctx context.Context, id string) (Leave, error) {
	if !querier.ValidID(id) {
		return Leave{}, ErrNotFound
	}
	return scanLeave(s.DB.QueryRow(ctx, `SELECT `+leaveColumns+` FROM leaves WHERE id = $1 FOR UPDATE`, id))
}

func (s *Store) List(ctx context.Context, filter ListFilter) ([]Leave, int, error) {
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
	if filter.LeaveType != "" {
		args = append(args, filter.LeaveType)
		clauses = append(clauses, fmt.Sprintf("leave_type = $%d", len(args)))
	}
	where := ""
	if len(clauses) > 0 {
		where = " WHERE " + strings.Join(clauses, " AND ")
	}

	var total int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM leaves"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	order := "created_at DESC, id"
	if column, ok := sortColumns[filter.SortKey]; ok {
		order = column
		if filter.SortDesc {
			order += " DESC"
		}
		order += ", id"
	}
	query := "SELECT " + leaveColumns + " FROM leaves" + where + " ORDER BY " + order
	if filter.Limit > 0 {
		args = append(args, filter.Limit, filter.Offset)
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]Leave, 0)
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, l)
	}
	return out, total, rows.Err()
}

func (s *Store) UpdateStatus(ctx context.Context, l Leave) (Leave, error) {
	return scanLeave(s.DB.QueryRow(ctx, `
    UPDATE leaves
    SET status = $1,
        approved_by = $2,
        approved_at = $3,
        notes = $4,
        updated_at = now()
    WHERE id = $5
    RETURNING `+leaveColumns,
		l.Status, nullIfEmpty(l.ApprovedBy), l.ApprovedAt, nullIfEmpty(l.Notes), l.ID))
}

func (s *Store) openBalances(ctx context.Context, employeeID string, types []Type) error {
	for _, t := range types {
		if _, err := s.DB.Exec(ctx, `
      INSERT INTO leave_balances (employee_id, leave_type, total_days, used_days)
      VALUES ($1, $2, $3, 0)
      ON CONFLICT (employee_id, leave_type) DO NOTHING
    `, employeeID, t, DefaultEntitlements[t]); err != nil {
			return fmt.Errorf("open leave balance: %w", err)
		}
	}
	return nil
}

// Balances returns every paid type's balance, opening missing ones.
func (s *Store) Balances(ctx context.Context, employeeID string) ([]Balance, error) {
	var paid []Type
	for _, t := range Types {
		if t.Paid() {
			paid = append(paid, t)
		}
	}
	if err := s.openBalances(ctx, employeeID, paid); err != nil {
		return nil, err
	}

	rows, err := s.DB.Query(ctx, `
    SELECT leave_type, total_days, used_days
    FROM leave_balances
    WHERE employee_id = $1
    ORDER BY leave_type
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Balance, 0, len(paid))
	for rows.Next() {
		var (
			leaveType   Type
			total, used int
		)
		if err := rows.Scan(&leaveType, &total, &used); err != nil {
			return nil, err
		}
		out = append(out, NewBalance(employeeID, leaveType, total, used))
	}
	return out, rows.Err()
}

func (s *Store) LockBalance(ctx context.Context, employeeID string, leaveType Type) (Balance, error) {
	if err := s.openBalances(ctx, employeeID, []Type{leaveType}); err != nil {
		return Balance{}, err
	}
	var total, used int
	if err := s.DB.QueryRow(ctx, `
    SELECT total_days, used_days
    FROM leave_balances
    WHERE employee_id = $1 AND leave_type = $2
    FOR UPDATE
  `, employeeID, leaveType).Scan(&total, &used); err != nil {
		return Balance{}, err
	}
	return NewBalance(employeeID, leaveType, total, used), nil
}

func (s *Store) AddUsedDays(ctx context.Context, employeeID string, leaveType Type, days int) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE leave_balances
    SET used_days = used_days + $1,
        updated_at = now()
    WHERE employee_id = $2 AND leave_type = $3
  `, days, employeeID, leaveType)
	return err
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
