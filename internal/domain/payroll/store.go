package payroll

import (
	"context"
	"errors"
	"fmt"
	"strings"

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

const salaryColumns = `id, employee_id, month, year, basic_salary,
           hra, da, ta, other_allowances, pf, tax, insurance, other_deductions,
           allowances, deductions, gross_salary, net_salary, status, payment_date,
           COALESCE(payment_method, ''), COALESCE(bank_name, ''), COALESCE(account_number, ''),
           COALESCE(notes, ''), created_at, updated_at`

var sortColumns = map[string]string{
	"period":      "year, month",
	"netSalary":   "net_salary",
	"grossSalary": "gross_salary",
	"status":      "status",
	"createdAt":   "created_at",
}

func scanSalary(row pgx.Row) (Salary, error) {
	var s Salary
	a := &s.AllowanceBreakdown
	d := &s.DeductionBreakdown
	err := row.Scan(&s.ID, &s.EmployeeID, &s.Month, &s.Year, &s.BasicSalary,
		&a.HRA, &a.DA, &a.TA, &a.Other, &d.PF, &d.Tax, &d.Insurance, &d.Other,
		&s.Allowances, &s.Deductions, &s.GrossSalary, &s.NetSalary, &s.Status, &s.PaymentDate,
		&s.PaymentMethod, &s.BankName, &s.AccountNumber, &s.Notes, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Salary{}, ErrNotFound
	}
	return s, err
}

func (st *Store) Create(ctx context.Context, s Salary) (Salary, error) {
	a, d := s.AllowanceBreakdown, s.DeductionBreakdown
	created, err := scanSalary(st.DB.QueryRow(ctx, `
    INSERT INTO salaries (employee_id, month, year, basic_salary,
      hra, da, ta, other_allowances, pf, tax, insurance, other_deductions,
      allowances, deductions, gross_salary, net_salary, status,
      payment_method, bank_name, account_number, notes)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21)
    RETURNING `+salaryColumns,
		s.EmployeeID, s.Month, s.Year, s.BasicSalary,
		a.HRA, a.DA, a.TA, a.Other, d.PF, d.Tax, d.Insurance, d.Other,
		s.Allowances, s.Deductions, s.GrossSalary, s.NetSalary, s.Status,
		nullIfEmpty(string(s.PaymentMethod)), nullIfEmpty(s.BankName), nullIfEmpty(s.AccountNumber), nullIfEmpty(s.Notes)))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Salary{}, ErrDuplicate
		}
		return Salary{}, fmt.Errorf("create salary: %w", err)
	}
	return created, nil
}

func (st *Store) Get(ctx context.Context, id string) (Salary, error) {
	if !querier.ValidID(id) {
		return Salary{}, ErrNotFound
	}
	return scanSalary(st.DB.QueryRow(ctx, `SELECT `+salaryColumns+` FROM salaries WHERE id = $1`, id))
}

func (st *Store) List(ctx context.Context, filter ListFilter) ([]Salary, int, error) {
	var clauses []string
	var args []any
	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		clauses = append(clauses, fmt.Sprintf("employee_id = $%d", len(args)))
	}
	if filter.Month > 0 {
		args = append(args, filter.Month)
		clauses = append(clauses, fmt.Sprintf("month = $%d", len(args)))
	}
	if filter.Year > 0 {
		args = append(args, filter.Year)
		clauses = append(clauses, fmt.Sprintf("year = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		clauses = append(clauses, fmt.Sprintf("status = $%d", len(args)))
	}
	where := ""
	if len(clauses) > 0 {
		where = " WHERE " + strings.Join(clauses, " AND ")
	}

	var total int
	if err := st.DB.QueryRow(ctx, "SELECT COUNT(1) FROM salaries"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	order := "year DESC, month DESC, id"
	if column, ok := sortColumns[filter.SortKey]; ok {
		order = column
		if filter.SortDesc {
			order = strings.ReplaceAll(order, ",", " DESC,") + " DESC"
		}
		order += ", id"
	}
	query := "SELECT " + salaryColumns + " FROM salaries" + where + " ORDER BY " + order
	if filter.Limit > 0 {
		args = append(args, filter.Limit, filter.Offset)
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	rows, err := st.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]Salary, 0)
	for rows.Next() {
		s, err := scanSalary(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, s)
	}
	return out, total, rows.Err()
}

func (st *Store) UpdateStatus(ctx context.Context, s Salary, from Status) (Salary, error) {
	updated, err := scanSalary(st.DB.QueryRow(ctx, `
    UPDATE salaries
    SET status = $1,
        payment_date = $2,
        payment_method = $3,
        bank_name = $4,
        account_number = $5,
        updated_at = now()
    WHERE id = $6 AND status = $7
    RETURNING `+salaryColumns,
		s.Status, s.PaymentDate, nullIfEmpty(string(s.PaymentMethod)), nullIfEmpty(s.BankName),
		nullIfEmpty(s.AccountNumber), s.ID, from))
	if errors.Is(err, ErrNotFound) {
		// The row exists (the caller read it) but moved on concurrently.
		return Salary{}, ErrInvalidTransition
	}
	return updated, err
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
