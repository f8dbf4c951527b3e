package employee

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

const employeeColumns = `id, employee_number, first_name, last_name, email, phone, date_of_birth, gender,
           address, city, state, zip_code, department, designation, COALESCE(manager_id::text, ''),
           date_of_joining, employment_type, status, salary, COALESCE(profile_image, ''),
           created_at, updated_at`

// sortColumns maps API sort keys onto columns; anything else sorts by name.
var sortColumns = map[string]string{
	"firstName":     "first_name",
	"lastName":      "last_name",
	"email":         "email",
	"department":    "department",
	"designation":   "designation",
	"dateOfJoining": "date_of_joining",
	"status":        "status",
	"employeeId":    "employee_number",
	"createdAt":     "created_at",
}

func scanEmployee(row pgx.Row) (Employee, error) {
	var emp Employee
	err := row.Scan(
		&emp.ID, &emp.EmployeeID, &emp.FirstName, &emp.LastName, &emp.Email, &emp.Phone, &emp.DateOfBirth, &emp.Gender,
		&emp.Address, &emp.City, &emp.State, &emp.ZipCode, &emp.Department, &emp.Designation, &emp.ManagerID,
		&emp.DateOfJoining, &emp.EmploymentType, &emp.Status, &emp.Salary, &emp.ProfileImage,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrNotFound
	}
	return emp, err
}

// NextEmployeeNumber draws from employee_number_seq, the single allocator of
// human-readable employee numbers.
func (s *Store) NextEmployeeNumber(ctx context.Context) (string, error) {
	var next int64
	if err := s.DB.QueryRow(ctx, "SELECT nextval('employee_number_seq')").Scan(&next); err != nil {
		return "", fmt.Errorf("allocate employee number: %w", err)
	}
	return fmt.Sprintf("EMP-%06d", next), nil
}

func (s *Store) Create(ctx context.Context, emp Employee) (Employee, error) {
	created, err := scanEmployee(s.DB.QueryRow(ctx, `
    INSERT INTO employees (employee_number, first_name, last_name, email, phone, date_of_birth, gender,
      address, city, state, zip_code, department, designation, manager_id, date_of_joining,
      employment_type, status, salary, profile_image)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)
    RETURNING `+employeeColumns,
		emp.EmployeeID, emp.FirstName, emp.LastName, emp.Email, emp.Phone, emp.DateOfBirth, emp.Gender,
		emp.Address, emp.City, emp.State, emp.ZipCode, emp.Department, emp.Designation, nullIfEmpty(emp.ManagerID),
		emp.DateOfJoining, emp.EmploymentType, emp.Status, emp.Salary, nullIfEmpty(emp.ProfileImage),
	))
	if err != nil {
		return Employee{}, mapWriteError(err)
	}
	return created, nil
}

func (s *Store) Get(ctx context.Context, id string) (Employee, error) {
	if !querier.ValidID(id) {
		return Employee{}, ErrNotFound
	}
	return scanEmployee(s.DB.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))
}

func (s *Store) List(ctx context.Context, filter ListFilter) ([]Employee, int, error) {
	where, args := buildWhere(filter)

	var total int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM employees"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	order := "last_name, first_name"
	if column, ok := sortColumns[filter.SortKey]; ok {
		order = column
		if filter.SortDesc {
			order += " DESC"
		}
		order += ", id"
	}
	query := "SELECT " + employeeColumns + " FROM employees" + where + " ORDER BY " + order
	if filter.Limit > 0 {
		args = append(args, filter.Limit, filter.Offset)
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, emp)
	}
	return out, total, rows.Err()
}

func buildWhere(filter ListFilter) (string, []any) {
	var clauses []string
	var args []any
	if filter.Department != "" {
		args = append(args, filter.Department)
		clauses = append(clauses, fmt.Sprintf("department = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		clauses = append(clauses, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.ManagerID != "" {
		args = append(args, filter.ManagerID)
		clauses = append(clauses, fmt.Sprintf("manager_id = $%d", len(args)))
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		args = append(args, "%"+strings.ToLower(search)+"%")
		clauses = append(clauses, fmt.Sprintf("(lower(first_name || ' ' || last_name) LIKE $%d OR lower(email) LIKE $%d OR lower(employee_number) LIKE $%d)", len(args), len(args), len(args)))
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func (s *Store) Update(ctx context.Context, emp Employee) (Employee, error) {
	updated, err := scanEmployee(s.DB.QueryRow(ctx, `
    UPDATE employees
    SET first_name = $1,
        last_name = $2,
        email = $3,
        phone = $4,
        date_of_birth = $5,
        gender = $6,
        address = $7,
        city = $8,
        state = $9,
        zip_code = $10,
        department = $11,
        designation = $12,
        manager_id = $13,
        date_of_joining = $14,
        employment_type = $15,
        status = $16,
        salary = $17,
        profile_image = $18,
        updated_at = now()
    WHERE id = $19
    RETURNING `+employeeColumns,
		emp.FirstName, emp.LastName, emp.Email, emp.Phone, emp.DateOfBirth, emp.Gender,
		emp.Address, emp.City, emp.State, emp.ZipCode, emp.Department, emp.Designation,
		nullIfEmpty(emp.ManagerID), emp.DateOfJoining, emp.EmploymentType, emp.Status, emp.Salary,
		nullIfEmpty(emp.ProfileImage), emp.ID,
	))
	if err != nil {
		return Employee{}, mapWriteError(err)
	}
	return updated, nil
}

func (s *Store) ManagerOf(ctx context.Context, id string) (string, error) {
	if !querier.ValidID(id) {
		return "", ErrNotFound
	}
	var managerID string
	err := s.DB.QueryRow(ctx, "SELECT COALESCE(manager_id::text, '') FROM employees WHERE id = $1", id).Scan(&managerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	return managerID, err
}

func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateEmail
	}
	return err
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
