package payroll

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"hrms/internal/domain/employee"
	"hrms/internal/platform/crypto"
	"hrms/internal/platform/validate"
)

type EmployeeGetter interface {
	Get(ctx context.Context, id string) (employee.Employee, error)
}

type Service struct {
	store     StoreAPI
	employees EmployeeGetter
	cipher    *crypto.FieldCipher
	// SlipDir, when set, receives a PDF copy of every paid salary's slip.
	SlipDir string
	now     func() time.Time
}

func NewService(store StoreAPI, employees EmployeeGetter, cipher *crypto.FieldCipher) *Service {
	return &Service{store: store, employees: employees, cipher: cipher, now: time.Now}
}

func (in CreateSalaryInput) validate() error {
	v := validate.New()
	v.Required("employeeId", in.EmployeeID)
	v.Check(in.Month >= 1 && in.Month <= 12, "month", "must be between 1 and 12")
	v.Check(in.Year >= 1970 && in.Year <= 9999, "year", "must be a four digit year")
	v.Check(!in.BasicSalary.IsNegative(), "basicSalary", "must not be negative")
	for field, amount := range map[string]interface{ IsNegative() bool }{
		"allowances.hra":       in.Allowances.HRA,
		"allowances.da":        in.Allowances.DA,
		"allowances.ta":        in.Allowances.TA,
		"allowances.other":     in.Allowances.Other,
		"deductions.pf":        in.Deductions.PF,
		"deductions.tax":       in.Deductions.Tax,
		"deductions.insurance": in.Deductions.Insurance,
		"deductions.other":     in.Deductions.Other,
	} {
		v.Check(!amount.IsNegative(), field, "must not be negative")
	}
	if in.PaymentMethod != "" {
		v.Check(in.PaymentMethod.Valid(), "paymentMethod", "must be one of BANK_TRANSFER, CASH, CHECK")
	}
	if v.HasIssues() {
		return v.Err()
	}
	totals := Compute(in.BasicSalary, in.Allowances, in.Deductions)
	v.Check(!totals.Net.IsNegative(), "deductions", "must not exceed gross salary")
	return v.Err()
}

// Create records a PENDING salary for an employee who is still employed.
func (s *Service) Create(ctx context.Context, input CreateSalaryInput) (Salary, error) {
	if err := input.validate(); err != nil {
		return Salary{}, err
	}
	emp, err := s.employees.Get(ctx, strings.TrimSpace(input.EmployeeID))
	if err != nil {
		return Salary{}, err
	}
	if emp.Status.IsTerminal() {
		return Salary{}, ErrEmployeeInactive
	}

	account, err := s.cipher.SealString(strings.TrimSpace(input.AccountNumber))
	if err != nil {
		return Salary{}, fmt.Errorf("seal account number: %w", err)
	}
	totals := Compute(input.BasicSalary, input.Allowances, input.Deductions)
	created, err := s.store.Create(ctx, Salary{
		EmployeeID:         emp.ID,
		Month:              input.Month,
		Year:               input.Year,
		BasicSalary:        input.BasicSalary.Round(2),
		Allowances:         totals.Allowances,
		Deductions:         totals.Deductions,
		GrossSalary:        totals.Gross,
		NetSalary:          totals.Net,
		Status:             StatusPending,
		PaymentMethod:      input.PaymentMethod,
		BankName:           strings.TrimSpace(input.BankName),
		AccountNumber:      account,
		Notes:              strings.TrimSpace(input.Notes),
		AllowanceBreakdown: input.Allowances,
		DeductionBreakdown: input.Deductions,
	})
	if err != nil {
		return Salary{}, err
	}
	return s.reveal(created)
}

func (s *Service) Process(ctx context.Context, id string) (Salary, error) {
	return s.transition(ctx, id, StatusProcessed, nil)
}

func (s *Service) Cancel(ctx context.Context, id string) (Salary, error) {
	return s.transition(ctx, id, StatusCancelled, nil)
}

// Pay settles a PROCESSED salary and stamps its payment date.
func (s *Service) Pay(ctx context.Context, id string, input PayInput) (Salary, error) {
	v := validate.New()
	paidAt := v.OptionalDate("paymentDate", input.PaymentDate)
	if input.PaymentMethod != "" {
		v.Check(input.PaymentMethod.Valid(), "paymentMethod", "must be one of BANK_TRANSFER, CASH, CHECK")
	}
	if err := v.Err(); err != nil {
		return Salary{}, err
	}
	if paidAt == nil {
		now := s.now()
		paidAt = &now
	}
	account, err := s.cipher.SealString(strings.TrimSpace(input.AccountNumber))
	if err != nil {
		return Salary{}, fmt.Errorf("seal account number: %w", err)
	}

	paid, err := s.transition(ctx, id, StatusPaid, func(sal *Salary) {
		sal.PaymentDate = paidAt
		if input.PaymentMethod != "" {
			sal.PaymentMethod = input.PaymentMethod
		}
		if bank := strings.TrimSpace(input.BankName); bank != "" {
			sal.BankName = bank
		}
		if account != "" {
			sal.AccountNumber = account
		}
	})
	if err != nil {
		return Salary{}, err
	}
	if s.SlipDir != "" {
		if _, err := s.ArchiveSlip(ctx, paid.ID); err != nil {
			slog.Warn("salary slip archive failed", "salaryId", paid.ID, "err", err)
		}
	}
	return paid, nil
}

func (s *Service) transition(ctx context.Context, id string, to Status, mutate func(*Salary)) (Salary, error) {
	current, err := s.store.Get(ctx, id)
	if err != nil {
		return Salary{}, err
	}
	if !CanTransition(current.Status, to) {
		return Salary{}, ErrInvalidTransition
	}
	from := current.Status
	current.Status = to
	if mutate != nil {
		mutate(&current)
	}
	updated, err := s.store.UpdateStatus(ctx, current, from)
	if err != nil {
		return Salary{}, err
	}
	return s.reveal(updated)
}

func (s *Service) Get(ctx context.Context, id string) (Salary, error) {
	sal, err := s.store.Get(ctx, id)
	if err != nil {
		return Salary{}, err
	}
	return s.reveal(sal)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Salary, int, error) {
	rows, total, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	for i := range rows {
		if rows[i], err = s.reveal(rows[i]); err != nil {
			return nil, 0, err
		}
	}
	return rows, total, nil
}

func (s *Service) Slip(ctx context.Context, id string) (SalarySlip, error) {
	sal, err := s.Get(ctx, id)
	if err != nil {
		return SalarySlip{}, err
	}
	emp, err := s.employees.Get(ctx, sal.EmployeeID)
	if err != nil {
		return SalarySlip{}, err
	}
	return NewSlip(sal, emp), nil
}

func (s *Service) WriteSlipPDF(ctx context.Context, id string, w io.Writer) error {
	slip, err := s.Slip(ctx, id)
	if err != nil {
		return err
	}
	return slip.WritePDF(w)
}

// ArchiveSlip writes the slip PDF to SlipDir and returns its path.
func (s *Service) ArchiveSlip(ctx context.Context, id string) (string, error) {
	var buf bytes.Buffer
	if err := s.WriteSlipPDF(ctx, id, &buf); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.SlipDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(s.SlipDir, id+".pdf")
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

func (s *Service) reveal(sal Salary) (Salary, error) {
	account, err := s.cipher.OpenString(sal.AccountNumber)
	if err != nil {
		return Salary{}, fmt.Errorf("open account number: %w", err)
	}
	sal.AccountNumber = account
	return sal, nil
}
