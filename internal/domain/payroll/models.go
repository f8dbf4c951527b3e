package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"hrms/internal/domain/employee"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusProcessed Status = "PROCESSED"
	StatusPaid      Status = "PAID"
	StatusCancelled Status = "CANCELLED"
)

var Statuses = []Status{StatusPending, StatusProcessed, StatusPaid, StatusCancelled}

func (s Status) Valid() bool {
	for _, candidate := range Statuses {
		if s == candidate {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusPaid || s == StatusCancelled
}

type PaymentMethod string

const (
	PaymentBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentCash         PaymentMethod = "CASH"
	PaymentCheck        PaymentMethod = "CHECK"
)

var PaymentMethods = []PaymentMethod{PaymentBankTransfer, PaymentCash, PaymentCheck}

func (m PaymentMethod) Valid() bool {
	for _, candidate := range PaymentMethods {
		if m == candidate {
			return true
		}
	}
	return false
}

type Allowances struct {
	HRA   decimal.Decimal `json:"hra"`
	DA    decimal.Decimal `json:"da"`
	TA    decimal.Decimal `json:"ta"`
	Other decimal.Decimal `json:"other"`
}

func (a Allowances) Total() decimal.Decimal {
	return decimal.Sum(a.HRA, a.DA, a.TA, a.Other)
}

type Deductions struct {
	PF        decimal.Decimal `json:"pf"`
	Tax       decimal.Decimal `json:"tax"`
	Insurance decimal.Decimal `json:"insurance"`
	Other     decimal.Decimal `json:"other"`
}

func (d Deductions) Total() decimal.Decimal {
	return decimal.Sum(d.PF, d.Tax, d.Insurance, d.Other)
}

// Salary is one employee's pay for one month. Allowances and Deductions are
// the totals of their breakdowns.
type Salary struct {
	ID                 string          `json:"id"`
	EmployeeID         string          `json:"employeeId"`
	Month              int             `json:"month"`
	Year               int             `json:"year"`
	BasicSalary        decimal.Decimal `json:"basicSalary"`
	Allowances         decimal.Decimal `json:"allowances"`
	Deductions         decimal.Decimal `json:"deductions"`
	GrossSalary        decimal.Decimal `json:"grossSalary"`
	NetSalary          decimal.Decimal `json:"netSalary"`
	Status             Status          `json:"status"`
	PaymentDate        *time.Time      `json:"paymentDate,omitempty"`
	PaymentMethod      PaymentMethod   `json:"paymentMethod,omitempty"`
	BankName           string          `json:"bankName,omitempty"`
	AccountNumber      string          `json:"accountNumber,omitempty"`
	Notes              string          `json:"notes,omitempty"`
	AllowanceBreakdown Allowances      `json:"-"`
	DeductionBreakdown Deductions      `json:"-"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

type SalarySlip struct {
	ID          string            `json:"id"`
	Employee    employee.Employee `json:"employee"`
	Salary      Salary            `json:"salary"`
	Month       int               `json:"month"`
	Year        int               `json:"year"`
	BasicSalary decimal.Decimal   `json:"basicSalary"`
	Allowances  Allowances        `json:"allowances"`
	Deductions  Deductions        `json:"deductions"`
	GrossSalary decimal.Decimal   `json:"grossSalary"`
	NetSalary   decimal.Decimal   `json:"netSalary"`
}

type CreateSalaryInput struct {
	EmployeeID    string          `json:"employeeId"`
	Month         int             `json:"month"`
	Year          int             `json:"year"`
	BasicSalary   decimal.Decimal `json:"basicSalary"`
	Allowances    Allowances      `json:"allowances"`
	Deductions    Deductions      `json:"deductions"`
	PaymentMethod PaymentMethod   `json:"paymentMethod,omitempty"`
	BankName      string          `json:"bankName,omitempty"`
	AccountNumber string          `json:"accountNumber,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// PayInput settles a processed salary. PaymentDate defaults to now; the
// method and bank fields override those given at creation when set.
type PayInput struct {
	PaymentDate   string        `json:"paymentDate,omitempty"`
	PaymentMethod PaymentMethod `json:"paymentMethod,omitempty"`
	BankName      string        `json:"bankName,omitempty"`
	AccountNumber string        `json:"accountNumber,omitempty"`
}

type ListFilter struct {
	EmployeeID string
	Month      int
	Year       int
	Status     Status
	SortKey    string
	SortDesc   bool
	Limit      int
	Offset     int
}
