package leave

import (
	"context"
	"strings"
	"time"

	"hrms/internal/domain/employee"
)

type EmployeeGetter interface {
	Get(ctx context.Context, id string) (employee.Employee, error)
}

type Service struct {
	store     StoreAPI
	employees EmployeeGetter
	now       func() time.Time
}

func NewService(store StoreAPI, employees EmployeeGetter) *Service {
	return &Service{store: store, employees: employees, now: time.Now}
}

// Request files a PENDING leave. Paid types must fit in the remaining balance
// at filing time; approval checks again.
func (s *Service) Request(ctx context.Context, employeeID string, input RequestInput) (Leave, error) {
	l, err := input.Leave(strings.TrimSpace(employeeID))
	if err != nil {
		return Leave{}, err
	}
	emp, err := s.employees.Get(ctx, l.EmployeeID)
	if err != nil {
		return Leave{}, err
	}
	if emp.Status.IsTerminal() {
		return Leave{}, ErrEmployeeInactive
	}

	var created Leave
	err = s.store.InTx(ctx, func(tx StoreAPI) error {
		if l.LeaveType.Paid() {
			balance, err := tx.LockBalance(ctx, l.EmployeeID, l.LeaveType)
			if err != nil {
				return err
			}
			if balance.RemainingDays < l.TotalDays {
				return ErrInsufficientBalance
			}
		}
		created, err = tx.Create(ctx, l)
		return err
	})
	if err != nil {
		return Leave{}, err
	}
	return created, nil
}

// Approve moves a PENDING leave to APPROVED and books its days against the
// balance in the same transaction.
func (s *Service) Approve(ctx context.Context, id string, by Decision) (Leave, error) {
	return s.decide(ctx, id, StatusApproved, by)
}

func (s *Service) Reject(ctx context.Context, id string, by Decision) (Leave, error) {
	return s.decide(ctx, id, StatusRejected, by)
}

// Cancel withdraws a PENDING leave. Ownership is checked by the caller.
func (s *Service) Cancel(ctx context.Context, id string) (Leave, error) {
	return s.decide(ctx, id, StatusCancelled, Decision{})
}

func (s *Service) decide(ctx context.Context, id string, to Status, by Decision) (Leave, error) {
	var updated Leave
	err := s.store.InTx(ctx, func(tx StoreAPI) error {
		l, err := tx.Lock(ctx, id)
		if err != nil {
			return err
		}
		if !CanTransition(l.Status, to) {
			return ErrInvalidTransition
		}
		if to != StatusCancelled && by.EmployeeID != "" && by.EmployeeID == l.EmployeeID {
			return ErrSelfApproval
		}

		if to == StatusApproved && l.LeaveType.Paid() {
			balance, err := tx.LockBalance(ctx, l.EmployeeID, l.LeaveType)
			if err != nil {
				return err
			}
			if balance.RemainingDays < l.TotalDays {
				return ErrInsufficientBalance
			}
			if err := tx.AddUsedDays(ctx, l.EmployeeID, l.LeaveType, l.TotalDays); err != nil {
				return err
			}
		}

		l.Status = to
		if to != StatusCancelled {
			at := s.now()
			l.ApprovedBy = by.UserID
			l.ApprovedAt = &at
		}
		if notes := strings.TrimSpace(by.Notes); notes != "" {
			l.Notes = notes
		}
		updated, err = tx.UpdateStatus(ctx, l)
		return err
	})
	if err != nil {
		return Leave{}, err
	}
	return updated, nil
}

func (s *Service) Get(ctx context.Context, id string) (Leave, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Leave, int, error) {
	return s.store.List(ctx, filter)
}

func (s *Service) Balances(ctx context.Context, employeeID string) ([]Balance, error) {
	if _, err := s.employees.Get(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.store.Balances(ctx, employeeID)
}
