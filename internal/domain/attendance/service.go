package attendance

import (
	"context"
	"time"

	"hrms/internal/domain/employee"
)

// EmployeeGetter resolves the employee an attendance row belongs to.
type EmployeeGetter interface {
	Get(ctx context.Context, id string) (employee.Employee, error)
}

type Service struct {
	store       StoreAPI
	employees   EmployeeGetter
	standardDay time.Duration
}

func NewService(store StoreAPI, employees EmployeeGetter, standardDay time.Duration) *Service {
	if standardDay <= 0 {
		standardDay = DefaultStandardDay
	}
	return &Service{store: store, employees: employees, standardDay: standardDay}
}

// Mark records attendance for one employee and date. Terminated and resigned
// employees cannot be marked.
func (s *Service) Mark(ctx context.Context, input MarkInput) (Record, error) {
	a, err := input.Attendance(s.standardDay)
	if err != nil {
		return Record{}, err
	}
	emp, err := s.employees.Get(ctx, a.EmployeeID)
	if err != nil {
		return Record{}, err
	}
	if emp.Status.IsTerminal() {
		return Record{}, ErrEmployeeInactive
	}
	saved, err := s.store.Upsert(ctx, a)
	if err != nil {
		return Record{}, err
	}
	return NewRecord(saved, emp), nil
}

// List returns matching attendance joined with each employee.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Record, int, error) {
	rows, total, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	cache := map[string]employee.Employee{}
	out := make([]Record, 0, len(rows))
	for _, a := range rows {
		emp, ok := cache[a.EmployeeID]
		if !ok {
			emp, err = s.employees.Get(ctx, a.EmployeeID)
			if err != nil {
				return nil, 0, err
			}
			cache[a.EmployeeID] = emp
		}
		out = append(out, NewRecord(a, emp))
	}
	return out, total, nil
}
