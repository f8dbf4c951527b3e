package employee

import (
	"context"
	"fmt"
)

type Service struct {
	store StoreAPI
	// OnChange runs after every successful write; the server uses it to
	// schedule a department headcount refresh.
	OnChange func()
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, input CreateEmployeeInput) (Employee, error) {
	emp, err := input.Employee()
	if err != nil {
		return Employee{}, err
	}
	if err := CheckManager(ctx, "", emp.ManagerID, s.store.ManagerOf); err != nil {
		return Employee{}, err
	}
	number, err := s.store.NextEmployeeNumber(ctx)
	if err != nil {
		return Employee{}, err
	}
	emp.EmployeeID = number

	created, err := s.store.Create(ctx, emp)
	if err != nil {
		return Employee{}, fmt.Errorf("create employee: %w", err)
	}
	s.changed()
	return created, nil
}

func (s *Service) Update(ctx context.Context, id string, input UpdateEmployeeInput) (Employee, error) {
	emp, err := s.store.Get(ctx, id)
	if err != nil {
		return Employee{}, err
	}
	previousManager := emp.ManagerID
	if err := input.Apply(&emp); err != nil {
		return Employee{}, err
	}
	if emp.ManagerID != previousManager {
		if err := CheckManager(ctx, emp.ID, emp.ManagerID, s.store.ManagerOf); err != nil {
			return Employee{}, err
		}
	}

	updated, err := s.store.Update(ctx, emp)
	if err != nil {
		return Employee{}, fmt.Errorf("update employee: %w", err)
	}
	s.changed()
	return updated, nil
}

func (s *Service) Get(ctx context.Context, id string) (Employee, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Employee, int, error) {
	return s.store.List(ctx, filter)
}

// IsManagerOf reports whether managerID is the direct manager of employeeID.
func (s *Service) IsManagerOf(ctx context.Context, managerID, employeeID string) (bool, error) {
	current, err := s.store.ManagerOf(ctx, employeeID)
	if err != nil {
		return false, err
	}
	return managerID != "" && current == managerID, nil
}

func (s *Service) changed() {
	if s.OnChange != nil {
		s.OnChange()
	}
}
