package employee

import (
	"context"
	"fmt"
	"strings"
)

type fakeStore struct {
	seq       int
	employees map[string]Employee
}

func newFakeStore() *fakeStore {
	return &fakeStore{employees: map[string]Employee{}}
}

func (f *fakeStore) NextEmployeeNumber(context.Context) (string, error) {
	f.seq++
	return fmt.Sprintf("EMP-%06d", f.seq), nil
}

func (f *fakeStore) Create(_ context.Context, emp Employee) (Employee, error) {
	for _, existing := range f.employees {
		if strings.EqualFold(existing.Email, emp.Email) {
			return Employee{}, ErrDuplicateEmail
		}
	}
	emp.ID = fmt.Sprintf("id-%d", len(f.employees)+1)
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeStore) Get(_ context.Context, id string) (Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return Employee{}, ErrNotFound
	}
	return emp, nil
}

func (f *fakeStore) List(_ context.Context, filter ListFilter) ([]Employee, int, error) {
	out := make([]Employee, 0, len(f.employees))
	for _, emp := range f.employees {
		if filter.Department != "" && emp.Department != filter.Department {
			continue
		}
		out = append(out, emp)
	}
	return out, len(out), nil
}

func (f *fakeStore) Update(_ context.Context, emp Employee) (Employee, error) {
	if _, ok := f.employees[emp.ID]; !ok {
		return Employee{}, ErrNotFound
	}
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeStore) ManagerOf(_ context.Context, id string) (string, error) {
	emp, ok := f.employees[id]
	if !ok {
		return "", ErrNotFound
	}
	return emp.ManagerID, nil
}
