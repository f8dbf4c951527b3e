package attendance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrms/internal/domain/employee"
)

type fakeEmployees map[string]employee.Employee

func (f fakeEmployees) Get(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f[id]
	if !ok {
		return employee.Employee{}, employee.ErrNotFound
	}
	return emp, nil
}

type fakeStore struct {
	rows map[string]Attendance
}

func (f *fakeStore) Upsert(_ context.Context, a Attendance) (Attendance, error) {
	key := a.EmployeeID + "/" + a.Date.Format("2006-01-02")
	if existing, ok := f.rows[key]; ok {
		a.ID = existing.ID
	} else {
		a.ID = key
	}
	f.rows[key] = a
	return a, nil
}

func (f *fakeStore) List(_ context.Context, filter ListFilter) ([]Attendance, int, error) {
	out := []Attendance{}
	for _, a := range f.rows {
		if filter.EmployeeID == "" || a.EmployeeID == filter.EmployeeID {
			out = append(out, a)
		}
	}
	return out, len(out), nil
}

func newTestService() (*Service, *fakeStore) {
	store := &fakeStore{rows: map[string]Attendance{}}
	employees := fakeEmployees{
		"e1": {ID: "e1", FirstName: "Ada", Status: employee.StatusActive},
		"e2": {ID: "e2", FirstName: "Bob", Status: employee.StatusTerminated},
	}
	return NewService(store, employees, 0), store
}

func TestMarkUpsertsPerDate(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	first, err := svc.Mark(ctx, MarkInput{EmployeeID: "e1", Date: "2025-02-03", Status: StatusAbsent})
	require.NoError(t, err)
	second, err := svc.Mark(ctx, MarkInput{EmployeeID: "e1", Date: "2025-02-03", Status: StatusPresent})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Ada", second.Employee.FirstName)
	assert.Len(t, store.rows, 1)
}

func TestMarkRefusesTerminalEmployee(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Mark(context.Background(), MarkInput{EmployeeID: "e2", Date: "2025-02-03", Status: StatusPresent})
	assert.ErrorIs(t, err, ErrEmployeeInactive)
}

func TestMarkUnknownEmployee(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Mark(context.Background(), MarkInput{EmployeeID: "nobody", Date: "2025-02-03", Status: StatusPresent})
	assert.ErrorIs(t, err, employee.ErrNotFound)
}

func TestListJoinsEmployees(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	_, err := svc.Mark(ctx, MarkInput{EmployeeID: "e1", Date: "2025-02-03", Status: StatusPresent})
	require.NoError(t, err)
	_, err = svc.Mark(ctx, MarkInput{EmployeeID: "e1", Date: "2025-02-04", Status: StatusLate})
	require.NoError(t, err)

	records, total, err := svc.List(ctx, ListFilter{EmployeeID: "e1"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	for _, r := range records {
		assert.Equal(t, "e1", r.Employee.ID)
	}
}
