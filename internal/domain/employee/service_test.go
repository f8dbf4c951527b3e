package employee

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceCreateAllocatesNumbers(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	changes := 0
	svc.OnChange = func() { changes++ }
	ctx := context.Background()

	first, err := svc.Create(ctx, validCreateInput())
	require.NoError(t, err)
	input := validCreateInput()
	input.Email = "grace@example.com"
	second, err := svc.Create(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, "EMP-000001", first.EmployeeID)
	assert.Equal(t, "EMP-000002", second.EmployeeID)
	assert.Equal(t, 2, changes)
}

func TestServiceCreateUnknownManager(t *testing.T) {
	svc := NewService(newFakeStore())
	input := validCreateInput()
	input.ManagerID = "ghost"

	_, err := svc.Create(context.Background(), input)
	assert.ErrorIs(t, err, ErrManagerNotFound)
}

func TestServiceUpdateRejectsCycle(t *testing.T) {
	svc := NewService(newFakeStore())
	ctx := context.Background()

	boss, err := svc.Create(ctx, validCreateInput())
	require.NoError(t, err)
	input := validCreateInput()
	input.Email = "report@example.com"
	input.ManagerID = boss.ID
	report, err := svc.Create(ctx, input)
	require.NoError(t, err)

	managerID := report.ID
	_, err = svc.Update(ctx, boss.ID, UpdateEmployeeInput{ManagerID: &managerID})
	assert.ErrorIs(t, err, ErrManagerCycle)

	isManager, err := svc.IsManagerOf(ctx, boss.ID, report.ID)
	require.NoError(t, err)
	assert.True(t, isManager)
}

func TestServiceUpdateNotFound(t *testing.T) {
	svc := NewService(newFakeStore())
	_, err := svc.Update(context.Background(), "missing", UpdateEmployeeInput{})
	assert.ErrorIs(t, err, ErrNotFound)
}
