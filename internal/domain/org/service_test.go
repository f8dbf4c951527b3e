package org

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrms/internal/platform/validate"
)

type fakeStore struct {
	departments []Department
	activities  []RecentActivity
	recordErr   error
	lastLimit   int
	statsAt     time.Time
}

func (f *fakeStore) ListDepartments(context.Context) ([]Department, error) {
	return f.departments, nil
}

func (f *fakeStore) CreateDepartment(_ context.Context, dept Department) (Department, error) {
	for _, existing := range f.departments {
		if existing.Name == dept.Name {
			return Department{}, ErrDuplicateDepartment
		}
	}
	dept.ID = "dept-1"
	f.departments = append(f.departments, dept)
	return dept, nil
}

func (f *fakeStore) RecountEmployees(context.Context) (int, error) {
	return len(f.departments), nil
}

func (f *fakeStore) RecordActivity(_ context.Context, a RecentActivity) error {
	if f.recordErr != nil {
		return f.recordErr
	}
	f.activities = append(f.activities, a)
	return nil
}

func (f *fakeStore) RecentActivity(_ context.Context, limit int) ([]RecentActivity, error) {
	f.lastLimit = limit
	return f.activities, nil
}

func (f *fakeStore) DashboardStats(_ context.Context, now time.Time) (DashboardStats, error) {
	f.statsAt = now
	return DashboardStats{TotalEmployees: 3}, nil
}

func TestCreateDepartment(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	dept, err := svc.CreateDepartment(context.Background(), CreateDepartmentInput{Name: "  Engineering "})
	require.NoError(t, err)
	assert.Equal(t, "Engineering", dept.Name)

	_, err = svc.CreateDepartment(context.Background(), CreateDepartmentInput{Name: "Engineering"})
	assert.ErrorIs(t, err, ErrDuplicateDepartment)

	_, err = svc.CreateDepartment(context.Background(), CreateDepartmentInput{})
	assert.Contains(t, validate.Fields(err), "name")
}

func TestRecordIsBestEffort(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)
	ctx := context.Background()

	svc.Record(ctx, ActivityEmployeeAdded, "Ada joined", "u1", "admin@example.com")
	svc.Record(ctx, ActivityType("BOGUS"), "ignored", "u1", "admin@example.com")
	store.recordErr = errors.New("db down")
	svc.Record(ctx, ActivityLeaveApproved, "lost", "u1", "admin@example.com")

	require.Len(t, store.activities, 1)
	assert.Equal(t, ActivityEmployeeAdded, store.activities[0].Type)
}

func TestRecentActivityLimit(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)
	ctx := context.Background()

	_, err := svc.RecentActivity(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultActivityLimit, store.lastLimit)

	_, err = svc.RecentActivity(ctx, 5000)
	require.NoError(t, err)
	assert.Equal(t, maxActivityLimit, store.lastLimit)
}

func TestStatsUsesClock(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)
	fixed := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalEmployees)
	assert.Equal(t, fixed, store.statsAt)
}

func TestAttendanceRate(t *testing.T) {
	assert.Equal(t, 0.0, AttendanceRate(5, 0))
	assert.Equal(t, 66.7, AttendanceRate(2, 3))
	assert.Equal(t, 100.0, AttendanceRate(4, 4))
}
