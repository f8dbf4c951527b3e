package orghandler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrms/internal/domain/auth"
	"hrms/internal/domain/org"
	"hrms/internal/platform/validate"
	"hrms/internal/transport/http/handlers/handlertest"
)

type fakeService struct {
	departments   []org.Department
	activityLimit int
	statsErr      error
}

func (f *fakeService) Departments(context.Context) ([]org.Department, error) {
	return f.departments, nil
}

func (f *fakeService) CreateDepartment(_ context.Context, input org.CreateDepartmentInput) (org.Department, error) {
	if input.Name == "" {
		v := validate.New()
		v.Required("name", input.Name)
		return org.Department{}, v.Err()
	}
	for _, d := range f.departments {
		if d.Name == input.Name {
			return org.Department{}, org.ErrDuplicateDepartment
		}
	}
	dept := org.Department{ID: "d2", Name: input.Name}
	f.departments = append(f.departments, dept)
	return dept, nil
}

func (f *fakeService) RecentActivity(_ context.Context, limit int) ([]org.RecentActivity, error) {
	f.activityLimit = limit
	return nil, nil
}

func (f *fakeService) Stats(context.Context) (org.DashboardStats, error) {
	if f.statsErr != nil {
		return org.DashboardStats{}, f.statsErr
	}
	return org.DashboardStats{TotalEmployees: 12, ActiveEmployees: 10, AttendanceRate: 80}, nil
}

func TestDepartments(t *testing.T) {
	svc := &fakeService{departments: []org.Department{{ID: "d1", Name: "Engineering", EmployeeCount: 4}}}
	router := handlertest.Router(NewHandler(svc))

	rec := handlertest.Do(t, router, http.MethodGet, "/departments", nil, handlertest.User(auth.RoleEmployee, "e1"))
	require.Equal(t, http.StatusOK, rec.Code)
	list := handlertest.Decode[[]org.Department](t, rec)
	require.NotNil(t, list.Data)
	assert.Len(t, *list.Data, 1)

	tests := []struct {
		name     string
		role     auth.UserRole
		body     org.CreateDepartmentInput
		wantCode int
	}{
		{name: "employee cannot create", role: auth.RoleEmployee, body: org.CreateDepartmentInput{Name: "Sales"}, wantCode: http.StatusForbidden},
		{name: "hr creates", role: auth.RoleHR, body: org.CreateDepartmentInput{Name: "Sales"}, wantCode: http.StatusCreated},
		{name: "duplicate", role: auth.RoleHR, body: org.CreateDepartmentInput{Name: "Engineering"}, wantCode: http.StatusConflict},
		{name: "missing name", role: auth.RoleHR, body: org.CreateDepartmentInput{}, wantCode: http.StatusBadRequest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := handlertest.Do(t, router, http.MethodPost, "/departments", tc.body, handlertest.User(tc.role, ""))
			assert.Equal(t, tc.wantCode, rec.Code, rec.Body.String())
		})
	}
}

func TestDashboardStats(t *testing.T) {
	svc := &fakeService{}
	router := handlertest.Router(NewHandler(svc))

	rec := handlertest.Do(t, router, http.MethodGet, "/dashboard/stats", nil, handlertest.User(auth.RoleEmployee, "e1"))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = handlertest.Do(t, router, http.MethodGet, "/dashboard/stats", nil, handlertest.User(auth.RoleManager, ""))
	require.Equal(t, http.StatusOK, rec.Code)
	stats := handlertest.Decode[org.DashboardStats](t, rec)
	require.NotNil(t, stats.Data)
	assert.Equal(t, 12, stats.Data.TotalEmployees)
	assert.InDelta(t, 80, stats.Data.AttendanceRate, 0.001)

	svc.statsErr = errors.New("connection reset")
	rec = handlertest.Do(t, router, http.MethodGet, "/dashboard/stats", nil, handlertest.User(auth.RoleManager, ""))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestDashboardActivity(t *testing.T) {
	svc := &fakeService{}
	router := handlertest.Router(NewHandler(svc))

	rec := handlertest.Do(t, router, http.MethodGet, "/dashboard/activity?limit=5", nil, handlertest.User(auth.RoleHR, ""))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, svc.activityLimit)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}
