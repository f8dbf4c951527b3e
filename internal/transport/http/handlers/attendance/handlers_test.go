package attendancehandler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrms/internal/domain/attendance"
	"hrms/internal/domain/auth"
	"hrms/internal/domain/employee"
	"hrms/internal/domain/org"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/handlers/handlertest"
)

type fakeService struct {
	lastFilter attendance.ListFilter
	inactive   bool
}

var ada = employee.Employee{ID: "e1", FirstName: "Ada", LastName: "Lovelace", Salary: decimal.NewFromInt(95000)}

func (f *fakeService) Mark(_ context.Context, input attendance.MarkInput) (attendance.Record, error) {
	if f.inactive {
		return attendance.Record{}, attendance.ErrEmployeeInactive
	}
	if input.EmployeeID != ada.ID {
		return attendance.Record{}, employee.ErrNotFound
	}
	return attendance.Record{
		ID:       "a1",
		Employee: ada,
		Date:     time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		Status:   input.Status,
	}, nil
}

func (f *fakeService) List(_ context.Context, filter attendance.ListFilter) ([]attendance.Record, int, error) {
	f.lastFilter = filter
	return []attendance.Record{{ID: "a1", Employee: ada, Status: attendance.StatusPresent}}, 1, nil
}

type fakeActivity struct{ kinds []org.ActivityType }

func (f *fakeActivity) Record(_ context.Context, kind org.ActivityType, _, _, _ string) {
	f.kinds = append(f.kinds, kind)
}

func TestHandleMark(t *testing.T) {
	svc := &fakeService{}
	activity := &fakeActivity{}
	router := handlertest.Router(NewHandler(svc, activity))
	body := attendance.MarkInput{EmployeeID: "e1", Date: "2025-03-03", Status: attendance.StatusPresent}

	rec := handlertest.Do(t, router, http.MethodPost, "/attendance", body, handlertest.User(auth.RoleEmployee, "e1"))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = handlertest.Do(t, router, http.MethodPost, "/attendance", body, handlertest.User(auth.RoleManager, "e9"))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, []org.ActivityType{org.ActivityAttendanceMarked}, activity.kinds)

	resp := handlertest.Decode[attendance.Record](t, rec)
	require.NotNil(t, resp.Data)
	assert.True(t, resp.Data.Employee.Salary.IsZero(), "managers do not see salary")

	body.EmployeeID = "ghost"
	rec = handlertest.Do(t, router, http.MethodPost, "/attendance", body, handlertest.User(auth.RoleHR, ""))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	svc.inactive = true
	rec = handlertest.Do(t, router, http.MethodPost, "/attendance", body, handlertest.User(auth.RoleHR, ""))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "employee_inactive", handlertest.Decode[any](t, rec).Error)
}

func TestHandleListFilters(t *testing.T) {
	svc := &fakeService{}
	router := handlertest.Router(NewHandler(svc, nil))

	rec := handlertest.Do(t, router, http.MethodGet, "/attendance?employeeId=e1&status=late&from=2025-03-01&to=2025-03-31",
		nil, handlertest.User(auth.RoleHR, ""))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "e1", svc.lastFilter.EmployeeID)
	assert.Equal(t, attendance.StatusLate, svc.lastFilter.Status)
	require.NotNil(t, svc.lastFilter.From)
	require.NotNil(t, svc.lastFilter.To)
	assert.Equal(t, 31, svc.lastFilter.To.Day())

	resp := handlertest.Decode[api.Paginated[attendance.Record]](t, rec)
	require.NotNil(t, resp.Data)
	assert.Equal(t, 1, resp.Data.Total)
	assert.True(t, resp.Data.Data[0].Employee.Salary.Equal(decimal.NewFromInt(95000)))

	rec = handlertest.Do(t, router, http.MethodGet, "/attendance?from=yesterday", nil, handlertest.User(auth.RoleHR, ""))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEmployeesOnlySeeTheirOwnAttendance(t *testing.T) {
	svc := &fakeService{}
	router := handlertest.Router(NewHandler(svc, nil))
	user := handlertest.User(auth.RoleEmployee, "e1")

	rec := handlertest.Do(t, router, http.MethodGet, "/attendance?employeeId=e2", nil, user)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "e1", svc.lastFilter.EmployeeID)

	rec = handlertest.Do(t, router, http.MethodGet, "/attendance/employees/e2", nil, user)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = handlertest.Do(t, router, http.MethodGet, "/attendance/employees/e1", nil, user)
	assert.Equal(t, http.StatusOK, rec.Code)
}
