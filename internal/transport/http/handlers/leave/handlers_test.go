package leavehandler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrms/internal/domain/auth"
	"hrms/internal/domain/leave"
	"hrms/internal/domain/org"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/handlers/handlertest"
)

type fakeService struct {
	leaves      map[string]leave.Leave
	requestedBy string
	lastFilter  leave.ListFilter
	decisions   []leave.Decision
}

func newFakeService() *fakeService {
	return &fakeService{leaves: map[string]leave.Leave{
		"l1": {
			ID: "l1", EmployeeID: "e1", LeaveType: leave.TypeAnnual, Status: leave.StatusPending,
			StartDate: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
			TotalDays: 3,
		},
	}}
}

func (f *fakeService) Request(_ context.Context, employeeID string, input leave.RequestInput) (leave.Leave, error) {
	f.requestedBy = employeeID
	if input.LeaveType == leave.TypeMaternity {
		return leave.Leave{}, leave.ErrInsufficientBalance
	}
	return leave.Leave{ID: "l2", EmployeeID: employeeID, LeaveType: input.LeaveType, Status: leave.StatusPending}, nil
}

func (f *fakeService) transition(id string, to leave.Status) (leave.Leave, error) {
	l, ok := f.leaves[id]
	if !ok {
		return leave.Leave{}, leave.ErrNotFound
	}
	if !leave.CanTransition(l.Status, to) {
		return leave.Leave{}, leave.ErrInvalidTransition
	}
	l.Status = to
	f.leaves[id] = l
	return l, nil
}

func (f *fakeService) Approve(_ context.Context, id string, by leave.Decision) (leave.Leave, error) {
	f.decisions = append(f.decisions, by)
	return f.transition(id, leave.StatusApproved)
}

func (f *fakeService) Reject(_ context.Context, id string, by leave.Decision) (leave.Leave, error) {
	f.decisions = append(f.decisions, by)
	return f.transition(id, leave.StatusRejected)
}

func (f *fakeService) Cancel(_ context.Context, id string) (leave.Leave, error) {
	return f.transition(id, leave.StatusCancelled)
}

func (f *fakeService) Get(_ context.Context, id string) (leave.Leave, error) {
	l, ok := f.leaves[id]
	if !ok {
		return leave.Leave{}, leave.ErrNotFound
	}
	return l, nil
}

func (f *fakeService) List(_ context.Context, filter leave.ListFilter) ([]leave.Leave, int, error) {
	f.lastFilter = filter
	return []leave.Leave{f.leaves["l1"]}, 1, nil
}

func (f *fakeService) Balances(_ context.Context, employeeID string) ([]leave.Balance, error) {
	return []leave.Balance{leave.NewBalance(employeeID, leave.TypeAnnual, 20, 3)}, nil
}

// reporting says m1 manages e1 and nobody else.
type reporting struct{}

func (reporting) IsManagerOf(_ context.Context, managerID, employeeID string) (bool, error) {
	return managerID == "m1" && employeeID == "e1", nil
}

type fakeActivity struct{ kinds []org.ActivityType }

func (f *fakeActivity) Record(_ context.Context, kind org.ActivityType, _, _, _ string) {
	f.kinds = append(f.kinds, kind)
}

func newRouter() (http.Handler, *fakeService, *fakeActivity) {
	svc := newFakeService()
	activity := &fakeActivity{}
	return handlertest.Router(NewHandler(svc, reporting{}, activity)), svc, activity
}

func TestHandleRequestFilesForCaller(t *testing.T) {
	router, svc, _ := newRouter()
	body := leave.RequestInput{EmployeeID: "e2", LeaveType: leave.TypeSick, StartDate: "2025-03-03", EndDate: "2025-03-03", Reason: "flu"}

	rec := handlertest.Do(t, router, http.MethodPost, "/leaves", body, handlertest.User(auth.RoleEmployee, "e1"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "e1", svc.requestedBy, "employees cannot file for others")

	rec = handlertest.Do(t, router, http.MethodPost, "/leaves", body, handlertest.User(auth.RoleHR, "h1"))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "e2", svc.requestedBy)

	body.EmployeeID = ""
	rec = handlertest.Do(t, router, http.MethodPost, "/leaves", body, handlertest.User(auth.RoleAdmin, ""))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "no_employee", handlertest.Decode[any](t, rec).Error)

	body.LeaveType = leave.TypeMaternity
	rec = handlertest.Do(t, router, http.MethodPost, "/leaves", body, handlertest.User(auth.RoleEmployee, "e1"))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "insufficient_balance", handlertest.Decode[any](t, rec).Error)
}

func TestHandleListScopesEmployees(t *testing.T) {
	router, svc, _ := newRouter()

	rec := handlertest.Do(t, router, http.MethodGet, "/leaves?employeeId=e7&status=pending", nil, handlertest.User(auth.RoleEmployee, "e1"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "e1", svc.lastFilter.EmployeeID)
	assert.Equal(t, leave.StatusPending, svc.lastFilter.Status)

	rec = handlertest.Do(t, router, http.MethodGet, "/leaves?employeeId=e7", nil, handlertest.User(auth.RoleHR, ""))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "e7", svc.lastFilter.EmployeeID)
	resp := handlertest.Decode[api.Paginated[leave.Leave]](t, rec)
	require.NotNil(t, resp.Data)
	assert.Len(t, resp.Data.Data, 1)

	rec = handlertest.Do(t, router, http.MethodGet, "/leaves?leaveType=SABBATICAL", nil, handlertest.User(auth.RoleHR, ""))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestApproveRequiresManagerOfRequester(t *testing.T) {
	tests := []struct {
		name     string
		user     *auth.AuthPayload
		wantCode int
	}{
		{name: "employee lacks permission", user: handlertest.User(auth.RoleEmployee, "e2"), wantCode: http.StatusForbidden},
		{name: "other manager", user: handlertest.User(auth.RoleManager, "m2"), wantCode: http.StatusForbidden},
		{name: "direct manager", user: handlertest.User(auth.RoleManager, "m1"), wantCode: http.StatusOK},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router, _, activity := newRouter()
			rec := handlertest.Do(t, router, http.MethodPost, "/leaves/l1/approve", nil, tc.user)
			assert.Equal(t, tc.wantCode, rec.Code, rec.Body.String())
			if tc.wantCode == http.StatusOK {
				assert.Equal(t, []org.ActivityType{org.ActivityLeaveApproved}, activity.kinds)
			} else {
				assert.Empty(t, activity.kinds)
			}
		})
	}
}

func TestRejectCarriesNotesAndBlocksSecondDecision(t *testing.T) {
	router, svc, activity := newRouter()
	hr := handlertest.User(auth.RoleHR, "h1")

	rec := handlertest.Do(t, router, http.MethodPost, "/leaves/l1/reject", map[string]string{"notes": "peak season"}, hr)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Len(t, svc.decisions, 1)
	assert.Equal(t, "peak season", svc.decisions[0].Notes)
	assert.Equal(t, "h1", svc.decisions[0].EmployeeID)
	assert.Equal(t, []org.ActivityType{org.ActivityLeaveRejected}, activity.kinds)

	rec = handlertest.Do(t, router, http.MethodPost, "/leaves/l1/approve", nil, hr)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "invalid_transition", handlertest.Decode[any](t, rec).Error)

	rec = handlertest.Do(t, router, http.MethodPost, "/leaves/missing/approve", nil, hr)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCancelChecksOwnership(t *testing.T) {
	router, _, _ := newRouter()

	rec := handlertest.Do(t, router, http.MethodPost, "/leaves/l1/cancel", nil, handlertest.User(auth.RoleEmployee, "e2"))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = handlertest.Do(t, router, http.MethodPost, "/leaves/l1/cancel", nil, handlertest.User(auth.RoleEmployee, "e1"))
	require.Equal(t, http.StatusOK, rec.Code)
	resp := handlertest.Decode[leave.Leave](t, rec)
	require.NotNil(t, resp.Data)
	assert.Equal(t, leave.StatusCancelled, resp.Data.Status)
}

func TestHandleBalances(t *testing.T) {
	router, _, _ := newRouter()

	rec := handlertest.Do(t, router, http.MethodGet, "/leaves/balances/e2", nil, handlertest.User(auth.RoleEmployee, "e1"))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = handlertest.Do(t, router, http.MethodGet, "/leaves/balances/e1", nil, handlertest.User(auth.RoleEmployee, "e1"))
	require.Equal(t, http.StatusOK, rec.Code)
	resp := handlertest.Decode[[]leave.Balance](t, rec)
	require.NotNil(t, resp.Data)
	require.Len(t, *resp.Data, 1)
	assert.Equal(t, 17, (*resp.Data)[0].RemainingDays)
}
