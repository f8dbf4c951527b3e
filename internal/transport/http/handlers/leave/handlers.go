package leavehandler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/auth"
	"hrms/internal/domain/employee"
	"hrms/internal/domain/leave"
	"hrms/internal/domain/org"
	"hrms/internal/format"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type Service interface {
	Request(ctx context.Context, employeeID string, input leave.RequestInput) (leave.Leave, error)
	Approve(ctx context.Context, id string, by leave.Decision) (leave.Leave, error)
	Reject(ctx context.Context, id string, by leave.Decision) (leave.Leave, error)
	Cancel(ctx context.Context, id string) (leave.Leave, error)
	Get(ctx context.Context, id string) (leave.Leave, error)
	List(ctx context.Context, filter leave.ListFilter) ([]leave.Leave, int, error)
	Balances(ctx context.Context, employeeID string) ([]leave.Balance, error)
}

// Reporting answers whether one employee manages another.
type Reporting interface {
	IsManagerOf(ctx context.Context, managerID, employeeID string) (bool, error)
}

type Handler struct {
	Service   Service
	Reporting Reporting
	Activity  shared.ActivityRecorder
}

func NewHandler(service Service, reporting Reporting, activity shared.ActivityRecorder) *Handler {
	if activity == nil {
		activity = shared.NopActivity{}
	}
	return &Handler{Service: service, Reporting: reporting, Activity: activity}
}

var leaveErrors = []shared.ErrorCase{
	{Err: leave.ErrNotFound, Status: http.StatusNotFound, Code: "not_found"},
	{Err: leave.ErrInvalidTransition, Status: http.StatusConflict, Code: "invalid_transition", Message: "leave is no longer pending"},
	{Err: leave.ErrInsufficientBalance, Status: http.StatusConflict, Code: "insufficient_balance"},
	{Err: leave.ErrSelfApproval, Status: http.StatusForbidden, Code: "self_approval"},
	{Err: leave.ErrEmployeeInactive, Status: http.StatusConflict, Code: "employee_inactive"},
	{Err: leave.ErrInvalidRange, Status: http.StatusBadRequest, Code: "invalid_range"},
	{Err: employee.ErrNotFound, Status: http.StatusNotFound, Code: "employee_not_found"},
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequirePermission(auth.PermLeaveRead)).Get("/leaves", h.HandleList)
	r.With(middleware.RequirePermission(auth.PermLeaveWrite)).Post("/leaves", h.HandleRequest)
	r.With(middleware.RequirePermission(auth.PermLeaveApprove)).Post("/leaves/{id}/approve", h.HandleApprove)
	r.With(middleware.RequirePermission(auth.PermLeaveApprove)).Post("/leaves/{id}/reject", h.HandleReject)
	r.With(middleware.RequirePermission(auth.PermLeaveWrite)).Post("/leaves/{id}/cancel", h.HandleCancel)
	r.With(middleware.RequirePermission(auth.PermLeaveRead)).Get("/leaves/balances/{employeeId}", h.HandleBalances)
}

func isHRStaff(role auth.UserRole) bool {
	return role == auth.RoleAdmin || role == auth.RoleHR
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	requestID := shared.GetRequestID(r)
	user, _ := middleware.GetUser(r.Context())
	params := shared.ParsePagination(r, defaultPageSize, maxPageSize)
	query := r.URL.Query()

	filter := leave.ListFilter{
		EmployeeID: strings.TrimSpace(query.Get("employeeId")),
		Status:     leave.Status(strings.ToUpper(strings.TrimSpace(query.Get("status")))),
		LeaveType:  leave.Type(strings.ToUpper(strings.TrimSpace(query.Get("leaveType")))),
		SortKey:    params.SortKey(),
		SortDesc:   params.Descending(),
		Limit:      params.Limit,
		Offset:     params.Offset(),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		api.Fail(w, http.StatusBadRequest, "invalid_filter", "unknown status", requestID)
		return
	}
	if filter.LeaveType != "" && !filter.LeaveType.Valid() {
		api.Fail(w, http.StatusBadRequest, "invalid_filter", "unknown leave type", requestID)
		return
	}
	if !auth.SeesAllEmployees(user.Role) {
		if user.EmployeeID == "" {
			api.Success(w, api.NewPaginated([]leave.Leave{}, 0, 1, params.Limit), requestID)
			return
		}
		filter.EmployeeID = user.EmployeeID
	}

	items, total, err := h.Service.List(r.Context(), filter)
	if err != nil {
		shared.WriteError(w, r, err, leaveErrors...)
		return
	}
	api.Success(w, api.NewPaginated(items, total, params.Page, params.Limit), requestID)
}

// HandleRequest files a leave for the caller. HR staff may file on behalf of
// another employee by naming employeeId.
func (h *Handler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	requestID := shared.GetRequestID(r)
	var payload leave.RequestInput
	if !shared.DecodeJSON(w, r, requestID, &payload) {
		return
	}
	user, _ := middleware.GetUser(r.Context())
	employeeID := user.EmployeeID
	if target := strings.TrimSpace(payload.EmployeeID); target != "" && isHRStaff(user.Role) {
		employeeID = target
	}
	if employeeID == "" {
		api.Fail(w, http.StatusBadRequest, "no_employee", "caller has no employee record", requestID)
		return
	}

	created, err := h.Service.Request(r.Context(), employeeID, payload)
	if err != nil {
		shared.WriteError(w, r, err, leaveErrors...)
		return
	}
	api.Created(w, created, requestID)
}

func (h *Handler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, leave.StatusApproved)
}

func (h *Handler) HandleReject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, leave.StatusRejected)
}

type decisionPayload struct {
	Notes string `json:"notes,omitempty"`
}

func (h *Handler) decide(w http.ResponseWriter, r *http.Request, to leave.Status) {
	requestID := shared.GetRequestID(r)
	var payload decisionPayload
	if r.ContentLength != 0 && !shared.DecodeJSON(w, r, requestID, &payload) {
		return
	}
	user, _ := middleware.GetUser(r.Context())
	id := chi.URLParam(r, "id")

	// Managers decide only for their direct reports.
	if !isHRStaff(user.Role) {
		current, err := h.Service.Get(r.Context(), id)
		if err != nil {
			shared.WriteError(w, r, err, leaveErrors...)
			return
		}
		manages, err := h.Reporting.IsManagerOf(r.Context(), user.EmployeeID, current.EmployeeID)
		if err != nil {
			shared.WriteError(w, r, err, leaveErrors...)
			return
		}
		if !manages {
			api.Fail(w, http.StatusForbidden, "forbidden", "only the employee's manager may decide", requestID)
			return
		}
	}

	by := leave.Decision{UserID: user.UserID, EmployeeID: user.EmployeeID, Notes: payload.Notes}
	var (
		decided  leave.Leave
		err      error
		activity org.ActivityType
	)
	if to == leave.StatusApproved {
		decided, err = h.Service.Approve(r.Context(), id, by)
		activity = org.ActivityLeaveApproved
	} else {
		decided, err = h.Service.Reject(r.Context(), id, by)
		activity = org.ActivityLeaveRejected
	}
	if err != nil {
		shared.WriteError(w, r, err, leaveErrors...)
		return
	}
	h.Activity.Record(r.Context(), activity,
		fmt.Sprintf("%s leave from %s to %s %s", format.EnumLabel(string(decided.LeaveType)),
			format.FormatDate(decided.StartDate), format.FormatDate(decided.EndDate), strings.ToLower(string(decided.Status))),
		user.UserID, user.Email)
	api.Success(w, decided, requestID)
}

// HandleCancel withdraws a pending leave. Only its owner or HR staff may.
func (h *Handler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	requestID := shared.GetRequestID(r)
	user, _ := middleware.GetUser(r.Context())
	id := chi.URLParam(r, "id")

	current, err := h.Service.Get(r.Context(), id)
	if err != nil {
		shared.WriteError(w, r, err, leaveErrors...)
		return
	}
	if !isHRStaff(user.Role) && (user.EmployeeID == "" || current.EmployeeID != user.EmployeeID) {
		api.Fail(w, http.StatusForbidden, "forbidden", "only the requester may cancel", requestID)
		return
	}
	cancelled, err := h.Service.Cancel(r.Context(), id)
	if err != nil {
		shared.WriteError(w, r, err, leaveErrors...)
		return
	}
	api.Success(w, cancelled, requestID)
}

func (h *Handler) HandleBalances(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	employeeID := chi.URLParam(r, "employeeId")
	if !auth.SeesAllEmployees(user.Role) && employeeID != user.EmployeeID {
		api.Fail(w, http.StatusForbidden, "forbidden", "not allowed to view this employee", shared.GetRequestID(r))
		return
	}
	balances, err := h.Service.Balances(r.Context(), employeeID)
	if err != nil {
		shared.WriteError(w, r, err, leaveErrors...)
		return
	}
	if balances == nil {
		balances = []leave.Balance{}
	}
	api.Success(w, balances, shared.GetRequestID(r))
}
