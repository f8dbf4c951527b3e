package employeehandler

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/auth"
	"hrms/internal/domain/employee"
	"hrms/internal/domain/org"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type Service interface {
	Create(ctx context.Context, input employee.CreateEmployeeInput) (employee.Employee, error)
	Update(ctx context.Context, id string, input employee.UpdateEmployeeInput) (employee.Employee, error)
	Get(ctx context.Context, id string) (employee.Employee, error)
	List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, int, error)
}

type Handler struct {
	Service  Service
	Activity shared.ActivityRecorder
	now      func() time.Time
}

func NewHandler(service Service, activity shared.ActivityRecorder) *Handler {
	if activity == nil {
		activity = shared.NopActivity{}
	}
	return &Handler{Service: service, Activity: activity, now: time.Now}
}

var employeeErrors = []shared.ErrorCase{
	{Err: employee.ErrNotFound, Status: http.StatusNotFound, Code: "not_found"},
	{Err: employee.ErrManagerNotFound, Status: http.StatusBadRequest, Code: "manager_not_found"},
	{Err: employee.ErrManagerCycle, Status: http.StatusConflict, Code: "manager_cycle"},
	{Err: employee.ErrDuplicateEmail, Status: http.StatusConflict, Code: "duplicate_email"},
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequirePermission(auth.PermEmployeesRead)).Get("/employees", h.HandleList)
	r.With(middleware.RequirePermission(auth.PermEmployeesWrite)).Post("/employees", h.HandleCreate)
	r.With(middleware.RequirePermission(auth.PermEmployeesRead)).Get("/employees/{id}", h.HandleGet)
	r.With(middleware.RequirePermission(auth.PermEmployeesWrite)).Put("/employees/{id}", h.HandleUpdate)
	r.With(middleware.RequirePermission(auth.PermEmployeesRead)).Get("/employees/{id}/profile", h.HandleProfile)
}

// ownsOrSeesAll reports whether user may read employeeID's records.
func ownsOrSeesAll(user auth.AuthPayload, employeeID string) bool {
	return auth.SeesAllEmployees(user.Role) || (user.EmployeeID != "" && user.EmployeeID == employeeID)
}

// canSeeSalary limits compensation to payroll staff and the employee.
func canSeeSalary(user auth.AuthPayload, employeeID string) bool {
	return auth.HasPermission(user.Role, auth.PermPayrollWrite) || (user.EmployeeID != "" && user.EmployeeID == employeeID)
}

type employeeView struct {
	employee.Employee
	Salary any `json:"salary,omitempty"`
}

func viewFor(user auth.AuthPayload, emp employee.Employee) employeeView {
	view := employeeView{Employee: emp}
	if canSeeSalary(user, emp.ID) {
		view.Salary = emp.Salary
	}
	return view
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	requestID := shared.GetRequestID(r)
	user, _ := middleware.GetUser(r.Context())
	params := shared.ParsePagination(r, defaultPageSize, maxPageSize)
	query := r.URL.Query()

	filter := employee.ListFilter{
		Department: strings.TrimSpace(query.Get("department")),
		Status:     employee.Status(strings.ToUpper(strings.TrimSpace(query.Get("status")))),
		ManagerID:  strings.TrimSpace(query.Get("managerId")),
		Search:     strings.TrimSpace(query.Get("search")),
		SortKey:    params.SortKey(),
		SortDesc:   params.Descending(),
		Limit:      params.Limit,
		Offset:     params.Offset(),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		api.Fail(w, http.StatusBadRequest, "invalid_filter", "unknown status", requestID)
		return
	}

	if !auth.SeesAllEmployees(user.Role) {
		var own []employeeView
		if user.EmployeeID != "" {
			emp, err := h.Service.Get(r.Context(), user.EmployeeID)
			if err != nil {
				shared.WriteError(w, r, err, employeeErrors...)
				return
			}
			own = append(own, viewFor(user, emp))
		}
		api.Success(w, api.NewPaginated(own, len(own), 1, params.Limit), requestID)
		return
	}

	items, total, err := h.Service.List(r.Context(), filter)
	if err != nil {
		shared.WriteError(w, r, err, employeeErrors...)
		return
	}
	views := make([]employeeView, 0, len(items))
	for _, emp := range items {
		views = append(views, viewFor(user, emp))
	}
	api.Success(w, api.NewPaginated(views, total, params.Page, params.Limit), requestID)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := shared.GetRequestID(r)
	var payload employee.CreateEmployeeInput
	if !shared.DecodeJSON(w, r, requestID, &payload) {
		return
	}
	created, err := h.Service.Create(r.Context(), payload)
	if err != nil {
		shared.WriteError(w, r, err, employeeErrors...)
		return
	}
	user, _ := middleware.GetUser(r.Context())
	h.Activity.Record(r.Context(), org.ActivityEmployeeAdded,
		fmt.Sprintf("%s joined %s as %s", created.FullName(), created.Department, created.Designation),
		user.UserID, user.Email)
	api.Created(w, created, requestID)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	id := chi.URLParam(r, "id")
	if !ownsOrSeesAll(user, id) {
		api.Fail(w, http.StatusForbidden, "forbidden", "not allowed to view this employee", shared.GetRequestID(r))
		return
	}
	emp, err := h.Service.Get(r.Context(), id)
	if err != nil {
		shared.WriteError(w, r, err, employeeErrors...)
		return
	}
	api.Success(w, viewFor(user, emp), shared.GetRequestID(r))
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := shared.GetRequestID(r)
	var payload employee.UpdateEmployeeInput
	if !shared.DecodeJSON(w, r, requestID, &payload) {
		return
	}
	updated, err := h.Service.Update(r.Context(), chi.URLParam(r, "id"), payload)
	if err != nil {
		shared.WriteError(w, r, err, employeeErrors...)
		return
	}
	user, _ := middleware.GetUser(r.Context())
	h.Activity.Record(r.Context(), org.ActivityEmployeeUpdated,
		fmt.Sprintf("%s's record was updated", updated.FullName()),
		user.UserID, user.Email)
	api.Success(w, updated, requestID)
}

func (h *Handler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	id := chi.URLParam(r, "id")
	if !ownsOrSeesAll(user, id) {
		api.Fail(w, http.StatusForbidden, "forbidden", "not allowed to view this employee", shared.GetRequestID(r))
		return
	}
	emp, err := h.Service.Get(r.Context(), id)
	if err != nil {
		shared.WriteError(w, r, err, employeeErrors...)
		return
	}
	api.Success(w, employee.NewProfile(emp, h.now(), canSeeSalary(user, emp.ID)), shared.GetRequestID(r))
}
