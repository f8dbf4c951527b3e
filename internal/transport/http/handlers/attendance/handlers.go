package attendancehandler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"hrms/internal/domain/attendance"
	"hrms/internal/domain/auth"
	"hrms/internal/domain/employee"
	"hrms/internal/domain/org"
	"hrms/internal/format"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

const (
	defaultPageSize = 31
	maxPageSize     = 366
)

type Service interface {
	Mark(ctx context.Context, input attendance.MarkInput) (attendance.Record, error)
	List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Record, int, error)
}

type Handler struct {
	Service  Service
	Activity shared.ActivityRecorder
}

func NewHandler(service Service, activity shared.ActivityRecorder) *Handler {
	if activity == nil {
		activity = shared.NopActivity{}
	}
	return &Handler{Service: service, Activity: activity}
}

var attendanceErrors = []shared.ErrorCase{
	{Err: attendance.ErrNotFound, Status: http.StatusNotFound, Code: "not_found"},
	{Err: attendance.ErrEmployeeInactive, Status: http.StatusConflict, Code: "employee_inactive"},
	{Err: employee.ErrNotFound, Status: http.StatusNotFound, Code: "employee_not_found"},
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequirePermission(auth.PermAttendanceRead)).Get("/attendance", h.HandleList)
	r.With(middleware.RequirePermission(auth.PermAttendanceWrite)).Post("/attendance", h.HandleMark)
	r.With(middleware.RequirePermission(auth.PermAttendanceRead)).Get("/attendance/employees/{id}", h.HandleEmployeeHistory)
}

func (h *Handler) HandleMark(w http.ResponseWriter, r *http.Request) {
	requestID := shared.GetRequestID(r)
	var payload attendance.MarkInput
	if !shared.DecodeJSON(w, r, requestID, &payload) {
		return
	}
	record, err := h.Service.Mark(r.Context(), payload)
	if err != nil {
		shared.WriteError(w, r, err, attendanceErrors...)
		return
	}
	user, _ := middleware.GetUser(r.Context())
	h.Activity.Record(r.Context(), org.ActivityAttendanceMarked,
		fmt.Sprintf("%s marked %s on %s", record.Employee.FullName(), format.EnumLabel(string(record.Status)), format.FormatDate(record.Date)),
		user.UserID, user.Email)
	api.Success(w, redact(user, record), requestID)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	employeeID := strings.TrimSpace(r.URL.Query().Get("employeeId"))
	if !auth.SeesAllEmployees(user.Role) {
		employeeID = user.EmployeeID
		if employeeID == "" {
			api.Success(w, api.NewPaginated([]attendance.Record{}, 0, 1, defaultPageSize), shared.GetRequestID(r))
			return
		}
	}
	h.list(w, r, user, employeeID)
}

func (h *Handler) HandleEmployeeHistory(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	employeeID := chi.URLParam(r, "id")
	if !auth.SeesAllEmployees(user.Role) && employeeID != user.EmployeeID {
		api.Fail(w, http.StatusForbidden, "forbidden", "not allowed to view this employee", shared.GetRequestID(r))
		return
	}
	h.list(w, r, user, employeeID)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request, user auth.AuthPayload, employeeID string) {
	requestID := shared.GetRequestID(r)
	params := shared.ParsePagination(r, defaultPageSize, maxPageSize)
	query := r.URL.Query()

	from, err := shared.OptionalDate(query.Get("from"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_filter", "from must be an ISO-8601 date", requestID)
		return
	}
	to, err := shared.OptionalDate(query.Get("to"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_filter", "to must be an ISO-8601 date", requestID)
		return
	}
	status := attendance.Status(strings.ToUpper(strings.TrimSpace(query.Get("status"))))
	if status != "" && !status.Valid() {
		api.Fail(w, http.StatusBadRequest, "invalid_filter", "unknown status", requestID)
		return
	}

	records, total, err := h.Service.List(r.Context(), attendance.ListFilter{
		EmployeeID: employeeID,
		Status:     status,
		From:       from,
		To:         to,
		SortKey:    params.SortKey(),
		SortDesc:   params.Descending(),
		Limit:      params.Limit,
		Offset:     params.Offset(),
	})
	if err != nil {
		shared.WriteError(w, r, err, attendanceErrors...)
		return
	}
	for i := range records {
		records[i] = redact(user, records[i])
	}
	api.Success(w, api.NewPaginated(records, total, params.Page, params.Limit), requestID)
}

// redact drops the joined employee's salary for callers outside payroll.
func redact(user auth.AuthPayload, record attendance.Record) attendance.Record {
	if !auth.HasPermission(user.Role, auth.PermPayrollWrite) && record.Employee.ID != user.EmployeeID {
		record.Employee.Salary = decimal.Zero
	}
	return record
}
