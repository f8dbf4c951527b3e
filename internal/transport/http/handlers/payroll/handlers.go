package payrollhandler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/auth"
	"hrms/internal/domain/employee"
	"hrms/internal/domain/org"
	"hrms/internal/domain/payroll"
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
	Create(ctx context.Context, input payroll.CreateSalaryInput) (payroll.Salary, error)
	Process(ctx context.Context, id string) (payroll.Salary, error)
	Pay(ctx context.Context, id string, input payroll.PayInput) (payroll.Salary, error)
	Cancel(ctx context.Context, id string) (payroll.Salary, error)
	Get(ctx context.Context, id string) (payroll.Salary, error)
	List(ctx context.Context, filter payroll.ListFilter) ([]payroll.Salary, int, error)
	Slip(ctx context.Context, id string) (payroll.SalarySlip, error)
	WriteSlipPDF(ctx context.Context, id string, w io.Writer) error
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

var payrollErrors = []shared.ErrorCase{
	{Err: payroll.ErrNotFound, Status: http.StatusNotFound, Code: "not_found"},
	{Err: payroll.ErrDuplicate, Status: http.StatusConflict, Code: "duplicate_salary"},
	{Err: payroll.ErrInvalidTransition, Status: http.StatusConflict, Code: "invalid_transition"},
	{Err: payroll.ErrEmployeeInactive, Status: http.StatusConflict, Code: "employee_inactive"},
	{Err: employee.ErrNotFound, Status: http.StatusNotFound, Code: "employee_not_found"},
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequirePermission(auth.PermPayrollRead)).Get("/salaries", h.HandleList)
	r.With(middleware.RequirePermission(auth.PermPayrollWrite)).Post("/salaries", h.HandleCreate)
	r.With(middleware.RequirePermission(auth.PermPayrollRead)).Get("/salaries/{id}", h.HandleGet)
	r.With(middleware.RequirePermission(auth.PermPayrollWrite)).Post("/salaries/{id}/process", h.HandleProcess)
	r.With(middleware.RequirePermission(auth.PermPayrollWrite)).Post("/salaries/{id}/pay", h.HandlePay)
	r.With(middleware.RequirePermission(auth.PermPayrollWrite)).Post("/salaries/{id}/cancel", h.HandleCancel)
	r.With(middleware.RequirePermission(auth.PermPayrollRead)).Get("/salaries/{id}/slip", h.HandleSlip)
	r.With(middleware.RequirePermission(auth.PermPayrollRead)).Get("/salaries/{id}/slip.pdf", h.HandleSlipPDF)
}

// Only payroll staff read salaries beyond their own.
func seesAllSalaries(user auth.AuthPayload) bool {
	return auth.HasPermission(user.Role, auth.PermPayrollWrite)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	requestID := shared.GetRequestID(r)
	user, _ := middleware.GetUser(r.Context())
	params := shared.ParsePagination(r, defaultPageSize, maxPageSize)
	query := r.URL.Query()

	filter := payroll.ListFilter{
		EmployeeID: strings.TrimSpace(query.Get("employeeId")),
		Status:     payroll.Status(strings.ToUpper(strings.TrimSpace(query.Get("status")))),
		SortKey:    params.SortKey(),
		SortDesc:   params.Descending(),
		Limit:      params.Limit,
		Offset:     params.Offset(),
	}
	if raw := query.Get("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil || month < 1 || month > 12 {
			api.Fail(w, http.StatusBadRequest, "invalid_filter", "month must be 1-12", requestID)
			return
		}
		filter.Month = month
	}
	if raw := query.Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil || year < 1 {
			api.Fail(w, http.StatusBadRequest, "invalid_filter", "year must be a positive number", requestID)
			return
		}
		filter.Year = year
	}
	if filter.Status != "" && !filter.Status.Valid() {
		api.Fail(w, http.StatusBadRequest, "invalid_filter", "unknown status", requestID)
		return
	}
	if !seesAllSalaries(user) {
		if user.EmployeeID == "" {
			api.Success(w, api.NewPaginated([]payroll.Salary{}, 0, 1, params.Limit), requestID)
			return
		}
		filter.EmployeeID = user.EmployeeID
	}

	items, total, err := h.Service.List(r.Context(), filter)
	if err != nil {
		shared.WriteError(w, r, err, payrollErrors...)
		return
	}
	api.Success(w, api.NewPaginated(items, total, params.Page, params.Limit), requestID)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := shared.GetRequestID(r)
	var payload payroll.CreateSalaryInput
	if !shared.DecodeJSON(w, r, requestID, &payload) {
		return
	}
	created, err := h.Service.Create(r.Context(), payload)
	if err != nil {
		shared.WriteError(w, r, err, payrollErrors...)
		return
	}
	api.Created(w, created, requestID)
}

// owned loads the salary and refuses callers who may not see it.
func (h *Handler) owned(w http.ResponseWriter, r *http.Request) (payroll.Salary, bool) {
	user, _ := middleware.GetUser(r.Context())
	sal, err := h.Service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		shared.WriteError(w, r, err, payrollErrors...)
		return payroll.Salary{}, false
	}
	if !seesAllSalaries(user) && (user.EmployeeID == "" || sal.EmployeeID != user.EmployeeID) {
		// Report someone else's salary as missing rather than forbidden.
		api.Fail(w, http.StatusNotFound, "not_found", payroll.ErrNotFound.Error(), shared.GetRequestID(r))
		return payroll.Salary{}, false
	}
	return sal, true
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	sal, ok := h.owned(w, r)
	if !ok {
		return
	}
	api.Success(w, sal, shared.GetRequestID(r))
}

func (h *Handler) HandleProcess(w http.ResponseWriter, r *http.Request) {
	processed, err := h.Service.Process(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		shared.WriteError(w, r, err, payrollErrors...)
		return
	}
	user, _ := middleware.GetUser(r.Context())
	h.Activity.Record(r.Context(), org.ActivitySalaryProcessed,
		fmt.Sprintf("Salary of %s processed for %02d/%d", format.FormatCurrency(processed.NetSalary), processed.Month, processed.Year),
		user.UserID, user.Email)
	api.Success(w, processed, shared.GetRequestID(r))
}

func (h *Handler) HandlePay(w http.ResponseWriter, r *http.Request) {
	requestID := shared.GetRequestID(r)
	var payload payroll.PayInput
	if r.ContentLength != 0 && !shared.DecodeJSON(w, r, requestID, &payload) {
		return
	}
	paid, err := h.Service.Pay(r.Context(), chi.URLParam(r, "id"), payload)
	if err != nil {
		shared.WriteError(w, r, err, payrollErrors...)
		return
	}
	api.Success(w, paid, requestID)
}

func (h *Handler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	cancelled, err := h.Service.Cancel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		shared.WriteError(w, r, err, payrollErrors...)
		return
	}
	api.Success(w, cancelled, shared.GetRequestID(r))
}

func (h *Handler) HandleSlip(w http.ResponseWriter, r *http.Request) {
	sal, ok := h.owned(w, r)
	if !ok {
		return
	}
	slip, err := h.Service.Slip(r.Context(), sal.ID)
	if err != nil {
		shared.WriteError(w, r, err, payrollErrors...)
		return
	}
	api.Success(w, slip, shared.GetRequestID(r))
}

func (h *Handler) HandleSlipPDF(w http.ResponseWriter, r *http.Request) {
	sal, ok := h.owned(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := h.Service.WriteSlipPDF(r.Context(), sal.ID, &buf); err != nil {
		shared.WriteError(w, r, err, payrollErrors...)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="salary-slip-%d-%02d-%s.pdf"`, sal.Year, sal.Month, sal.ID))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("write salary slip failed", "salaryId", sal.ID, "err", err)
	}
}
