package metahandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/attendance"
	"hrms/internal/domain/auth"
	"hrms/internal/domain/employee"
	"hrms/internal/domain/leave"
	"hrms/internal/domain/org"
	"hrms/internal/domain/payroll"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

// Options feeds the front end's select inputs.
type Options struct {
	Roles              []shared.SelectOption `json:"roles"`
	Genders            []shared.SelectOption `json:"genders"`
	EmploymentTypes    []shared.SelectOption `json:"employmentTypes"`
	EmployeeStatuses   []shared.SelectOption `json:"employeeStatuses"`
	AttendanceStatuses []shared.SelectOption `json:"attendanceStatuses"`
	LeaveTypes         []shared.SelectOption `json:"leaveTypes"`
	LeaveStatuses      []shared.SelectOption `json:"leaveStatuses"`
	SalaryStatuses     []shared.SelectOption `json:"salaryStatuses"`
	PaymentMethods     []shared.SelectOption `json:"paymentMethods"`
	ActivityTypes      []shared.SelectOption `json:"activityTypes"`
}

func BuildOptions() Options {
	return Options{
		Roles:              shared.EnumOptions(auth.Roles),
		Genders:            shared.EnumOptions(employee.Genders),
		EmploymentTypes:    shared.EnumOptions(employee.EmploymentTypes),
		EmployeeStatuses:   shared.EnumOptions(employee.Statuses),
		AttendanceStatuses: shared.EnumOptions(attendance.Statuses),
		LeaveTypes:         shared.EnumOptions(leave.Types),
		LeaveStatuses:      shared.EnumOptions(leave.Statuses),
		SalaryStatuses:     shared.EnumOptions(payroll.Statuses),
		PaymentMethods:     shared.EnumOptions(payroll.PaymentMethods),
		ActivityTypes:      shared.EnumOptions(org.ActivityTypes),
	}
}

type Handler struct {
	options Options
}

func NewHandler() *Handler {
	return &Handler{options: BuildOptions()}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequireAuth).Get("/meta/options", h.HandleOptions)
}

func (h *Handler) HandleOptions(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.options, shared.GetRequestID(r))
}
