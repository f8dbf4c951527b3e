package orghandler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/auth"
	"hrms/internal/domain/org"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Service interface {
	Departments(ctx context.Context) ([]org.Department, error)
	CreateDepartment(ctx context.Context, input org.CreateDepartmentInput) (org.Department, error)
	RecentActivity(ctx context.Context, limit int) ([]org.RecentActivity, error)
	Stats(ctx context.Context) (org.DashboardStats, error)
}

type Handler struct {
	Service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{Service: service}
}

var orgErrors = []shared.ErrorCase{
	{Err: org.ErrDepartmentNotFound, Status: http.StatusNotFound, Code: "not_found"},
	{Err: org.ErrDuplicateDepartment, Status: http.StatusConflict, Code: "duplicate_department"},
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequirePermission(auth.PermDepartmentsRead)).Get("/departments", h.HandleListDepartments)
	r.With(middleware.RequirePermission(auth.PermDepartmentsWrite)).Post("/departments", h.HandleCreateDepartment)
	r.With(middleware.RequirePermission(auth.PermDashboardRead)).Get("/dashboard/stats", h.HandleStats)
	r.With(middleware.RequirePermission(auth.PermDashboardRead)).Get("/dashboard/activity", h.HandleActivity)
}

func (h *Handler) HandleListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.Service.Departments(r.Context())
	if err != nil {
		shared.WriteError(w, r, err, orgErrors...)
		return
	}
	if departments == nil {
		departments = []org.Department{}
	}
	api.Success(w, departments, shared.GetRequestID(r))
}

func (h *Handler) HandleCreateDepartment(w http.ResponseWriter, r *http.Request) {
	requestID := shared.GetRequestID(r)
	var payload org.CreateDepartmentInput
	if !shared.DecodeJSON(w, r, requestID, &payload) {
		return
	}
	dept, err := h.Service.CreateDepartment(r.Context(), payload)
	if err != nil {
		shared.WriteError(w, r, err, orgErrors...)
		return
	}
	api.Created(w, dept, requestID)
}

func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.Stats(r.Context())
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, stats, shared.GetRequestID(r))
}

func (h *Handler) HandleActivity(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	items, err := h.Service.RecentActivity(r.Context(), limit)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	if items == nil {
		items = []org.RecentActivity{}
	}
	api.Success(w, items, shared.GetRequestID(r))
}
