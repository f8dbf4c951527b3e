package authhandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/auth"
	"hrms/internal/platform/validate"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Service interface {
	Login(ctx context.Context, creds auth.LoginCredentials) (auth.LoginResult, error)
	Register(ctx context.Context, input auth.RegisterInput) (auth.User, error)
	ChangePassword(ctx context.Context, userID string, input auth.ChangePasswordInput) error
	Me(ctx context.Context, userID string) (auth.User, error)
}

type Handler struct {
	Service Service
	// LoginLimit guards the login route when set.
	LoginLimit func(http.Handler) http.Handler
}

func NewHandler(service Service, loginLimit func(http.Handler) http.Handler) *Handler {
	return &Handler{Service: service, LoginLimit: loginLimit}
}

var authErrors = []shared.ErrorCase{
	{Err: auth.ErrInvalidCredentials, Status: http.StatusUnauthorized, Code: "invalid_credentials"},
	{Err: auth.ErrUserNotFound, Status: http.StatusNotFound, Code: "not_found"},
	{Err: auth.ErrEmailTaken, Status: http.StatusConflict, Code: "email_taken"},
	{Err: auth.ErrInvalidRole, Status: http.StatusBadRequest, Code: "invalid_role"},
	{Err: auth.ErrWeakPassword, Status: http.StatusBadRequest, Code: "weak_password"},
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	login := r
	if h.LoginLimit != nil {
		login = r.With(h.LoginLimit)
	}
	login.Post("/auth/login", h.HandleLogin)
	r.With(middleware.RequireAuth).Get("/auth/me", h.HandleMe)
	r.With(middleware.RequireAuth).Post("/auth/password", h.HandleChangePassword)
	r.With(middleware.RequirePermission(auth.PermUsersManage)).Post("/auth/users", h.HandleRegister)
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestID := shared.GetRequestID(r)
	var payload auth.LoginCredentials
	if !shared.DecodeJSON(w, r, requestID, &payload) {
		return
	}
	v := validate.New()
	v.Email("email", payload.Email)
	v.Required("password", payload.Password)
	if err := v.Err(); err != nil {
		shared.FailValidation(w, requestID, err)
		return
	}
	result, err := h.Service.Login(r.Context(), payload)
	if err != nil {
		shared.WriteError(w, r, err, authErrors...)
		return
	}
	api.Success(w, result, requestID)
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	found, err := h.Service.Me(r.Context(), user.UserID)
	if err != nil {
		shared.WriteError(w, r, err, authErrors...)
		return
	}
	api.Success(w, found, shared.GetRequestID(r))
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestID := shared.GetRequestID(r)
	var payload auth.RegisterInput
	if !shared.DecodeJSON(w, r, requestID, &payload) {
		return
	}
	v := validate.New()
	v.Email("email", payload.Email)
	v.Required("password", payload.Password)
	v.Check(payload.Role.Valid(), "role", "must be one of ADMIN, HR, MANAGER, EMPLOYEE")
	if err := v.Err(); err != nil {
		shared.FailValidation(w, requestID, err)
		return
	}
	user, err := h.Service.Register(r.Context(), payload)
	if err != nil {
		shared.WriteError(w, r, err, authErrors...)
		return
	}
	api.Created(w, user, requestID)
}

func (h *Handler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	requestID := shared.GetRequestID(r)
	var payload auth.ChangePasswordInput
	if !shared.DecodeJSON(w, r, requestID, &payload) {
		return
	}
	user, _ := middleware.GetUser(r.Context())
	if err := h.Service.ChangePassword(r.Context(), user.UserID, payload); err != nil {
		shared.WriteError(w, r, err, authErrors...)
		return
	}
	api.Success(w, map[string]bool{"changed": true}, requestID)
}
