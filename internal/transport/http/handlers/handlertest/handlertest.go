// Package handlertest drives chi handlers in tests with an authenticated
// principal already attached.
package handlertest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/auth"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
)

// Routes is implemented by every handler package.
type Routes interface {
	RegisterRoutes(r chi.Router)
}

func Router(h Routes) http.Handler {
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r
}

func User(role auth.UserRole, employeeID string) *auth.AuthPayload {
	return &auth.AuthPayload{UserID: "user-" + string(role), Email: "user@example.com", Role: role, EmployeeID: employeeID}
}

// Do sends body (JSON encoded unless it is nil) as user, which may be nil for
// an anonymous call.
func Do(t *testing.T, h http.Handler, method, path string, body any, user *auth.AuthPayload) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if user != nil {
		req = req.WithContext(middleware.WithUser(req.Context(), *user))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func Decode[T any](t *testing.T, rec *httptest.ResponseRecorder) api.Response[T] {
	t.Helper()
	var resp api.Response[T]
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return resp
}
