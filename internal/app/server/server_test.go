package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrms/internal/domain/auth"
	"hrms/internal/platform/config"
	"hrms/internal/platform/metrics"
	metahandler "hrms/internal/transport/http/handlers/meta"
)

const testSecret = "router-test-secret"

func testRouter(t *testing.T, ready func(context.Context) error) (http.Handler, *metrics.Collector) {
	t.Helper()
	cfg := config.Config{
		JWTSecret:      testSecret,
		MaxBodyBytes:   1 << 20,
		MetricsEnabled: true,
		Environment:    "production",
	}
	collector := metrics.New()
	return NewRouter(cfg, collector, ready, metahandler.NewHandler()), collector
}

func serve(router http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthAndReadiness(t *testing.T) {
	healthy, _ := testRouter(t, func(context.Context) error { return nil })
	rec := serve(healthy, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, rec.Header().Get("Strict-Transport-Security"))

	rec = serve(healthy, http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	down, _ := testRouter(t, func(context.Context) error { return errors.New("no connection") })
	rec = serve(down, http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestAPIRequiresBearerToken(t *testing.T) {
	router, _ := testRouter(t, func(context.Context) error { return nil })

	rec := serve(router, http.MethodGet, "/api/v1/meta/options", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	payload := auth.AuthPayload{UserID: "u1", Email: "hr@example.com", Role: auth.RoleHR}
	token, err := auth.GenerateToken(testSecret, auth.ClaimsFor(payload), time.Hour)
	require.NoError(t, err)
	rec = serve(router, http.MethodGet, "/api/v1/meta/options", token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"leaveTypes"`)

	forged, err := auth.GenerateToken("other-secret", auth.ClaimsFor(payload), time.Hour)
	require.NoError(t, err)
	rec = serve(router, http.MethodGet, "/api/v1/meta/options", forged)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUnknownRoutesUseEnvelope(t *testing.T) {
	router, _ := testRouter(t, func(context.Context) error { return nil })

	rec := serve(router, http.MethodGet, "/api/v1/nowhere", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `"error":"not_found"`), rec.Body.String())
}

func TestMetricsCountRoutes(t *testing.T) {
	router, collector := testRouter(t, func(context.Context) error { return nil })

	serve(router, http.MethodGet, "/healthz", "")
	serve(router, http.MethodGet, "/api/v1/meta/options", "")

	snap := collector.Snapshot()
	assert.EqualValues(t, 2, snap.RequestsTotal)
	assert.EqualValues(t, 1, snap.ClientErrorsTotal)
	assert.EqualValues(t, 1, snap.RequestsByRoute["GET /api/v1/meta/options"])

	rec := serve(router, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"requestsTotal":2`)
}
