package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, map[string]decimal.Decimal{"salary": decimal.RequireFromString("1234.50")}, "req-1")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":{"salary":1234.5},"requestId":"req-1"}`, rec.Body.String())
}

func TestFailEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	FailWithDetails(rec, http.StatusBadRequest, "validation_failed", "invalid input", "", map[string][]string{"email": {"is required"}})

	assert.JSONEq(t, `{"success":false,"error":"validation_failed","message":"invalid input","details":{"email":["is required"]}}`, rec.Body.String())

	var resp Response[map[string]string]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	err := resp.Err()
	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "validation_failed", apiErr.Code)
	assert.Equal(t, []string{"is required"}, apiErr.Details["email"])
	assert.Equal(t, "validation_failed: invalid input", err.Error())
}

func TestSuccessHasNoError(t *testing.T) {
	resp := Response[int]{Success: true}
	assert.NoError(t, resp.Err())
}

func TestNewPaginated(t *testing.T) {
	cases := []struct {
		total, limit, pages int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{95, 20, 5},
		{5, 0, 0},
		{5, -1, 0},
	}
	for _, tc := range cases {
		page := NewPaginated[string](nil, tc.total, 1, tc.limit)
		assert.Equal(t, tc.pages, page.TotalPages, "total=%d limit=%d", tc.total, tc.limit)
		assert.NotNil(t, page.Data)
	}

	body, err := json.Marshal(NewPaginated[int](nil, 0, 1, 10))
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[],"total":0,"page":1,"limit":10,"totalPages":0}`, string(body))
}
