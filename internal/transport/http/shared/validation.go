package shared

import (
	"encoding/json"
	"errors"
	"net/http"

	"hrms/internal/platform/validate"
	"hrms/internal/transport/http/api"
)

// FailValidation answers 400 with per-field details. It reports false when
// err carries no field issues so the caller can map it otherwise.
func FailValidation(w http.ResponseWriter, requestID string, err error) bool {
	fields := validate.Fields(err)
	if fields == nil {
		return false
	}
	api.FailWithDetails(w, http.StatusBadRequest, "validation_failed", "request validation failed", requestID, fields)
	return true
}

// DecodeJSON reads the body into dst, answering 400 (or 413 when the body
// limit was hit) on failure.
func DecodeJSON(w http.ResponseWriter, r *http.Request, requestID string, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			api.Fail(w, http.StatusRequestEntityTooLarge, "payload_too_large", "request body too large", requestID)
			return false
		}
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return false
	}
	return true
}
