package shared

import (
	"errors"
	"log/slog"
	"net/http"

	"hrms/internal/transport/http/api"
)

// ErrorCase maps a domain sentinel onto an HTTP failure.
type ErrorCase struct {
	Err     error
	Status  int
	Code    string
	Message string
}

// WriteError answers err with the first matching case. Validation failures
// become 400 with details; anything unmatched is logged and answered 500.
func WriteError(w http.ResponseWriter, r *http.Request, err error, cases ...ErrorCase) {
	requestID := GetRequestID(r)
	if FailValidation(w, requestID, err) {
		return
	}
	for _, c := range cases {
		if errors.Is(err, c.Err) {
			message := c.Message
			if message == "" {
				message = c.Err.Error()
			}
			api.Fail(w, c.Status, c.Code, message, requestID)
			return
		}
	}
	slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "requestId", requestID, "err", err)
	api.Fail(w, http.StatusInternalServerError, "internal_error", "internal server error", requestID)
}
