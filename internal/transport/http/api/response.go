package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"
)

func init() {
	// Money crosses the wire as JSON numbers, as the front end expects.
	decimal.MarshalJSONWithoutQuotes = true
}

// Response is the envelope of every JSON answer. On failure Error holds a
// machine code and Message the human text.
type Response[T any] struct {
	Success   bool                `json:"success"`
	Data      *T                  `json:"data,omitempty"`
	Message   string              `json:"message,omitempty"`
	Error     string              `json:"error,omitempty"`
	Details   map[string][]string `json:"details,omitempty"`
	RequestID string              `json:"requestId,omitempty"`
}

// Err returns the failure carried by r, or nil when r succeeded.
func (r Response[T]) Err() error {
	if r.Success {
		return nil
	}
	return &Error{Message: r.Message, Code: r.Error, Details: r.Details}
}

// Error is the ApiError shape. It doubles as a Go error for clients decoding
// envelopes.
type Error struct {
	Message string              `json:"message"`
	Code    string              `json:"code,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

func (e *Error) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return e.Code + ": " + e.Message
}

func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("write json failed", "err", err)
	}
}

func Success[T any](w http.ResponseWriter, data T, requestID string) {
	WriteJSON(w, http.StatusOK, Response[T]{Success: true, Data: &data, RequestID: requestID})
}

func Created[T any](w http.ResponseWriter, data T, requestID string) {
	WriteJSON(w, http.StatusCreated, Response[T]{Success: true, Data: &data, RequestID: requestID})
}

func Fail(w http.ResponseWriter, status int, code, message, requestID string) {
	WriteJSON(w, status, Response[any]{Error: code, Message: message, RequestID: requestID})
}

func FailWithDetails(w http.ResponseWriter, status int, code, message, requestID string, details map[string][]string) {
	WriteJSON(w, status, Response[any]{Error: code, Message: message, Details: details, RequestID: requestID})
}
