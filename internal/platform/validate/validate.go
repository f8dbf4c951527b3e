package validate

import (
	"errors"
	"net/mail"
	"sort"
	"strings"
	"time"

	"hrms/internal/format"
)

var ErrInvalid = errors.New("validation failed")

// Error carries per-field reasons in the ApiError details shape.
type Error struct {
	Fields map[string][]string
}

func (e *Error) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(e.Fields[field], ", "))
	}
	return ErrInvalid.Error() + ": " + strings.Join(parts, "; ")
}

func (e *Error) Unwrap() error {
	return ErrInvalid
}

// Fields returns the per-field reasons of err, or nil when err is not a
// validation error.
func Fields(err error) map[string][]string {
	var verr *Error
	if errors.As(err, &verr) {
		return verr.Fields
	}
	return nil
}

type Validator struct {
	fields map[string][]string
}

func New() *Validator {
	return &Validator{fields: map[string][]string{}}
}

func (v *Validator) Add(field, reason string) {
	field = strings.TrimSpace(field)
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return
	}
	v.fields[field] = append(v.fields[field], reason)
}

func (v *Validator) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, "is required")
	}
}

func (v *Validator) Check(ok bool, field, reason string) {
	if !ok {
		v.Add(field, reason)
	}
}

func (v *Validator) Email(field, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		v.Add(field, "is required")
		return
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		v.Add(field, "must be a valid email address")
	}
}

// Date parses an ISO-8601 date that must be present.
func (v *Validator) Date(field, raw string) (time.Time, bool) {
	parsed, ok := format.ParseISO(raw)
	if !ok {
		v.Add(field, "must be a valid ISO-8601 date")
		return time.Time{}, false
	}
	return parsed, true
}

// OptionalDate parses raw when it is set; an empty value yields nil.
func (v *Validator) OptionalDate(field, raw string) *time.Time {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parsed, ok := v.Date(field, raw)
	if !ok {
		return nil
	}
	return &parsed
}

func (v *Validator) DateOrder(startField string, start time.Time, endField string, end time.Time) {
	if start.IsZero() || end.IsZero() {
		return
	}
	if end.Before(start) {
		v.Add(startField, "must be on or before "+endField)
		v.Add(endField, "must be on or after "+startField)
	}
}

func (v *Validator) HasIssues() bool {
	return len(v.fields) > 0
}

// Err returns nil when no issue was recorded.
func (v *Validator) Err() error {
	if !v.HasIssues() {
		return nil
	}
	out := make(map[string][]string, len(v.fields))
	for field, reasons := range v.fields {
		sorted := append([]string(nil), reasons...)
		sort.Strings(sorted)
		out[field] = sorted
	}
	return &Error{Fields: out}
}
