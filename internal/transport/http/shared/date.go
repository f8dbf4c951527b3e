package shared

import (
	"errors"
	"strings"
	"time"

	"hrms/internal/format"
)

var ErrInvalidDate = errors.New("invalid date")

// ParseDate accepts RFC3339 or YYYY-MM-DD (with an optional local time). An
// empty value is the zero time.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	parsed, ok := format.ParseISO(value)
	if !ok {
		return time.Time{}, ErrInvalidDate
	}
	return parsed, nil
}

// OptionalDate parses value into a pointer, nil when value is empty.
func OptionalDate(value string) (*time.Time, error) {
	parsed, err := ParseDate(value)
	if err != nil || parsed.IsZero() {
		return nil, err
	}
	return &parsed, nil
}
