package attendance

import "errors"

var (
	ErrNotFound         = errors.New("attendance not found")
	ErrEmployeeInactive = errors.New("employee is terminated or resigned")
)
