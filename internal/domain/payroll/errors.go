package payroll

import "errors"

var (
	ErrNotFound          = errors.New("salary not found")
	ErrDuplicate         = errors.New("salary already exists for this employee and month")
	ErrInvalidTransition = errors.New("invalid salary status transition")
	ErrEmployeeInactive  = errors.New("employee is terminated or resigned")
)
