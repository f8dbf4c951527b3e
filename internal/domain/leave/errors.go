package leave

import "errors"

var (
	ErrNotFound            = errors.New("leave not found")
	ErrInvalidTransition   = errors.New("invalid leave status transition")
	ErrInsufficientBalance = errors.New("insufficient leave balance")
	ErrSelfApproval        = errors.New("cannot decide on own leave")
	ErrEmployeeInactive    = errors.New("employee is terminated or resigned")
	ErrInvalidRange        = errors.New("end date before start date")
)
