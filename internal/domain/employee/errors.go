package employee

import "errors"

var (
	ErrNotFound        = errors.New("employee not found")
	ErrManagerNotFound = errors.New("manager not found")
	ErrManagerCycle    = errors.New("manager assignment would create a reporting cycle")
	ErrDuplicateEmail  = errors.New("employee email already exists")
)
