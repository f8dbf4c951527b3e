package org

import "errors"

var (
	ErrDepartmentNotFound  = errors.New("department not found")
	ErrDuplicateDepartment = errors.New("department already exists")
	ErrInvalidActivity     = errors.New("invalid activity type")
)
