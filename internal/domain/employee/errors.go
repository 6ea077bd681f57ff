package employee

import "errors"

var (
	ErrEmployeeNotFound        = errors.New("employee not found")
	ErrDuplicateEmployeeNumber = errors.New("employee number already exists")
	ErrInvalidStatus           = errors.New("invalid employee status")
)
