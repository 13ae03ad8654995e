package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrCPFExists        = errors.New("an employee with this CPF already exists")
	ErrEmployeeInactive = errors.New("employee is deactivated")
)
