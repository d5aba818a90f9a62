package errors

import "errors"

var (
	ErrUnitNotFound           = errors.New("business unit not found")
	ErrForbidden              = errors.New("forbidden")
	ErrInvalidRequest         = errors.New("invalid request")
	ErrUnitAssignmentRequired = errors.New("employee has no business unit assignment")
)
