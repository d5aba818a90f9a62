package errors

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrForbidden          = errors.New("forbidden")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrUnitNotFound       = errors.New("business unit not found")
	ErrEmailTaken         = errors.New("email already exists")
	ErrUnitNameTaken      = errors.New("business unit name already exists")
	ErrInvalidRequest     = errors.New("invalid request")
)
