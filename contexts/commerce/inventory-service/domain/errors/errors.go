package errors

import "errors"

var (
	ErrItemNotFound   = errors.New("inventory item not found")
	ErrUnitNotFound   = errors.New("business unit not found")
	ErrForbidden      = errors.New("forbidden")
	ErrInvalidRequest = errors.New("invalid request")
)
