package errors

import "errors"

var (
	ErrItemNotFound    = errors.New("inventory item not found")
	ErrForbidden       = errors.New("forbidden")
	ErrThresholdNotMet = errors.New("inventory is not below the low-stock threshold")
)
