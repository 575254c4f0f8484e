package errors

import "errors"

var (
	ErrNotFound           = errors.New("order not found")
	ErrItemNotFound       = errors.New("item not found")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrQuantityTooLong    = errors.New("quantity too long")
	ErrNothingToErase     = errors.New("nothing to erase")
	ErrStorageUnavailable = errors.New("storage unavailable")
)
