package cart

import "errors"

var (
	ErrInvalidCart  = errors.New("invalid cart payload")
	ErrCartTooHeavy = errors.New("cart weight is too large")
)
