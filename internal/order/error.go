package order

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrEmptyOrder        = errors.New("order has no items")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrInvalidPrice      = errors.New("price must not be negative")
	ErrPriceChanged      = errors.New("price does not match the current catalog price")
	ErrBookNotFound      = errors.New("book not found")
	ErrInsufficientStock = errors.New("quantity exceeds available stock")
	ErrTotalMismatch     = errors.New("total amount does not match items")
)

// ItemError reports which order line failed and on which field.
type ItemError struct {
	Index int
	Field string
	Err   error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("items.%d.%s: %v", e.Index, e.Field, e.Err)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}

// Key is the request field the error belongs to.
func (e *ItemError) Key() string {
	return fmt.Sprintf("items.%d.%s", e.Index, e.Field)
}
