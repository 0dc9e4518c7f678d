package category

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrInvalidCount     = errors.New("count must be a positive number")
)
