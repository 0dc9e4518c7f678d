package book

import "errors"

var (
	ErrBookNotFound    = errors.New("book not found")
	ErrSlugExists      = errors.New("book slug already exists")
	ErrUnknownCategory = errors.New("category does not exist")
	ErrInvalidTitle    = errors.New("title must contain letters or digits")
	ErrInvalidCount    = errors.New("count must be a positive number")
	ErrEmptyKeyword    = errors.New("keyword is required")

	PgUniqueViolation     = "23505"
	PgForeignKeyViolation = "23503"
)
