package category

import (
	"time"

	"bookshop-be/internal/book"
	"bookshop-be/internal/utils"
)

type Category struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description"`
	Image       *string   `json:"image"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Detail is a category together with the first page of its books.
type Detail struct {
	*Category
	Books utils.Page[*book.Book] `json:"books"`
}
