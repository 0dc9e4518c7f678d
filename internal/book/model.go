package book

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPublish Status = "PUBLISH"
	StatusDraft   Status = "DRAFT"
)

type Book struct {
	ID          uint            `json:"id"`
	CategoryID  *uint           `json:"category_id"`
	Title       string          `json:"title"`
	Slug        string          `json:"slug"`
	Description *string         `json:"description"`
	Author      *string         `json:"author"`
	Publisher   *string         `json:"publisher"`
	Cover       *string         `json:"cover"`
	Price       decimal.Decimal `json:"price"`
	Weight      int             `json:"weight"`
	Stock       int             `json:"stock"`
	Views       int64           `json:"views"`
	Status      Status          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Filter narrows List. A keyword switches ordering to most viewed first.
type Filter struct {
	Keyword    string
	CategoryID *uint
	Limit      int
	Offset     int
}

type CreateInput struct {
	CategoryID  *uint
	Title       string
	Description *string
	Author      *string
	Publisher   *string
	Cover       *string
	Price       decimal.Decimal
	Weight      int
	Stock       int
	Status      Status
}

// UpdateInput leaves a column untouched when its field is nil.
type UpdateInput struct {
	ID          uint
	CategoryID  *uint
	Title       *string
	Description *string
	Author      *string
	Publisher   *string
	Cover       *string
	Price       *decimal.Decimal
	Weight      *int
	Stock       *int
	Status      *Status
}
