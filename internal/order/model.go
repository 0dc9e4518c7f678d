package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending Status = "PENDING"
)

type Order struct {
	ID            uint            `json:"id"`
	UserID        uint            `json:"user_id"`
	InvoiceNumber string          `json:"invoice_number"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Status        Status          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Items         []*Item         `json:"items"`
}

// Item is one ordered book. Price is the unit price at the time of order.
type Item struct {
	ID       uint            `json:"id"`
	OrderID  uint            `json:"order_id"`
	BookID   uint            `json:"book_id"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Book     *BookSummary    `json:"book,omitempty"`
}

// BookSummary is the part of a book shown with order history.
type BookSummary struct {
	Title string  `json:"title"`
	Slug  string  `json:"slug"`
	Cover *string `json:"cover"`
}

type ItemInput struct {
	BookID   uint            `json:"book_id" binding:"required,gt=0"`
	Quantity int             `json:"quantity" binding:"required,gte=1"`
	Price    decimal.Decimal `json:"price" binding:"gte=0"`
}

type PlaceInput struct {
	Items       []ItemInput     `json:"items" binding:"required,min=1,dive"`
	TotalAmount decimal.Decimal `json:"total_amount" binding:"gte=0"`
}
