package order

import (
	"context"
	"database/sql"

	"bookshop-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	CreateOrderTx(ctx context.Context, o *Order) error
	ListByUser(ctx context.Context, userID uint) ([]*Order, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// CreateOrderTx inserts the order and all of its items in one transaction.
// On success the generated ids and timestamps are written back into o.
func (r *repository) CreateOrderTx(ctx context.Context, o *Order) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrderTx"),
		zap.String("invoice_number", o.InvoiceNumber),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (user_id, invoice_number, total_amount, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`,
		o.UserID,
		o.InvoiceNumber,
		o.TotalAmount,
		o.Status,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return err
	}

	for _, item := range o.Items {
		item.OrderID = o.ID
		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, book_id, quantity, price)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`,
			item.OrderID,
			item.BookID,
			item.Quantity,
			item.Price,
		).Scan(&item.ID)
		if err != nil {
			log.Error("failed to insert order item", zap.Uint("book_id", item.BookID), zap.Error(err))
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit order", zap.Error(err))
		return err
	}

	return nil
}

// ListByUser returns the user's orders newest first with their items and book details.
func (r *repository) ListByUser(ctx context.Context, userID uint) ([]*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListByUser"),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, invoice_number, total_amount, status, created_at, updated_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		log.Error("failed to query orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	orders := []*Order{}
	byID := map[uint]*Order{}
	ids := []int64{}

	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.InvoiceNumber, &o.TotalAmount, &o.Status, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			log.Error("failed to scan order", zap.Error(err))
			return nil, err
		}
		o.Items = []*Item{}
		orders = append(orders, &o)
		byID[o.ID] = &o
		ids = append(ids, int64(o.ID))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	itemRows, err := r.db.QueryContext(ctx, `
		SELECT oi.id, oi.order_id, oi.book_id, oi.quantity, oi.price, b.title, b.slug, b.cover
		FROM order_items oi
		LEFT JOIN books b ON b.id = oi.book_id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.order_id, oi.id
	`, pq.Array(ids))
	if err != nil {
		log.Error("failed to query order items", zap.Error(err))
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var (
			item        Item
			title, slug sql.NullString
			cover       sql.NullString
		)
		if err := itemRows.Scan(
			&item.ID, &item.OrderID, &item.BookID, &item.Quantity, &item.Price, &title, &slug, &cover,
		); err != nil {
			log.Error("failed to scan order item", zap.Error(err))
			return nil, err
		}

		if title.Valid {
			item.Book = &BookSummary{Title: title.String, Slug: slug.String}
			if cover.Valid {
				item.Book.Cover = &cover.String
			}
		}

		if o, ok := byID[item.OrderID]; ok {
			o.Items = append(o.Items, &item)
		}
	}

	return orders, itemRows.Err()
}
