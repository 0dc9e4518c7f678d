package order

import (
	"context"
	"time"

	"bookshop-be/internal/book"
	"bookshop-be/internal/logger"
	"bookshop-be/internal/metrics"
	"bookshop-be/internal/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// BookLookup fetches every referenced book in one batch.
type BookLookup interface {
	GetByIDs(ctx context.Context, ids []uint) (map[uint]*book.Book, error)
}

type Service interface {
	PlaceOrder(ctx context.Context, userID uint, in PlaceInput) (*Order, error)
	ListByUser(ctx context.Context, userID uint) ([]*Order, error)
}

type service struct {
	repo    Repository
	books   BookLookup
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewService(repo Repository, books BookLookup, m *metrics.Metrics) Service {
	return &service{
		repo:    repo,
		books:   books,
		metrics: m,
		now:     time.Now,
	}
}

// PlaceOrder checks the lines against the catalog and stores the order with its items atomically.
func (s *service) PlaceOrder(ctx context.Context, userID uint, in PlaceInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "PlaceOrder"),
		zap.Uint("user_id", userID),
	)

	if userID == 0 {
		return nil, ErrUnauthorized
	}
	if len(in.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	ids := make([]uint, len(in.Items))
	for i, it := range in.Items {
		ids[i] = it.BookID
	}

	books, err := s.books.GetByIDs(ctx, ids)
	if err != nil {
		log.Error("failed to load books", zap.Error(err))
		return nil, err
	}

	total := decimal.Zero
	requested := make(map[uint]int, len(in.Items))
	items := make([]*Item, 0, len(in.Items))

	for i, it := range in.Items {
		if it.Quantity < 1 {
			return nil, &ItemError{Index: i, Field: "quantity", Err: ErrInvalidQuantity}
		}
		if it.Price.IsNegative() {
			return nil, &ItemError{Index: i, Field: "price", Err: ErrInvalidPrice}
		}

		b, ok := books[it.BookID]
		if !ok {
			return nil, &ItemError{Index: i, Field: "book_id", Err: ErrBookNotFound}
		}

		requested[it.BookID] += it.Quantity
		if requested[it.BookID] > b.Stock {
			log.Info("insufficient stock",
				zap.Uint("book_id", b.ID),
				zap.Int("requested", requested[it.BookID]),
				zap.Int("stock", b.Stock),
			)
			return nil, &ItemError{Index: i, Field: "quantity", Err: ErrInsufficientStock}
		}

		if !it.Price.Equal(b.Price) {
			log.Info("client price differs from catalog",
				zap.Uint("book_id", b.ID),
				zap.String("client_price", it.Price.String()),
				zap.String("catalog_price", b.Price.String()),
			)
			return nil, &ItemError{Index: i, Field: "price", Err: ErrPriceChanged}
		}

		total = total.Add(b.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		items = append(items, &Item{
			BookID:   it.BookID,
			Quantity: it.Quantity,
			Price:    b.Price,
			Book:     &BookSummary{Title: b.Title, Slug: b.Slug, Cover: b.Cover},
		})
	}

	if !total.Equal(in.TotalAmount) {
		log.Info("total amount mismatch",
			zap.String("expected", total.String()),
			zap.String("given", in.TotalAmount.String()),
		)
		return nil, ErrTotalMismatch
	}

	o := &Order{
		UserID:        userID,
		InvoiceNumber: utils.GenerateInvoiceNumber(s.now()),
		TotalAmount:   in.TotalAmount,
		Status:        StatusPending,
		Items:         items,
	}

	if err := s.repo.CreateOrderTx(ctx, o); err != nil {
		return nil, err
	}

	s.metrics.OrderCreated()
	log.Info("order created",
		zap.Uint("order_id", o.ID),
		zap.String("invoice_number", o.InvoiceNumber),
		zap.Int("items", len(o.Items)),
	)

	return o, nil
}

func (s *service) ListByUser(ctx context.Context, userID uint) ([]*Order, error) {
	if userID == 0 {
		return nil, ErrUnauthorized
	}
	return s.repo.ListByUser(ctx, userID)
}
