package cart

import (
	"context"

	"bookshop-be/internal/book"
	"bookshop-be/internal/logger"

	"go.uber.org/zap"
)

// BookLookup fetches every referenced book in one batch.
type BookLookup interface {
	GetByIDs(ctx context.Context, ids []uint) (map[uint]*book.Book, error)
}

type Service interface {
	Reconcile(ctx context.Context, lines Lines) ([]Item, error)
	TotalWeight(ctx context.Context, lines Lines) (int, error)
}

type service struct {
	books BookLookup
}

func NewService(books BookLookup) Service {
	return &service{books: books}
}

func (s *service) lookup(ctx context.Context, method string, lines Lines) (map[uint]*book.Book, error) {
	if len(lines) == 0 {
		return map[uint]*book.Book{}, nil
	}

	books, err := s.books.GetByIDs(ctx, lines.IDs())
	if err != nil {
		logger.FromCtx(ctx).Error("failed to load cart books",
			zap.String("layer", "service"),
			zap.String("method", method),
			zap.Int("lines", len(lines)),
			zap.Error(err),
		)
		return nil, err
	}
	return books, nil
}

// Reconcile reads stock once and annotates the lines. Nothing is reserved.
func (s *service) Reconcile(ctx context.Context, lines Lines) ([]Item, error) {
	books, err := s.lookup(ctx, "Reconcile", lines)
	if err != nil {
		return nil, err
	}
	return Reconcile(lines, books), nil
}

func (s *service) TotalWeight(ctx context.Context, lines Lines) (int, error) {
	books, err := s.lookup(ctx, "TotalWeight", lines)
	if err != nil {
		return 0, err
	}
	return TotalWeight(lines, books)
}
