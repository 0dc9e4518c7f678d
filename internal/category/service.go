package category

import (
	"context"

	"bookshop-be/internal/book"
	"bookshop-be/internal/logger"
	"bookshop-be/internal/utils"

	"go.uber.org/zap"
)

// BookLister is the part of the book service a category detail needs.
type BookLister interface {
	ListByCategory(ctx context.Context, categoryID uint, page int) (utils.Page[*book.Book], error)
}

type Service interface {
	List(ctx context.Context, page int) (utils.Page[*Category], error)
	Random(ctx context.Context, count int) ([]*Category, error)
	GetBySlug(ctx context.Context, slug string) (*Detail, error)
}

type service struct {
	repo  Repository
	books BookLister
}

func NewService(repo Repository, books BookLister) Service {
	return &service{repo: repo, books: books}
}

func (s *service) List(ctx context.Context, page int) (utils.Page[*Category], error) {
	page, perPage, offset := utils.Paginate(page, utils.DefaultPerPage)

	categories, total, err := s.repo.List(ctx, perPage, offset)
	if err != nil {
		return utils.Page[*Category]{}, err
	}
	return utils.NewPage(categories, page, perPage, total), nil
}

func (s *service) Random(ctx context.Context, count int) ([]*Category, error) {
	if count < 1 {
		return nil, ErrInvalidCount
	}
	if count > utils.MaxPerPage {
		count = utils.MaxPerPage
	}
	return s.repo.Random(ctx, count)
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*Detail, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetBySlug"),
		zap.String("slug", slug),
	)

	c, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	books, err := s.books.ListByCategory(ctx, c.ID, 1)
	if err != nil {
		log.Error("failed to list category books", zap.Uint("category_id", c.ID), zap.Error(err))
		return nil, err
	}

	return &Detail{Category: c, Books: books}, nil
}
