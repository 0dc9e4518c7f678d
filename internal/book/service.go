package book

import (
	"context"
	"strings"

	"bookshop-be/internal/logger"
	"bookshop-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context, page int) (utils.Page[*Book], error)
	ListByCategory(ctx context.Context, categoryID uint, page int) (utils.Page[*Book], error)
	Search(ctx context.Context, keyword string, page int) (utils.Page[*Book], error)
	Top(ctx context.Context, count int) ([]*Book, error)
	GetBySlug(ctx context.Context, slug string) (*Book, error)
	GetByIDs(ctx context.Context, ids []uint) (map[uint]*Book, error)
	Create(ctx context.Context, in CreateInput) (*Book, error)
	Update(ctx context.Context, in UpdateInput) (*Book, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) list(ctx context.Context, f Filter, page int) (utils.Page[*Book], error) {
	page, perPage, offset := utils.Paginate(page, utils.DefaultPerPage)
	f.Limit, f.Offset = perPage, offset

	books, total, err := s.repo.List(ctx, f)
	if err != nil {
		return utils.Page[*Book]{}, err
	}
	return utils.NewPage(books, page, perPage, total), nil
}

func (s *service) List(ctx context.Context, page int) (utils.Page[*Book], error) {
	return s.list(ctx, Filter{}, page)
}

func (s *service) ListByCategory(ctx context.Context, categoryID uint, page int) (utils.Page[*Book], error) {
	return s.list(ctx, Filter{CategoryID: &categoryID}, page)
}

func (s *service) Search(ctx context.Context, keyword string, page int) (utils.Page[*Book], error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return utils.Page[*Book]{}, ErrEmptyKeyword
	}
	return s.list(ctx, Filter{Keyword: keyword}, page)
}

func (s *service) Top(ctx context.Context, count int) ([]*Book, error) {
	if count < 1 {
		return nil, ErrInvalidCount
	}
	if count > utils.MaxPerPage {
		count = utils.MaxPerPage
	}
	return s.repo.Top(ctx, count)
}

// GetBySlug returns the book and counts the view. A failed counter update is logged, not returned.
func (s *service) GetBySlug(ctx context.Context, slug string) (*Book, error) {
	b, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := s.repo.IncrementViews(ctx, b.ID); err != nil {
		logger.FromCtx(ctx).Warn("failed to increment views",
			zap.String("layer", "service"),
			zap.String("method", "GetBySlug"),
			zap.Uint("book_id", b.ID),
			zap.Error(err),
		)
		return b, nil
	}

	b.Views++
	return b, nil
}

func (s *service) GetByIDs(ctx context.Context, ids []uint) (map[uint]*Book, error) {
	return s.repo.FindByIDs(ctx, ids)
}

func (s *service) Create(ctx context.Context, in CreateInput) (*Book, error) {
	slug := utils.Slugify(in.Title)
	if slug == "" {
		return nil, ErrInvalidTitle
	}

	status := in.Status
	if status == "" {
		status = StatusPublish
	}

	return s.repo.Create(ctx, &Book{
		CategoryID:  in.CategoryID,
		Title:       strings.TrimSpace(in.Title),
		Slug:        slug,
		Description: in.Description,
		Author:      in.Author,
		Publisher:   in.Publisher,
		Cover:       in.Cover,
		Price:       in.Price,
		Weight:      in.Weight,
		Stock:       in.Stock,
		Status:      status,
	})
}

// Update re-derives the slug when the title changes.
func (s *service) Update(ctx context.Context, in UpdateInput) (*Book, error) {
	var slug *string
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		in.Title = &title
		slug = utils.StrPtr(utils.Slugify(title))
		if *slug == "" {
			return nil, ErrInvalidTitle
		}
	}
	return s.repo.Update(ctx, in, slug)
}
