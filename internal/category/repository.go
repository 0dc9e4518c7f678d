package category

import (
	"context"
	"database/sql"
	"errors"

	"bookshop-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context, limit, offset int) ([]*Category, int64, error)
	Random(ctx context.Context, count int) ([]*Category, error)
	FindBySlug(ctx context.Context, slug string) (*Category, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const categoryColumns = `c.id, c.name, c.slug, c.description, c.image, c.status, c.created_at, c.updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCategory(row rowScanner) (*Category, error) {
	var c Category
	if err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Image, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func scanCategories(rows *sql.Rows) ([]*Category, error) {
	defer rows.Close()

	categories := []*Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *repository) List(ctx context.Context, limit, offset int) ([]*Category, int64, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "List"),
		zap.Int("limit", limit),
		zap.Int("offset", offset),
	)
	log.Info("List categories started")

	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM categories c").Scan(&total); err != nil {
		log.Error("count query failed", zap.Error(err))
		return nil, 0, err
	}
	if total == 0 {
		return []*Category{}, 0, nil
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT "+categoryColumns+" FROM categories c ORDER BY c.id ASC LIMIT $1 OFFSET $2",
		limit, offset,
	)
	if err != nil {
		log.Error("DB query failed", zap.Error(err))
		return nil, 0, err
	}

	categories, err := scanCategories(rows)
	if err != nil {
		log.Error("row scan failed", zap.Error(err))
		return nil, 0, err
	}

	return categories, total, nil
}

func (r *repository) Random(ctx context.Context, count int) ([]*Category, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+categoryColumns+" FROM categories c ORDER BY RANDOM() LIMIT $1",
		count,
	)
	if err != nil {
		logger.FromCtx(ctx).Error("random categories query failed",
			zap.String("layer", "repository"),
			zap.String("method", "Random"),
			zap.Error(err),
		)
		return nil, err
	}
	return scanCategories(rows)
}

func (r *repository) FindBySlug(ctx context.Context, slug string) (*Category, error) {
	c, err := scanCategory(r.db.QueryRowContext(ctx,
		"SELECT "+categoryColumns+" FROM categories c WHERE c.slug = $1",
		slug,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCategoryNotFound
	}
	return c, err
}
