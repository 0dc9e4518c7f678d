package book

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"bookshop-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context, f Filter) ([]*Book, int64, error)
	Top(ctx context.Context, count int) ([]*Book, error)
	FindBySlug(ctx context.Context, slug string) (*Book, error)
	FindByIDs(ctx context.Context, ids []uint) (map[uint]*Book, error)
	IncrementViews(ctx context.Context, id uint) error
	Create(ctx context.Context, b *Book) (*Book, error)
	Update(ctx context.Context, in UpdateInput, slug *string) (*Book, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const bookColumns = `b.id, b.category_id, b.title, b.slug, b.description, b.author, b.publisher, b.cover,
	b.price, b.weight, b.stock, b.views, b.status, b.created_at, b.updated_at`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(row rowScanner) (*Book, error) {
	var b Book
	err := row.Scan(
		&b.ID, &b.CategoryID, &b.Title, &b.Slug, &b.Description, &b.Author, &b.Publisher, &b.Cover,
		&b.Price, &b.Weight, &b.Stock, &b.Views, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func scanBooks(rows *sql.Rows) ([]*Book, error) {
	defer rows.Close()

	books := []*Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (r *repository) List(ctx context.Context, f Filter) ([]*Book, int64, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "List"),
		zap.String("keyword", f.Keyword),
		zap.Int("limit", f.Limit),
		zap.Int("offset", f.Offset),
	)

	where := []string{}
	args := []interface{}{}

	// ---------- FILTER ----------
	if f.Keyword != "" {
		where = append(where, fmt.Sprintf("b.title ILIKE $%d", len(args)+1))
		args = append(args, "%"+likeEscaper.Replace(f.Keyword)+"%")
	}
	if f.CategoryID != nil {
		where = append(where, fmt.Sprintf("b.category_id = $%d", len(args)+1))
		args = append(args, *f.CategoryID)
	}

	whereSQL := ""
	if len(where) > 0 {
		whereSQL = " WHERE " + strings.Join(where, " AND ")
	}

	// ---------- COUNT ----------
	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM books b"+whereSQL, args...).Scan(&total); err != nil {
		log.Error("count query failed", zap.Error(err))
		return nil, 0, err
	}
	if total == 0 {
		return []*Book{}, 0, nil
	}

	// ---------- ORDER + PAGINATION ----------
	order := " ORDER BY b.id ASC"
	if f.Keyword != "" {
		order = " ORDER BY b.views DESC, b.id ASC"
	}
	query := "SELECT " + bookColumns + " FROM books b" + whereSQL + order +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, f.Limit, f.Offset)

	log.Debug("executing List query", zap.String("query", query))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("list query failed", zap.Error(err))
		return nil, 0, err
	}

	books, err := scanBooks(rows)
	if err != nil {
		log.Error("row scan failed", zap.Error(err))
		return nil, 0, err
	}

	return books, total, nil
}

func (r *repository) Top(ctx context.Context, count int) ([]*Book, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+bookColumns+" FROM books b ORDER BY b.views DESC, b.id ASC LIMIT $1",
		count,
	)
	if err != nil {
		logger.FromCtx(ctx).Error("top books query failed",
			zap.String("layer", "repository"),
			zap.String("method", "Top"),
			zap.Error(err),
		)
		return nil, err
	}
	return scanBooks(rows)
}

func (r *repository) FindBySlug(ctx context.Context, slug string) (*Book, error) {
	b, err := scanBook(r.db.QueryRowContext(ctx,
		"SELECT "+bookColumns+" FROM books b WHERE b.slug = $1",
		slug,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookNotFound
	}
	return b, err
}

// FindByIDs loads every referenced book in one query, keyed by id. Missing ids are simply absent.
func (r *repository) FindByIDs(ctx context.Context, ids []uint) (map[uint]*Book, error) {
	result := make(map[uint]*Book, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	seen := make(map[uint]struct{}, len(ids))
	unique := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, int64(id))
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT "+bookColumns+" FROM books b WHERE b.id = ANY($1)",
		pq.Array(unique),
	)
	if err != nil {
		logger.FromCtx(ctx).Error("batch book query failed",
			zap.String("layer", "repository"),
			zap.String("method", "FindByIDs"),
			zap.Int("count", len(unique)),
			zap.Error(err),
		)
		return nil, err
	}

	books, err := scanBooks(rows)
	if err != nil {
		return nil, err
	}
	for _, b := range books {
		result[b.ID] = b
	}
	return result, nil
}

func (r *repository) IncrementViews(ctx context.Context, id uint) error {
	_, err := r.db.ExecContext(ctx, "UPDATE books SET views = views + 1 WHERE id = $1", id)
	return err
}

func (r *repository) Create(ctx context.Context, b *Book) (*Book, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.String("slug", b.Slug),
	)

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO books (category_id, title, slug, description, author, publisher, cover, price, weight, stock, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, views, created_at, updated_at
	`,
		b.CategoryID, b.Title, b.Slug, b.Description, b.Author, b.Publisher, b.Cover,
		b.Price, b.Weight, b.Stock, b.Status,
	).Scan(&b.ID, &b.Views, &b.CreatedAt, &b.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			log.Warn("slug already exists")
			return nil, ErrSlugExists
		}
		if isForeignKeyViolation(err) {
			log.Warn("category does not exist", zap.Any("category_id", b.CategoryID))
			return nil, ErrUnknownCategory
		}
		log.Error("failed to insert book", zap.Error(err))
		return nil, err
	}

	log.Info("book created", zap.Uint("book_id", b.ID))
	return b, nil
}

func (r *repository) Update(ctx context.Context, in UpdateInput, slug *string) (*Book, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Update"),
		zap.Uint("book_id", in.ID),
	)

	query := `
		UPDATE books b
		SET category_id = COALESCE($2, b.category_id),
			title = COALESCE($3, b.title),
			slug = COALESCE($4, b.slug),
			description = COALESCE($5, b.description),
			author = COALESCE($6, b.author),
			publisher = COALESCE($7, b.publisher),
			cover = COALESCE($8, b.cover),
			price = COALESCE($9, b.price),
			weight = COALESCE($10, b.weight),
			stock = COALESCE($11, b.stock),
			status = COALESCE($12, b.status),
			updated_at = NOW()
		WHERE b.id = $1
		RETURNING ` + bookColumns

	b, err := scanBook(r.db.QueryRowContext(ctx, query,
		in.ID, in.CategoryID, in.Title, slug, in.Description, in.Author, in.Publisher, in.Cover,
		in.Price, in.Weight, in.Stock, in.Status,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookNotFound
		}
		if isUniqueViolation(err) {
			return nil, ErrSlugExists
		}
		if isForeignKeyViolation(err) {
			log.Warn("category does not exist", zap.Any("category_id", in.CategoryID))
			return nil, ErrUnknownCategory
		}
		log.Error("failed to update book", zap.Error(err))
		return nil, err
	}

	log.Info("book updated")
	return b, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == PgUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == PgForeignKeyViolation
}
