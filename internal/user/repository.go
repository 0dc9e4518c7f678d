package user

import (
	"context"
	"database/sql"
	"errors"

	"bookshop-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, u *User) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	UpdateShipping(ctx context.Context, p UpdateShippingParams) (*User, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const userColumns = `id, name, email, password, roles, status, address, phone, province_id, city_id, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*User, error) {
	var u User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.Password, &u.Roles, &u.Status,
		&u.Address, &u.Phone, &u.ProvinceID, &u.CityID, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) Create(ctx context.Context, u *User) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.String("email", u.Email),
	)

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (name, email, password, roles, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		u.Name, u.Email, u.Password, u.Roles, u.Status,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == PgUniqueViolation {
			log.Warn("email already registered")
			return nil, ErrEmailExists
		}
		log.Error("db: failed to insert user", zap.Error(err))
		return nil, err
	}

	log.Info("user created", zap.Uint("user_id", u.ID))
	return u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = $1",
		email,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to find user by email",
			zap.String("layer", "repository"),
			zap.String("method", "FindByEmail"),
			zap.Error(err),
		)
		return nil, err
	}
	return u, nil
}

func (r *repository) FindByID(ctx context.Context, id uint) (*User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1",
		id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to find user by id",
			zap.String("layer", "repository"),
			zap.String("method", "FindByID"),
			zap.Uint("user_id", id),
			zap.Error(err),
		)
		return nil, err
	}
	return u, nil
}
