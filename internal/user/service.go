package user

import (
	"context"
	"errors"
	"strings"

	"bookshop-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, in RegisterInput) (*User, error)
	Authenticate(ctx context.Context, email, password string) (*User, error)
	GetByID(ctx context.Context, id uint) (*User, error)
	UpdateShipping(ctx context.Context, p UpdateShippingParams) (*User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Register creates an active customer account.
func (s *service) Register(ctx context.Context, in RegisterInput) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Register"),
	)

	hashed, err := HashPassword(in.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return nil, err
	}

	u, err := s.repo.Create(ctx, &User{
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
		Password: hashed,
		Roles:    Roles{RoleCustomer},
		Status:   StatusActive,
	})
	if err != nil {
		return nil, err
	}

	log.Info("register service completed", zap.Uint("user_id", u.ID))
	return u, nil
}

// Authenticate checks the credentials and returns the matching active user.
func (s *service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Authenticate"),
	)

	u, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			log.Info("email not found")
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !VerifyPassword(password, u.Password) {
		log.Info("password not match", zap.Uint("user_id", u.ID))
		return nil, ErrInvalidCredentials
	}

	if !u.IsActive() {
		log.Warn("inactive user tried to log in", zap.Uint("user_id", u.ID))
		return nil, ErrUserInactive
	}

	return u, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) UpdateShipping(ctx context.Context, p UpdateShippingParams) (*User, error) {
	if p.Address != nil {
		trimmed := strings.TrimSpace(*p.Address)
		p.Address = &trimmed
	}
	return s.repo.UpdateShipping(ctx, p)
}
