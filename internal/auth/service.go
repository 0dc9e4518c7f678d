package auth

import (
	"context"
	"time"

	"bookshop-be/internal/logger"
	"bookshop-be/internal/user"

	"go.uber.org/zap"
)

// Session is what register and login hand back to the client.
type Session struct {
	User      *user.User `json:"user"`
	Token     string     `json:"token"`
	TokenType string     `json:"token_type"`
	ExpiresAt time.Time  `json:"expires_at"`
}

type Service interface {
	Register(ctx context.Context, in user.RegisterInput) (*Session, error)
	Login(ctx context.Context, email, password string) (*Session, error)
	Logout(ctx context.Context, userID uint) error
	Authenticate(ctx context.Context, token string) (*Claims, error)
}

type service struct {
	users  user.Service
	issuer *Issuer
	store  TokenStore
}

func NewService(users user.Service, issuer *Issuer, store TokenStore) Service {
	return &service{users: users, issuer: issuer, store: store}
}

func (s *service) Register(ctx context.Context, in user.RegisterInput) (*Session, error) {
	u, err := s.users.Register(ctx, in)
	if err != nil {
		return nil, err
	}
	return s.issue(ctx, u)
}

func (s *service) Login(ctx context.Context, email, password string) (*Session, error) {
	u, err := s.users.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.issue(ctx, u)
}

func (s *service) issue(ctx context.Context, u *user.User) (*Session, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "issue"),
		zap.Uint("user_id", u.ID),
	)

	token, claims, err := s.issuer.Generate(u)
	if err != nil {
		log.Error("failed to generate jwt", zap.Error(err))
		return nil, err
	}

	if err := s.store.Register(ctx, u.ID, claims.ID, s.issuer.TTL()); err != nil {
		log.Error("failed to register token", zap.Error(err))
		return nil, err
	}

	log.Info("token issued", zap.String("jti", claims.ID))
	return &Session{
		User:      u,
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Logout revokes every token of the user.
func (s *service) Logout(ctx context.Context, userID uint) error {
	if userID == 0 {
		return ErrNotAuthenticated
	}

	if err := s.store.RevokeAll(ctx, userID); err != nil {
		logger.FromCtx(ctx).Error("failed to revoke tokens",
			zap.String("layer", "service"),
			zap.String("method", "Logout"),
			zap.Uint("user_id", userID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *service) Authenticate(ctx context.Context, token string) (*Claims, error) {
	if token == "" {
		return nil, ErrNotAuthenticated
	}

	claims, err := s.issuer.Parse(token)
	if err != nil {
		return nil, err
	}

	active, err := s.store.IsActive(ctx, claims.UserID, claims.ID)
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, ErrTokenRevoked
	}

	return claims, nil
}
