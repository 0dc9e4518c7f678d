package auth

import "errors"

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrInvalidToken     = errors.New("invalid token")
	ErrTokenRevoked     = errors.New("token revoked")
	ErrMissingSecret    = errors.New("JWT_SECRET is not set")
)
