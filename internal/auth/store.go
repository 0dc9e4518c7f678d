package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// TokenStore tracks which token ids are still valid per user.
type TokenStore interface {
	Register(ctx context.Context, userID uint, jti string, ttl time.Duration) error
	IsActive(ctx context.Context, userID uint, jti string) (bool, error)
	RevokeAll(ctx context.Context, userID uint) error
}

type redisTokenStore struct {
	rdb *redis.Client
}

func NewRedisTokenStore(rdb *redis.Client) TokenStore {
	return &redisTokenStore{rdb: rdb}
}

func tokenKey(userID uint) string {
	return fmt.Sprintf("tokens:user:%d", userID)
}

func (s *redisTokenStore) Register(ctx context.Context, userID uint, jti string, ttl time.Duration) error {
	key := tokenKey(userID)
	if err := s.rdb.SAdd(ctx, key, jti).Err(); err != nil {
		return err
	}
	return s.rdb.Expire(ctx, key, ttl).Err()
}

func (s *redisTokenStore) IsActive(ctx context.Context, userID uint, jti string) (bool, error) {
	return s.rdb.SIsMember(ctx, tokenKey(userID), jti).Result()
}

func (s *redisTokenStore) RevokeAll(ctx context.Context, userID uint) error {
	return s.rdb.Del(ctx, tokenKey(userID)).Err()
}
