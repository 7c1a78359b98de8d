package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisSessionStore verifies bearer tokens against sessions kept in Redis.
// Sessions are written by the login service; the proxy only reads them.
type RedisSessionStore struct {
	client *redis.Client
	prefix string
}

// NewRedisSessionStore creates a new Redis-backed session verifier.
func NewRedisSessionStore(client *redis.Client, prefix string) *RedisSessionStore {
	return &RedisSessionStore{
		client: client,
		prefix: prefix,
	}
}

// Verify looks up the session for token and returns its subject.
func (s *RedisSessionStore) Verify(ctx context.Context, token string) (string, error) {
	subject, err := s.client.Get(ctx, s.prefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrInvalidSession
	}
	if err != nil {
		return "", fmt.Errorf("session lookup failed: %w", err)
	}
	if subject == "" {
		return "", ErrInvalidSession
	}

	return subject, nil
}
