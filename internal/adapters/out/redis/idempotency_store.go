// Package redis keeps checkout idempotency keys in Redis.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client is the subset of redis.Cmdable the store needs.
type Client interface {
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// IdempotencyStore remembers Idempotency-Key values per actor for ttl.
type IdempotencyStore struct {
	rdb Client
	ttl time.Duration
}

func NewIdempotencyStore(rdb Client, ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{rdb: rdb, ttl: ttl}
}

// NewClient opens a client for addr ("localhost:6379").
func NewClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

func (s *IdempotencyStore) key(actorID, key string) string {
	return fmt.Sprintf("idem:checkout:%s:%s", actorID, key)
}

// Reserve claims key for actorID. It returns false when the key was already
// claimed within the ttl.
func (s *IdempotencyStore) Reserve(ctx context.Context, actorID, key string) (bool, error) {
	ok, err := s.rdb.SetNX(ctx, s.key(actorID, key), "1", s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("reserve idempotency key: %w", err)
	}
	return ok, nil
}

// Release frees a claimed key so a failed submission can be retried.
func (s *IdempotencyStore) Release(ctx context.Context, actorID, key string) error {
	if err := s.rdb.Del(ctx, s.key(actorID, key)).Err(); err != nil {
		return fmt.Errorf("release idempotency key: %w", err)
	}
	return nil
}
