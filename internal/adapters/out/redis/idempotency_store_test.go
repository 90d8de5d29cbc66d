package redis_test

import (
	"context"
	"errors"
	"testing"
	"time"

	store "marketplace/internal/adapters/out/redis"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockClient struct{ mock.Mock }

func (m *MockClient) SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd {
	args := m.Called(ctx, key, value, expiration)
	return redis.NewBoolResult(args.Bool(0), args.Error(1))
}

func (m *MockClient) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	args := m.Called(ctx, keys)
	return redis.NewIntResult(int64(args.Int(0)), args.Error(1))
}

func TestIdempotencyStore_Reserve(t *testing.T) {
	const redisKey = "idem:checkout:actor-1:abc"

	t.Run("first use claims the key", func(t *testing.T) {
		client := new(MockClient)
		client.On("SetNX", mock.Anything, redisKey, "1", 10*time.Minute).Return(true, nil).Once()

		ok, err := store.NewIdempotencyStore(client, 10*time.Minute).Reserve(testContext(t), "actor-1", "abc")

		require.NoError(t, err)
		assert.True(t, ok)
		client.AssertExpectations(t)
	})

	t.Run("repeated key is rejected", func(t *testing.T) {
		client := new(MockClient)
		client.On("SetNX", mock.Anything, redisKey, "1", time.Minute).Return(false, nil).Once()

		ok, err := store.NewIdempotencyStore(client, time.Minute).Reserve(testContext(t), "actor-1", "abc")

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("redis error", func(t *testing.T) {
		client := new(MockClient)
		client.On("SetNX", mock.Anything, redisKey, "1", time.Minute).Return(false, errors.New("connection refused")).Once()

		ok, err := store.NewIdempotencyStore(client, time.Minute).Reserve(testContext(t), "actor-1", "abc")

		require.ErrorContains(t, err, "connection refused")
		assert.False(t, ok)
	})
}

func TestIdempotencyStore_Release(t *testing.T) {
	client := new(MockClient)
	client.On("Del", mock.Anything, []string{"idem:checkout:actor-1:abc"}).Return(1, nil).Once()

	err := store.NewIdempotencyStore(client, time.Minute).Release(testContext(t), "actor-1", "abc")

	require.NoError(t, err)
	client.AssertExpectations(t)
}
