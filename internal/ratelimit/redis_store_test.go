package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisStore(client), mr
}

func TestRedisStore_CountsWithinWindow(t *testing.T) {
	store, _ := setupTestRedis(t)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		count, _, err := store.Incr(ctx, "caller-1", time.Minute)
		require.NoError(t, err)
		require.Equal(t, want, count)
	}
}

func TestRedisStore_WindowExpiryResetsCounter(t *testing.T) {
	store, mr := setupTestRedis(t)
	ctx := context.Background()

	count, _, err := store.Incr(ctx, "caller-1", time.Minute)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	mr.FastForward(61 * time.Second)

	count, _, err = store.Incr(ctx, "caller-1", time.Minute)
	require.NoError(t, err)
	require.Equal(t, int64(1), count, "elapsed window should start a fresh counter")
}

func TestRedisStore_WithLimiter(t *testing.T) {
	store, mr := setupTestRedis(t)
	limiter := NewLimiter(store, 10, time.Minute)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		d, err := limiter.Allow(ctx, "caller-1")
		require.NoError(t, err)
		require.True(t, d.Allowed)
	}

	d, err := limiter.Allow(ctx, "caller-1")
	require.NoError(t, err)
	require.False(t, d.Allowed, "11th request should be denied")

	mr.FastForward(61 * time.Second)

	d, err = limiter.Allow(ctx, "caller-1")
	require.NoError(t, err)
	require.True(t, d.Allowed, "request after window should be admitted")
}
