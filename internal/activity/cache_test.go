package activity

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stepsocial/internal/common"
	"stepsocial/internal/config"
	"stepsocial/internal/streak"
)

func TestCacheField(t *testing.T) {
	assert.Equal(t, "2025-03-15:10000:gaps-ignored:0", CacheField("2025-03-15", 10000, streak.GapsIgnored, 0))
	assert.Equal(t, "2025-03-15:8000:gaps-break:12", CacheField("2025-03-15", 8000, streak.GapsBreak, 12))
}

func TestProvideStreakCache(t *testing.T) {
	cfg := &config.Config{}
	cache, cleanup, err := ProvideStreakCache(cfg)
	require.NoError(t, err)
	_, isNoop := cache.(NoopStreakCache)
	assert.True(t, isNoop)
	cleanup()

	cfg.Redis = config.RedisConfig{Addr: "localhost:6379", TTL: time.Minute}
	cache, cleanup, err = ProvideStreakCache(cfg)
	require.NoError(t, err)
	rc, isRedis := cache.(*RedisStreakCache)
	require.True(t, isRedis)

	cleanup()
	assert.EqualError(t, rc.client.Ping(context.Background()).Err(), "redis: client is closed")
}

func TestProvideStreakCache_RejectsNonPositiveTTL(t *testing.T) {
	cfg := &config.Config{Redis: config.RedisConfig{Addr: "localhost:6379"}}
	_, _, err := ProvideStreakCache(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrConfiguration)
}

func TestNoopStreakCache(t *testing.T) {
	ctx := context.Background()
	var c NoopStreakCache

	require.NoError(t, c.Set(ctx, 1, "f", streak.Result{Current: 1}))
	_, ok, err := c.Get(ctx, 1, "f")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, c.Invalidate(ctx, 1))
	gen, err := c.Generation(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, gen)
}

// Runs against a live Redis when REDIS_ADDR is set.
func TestRedisStreakCache_Integration(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()
	require.NoError(t, client.Ping(ctx).Err())

	cache := NewRedisStreakCache(client, time.Minute)
	const userID = 987654321
	defer client.Del(ctx, streakKey(userID), generationKey(userID))

	gen, err := cache.Generation(ctx, userID)
	require.NoError(t, err)
	field := CacheField("2025-03-15", 10000, streak.GapsIgnored, gen)

	_, ok, err := cache.Get(ctx, userID, field)
	require.NoError(t, err)
	assert.False(t, ok)

	want := streak.Result{Current: 3, Longest: 8}
	require.NoError(t, cache.Set(ctx, userID, field, want))

	got, ok, err := cache.Get(ctx, userID, field)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got)

	ttl, err := client.TTL(ctx, streakKey(userID)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, cache.Invalidate(ctx, userID))
	_, ok, err = cache.Get(ctx, userID, field)
	require.NoError(t, err)
	assert.False(t, ok)

	next, err := cache.Generation(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, gen+1, next)
}
