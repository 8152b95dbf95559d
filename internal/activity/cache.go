package activity

//go:generate mockgen -source=cache.go -destination=mock_cache.go -package=activity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"stepsocial/internal/common"
	"stepsocial/internal/config"
	"stepsocial/internal/streak"
)

// StreakCache holds computed streaks per user. Entries are keyed by the
// inputs that change the answer (day, goal, gap policy) plus the user's
// history generation; any write to the user's history must Invalidate,
// which moves the generation forward.
type StreakCache interface {
	// Generation is read before the history so a result computed from a
	// history that changed meanwhile is stored under a field nobody reads.
	Generation(ctx context.Context, userID uint64) (int64, error)
	Get(ctx context.Context, userID uint64, field string) (streak.Result, bool, error)
	Set(ctx context.Context, userID uint64, field string, result streak.Result) error
	Invalidate(ctx context.Context, userID uint64) error
}

// CacheField builds the per-user field name for a streak answer.
func CacheField(day string, goal int, policy streak.GapPolicy, generation int64) string {
	return fmt.Sprintf("%s:%d:%s:%d", day, goal, policy, generation)
}

type RedisStreakCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStreakCache(client *redis.Client, ttl time.Duration) *RedisStreakCache {
	return &RedisStreakCache{client: client, ttl: ttl}
}

func streakKey(userID uint64) string {
	return fmt.Sprintf("streaks:%d", userID)
}

func generationKey(userID uint64) string {
	return fmt.Sprintf("streaks:gen:%d", userID)
}

func (c *RedisStreakCache) Generation(ctx context.Context, userID uint64) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read streak generation for user %d: %w", userID, err)
	}
	return gen, nil
}

func (c *RedisStreakCache) Get(ctx context.Context, userID uint64, field string) (streak.Result, bool, error) {
	raw, err := c.client.HGet(ctx, streakKey(userID), field).Bytes()
	if errors.Is(err, redis.Nil) {
		return streak.Result{}, false, nil
	}
	if err != nil {
		return streak.Result{}, false, fmt.Errorf("read streak cache for user %d: %w", userID, err)
	}

	var result streak.Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return streak.Result{}, false, fmt.Errorf("decode cached streak for user %d: %w", userID, err)
	}
	return result, true, nil
}

func (c *RedisStreakCache) Set(ctx context.Context, userID uint64, field string, result streak.Result) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}

	key := streakKey(userID)
	_, err = c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, field, raw)
		pipe.Expire(ctx, key, c.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("write streak cache for user %d: %w", userID, err)
	}
	return nil
}

// Invalidate bumps the generation and drops the cached answers. The counter
// has no TTL; it must never go back to a value a reader already saw.
func (c *RedisStreakCache) Invalidate(ctx context.Context, userID uint64) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey(userID))
		pipe.Del(ctx, streakKey(userID))
		return nil
	})
	if err != nil {
		return fmt.Errorf("invalidate streak cache for user %d: %w", userID, err)
	}
	return nil
}

// NoopStreakCache never hits; every lookup recomputes.
type NoopStreakCache struct{}

func (NoopStreakCache) Generation(context.Context, uint64) (int64, error) { return 0, nil }

func (NoopStreakCache) Get(context.Context, uint64, string) (streak.Result, bool, error) {
	return streak.Result{}, false, nil
}

func (NoopStreakCache) Set(context.Context, uint64, string, streak.Result) error { return nil }

func (NoopStreakCache) Invalidate(context.Context, uint64) error { return nil }

// ProvideStreakCache picks the Redis cache when an address is configured.
// The cleanup closes the Redis client.
func ProvideStreakCache(cfg *config.Config) (StreakCache, func(), error) {
	if cfg.Redis.Addr == "" {
		return NoopStreakCache{}, func() {}, nil
	}
	if cfg.Redis.TTL <= 0 {
		return nil, nil, fmt.Errorf("%w: STREAK_CACHE_TTL must be positive", common.ErrConfiguration)
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	cleanup := func() {
		_ = client.Close()
	}
	return NewRedisStreakCache(client, cfg.Redis.TTL), cleanup, nil
}
