package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"waitlist/backend/pkg/logger"
)

// RedisStore is a fixed-window counter backed by Redis, for deployments
// running more than one instance behind the same proxy. The window lives
// as a TTL on the counter key: the first increment of a window arms the
// expiry, later increments ride the remaining TTL.
//
// Redis errors fail open: an unreachable Redis must not take signups down,
// so the request is admitted and the error logged.
type RedisStore struct {
	client *redis.Client
	window time.Duration
	max    int
}

func NewRedisStore(client *redis.Client, window time.Duration, max int) *RedisStore {
	return &RedisStore{client: client, window: window, max: max}
}

func (s *RedisStore) key(key string) string {
	return "ratelimit:" + key
}

func (s *RedisStore) Check(ctx context.Context, key string) (Decision, error) {
	rkey := s.key(key)

	count, err := s.client.Incr(ctx, rkey).Result()
	if err != nil {
		logger.Warn("rate limit redis incr failed, admitting request", "error", err)
		return Decision{Allowed: true, Remaining: s.max - 1, Reset: time.Now().Add(s.window).Unix()}, nil
	}
	if count == 1 {
		if err := s.client.PExpire(ctx, rkey, s.window).Err(); err != nil {
			logger.Warn("rate limit redis expire failed", "error", err)
		}
	}

	ttl, err := s.client.PTTL(ctx, rkey).Result()
	if err != nil || ttl <= 0 {
		ttl = s.window
	}
	reset := time.Now().Add(ttl).Unix()

	if count > int64(s.max) {
		return Decision{
			Allowed:    false,
			Remaining:  0,
			RetryAfter: int((ttl + time.Second - 1) / time.Second),
			Reset:      reset,
		}, nil
	}

	return Decision{
		Allowed:   true,
		Remaining: s.max - int(count),
		Reset:     reset,
	}, nil
}

// Reset drops all rate-limit keys. Intended for test isolation.
func (s *RedisStore) Reset(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, s.key("*"), 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("delete rate limit key: %w", err)
		}
	}
	return iter.Err()
}
