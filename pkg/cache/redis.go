package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hotel-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient connects to Redis and pings it. Callers treat an error as
// "run without Redis" rather than a fatal condition.
func NewRedisClient(ctx context.Context, cfg utils.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", cfg.Addr, err)
	}

	return client, nil
}

// JSONCache stores JSON documents under plain keys with a fixed TTL.
// A nil client disables it: reads always miss and writes are dropped.
type JSONCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

func NewJSONCache(rdb *redis.Client, ttl time.Duration, log *zap.Logger) *JSONCache {
	return &JSONCache{
		rdb: rdb,
		ttl: ttl,
		log: log.With(zap.String("component", "cache")),
	}
}

func (c *JSONCache) Enabled() bool {
	return c != nil && c.rdb != nil
}

// Get decodes the value stored at key into dst and reports whether it was found.
func (c *JSONCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if !c.Enabled() {
		return false, nil
	}

	raw, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		// corrupt entry, drop it so the next read refills
		c.rdb.Del(ctx, key)
		return false, fmt.Errorf("cache decode %s: %w", key, err)
	}

	return true, nil
}

func (c *JSONCache) Set(ctx context.Context, key string, value any) error {
	if !c.Enabled() {
		return nil
	}

	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}

	if err := c.rdb.Set(ctx, key, string(b), c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}

	return nil
}

func (c *JSONCache) Delete(ctx context.Context, keys ...string) error {
	if !c.Enabled() || len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}
