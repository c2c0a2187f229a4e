package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"storefront/internal/models"

	"github.com/redis/go-redis/v9"
)

// ProductCache holds recently loaded products with their variant rows so
// catalog rebuilds on every page view do not hit the database.
type ProductCache interface {
	Get(ctx context.Context, productID string) (*models.Product, bool, error)
	Set(ctx context.Context, product *models.Product) error
	Invalidate(ctx context.Context, productID string) error
}

type RedisCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
}

func NewRedisCache(redisURL string, ttl time.Duration) (*RedisCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	opts.DialTimeout = 5 * time.Second

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return NewRedisCacheFromClient(rdb, ttl), nil
}

func NewRedisCacheFromClient(rdb *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{rdb: rdb, ttl: ttl, prefix: "storefront:product:"}
}

func (c *RedisCache) key(productID string) string {
	return c.prefix + productID
}

func (c *RedisCache) Get(ctx context.Context, productID string) (*models.Product, bool, error) {
	raw, err := c.rdb.Get(ctx, c.key(productID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var product models.Product
	if err := json.Unmarshal(raw, &product); err != nil {
		// A corrupt entry is treated as a miss and dropped.
		_ = c.rdb.Del(ctx, c.key(productID)).Err()
		return nil, false, nil
	}
	return &product, true, nil
}

func (c *RedisCache) Set(ctx context.Context, product *models.Product) error {
	raw, err := json.Marshal(product)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, c.key(product.ID), raw, c.ttl).Err()
}

func (c *RedisCache) Invalidate(ctx context.Context, productID string) error {
	return c.rdb.Del(ctx, c.key(productID)).Err()
}

func (c *RedisCache) Close() error {
	return c.rdb.Close()
}

// Nop is used when no Redis URL is configured.
type Nop struct{}

func (Nop) Get(context.Context, string) (*models.Product, bool, error) { return nil, false, nil }
func (Nop) Set(context.Context, *models.Product) error                 { return nil }
func (Nop) Invalidate(context.Context, string) error                   { return nil }
