package cache

import (
	"context"
	"testing"
	"time"

	"storefront/internal/models"

	"github.com/redis/go-redis/v9"
)

func TestNewRedisCache_InvalidURL(t *testing.T) {
	if _, err := NewRedisCache("not-a-redis-url", time.Second); err == nil {
		t.Fatal("expected error for invalid url")
	}
}

func TestRedisCache_KeyPrefix(t *testing.T) {
	c := &RedisCache{prefix: "storefront:product:"}

	if got := c.key("abc"); got != "storefront:product:abc" {
		t.Errorf("unexpected key %q", got)
	}
}

func TestNop(t *testing.T) {
	var c ProductCache = Nop{}
	ctx := context.Background()

	if err := c.Set(ctx, &models.Product{ID: "p1"}); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if _, ok, err := c.Get(ctx, "p1"); ok || err != nil {
		t.Errorf("expected miss without error, got ok=%v err=%v", ok, err)
	}
	if err := c.Invalidate(ctx, "p1"); err != nil {
		t.Errorf("Invalidate returned error: %v", err)
	}
}

func TestRedisCache_UnreachableServer(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	c := NewRedisCacheFromClient(rdb, time.Minute)
	defer c.Close()

	ctx := context.Background()
	if _, ok, err := c.Get(ctx, "p1"); ok || err == nil {
		t.Errorf("expected read error, got ok=%v err=%v", ok, err)
	}
	if err := c.Set(ctx, &models.Product{ID: "p1"}); err == nil {
		t.Error("expected write error")
	}
}
