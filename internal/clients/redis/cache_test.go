package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
)

func TestRedisCache(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("set TEST_REDIS_ADDR to run redis cache tests")
	}
	c, err := NewCache(Config{Addr: addr, Namespace: "test-" + uuid.NewString()}, logger.NewNop())
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	defer c.Close()
	ctx := context.Background()

	if err := c.Set(ctx, "hierarchy:state:", []string{"a"}, time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	var got []string
	if ok, err := c.Get(ctx, "hierarchy:state:", &got); err != nil || !ok || len(got) != 1 {
		t.Fatalf("Get: ok=%v err=%v got=%v", ok, err, got)
	}
	if err := c.DeletePrefix(ctx, "hierarchy:"); err != nil {
		t.Fatalf("DeletePrefix: %v", err)
	}
	if ok, _ := c.Get(ctx, "hierarchy:state:", &got); ok {
		t.Fatalf("key survived DeletePrefix")
	}
}

func TestNewCacheRequiresAddr(t *testing.T) {
	if _, err := NewCache(Config{}, logger.NewNop()); err == nil {
		t.Fatalf("expected error without address")
	}
}
