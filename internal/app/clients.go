package app

import (
	"fmt"
	"time"

	"github.com/hbagde424/ElectionAT-sub001/internal/clients/redis"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/cache"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
)

// wireCache returns the redis cache when REDIS_ADDR is set and the in-process
// cache otherwise.
func wireCache(cfg Config, log *logger.Logger) (cache.Cache, error) {
	if cfg.Redis.Addr == "" {
		log.Info("Using in-process cache")
		return cache.NewMemory(cfg.CacheTTL, time.Minute), nil
	}
	c, err := redis.NewCache(cfg.Redis, log)
	if err != nil {
		return nil, fmt.Errorf("init redis cache: %w", err)
	}
	log.Info("Using redis cache", "addr", cfg.Redis.Addr)
	return c, nil
}
