package config

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// OpenRedis creates a single Redis client and verifies connectivity with Ping.
// It returns nil, nil when no redis_addr is configured.
func OpenRedis(cfg *Config) (*redis.Client, error) {
	if cfg.RedisAddr == "" {
		return nil, nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPass,
		DB:           cfg.RedisDB,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping failed: %w (addr=%s db=%d)", err, cfg.RedisAddr, cfg.RedisDB)
	}
	return rdb, nil
}

// InitRedis is OpenRedis for boot code: a configured but unreachable Redis ends the process.
func InitRedis(cfg *Config) *redis.Client {
	rdb, err := OpenRedis(cfg)
	if err != nil {
		log.Fatalf("[redis] %v", err)
	}
	if rdb != nil {
		log.Printf("[redis] connected: addr=%s db=%d", cfg.RedisAddr, cfg.RedisDB)
	}
	return rdb
}
