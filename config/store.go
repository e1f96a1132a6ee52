package config

import (
	"errors"
	"fmt"

	"FormLab/repositories"

	"github.com/redis/go-redis/v9"
)

// ErrRedisRequired is returned when store_driver is "redis" but no client is available.
var ErrRedisRequired = errors.New("redis store selected but redis_addr empty")

// NewRepository builds the submission store named by StoreDriver.
// rdb may be nil unless the driver is "redis".
func NewRepository(cfg *Config, rdb *redis.Client) (repositories.SubmissionRepository, error) {
	switch {
	case cfg.StoreDriver == "" || cfg.StoreDriver == "memory":
		return repositories.NewMemoryRepository(), nil
	case cfg.StoreDriver == "redis":
		if rdb == nil {
			return nil, ErrRedisRequired
		}
		return repositories.NewRedisRepository(rdb, cfg.RedisPrefix), nil
	case IsSQLDriver(cfg.StoreDriver):
		db, err := OpenDB(cfg)
		if err != nil {
			return nil, err
		}
		return repositories.NewGormRepository(db), nil
	}
	return nil, fmt.Errorf("unknown store_driver: %s", cfg.StoreDriver)
}
