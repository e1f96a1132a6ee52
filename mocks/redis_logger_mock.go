package mocks

import (
	"time"

	"FormLab/utils/redislog"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
)

// NewRedisLoggerWithMock constructs a real redislog.Logger over a mocked redis client
// with a frozen clock, so the exact LPUSH payload can be expected.
func NewRedisLoggerWithMock(at time.Time) (*redislog.Logger, *redis.Client, redismock.ClientMock) {
	rc, mock := redismock.NewClientMock()
	logger := redislog.New(rc, "logs:app", 100, 24*time.Hour).WithClock(func() time.Time { return at })
	return logger, rc, mock
}
