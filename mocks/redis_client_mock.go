package mocks

import (
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
)

// NewStrictRedisMock returns a real *redis.Client + redismock controller whose
// expectations must be met in the declared order (ExpectGet/Set/LPush...).
func NewStrictRedisMock() (*redis.Client, redismock.ClientMock) {
	db, mock := redismock.NewClientMock()
	mock.MatchExpectationsInOrder(true)
	return db, mock
}
