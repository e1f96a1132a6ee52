// Package redislog keeps an audit trail of form activity in a Redis LIST
// (newest first), so the last N events can be inspected with any Redis client.
package redislog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Entry is one structured log line, stored as JSON.
type Entry struct {
	Level string            `json:"level"`
	Msg   string            `json:"msg"`
	Time  string            `json:"time"`
	Meta  map[string]string `json:"meta,omitempty"`
}

// Logger pushes entries to a Redis LIST and trims it to max entries.
// A nil *Logger, or one without a client, is a valid no-op logger.
type Logger struct {
	rdb       *redis.Client
	key       string        // list key, e.g. "logs:app"
	max       int64         // keep last N entries
	retention time.Duration // refreshed EXPIRE on the list key; 0 = never expire
	echo      bool          // also print through the standard logger
	now       func() time.Time
}

// New creates a logger writing to key.
func New(rdb *redis.Client, key string, max int64, retention time.Duration) *Logger {
	return &Logger{rdb: rdb, key: key, max: max, retention: retention, now: time.Now}
}

// WithEcho mirrors every entry to the process log as well.
func (l *Logger) WithEcho() *Logger {
	if l == nil {
		return nil
	}
	cp := *l
	cp.echo = true
	return &cp
}

// WithClock swaps the time source; entries are stamped with now() in UTC.
func (l *Logger) WithClock(now func() time.Time) *Logger {
	if l == nil {
		return nil
	}
	cp := *l
	cp.now = now
	return &cp
}

// log pushes an entry as JSON -> LPUSH; then LTRIM; then EXPIRE. Redis errors are dropped:
// losing an audit line must never fail a submission.
func (l *Logger) log(level, msg string, meta map[string]string) {
	if l == nil {
		return
	}
	if l.echo {
		log.Printf("[%s] %s %v", level, msg, meta)
	}
	if l.rdb == nil {
		return
	}
	en := Entry{
		Level: level,
		Msg:   msg,
		Time:  l.now().UTC().Format(time.RFC3339),
		Meta:  meta,
	}
	b, err := json.Marshal(en)
	if err != nil {
		return
	}
	ctx := context.Background()
	if err := l.rdb.LPush(ctx, l.key, b).Err(); err != nil {
		return
	}
	if l.max > 0 {
		_ = l.rdb.LTrim(ctx, l.key, 0, l.max-1).Err()
	}
	if l.retention > 0 {
		_ = l.rdb.Expire(ctx, l.key, l.retention).Err()
	}
}

func (l *Logger) Info(msg string, meta map[string]string)  { l.log("info", msg, meta) }
func (l *Logger) Warn(msg string, meta map[string]string)  { l.log("warn", msg, meta) }
func (l *Logger) Error(msg string, meta map[string]string) { l.log("error", msg, meta) }

// Infof formats msg; meta stays structured.
func (l *Logger) Infof(format string, meta map[string]string, args ...any) {
	l.Info(fmt.Sprintf(format, args...), meta)
}
