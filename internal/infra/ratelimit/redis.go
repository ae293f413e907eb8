package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// TTL ключа сохраняется, окно не продлевается
var undoScript = redis.NewScript(`
local current = tonumber(redis.call("GET", KEYS[1]))
if current and current > 0 then
  return redis.call("DECR", KEYS[1])
end
return 0
`)

// RedisLimiter счетчики фиксированного окна в Redis, общие для всех инстансов
type RedisLimiter struct {
	rdb    redis.UniversalClient
	window time.Duration
	prefix string
}

// NewRedisLimiter создает лимитер; prefix отделяет ключи разных лимитеров
func NewRedisLimiter(rdb redis.UniversalClient, window time.Duration, prefix string) *RedisLimiter {
	if prefix == "" {
		prefix = "rl"
	}
	return &RedisLimiter{rdb: rdb, window: window, prefix: prefix}
}

// Hit увеличивает счетчик ключа и возвращает новое значение
func (l *RedisLimiter) Hit(ctx context.Context, key string) (int64, error) {
	ms := l.window.Milliseconds()
	if ms <= 0 {
		ms = time.Minute.Milliseconds()
	}

	res, err := fixedWindowScript.Run(ctx, l.rdb, []string{l.key(key)}, ms).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: hit: %w", ErrBackend, err)
	}
	return toInt64(res)
}

// Undo откатывает один Hit
func (l *RedisLimiter) Undo(ctx context.Context, key string) error {
	if err := undoScript.Run(ctx, l.rdb, []string{l.key(key)}).Err(); err != nil {
		return fmt.Errorf("%w: undo: %w", ErrBackend, err)
	}
	return nil
}

func (l *RedisLimiter) key(key string) string {
	return l.prefix + ":" + key
}

func toInt64(res interface{}) (int64, error) {
	switch v := res.(type) {
	case int64:
		return v, nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: parse counter: %w", ErrBackend, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: unexpected result type %T", ErrBackend, res)
	}
}
