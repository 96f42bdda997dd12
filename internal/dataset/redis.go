package dataset

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/storage/redis/v3"
)

// errKeyMissing is wrapped when the dataset key does not exist.
var errKeyMissing = errors.New("key not found")

// RedisSource reads the dataset from a single Redis key holding the raw
// file content.
type RedisSource struct {
	storage *redis.Storage
	key     string
}

// NewRedisSource connects to Redis at url. The storage driver panics when the
// server is unreachable, which is turned into an error here.
func NewRedisSource(url, key string) (src *RedisSource, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("connecting to redis dataset: %v", r)
		}
	}()

	storage := redis.New(redis.Config{
		URL: url,
	})

	return NewRedisSourceWithStorage(storage, key), nil
}

// NewRedisSourceWithStorage creates a Redis source around an existing storage.
func NewRedisSourceWithStorage(storage *redis.Storage, key string) *RedisSource {
	return &RedisSource{storage: storage, key: key}
}

// Name returns "redis".
func (s *RedisSource) Name() string {
	return "redis"
}

// Lines fetches the key on every call.
func (s *RedisSource) Lines(ctx context.Context) ([]string, error) {
	op := "redis get " + s.key
	if err := ctx.Err(); err != nil {
		return nil, unavailable(op, err)
	}

	data, err := s.storage.Get(s.key)
	if err != nil {
		return nil, unavailable(op, err)
	}
	// The driver reports a missing key as nil data without an error.
	if data == nil {
		return nil, unavailable(op, errKeyMissing)
	}
	return SplitLines(data), nil
}

// Close closes the Redis connection.
func (s *RedisSource) Close() error {
	return s.storage.Close()
}
