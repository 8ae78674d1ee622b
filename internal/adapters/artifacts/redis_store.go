package artifacts

import (
	"context"
	"driver-assignment-service/internal/platform/obs"
	"driver-assignment-service/internal/ports"
	"errors"
	"fmt"

	redis "github.com/redis/go-redis/v9"
)

const DefaultRedisKey = "assignments:latest"

// RedisStore keeps the latest artifact under a single Redis key so every
// server replica serves the same download.
type RedisStore struct {
	rdb *redis.Client
	key string
}

// NewRedisStore connects using a redis:// URL.
func NewRedisStore(url, key string) (*RedisStore, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis artifact store: parse url: %w", err)
	}
	return NewRedisStoreFromClient(redis.NewClient(opt), key), nil
}

func NewRedisStoreFromClient(rdb *redis.Client, key string) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{rdb: rdb, key: key}
}

func (s *RedisStore) Save(ctx context.Context, data []byte) (err error) {
	defer obs.Time(ctx, "artifacts.redis.Save")(&err)

	if err := s.rdb.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis artifact store: set %q: %w", s.key, err)
	}
	return nil
}

func (s *RedisStore) Latest(ctx context.Context) ([]byte, error) {
	data, err := s.rdb.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ports.ErrNoArtifact
	}
	if err != nil {
		return nil, fmt.Errorf("redis artifact store: get %q: %w", s.key, err)
	}
	return data, nil
}

func (s *RedisStore) Close() error { return s.rdb.Close() }
