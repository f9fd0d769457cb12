package history

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisStore shares sessions across instances, so scale-out or a restart
// does not silently lose context.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(addr string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

func (s *RedisStore) key(sessionID string) string {
	return "chat:history:" + sessionID
}

func (s *RedisStore) Append(ctx context.Context, sessionID string, entry string) error {
	key := s.key(sessionID)

	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, entry)
	pipe.LTrim(ctx, key, -MaxEntries, -1)
	pipe.Expire(ctx, key, s.ttl)

	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisStore) Recent(ctx context.Context, sessionID string, n int) ([]string, error) {
	entries, err := s.client.LRange(ctx, s.key(sessionID), int64(-n), -1).Result()
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Compile-time check
var _ Store = (*RedisStore)(nil)
