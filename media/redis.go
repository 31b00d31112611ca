package media

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists media URL entries in redis so the cache survives
// process restarts. Keys are prefixed; the redis TTL mirrors the entry's
// own expiry so redis garbage-collects what expiry-on-read would anyway.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

var _ Store = (*RedisStore)(nil)

func (s *RedisStore) key(productID string) string {
	return s.prefix + ":" + productID
}

func (s *RedisStore) Get(ctx context.Context, productID string) (Entry, error) {
	data, err := s.client.Get(ctx, s.key(productID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Entry{}, ErrNotFound
		}
		return Entry{}, err
	}
	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		return Entry{}, err
	}
	return e, nil
}

func (s *RedisStore) Set(ctx context.Context, productID string, e Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	ttl := time.Until(e.ExpiresAt)
	if ttl <= 0 {
		ttl = time.Second
	}
	return s.client.Set(ctx, s.key(productID), data, ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, productID string) error {
	return s.client.Del(ctx, s.key(productID)).Err()
}
