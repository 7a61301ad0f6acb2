package storage

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the blobs in Redis instead of local files.  It exists so
// several instances of the service can share one session and booking state;
// the contract is identical to FileStore (whole value per key, no TTL).
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore wraps an already connected client.  The prefix namespaces
// the fixed blob keys so the store can share a Redis database with the rate
// limiter.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "blob"
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(key string) string { return s.prefix + ":" + key }

// opTimeout bounds every Redis round trip.  The repositories call the store
// synchronously from request handlers, so a hung Redis must not hang them.
const opTimeout = 2 * time.Second

// Get returns the stored value or ErrNoBlob when the key has never been set.
func (s *RedisStore) Get(key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	b, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoBlob
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Set replaces the whole value under key with no expiry.
func (s *RedisStore) Set(key string, value []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	return s.client.Set(ctx, s.key(key), value, 0).Err()
}

// Delete removes the key.  Removing an absent key is not an error.
func (s *RedisStore) Delete(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	return s.client.Del(ctx, s.key(key)).Err()
}
