package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/newshelton/storefront-api/pkg/redis"
)

const redisKeyPrefix = "session:"

// RedisStore is a Redis-backed Store. Expiry is delegated to Redis
// key TTLs, so sessions survive process restarts and are shared
// across instances.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new RedisStore
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func redisKey(sid string) string {
	return redisKeyPrefix + sid
}

// Set stores data under the session ID with the given TTL
func (s *RedisStore) Set(ctx context.Context, sid string, data Data, ttl time.Duration) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal session data: %w", err)
	}
	return s.client.Set(ctx, redisKey(sid), payload, ttl).Err()
}

// Get retrieves data for a session ID, ErrNotFound if missing or expired
func (s *RedisStore) Get(ctx context.Context, sid string) (Data, error) {
	payload, err := s.client.Get(ctx, redisKey(sid)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return Data{}, ErrNotFound
		}
		return Data{}, err
	}

	var data Data
	if err := json.Unmarshal(payload, &data); err != nil {
		return Data{}, fmt.Errorf("failed to unmarshal session data: %w", err)
	}
	return data, nil
}

// Delete removes a session; deleting a missing session is not an error
func (s *RedisStore) Delete(ctx context.Context, sid string) error {
	return s.client.Del(ctx, redisKey(sid)).Err()
}
