// Package idempotency stores the outcome of idempotent requests in Redis.
package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/qreview-backend/internal/domain"
)

const keyPrefix = "idem:"

// Store keeps idempotency records in Redis with a fixed TTL.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to the Redis instance at redisURL and verifies the connection.
func New(ctx context.Context, redisURL string, ttl time.Duration) (*Store, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewWithClient(client, ttl), nil
}

// NewWithClient creates a store from an existing Redis client.
func NewWithClient(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Get returns the record stored under key. found is false when the key is
// absent or expired.
func (s *Store) Get(ctx context.Context, key string) (rec domain.IdempotencyRecord, found bool, err error) {
	raw, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.IdempotencyRecord{}, false, nil
	}
	if err != nil {
		return domain.IdempotencyRecord{}, false, fmt.Errorf("get idempotency record: %w", err)
	}

	if err := json.Unmarshal(raw, &rec); err != nil {
		return domain.IdempotencyRecord{}, false, fmt.Errorf("unmarshal idempotency record: %w", err)
	}
	return rec, true, nil
}

// Save stores rec under key unless the key is already taken. The first
// outcome stored for a key wins.
func (s *Store) Save(ctx context.Context, key string, rec domain.IdempotencyRecord) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal idempotency record: %w", err)
	}

	if err := s.client.SetNX(ctx, keyPrefix+key, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save idempotency record: %w", err)
	}
	return nil
}

// Ping checks if Redis is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (s *Store) Close() error {
	return s.client.Close()
}
