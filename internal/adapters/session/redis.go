package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/go-admin-workflow/internal/domain"
	"github.com/jsamuelsen11/go-admin-workflow/internal/ports"
)

var (
	_ ports.SessionStore  = (*RedisStore)(nil)
	_ ports.HealthChecker = (*RedisStore)(nil)
)

const keyPrefix = "admin:session:"

// RedisStore keeps sessions in Redis: flashes in a list and attributes in a
// hash, both expiring ttl after the last write. A non-positive ttl keeps keys
// forever.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a RedisStore over client.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func flashKey(sessionID string) string { return keyPrefix + sessionID + ":flashes" }
func attrKey(sessionID string) string  { return keyPrefix + sessionID + ":attrs" }

// AddFlash appends a flash message to the session.
func (r *RedisStore) AddFlash(ctx context.Context, sessionID string, flash domain.Flash) error {
	payload, err := json.Marshal(flash)
	if err != nil {
		return fmt.Errorf("encode flash: %w", err)
	}
	key := flashKey(sessionID)
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, payload)
		if r.ttl > 0 {
			pipe.Expire(ctx, key, r.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("store flash: %w", err)
	}
	return nil
}

// DrainFlashes atomically reads and removes the pending flash messages.
func (r *RedisStore) DrainFlashes(ctx context.Context, sessionID string) ([]domain.Flash, error) {
	key := flashKey(sessionID)
	var lrange *redis.StringSliceCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		lrange = pipe.LRange(ctx, key, 0, -1)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("drain flashes: %w", err)
	}

	raw := lrange.Val()
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]domain.Flash, 0, len(raw))
	for _, item := range raw {
		var f domain.Flash
		if err := json.Unmarshal([]byte(item), &f); err != nil {
			return nil, fmt.Errorf("decode flash: %w", err)
		}
		out = append(out, f)
	}
	return out, nil
}

// Get returns a session attribute.
func (r *RedisStore) Get(ctx context.Context, sessionID, key string) (string, bool, error) {
	v, err := r.client.HGet(ctx, attrKey(sessionID), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read session attribute: %w", err)
	}
	return v, true, nil
}

// Set stores a session attribute.
func (r *RedisStore) Set(ctx context.Context, sessionID, key, value string) error {
	hkey := attrKey(sessionID)
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, hkey, key, value)
		if r.ttl > 0 {
			pipe.Expire(ctx, hkey, r.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("store session attribute: %w", err)
	}
	return nil
}

// Name implements ports.HealthChecker.
func (r *RedisStore) Name() string { return "redis" }

// HealthCheck implements ports.HealthChecker.
func (r *RedisStore) HealthCheck(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
