package session

import (
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/go-admin-workflow/internal/platform/config"
	"github.com/jsamuelsen11/go-admin-workflow/internal/ports"
)

// Store kinds accepted by session.store.
const (
	KindMemory = "memory"
	KindRedis  = "redis"
)

// New builds the session store selected by cfg. The returned health checker
// is nil for the memory store.
func New(cfg config.SessionConfig) (ports.SessionStore, ports.HealthChecker, error) {
	switch cfg.Store {
	case "", KindMemory:
		return NewMemoryStore(cfg.TTL), nil, nil
	case KindRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		store := NewRedisStore(client, cfg.TTL)
		return store, store, nil
	default:
		return nil, nil, fmt.Errorf("unknown session store %q", cfg.Store)
	}
}
