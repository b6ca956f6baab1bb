// Package cache stores serialized simulation results keyed by their canonical scenario query.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/rpgo/rent-vs-buy/internal/config"
)

// Cache is a string key/value store with per-entry expiry
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}

// KeyPrefix namespaces simulation entries
const KeyPrefix = "rentvsbuy:simulate:"

// Key builds the cache key for a canonical query string
func Key(query string) string {
	return KeyPrefix + query
}

// New builds the cache selected by settings: "memory", "redis" or "none"
func New(settings config.CacheSettings) (Cache, error) {
	switch settings.Driver {
	case "", "memory":
		return NewMemoryCache(WithMaxEntries(settings.MaxEntries)), nil
	case "redis":
		return NewRedisCache(settings.RedisAddr, settings.RedisPassword, settings.RedisDB), nil
	case "none":
		return Noop{}, nil
	default:
		return nil, fmt.Errorf("unknown cache driver %q (expected memory, redis or none)", settings.Driver)
	}
}

// Noop never stores anything
type Noop struct{}

func (Noop) Get(context.Context, string) (string, bool) { return "", false }

func (Noop) Set(context.Context, string, string, time.Duration) error { return nil }
