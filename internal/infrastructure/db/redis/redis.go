// Package redis holds the optional Redis connection behind the order
// idempotency cache. The storefront runs without it; an unset REDIS_ADDR
// leaves the cache disabled and checkout falls back to snapshot scans alone.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTimeout = 5 * time.Second

// Config captures the connection settings. Timeout bounds both dialing and
// the startup ping; zero falls back to defaultTimeout.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect opens a client against cfg.Addr and verifies connectivity with a
// ping, so a misconfigured cache fails at startup instead of on the first
// checkout.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		DB:          cfg.DB,
		ClientName:  "storefront-api",
		DialTimeout: timeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
