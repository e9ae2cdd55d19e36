// Package redisdeny implements session.Denylist on Redis. Every revoked token
// is a key holding a placeholder value with a TTL equal to the token's
// remaining lifetime, so the set never grows beyond the live tokens.
package redisdeny

import (
	"context"
	"fmt"
	"maike/pkg/session"
	"time"

	"github.com/go-redis/redis/v8"
)

// Options configure the Redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
	// KeyPrefix is prepended to every token ID.
	KeyPrefix string
}

type Denylist struct {
	client *redis.Client
	prefix string
}

var _ session.Denylist = (*Denylist)(nil)

// New connects to Redis and verifies the connection with a PING.
func New(ctx context.Context, opts Options) (*Denylist, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("could not ping redis: %w", err)
	}

	return &Denylist{client: client, prefix: opts.KeyPrefix}, nil
}

func (d *Denylist) key(jti string) string {
	return d.prefix + jti
}

func (d *Denylist) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := d.client.Set(ctx, d.key(jti), 1, ttl).Err(); err != nil {
		return fmt.Errorf("could not revoke token: %w", err)
	}

	return nil
}

func (d *Denylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("could not check revoked token: %w", err)
	}

	return n > 0, nil
}

// Ping checks that Redis is reachable.
func (d *Denylist) Ping(ctx context.Context) error {
	if err := d.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("could not ping redis: %w", err)
	}

	return nil
}

// Close closes the underlying client.
func (d *Denylist) Close() error {
	if err := d.client.Close(); err != nil {
		return fmt.Errorf("could not close redis client: %w", err)
	}

	return nil
}
