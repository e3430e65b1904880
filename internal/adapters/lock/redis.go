// Package lock provides the per-key locks taken around walk-in payments.
package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/memorial_park_app/internal/core/ports/gateways"
	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

// RedisLocker takes locks through redislock.
type RedisLocker struct {
	client *redislock.Client
}

var _ gateways.Locker = (*RedisLocker)(nil)

// NewRedisLocker connects to Redis and verifies the connection.
func NewRedisLocker(ctx context.Context, addr, password string) (*RedisLocker, *redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return &RedisLocker{client: redislock.New(rdb)}, rdb, nil
}

// Obtain does not retry; a held key returns gateways.ErrLockNotObtained.
func (l *RedisLocker) Obtain(ctx context.Context, key string, ttl time.Duration) (gateways.Releaser, error) {
	lock, err := l.client.Obtain(ctx, key, ttl, nil)
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, gateways.ErrLockNotObtained
	}
	if err != nil {
		return nil, fmt.Errorf("failed to obtain lock %s: %w", key, err)
	}
	return lock, nil
}
