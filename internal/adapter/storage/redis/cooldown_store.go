package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// CooldownStore tracks per-address cooldowns between faucet grants. Unlike
// the IP rate limit, the cooldown follows the destination address, so a
// client cannot bypass it by rotating source IPs.
type CooldownStore struct {
	client *goredis.Client
	prefix string
}

// NewCooldownStore creates a Redis-backed cooldown store.
func NewCooldownStore(client *goredis.Client) *CooldownStore {
	return &CooldownStore{
		client: client,
		prefix: "zkf:cooldown:",
	}
}

// Acquire attempts to start a cooldown for the address. It returns true when
// the address was not cooling down (the grant may proceed), false when a
// previous grant's cooldown is still active. On false, retryAfter reports the
// remaining cooldown.
func (s *CooldownStore) Acquire(ctx context.Context, address string, ttl time.Duration) (bool, time.Duration, error) {
	key := s.prefix + address

	set, err := s.client.SetNX(ctx, key, time.Now().Unix(), ttl).Result()
	if err != nil {
		return false, 0, fmt.Errorf("redis cooldown setnx: %w", err)
	}
	if set {
		return true, 0, nil
	}

	remaining, err := s.client.TTL(ctx, key).Result()
	if err != nil {
		return false, 0, fmt.Errorf("redis cooldown ttl: %w", err)
	}
	if remaining < 0 {
		remaining = 0
	}
	return false, remaining, nil
}

// Release clears an address's cooldown, used when the grant it guarded fails
// before any funds move.
func (s *CooldownStore) Release(ctx context.Context, address string) error {
	if err := s.client.Del(ctx, s.prefix+address).Err(); err != nil {
		return fmt.Errorf("redis cooldown del: %w", err)
	}
	return nil
}
