package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/travel-deals/travel-deal-recommendation-service/internal/infrastructure/logger"
	"github.com/travel-deals/travel-deal-recommendation-service/internal/infrastructure/timeutil"
)

// RedisStore is a Store backed by Redis. Entries are stored as JSON documents
// under their cache key with a Redis-side TTL, so expired entries are pruned
// by Redis itself; Expired is still checked on read as a belt against clock
// skew between writers.
type RedisStore struct {
	client *redis.Client
	clock  timeutil.Clock
	log    *logger.Logger
}

// NewRedisStore creates a Redis-backed store.
func NewRedisStore(client *redis.Client, clock timeutil.Clock, log *logger.Logger) *RedisStore {
	if log == nil {
		log = logger.Nop()
	}
	return &RedisStore{client: client, clock: clock, log: log}
}

// Get implements Store.
func (s *RedisStore) Get(ctx context.Context, key string) (*Entry, bool, error) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get %q: %w", key, err)
	}

	var e Entry
	if err := json.Unmarshal(raw, &e); err != nil {
		// A corrupt record is as good as absent; drop it so the next write
		// replaces it.
		s.log.Warn().Str("key", key).Err(err).Msg("Dropping undecodable cache entry")
		_ = s.client.Del(ctx, key).Err()
		return nil, false, nil
	}

	if e.Expired(s.clock.Now()) {
		return nil, false, nil
	}

	return &e, true, nil
}

// Put implements Store.
func (s *RedisStore) Put(ctx context.Context, key string, dom Domain, params string, payload []byte, ttl time.Duration) error {
	now := s.clock.Now()
	e := Entry{
		Key:       key,
		Domain:    dom,
		Params:    params,
		Payload:   payload,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	raw, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode cache entry %q: %w", key, err)
	}

	if err := s.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

// Invalidate implements Store.
func (s *RedisStore) Invalidate(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %q: %w", key, err)
	}
	return nil
}

// Ensure RedisStore implements Store at compile time.
var _ Store = (*RedisStore)(nil)
