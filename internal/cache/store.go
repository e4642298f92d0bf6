package cache

import (
	"context"
	"time"
)

//go:generate mockgen -source=store.go -destination=../../test/mock/store.go -package=mock -mock_names=Store=Store

// Store is the TTL-aware key/value persistence port.
//
// Implementations must treat an expired entry as absent on Get (lazy expiry)
// in addition to any background pruning they perform, and Put must be an
// idempotent upsert keyed by entry key (last writer wins).
//
// Store unavailability is reported as an error; callers are expected to
// degrade to a forced miss rather than fail (fail-open).
type Store interface {
	// Get returns the unexpired entry for key, or found == false when the
	// key is absent or stale.
	Get(ctx context.Context, key string) (*Entry, bool, error)

	// Put writes the payload under key with the given TTL, overwriting any
	// existing entry for that key.
	Put(ctx context.Context, key string, dom Domain, params string, payload []byte, ttl time.Duration) error

	// Invalidate removes the entry for key, if present.
	Invalidate(ctx context.Context, key string) error
}
