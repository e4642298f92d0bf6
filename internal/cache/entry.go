// Package cache provides the TTL-aware key/value store used by the fetch
// layer, the deterministic cache key builder, and the store adapters
// (in-memory, Redis, MongoDB). Payloads are opaque to this package; their
// schema is owned by the domain that wrote them.
package cache

import "time"

// Domain tags a cache entry with the data domain that owns its payload.
type Domain string

// Cache domains.
const (
	// DomainForex holds exchange rate payloads (short TTL, volatile data)
	DomainForex Domain = "forex"

	// DomainFlight holds flight fare payloads (longer TTL, lower volatility)
	DomainFlight Domain = "flight"

	// DomainRecommendation holds assembled recommendation responses
	DomainRecommendation Domain = "recommendation"
)

// Entry is a single cached record.
type Entry struct {
	// Key uniquely identifies the entry within its domain
	Key string `json:"key"`

	// Domain identifies which data domain owns the payload
	Domain Domain `json:"domain"`

	// Params carries the normalized search parameters for inspectability
	Params string `json:"params"`

	// Payload is the opaque cached data
	Payload []byte `json:"payload"`

	// CreatedAt is when the entry was written
	CreatedAt time.Time `json:"createdAt"`

	// ExpiresAt is when the entry becomes stale; always after CreatedAt
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the entry is stale at the given instant.
func (e *Entry) Expired(now time.Time) bool {
	return !now.Before(e.ExpiresAt)
}
