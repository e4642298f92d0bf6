// Package fetch implements the cache-aside orchestration between callers and
// the external data providers. It owns the single-flight in-flight registry:
// for any given key there is at most one provider call running at a time, and
// every caller waiting on that key observes the same outcome.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/travel-deals/travel-deal-recommendation-service/internal/cache"
	"github.com/travel-deals/travel-deal-recommendation-service/internal/domain"
	"github.com/travel-deals/travel-deal-recommendation-service/internal/infrastructure/logger"
	"github.com/travel-deals/travel-deal-recommendation-service/internal/obs"
)

// Source reports where a resolved payload came from.
type Source string

// Payload sources.
const (
	// SourceCache means the payload was served from an unexpired cache entry
	SourceCache Source = "cache"

	// SourceFresh means the payload came from a provider call
	SourceFresh Source = "fresh"
)

// FetchFunc is the injected provider-adapter call invoked on a cache miss.
// It must be idempotent-safe, but the orchestrator invokes it at most once
// per miss per key.
type FetchFunc func(ctx context.Context) ([]byte, error)

// call is one in-flight provider fetch. The outcome fields are written
// exactly once, before done is closed.
type call struct {
	done    chan struct{}
	payload []byte
	err     error
}

// Orchestrator implements the cache-aside protocol with single-flight
// de-duplication. Store failures degrade to forced misses and are never
// surfaced to callers; provider failures propagate to the initiating caller
// and every joined waiter identically and are never cached.
type Orchestrator struct {
	store   cache.Store
	metrics *obs.Metrics
	log     *logger.Logger

	registry *registry
}

// NewOrchestrator creates an orchestrator over the given store.
// metrics may be nil; log may be nil (defaults to a no-op logger).
func NewOrchestrator(store cache.Store, metrics *obs.Metrics, log *logger.Logger) *Orchestrator {
	if log == nil {
		log = logger.Nop()
	}
	return &Orchestrator{
		store:    store,
		metrics:  metrics,
		log:      log,
		registry: newRegistry(),
	}
}

// Resolve looks up key in the store and returns the cached payload on an
// unexpired hit. On a miss it claims or joins the in-flight fetch for the
// key: the claiming caller runs fn once, stores the result under the given
// TTL, and settles every waiter; joining callers share that outcome without
// issuing a duplicate provider call.
//
// A caller whose ctx ends while waiting detaches with ctx.Err(); the
// underlying fetch continues for the remaining waiters and for cache
// population.
func (o *Orchestrator) Resolve(ctx context.Context, key string, dom cache.Domain, params string, ttl time.Duration, fn FetchFunc) ([]byte, Source, error) {
	if entry, ok := o.lookup(ctx, key, dom); ok {
		return entry.Payload, SourceCache, nil
	}

	c, claimed := o.registry.claimOrJoin(key)
	if claimed {
		o.countMiss(dom)
		// The fetch runs detached from the caller's context so that one
		// caller's timeout cannot starve the other waiters. The provider
		// adapter owns its own bounded timeout.
		go o.runFetch(context.WithoutCancel(ctx), c, key, dom, params, ttl, fn)
	} else {
		o.countJoin(dom)
	}

	select {
	case <-c.done:
		return c.payload, SourceFresh, c.err
	case <-ctx.Done():
		return nil, "", ctx.Err()
	}
}

// Invalidate removes the entry for key from the store.
func (o *Orchestrator) Invalidate(ctx context.Context, key string) error {
	return o.store.Invalidate(ctx, key)
}

// lookup reads the store, absorbing store failures as forced misses.
func (o *Orchestrator) lookup(ctx context.Context, key string, dom cache.Domain) (*cache.Entry, bool) {
	entry, ok, err := o.store.Get(ctx, key)
	if err != nil {
		// Fail-open: a cache outage must cost latency, not the request.
		o.log.Warn().Str("key", key).Err(err).Msg("Cache store unavailable, forcing miss")
		if o.metrics != nil {
			o.metrics.CacheErrors.Inc()
		}
		return nil, false
	}
	if !ok {
		return nil, false
	}
	if o.metrics != nil {
		o.metrics.CacheHits.WithLabelValues(string(dom)).Inc()
	}
	return entry, true
}

// runFetch executes the provider call for the claiming caller, populates the
// store on success, and settles the call exactly once.
func (o *Orchestrator) runFetch(ctx context.Context, c *call, key string, dom cache.Domain, params string, ttl time.Duration, fn FetchFunc) {
	defer func() {
		if r := recover(); r != nil {
			o.settle(c, key, nil, fmt.Errorf("%w (domain=%s, key=%s): panic: %v", domain.ErrProviderFetch, dom, key, r))
		}
	}()

	if o.metrics != nil {
		o.metrics.ProviderFetches.WithLabelValues(string(dom)).Inc()
	}

	payload, err := fn(ctx)
	if err != nil {
		if o.metrics != nil {
			o.metrics.ProviderFailures.WithLabelValues(string(dom)).Inc()
		}
		// A failed fetch must not poison the cache.
		o.settle(c, key, nil, fmt.Errorf("%w (domain=%s, key=%s): %v", domain.ErrProviderFetch, dom, key, err))
		return
	}

	if putErr := o.store.Put(ctx, key, dom, params, payload, ttl); putErr != nil {
		// Fail-open on the write path too: the waiters still get the payload.
		o.log.Warn().Str("key", key).Err(putErr).Msg("Cache store write failed")
		if o.metrics != nil {
			o.metrics.CacheErrors.Inc()
		}
	}

	o.settle(c, key, payload, nil)
}

// settle publishes the outcome, clears the in-flight state, and wakes every
// waiter. It runs once per call regardless of waiter count.
func (o *Orchestrator) settle(c *call, key string, payload []byte, err error) {
	c.payload = payload
	c.err = err
	o.registry.clear(key)
	close(c.done)
}

func (o *Orchestrator) countMiss(dom cache.Domain) {
	if o.metrics != nil {
		o.metrics.CacheMisses.WithLabelValues(string(dom)).Inc()
	}
}

func (o *Orchestrator) countJoin(dom cache.Domain) {
	if o.metrics != nil {
		o.metrics.SingleflightJoins.WithLabelValues(string(dom)).Inc()
	}
}

// ResolveJSON resolves a typed value through the orchestrator, handling the
// JSON framing of the opaque payload.
func ResolveJSON[T any](ctx context.Context, o *Orchestrator, key string, dom cache.Domain, params string, ttl time.Duration, fn func(ctx context.Context) (T, error)) (T, Source, error) {
	var zero T

	payload, source, err := o.Resolve(ctx, key, dom, params, ttl, func(ctx context.Context) ([]byte, error) {
		v, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(v)
	})
	if err != nil {
		return zero, source, err
	}

	var v T
	if err := json.Unmarshal(payload, &v); err != nil {
		return zero, source, fmt.Errorf("decode cached payload (domain=%s, key=%s): %w", dom, key, err)
	}
	return v, source, nil
}
