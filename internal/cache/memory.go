package cache

import (
	"context"
	"sync"
	"time"

	"github.com/travel-deals/travel-deal-recommendation-service/internal/infrastructure/timeutil"
)

// MemoryStore is an in-process Store backed by a map.
// Expired entries are dropped lazily on Get and, when a sweep interval is
// configured, by a background janitor.
type MemoryStore struct {
	clock timeutil.Clock

	mu      sync.RWMutex
	entries map[string]Entry

	stopSweep chan struct{}
	sweepOnce sync.Once
}

// NewMemoryStore creates a memory store. A positive sweepInterval starts a
// background janitor that prunes expired entries; Close stops it.
func NewMemoryStore(clock timeutil.Clock, sweepInterval time.Duration) *MemoryStore {
	s := &MemoryStore{
		clock:     clock,
		entries:   make(map[string]Entry),
		stopSweep: make(chan struct{}),
	}
	if sweepInterval > 0 {
		go s.sweepLoop(sweepInterval)
	}
	return s
}

// Get implements Store. Stale entries are deleted on sight.
func (s *MemoryStore) Get(_ context.Context, key string) (*Entry, bool, error) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}

	if e.Expired(s.clock.Now()) {
		s.mu.Lock()
		// Re-check under the write lock; a fresher entry may have landed.
		if cur, still := s.entries[key]; still && cur.Expired(s.clock.Now()) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return nil, false, nil
	}

	return &e, true, nil
}

// Put implements Store as a last-writer-wins upsert.
func (s *MemoryStore) Put(_ context.Context, key string, dom Domain, params string, payload []byte, ttl time.Duration) error {
	now := s.clock.Now()
	s.mu.Lock()
	s.entries[key] = Entry{
		Key:       key,
		Domain:    dom,
		Params:    params,
		Payload:   payload,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	s.mu.Unlock()
	return nil
}

// Invalidate implements Store.
func (s *MemoryStore) Invalidate(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	return nil
}

// Len returns the number of entries currently held, including stale ones not
// yet swept.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Close stops the background janitor, if one was started.
func (s *MemoryStore) Close() {
	s.sweepOnce.Do(func() { close(s.stopSweep) })
}

// sweepLoop prunes expired entries at the configured interval.
func (s *MemoryStore) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopSweep:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

// sweep removes every expired entry.
func (s *MemoryStore) sweep() {
	now := s.clock.Now()
	s.mu.Lock()
	for key, e := range s.entries {
		if e.Expired(now) {
			delete(s.entries, key)
		}
	}
	s.mu.Unlock()
}

// Ensure MemoryStore implements Store at compile time.
var _ Store = (*MemoryStore)(nil)
