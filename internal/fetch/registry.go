package fetch

import "sync"

// registry is the in-flight call table. It supports exclusive claim-or-join
// semantics per key: the first caller for a key claims it and becomes
// responsible for the fetch; subsequent callers join the existing call.
type registry struct {
	mu       sync.Mutex
	inflight map[string]*call
}

func newRegistry() *registry {
	return &registry{inflight: make(map[string]*call)}
}

// claimOrJoin returns the call for key and whether the caller claimed it.
// The transition Idle -> FetchInFlight happens atomically under the lock.
func (r *registry) claimOrJoin(key string) (*call, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.inflight[key]; ok {
		return c, false
	}

	c := &call{done: make(chan struct{})}
	r.inflight[key] = c
	return c, true
}

// clear removes the in-flight state for key (FetchInFlight -> Idle).
func (r *registry) clear(key string) {
	r.mu.Lock()
	delete(r.inflight, key)
	r.mu.Unlock()
}

// len reports the number of keys currently in flight.
func (r *registry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.inflight)
}
