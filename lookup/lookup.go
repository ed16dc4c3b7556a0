// Package lookup provides the asynchronous fetch-with-memoization primitive
// behind hover tooltips: a bounded result cache with negative memoization
// and at most one in-flight remote request per cache instance.
package lookup

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"gitlab.com/tozd/go/errors"
)

// DefaultSize is the default capacity of the result cache. A bounded map
// keeps long sessions in check.
const DefaultSize = 512

// entry is a memoized result. negative marks a completed lookup that found
// nothing, which is distinct from absence: a negative key is never
// re-requested.
type entry[V any] struct {
	negative bool
	value    V
}

// FetchFunc performs the remote call for a request. Returning found=false
// memoizes the key negatively; returning an error (including cancellation)
// leaves the key unmemoized.
type FetchFunc[R, V any] func(ctx context.Context, req R) (V, bool, error)

// Cache memoizes keyed lookups. Fetching a key that is already in flight
// coalesces into the pending request; fetching a different key cancels the
// pending request unconditionally. Results persist across renders.
type Cache[R, V any] struct {
	fetch FetchFunc[R, V]

	mu          sync.Mutex
	results     *lru.Cache[string, entry[V]]
	cancel      context.CancelFunc
	inflightKey string
	gen         uint64
}

// New creates a cache of the given capacity backed by fetch. A capacity of
// zero or less means DefaultSize.
func New[R, V any](size int, fetch FetchFunc[R, V]) (*Cache[R, V], error) {
	if size <= 0 {
		size = DefaultSize
	}
	results, err := lru.New[string, entry[V]](size)
	if err != nil {
		return nil, errors.Errorf("creating result cache: %w", err)
	}
	return &Cache[R, V]{fetch: fetch, results: results}, nil
}

// Fetch resolves key. A cached positive result invokes onSuccess
// immediately; a cached negative result does nothing. Otherwise a remote
// request is started, cancelling any pending request for a different key,
// and onSuccess fires on the fetch goroutine only if the lookup finds
// something.
func (c *Cache[R, V]) Fetch(ctx context.Context, key string, req R, onSuccess func(V)) {
	c.mu.Lock()
	if e, ok := c.results.Get(key); ok {
		c.mu.Unlock()
		if !e.negative && onSuccess != nil {
			onSuccess(e.value)
		}
		return
	}

	if c.cancel != nil {
		if c.inflightKey == key {
			// Already being fetched; the pending request serves this key.
			c.mu.Unlock()
			return
		}
		c.cancel()
		c.cancel = nil
	}

	cctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.inflightKey = key
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	go func() {
		defer cancel()
		v, found, err := c.fetch(cctx, req)

		c.mu.Lock()
		if c.gen != gen {
			// Superseded or cancelled while completing: drop the result.
			c.mu.Unlock()
			return
		}
		c.cancel = nil
		c.inflightKey = ""
		if err != nil {
			// Aborted or failed: not memoized, no callback.
			c.mu.Unlock()
			return
		}
		c.results.Add(key, entry[V]{negative: !found, value: v})
		c.mu.Unlock()

		if found && onSuccess != nil {
			onSuccess(v)
		}
	}()
}

// CancelInFlight aborts the pending request, if any. Safe to call when
// nothing is outstanding.
func (c *Cache[R, V]) CancelInFlight() {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
		c.inflightKey = ""
		c.gen++
	}
	c.mu.Unlock()
}

// Len returns the number of memoized results, negative entries included.
func (c *Cache[R, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.results.Len()
}
