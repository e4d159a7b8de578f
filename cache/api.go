package cache

import (
	"context"
	"errors"
)

// CacheHandle is a single-writer, in-process key/value cache with a
// pluggable eviction policy and an orthogonal prefetch predictor.
//
// Unlike a sharded cache, CacheHandle does not lock internally: exactly
// one goroutine may call its methods at a time. A caller that needs
// concurrent access wraps a CacheHandle in its own sync.Mutex (as
// cmd/bench does) or runs one CacheHandle per shard and routes keys
// itself; the Engine never has to reconcile two goroutines' views of the
// same policy state.
type CacheHandle[K comparable, V any] interface {
	// Get returns the value for k and whether it was resident. A hit
	// reports the access to the eviction policy and the prefetch
	// predictor, and may trigger a prefetch phase.
	Get(k K) (V, bool)

	// GetOrLoad returns the value for k, loading it via Options.Loader on
	// a miss. If no Loader was configured, it returns ErrNoLoader.
	GetOrLoad(ctx context.Context, k K) (V, error)

	// Put inserts or updates k's value, evicting a victim first if the
	// cache is at capacity and k is not already resident.
	Put(k K, v V)

	// Remove deletes k if present and reports whether it was.
	Remove(k K) bool

	// Len reports the number of resident entries.
	Len() int

	// Capacity reports the configured maximum number of resident entries.
	Capacity() int

	// Metrics returns a snapshot of the cache's counters.
	Metrics() Snapshot

	// Clear removes every resident entry, resetting policy and predictor
	// state to empty.
	Clear()
}

// ErrNoLoader is returned by GetOrLoad when no Loader was configured in
// Options.
var ErrNoLoader = errors.New("cache: GetOrLoad: no Loader configured")
