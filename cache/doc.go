// Package cache implements the cache Engine: a single map, one pluggable
// eviction policy, and an orthogonal prefetch predictor, wired together
// behind the CacheHandle interface.
//
// The Engine is single-writer: it does no locking of its own. Callers
// that need concurrent access wrap a CacheHandle in sync.Mutex, or run
// one CacheHandle per shard and route keys to the right one themselves
// (cmd/bench shows the mutex pattern). This is a deliberate departure from a
// sharded-and-locked cache: the eviction policy's residency invariants
// (e.g. "the resident set is the N most-recently-accessed keys") are
// defined over the whole cache, and a sharded, independently-capacitated
// policy per shard cannot honor that invariant globally.
package cache
