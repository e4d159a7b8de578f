// Package fulgurance provides a composable in-process cache with a
// pluggable eviction policy and an orthogonal prefetch predictor.
//
// Design
//
//   - Engine: package cache owns a single storage map and dispatches
//     access/insert/remove events to a policy.Policy and a predictor.Predictor.
//     Capacity is enforced by asking the policy for a victim only when full.
//
//   - Policies: package policy defines the Policy[K] contract. Implementations
//     (policy/lru, policy/mru, policy/fifo, policy/lfu, policy/random,
//     policy/clock, policy/twoq, policy/slru, policy/arc, policy/car) track
//     keys only — they never see values, following the spec's "policy-side
//     structures hold only the key" invariant.
//
//   - Predictors: package predictor defines the Predictor[K] contract.
//     Implementations (predictor/none, predictor/sequential, predictor/stride,
//     predictor/markov, predictor/history, predictor/adaptive) observe the
//     access stream and emit candidate keys for the Engine to prefetch.
//
//   - Concurrency: a cache.CacheHandle is single-writer and does no locking
//     of its own. Wrap it in a sync.Mutex or similar if you need
//     concurrent access from multiple goroutines; see cmd/bench.
//
// Basic usage
//
//	c, err := cache.New[string, string](cache.Options[string, string]{
//	    Capacity:         1024,
//	    PolicyFactory:    lru.New[string](),
//	    PredictorFactory: sequential.New[string](nil),
//	})
//	c.Put("a", "1")
//	v, ok := c.Get("a")
//
// See package cache for the full surface, package policy and package
// predictor for the pluggable-strategy contracts, and metrics/prom for a
// Prometheus adapter.
package fulgurance
