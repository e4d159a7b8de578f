// Package policy defines the eviction-policy contract shared by every
// strategy under policy/ (lru, mru, fifo, lfu, random, clock, twoq, slru,
// arc, car).
//
// A Policy tracks keys only — never values. The Engine (package cache) owns
// the key/value storage map; the policy is consulted purely for bookkeeping
// and victim selection, mirroring the original's "policy-side structures
// hold only the key" invariant.
package policy

// Policy is a per-cache eviction-policy instance. All methods are called by
// the Engine under its own single-writer discipline; implementations do not
// need to be safe for concurrent use.
//
// Contract:
//   - OnAccess is called on every client hit against a resident key.
//   - OnInsert is called once, after the Engine has room for a new key
//     (having evicted a victim via SelectVictim+OnRemove if necessary).
//   - OnRemove is called once a key has actually been removed from the
//     Engine's storage, whether by explicit Remove or by eviction.
//   - SelectVictim is read-only: it must not mutate policy state, except
//     in policy/clock and policy/car, whose Clock sweep clears reference
//     bits and advances the hand as it searches. The
//     Engine calls it only when at capacity and about to admit a key that
//     is not yet tracked. It returns ok=false only if the policy tracks no
//     keys at all (which cannot happen while the Engine is at capacity).
//   - Len reports the number of keys currently tracked.
type Policy[K comparable] interface {
	OnAccess(k K)
	OnInsert(k K)
	OnRemove(k K)
	SelectVictim() (k K, ok bool)
	Len() int
}

// Factory constructs fresh, independent Policy instances. Each cache.New
// call invokes Factory.New exactly once.
type Factory[K comparable] interface {
	New() Policy[K]
}

// FactoryFunc adapts a plain function to Factory.
type FactoryFunc[K comparable] func() Policy[K]

// New implements Factory.
func (f FactoryFunc[K]) New() Policy[K] { return f() }
