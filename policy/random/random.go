// Package random implements a uniform-random eviction policy: any tracked
// key is equally likely to be chosen as the victim.
package random

import (
	"math/rand"

	"github.com/fulgurance/fulgurance/policy"
)

// random keeps tracked keys in a slice (for O(1) random indexing) plus a
// key->index map so OnRemove can swap-and-pop in O(1) instead of scanning.
type random[K comparable] struct {
	keys  []K
	index map[K]int
	rng   *rand.Rand
}

// defaultSeed matches the fixed seed the spec's reproducibility note
// requires when no explicit seed is configured.
const defaultSeed = 1

// New returns a policy.Factory for Random using the default fixed seed.
func New[K comparable]() policy.Factory[K] {
	return NewSeeded[K](defaultSeed)
}

// NewSeeded returns a policy.Factory for Random using the given seed,
// letting callers or tests pin a reproducible victim sequence.
func NewSeeded[K comparable](seed int64) policy.Factory[K] {
	return policy.FactoryFunc[K](func() policy.Policy[K] {
		return &random[K]{
			index: make(map[K]int),
			rng:   rand.New(rand.NewSource(seed)),
		}
	})
}

// OnAccess is a no-op: random selection ignores access history entirely.
func (p *random[K]) OnAccess(K) {}

// OnInsert appends a new key to the tracked set.
func (p *random[K]) OnInsert(k K) {
	if _, ok := p.index[k]; ok {
		return
	}
	p.index[k] = len(p.keys)
	p.keys = append(p.keys, k)
}

// OnRemove swap-removes the key from the tracked set in O(1).
func (p *random[K]) OnRemove(k K) {
	i, ok := p.index[k]
	if !ok {
		return
	}
	last := len(p.keys) - 1
	p.keys[i] = p.keys[last]
	p.index[p.keys[i]] = i
	p.keys = p.keys[:last]
	delete(p.index, k)
}

// SelectVictim picks a uniformly random tracked key without mutating state.
// Calling it repeatedly without an intervening OnInsert/OnRemove may return
// different keys, since the choice is random by design; the Engine is
// expected to call it exactly once per eviction decision.
func (p *random[K]) SelectVictim() (K, bool) {
	if len(p.keys) == 0 {
		var zero K
		return zero, false
	}
	return p.keys[p.rng.Intn(len(p.keys))], true
}

// Len reports the number of tracked keys.
func (p *random[K]) Len() int { return len(p.keys) }
