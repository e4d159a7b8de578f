// Package slru implements the Segmented LRU eviction policy: new keys
// enter a probation segment, earn a place in a protected segment on their
// second access, and a probation burst can only push out other probation
// keys — protected keys are shielded from scan-like access patterns.
package slru

import (
	"container/list"

	"github.com/fulgurance/fulgurance/policy"
)

type segment uint8

const (
	probation segment = iota
	protected
)

type entry[K comparable] struct {
	key K
	seg segment
}

// slru keeps probation and protected as two independent MRU-front lists,
// plus a single key->element index tagged with which list currently holds
// the key.
type slru[K comparable] struct {
	probationCap, protectedCap int

	probation *list.List
	protect   *list.List
	index     map[K]*list.Element
}

// defaultProtectedPercent matches the 80/20 split the example pack's
// segmented-LRU cache uses by default.
const defaultProtectedPercent = 80

// New returns a policy.Factory for SLRU with the default 80% protected /
// 20% probation split of capacity.
func New[K comparable](capacity int) policy.Factory[K] {
	return NewWithRatio[K](capacity, defaultProtectedPercent)
}

// NewWithRatio returns a policy.Factory for SLRU with a custom
// protected-segment percentage (0-100; clamped). Both segments are
// guaranteed at least 1 slot.
func NewWithRatio[K comparable](capacity int, protectedPercent int) policy.Factory[K] {
	if protectedPercent > 100 {
		protectedPercent = 100
	}
	if protectedPercent < 0 {
		protectedPercent = 0
	}
	protectedCap := capacity * protectedPercent / 100
	probationCap := capacity - protectedCap
	if protectedCap < 1 {
		protectedCap = 1
	}
	if probationCap < 1 {
		probationCap = 1
	}
	return policy.FactoryFunc[K](func() policy.Policy[K] {
		return &slru[K]{
			probationCap: probationCap,
			protectedCap: protectedCap,
			probation:    list.New(),
			protect:      list.New(),
			index:        make(map[K]*list.Element),
		}
	})
}

// OnAccess promotes a probation key to protected (demoting protected's LRU
// back to probation if protected is now over capacity), or simply refreshes
// MRU position for an already-protected key.
func (p *slru[K]) OnAccess(k K) {
	el, ok := p.index[k]
	if !ok {
		return
	}
	e := el.Value.(*entry[K])
	if e.seg == protected {
		p.protect.MoveToFront(el)
		return
	}

	p.probation.Remove(el)
	e.seg = protected
	p.index[k] = p.protect.PushFront(e)

	if p.protect.Len() > p.protectedCap {
		tail := p.protect.Back()
		te := tail.Value.(*entry[K])
		p.protect.Remove(tail)
		te.seg = probation
		p.index[te.key] = p.probation.PushFront(te)
	}
}

// OnInsert admits a new key into probation.
func (p *slru[K]) OnInsert(k K) {
	if _, ok := p.index[k]; ok {
		return
	}
	e := &entry[K]{key: k, seg: probation}
	p.index[k] = p.probation.PushFront(e)
}

// OnRemove drops the key from whichever segment holds it.
func (p *slru[K]) OnRemove(k K) {
	el, ok := p.index[k]
	if !ok {
		return
	}
	e := el.Value.(*entry[K])
	if e.seg == probation {
		p.probation.Remove(el)
	} else {
		p.protect.Remove(el)
	}
	delete(p.index, k)
}

// SelectVictim prefers probation's LRU end, falling back to protected's
// LRU end once probation is empty, without mutating state.
func (p *slru[K]) SelectVictim() (K, bool) {
	if tail := p.probation.Back(); tail != nil {
		return tail.Value.(*entry[K]).key, true
	}
	if tail := p.protect.Back(); tail != nil {
		return tail.Value.(*entry[K]).key, true
	}
	var zero K
	return zero, false
}

// Len reports the number of resident keys across both segments.
func (p *slru[K]) Len() int { return len(p.index) }
