// Package ring implements a bounded FIFO of pending predictions, used by
// predictor/adaptive to track which child suggested which key and for how
// long the suggestion remains eligible to score a credit hit.
//
// The structure is the same shape as the ghost queue in a 2Q-style eviction
// policy (a container/list FIFO plus a map index for O(1) membership and
// removal) repurposed from "recently evicted keys" to "recently predicted
// keys pending credit".
package ring

import "container/list"

// Entry is a single pending prediction.
type Entry[K comparable] struct {
	Key        K
	Source     int // index of the child predictor that suggested Key
	ExpiresAt  uint64
}

// Ring is a bounded FIFO of pending predictions, keyed by the predicted key.
// When capacity is exceeded, the oldest entry is dropped.
type Ring[K comparable] struct {
	cap  int
	l    *list.List
	byKey map[K]*list.Element
}

// New constructs a Ring with the given capacity (clamped to at least 1).
func New[K comparable](capacity int) *Ring[K] {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring[K]{
		cap:   capacity,
		l:     list.New(),
		byKey: make(map[K]*list.Element),
	}
}

// Push records a pending prediction, evicting the oldest entry if the ring
// is at capacity. If key is already pending, its entry is replaced and
// moved to the back (freshest expiry wins).
func (r *Ring[K]) Push(key K, source int, expiresAt uint64) {
	if e, ok := r.byKey[key]; ok {
		r.l.Remove(e)
		delete(r.byKey, key)
	}
	e := r.l.PushBack(Entry[K]{Key: key, Source: source, ExpiresAt: expiresAt})
	r.byKey[key] = e

	for r.l.Len() > r.cap {
		front := r.l.Front()
		if front == nil {
			break
		}
		delete(r.byKey, front.Value.(Entry[K]).Key)
		r.l.Remove(front)
	}
}

// Take removes and returns the pending entry for key, if any and if it has
// not expired (now > ExpiresAt counts as expired). Expired entries are
// dropped silently and reported as not found.
func (r *Ring[K]) Take(key K, now uint64) (Entry[K], bool) {
	e, ok := r.byKey[key]
	if !ok {
		return Entry[K]{}, false
	}
	entry := e.Value.(Entry[K])
	r.l.Remove(e)
	delete(r.byKey, key)
	if now > entry.ExpiresAt {
		return Entry[K]{}, false
	}
	return entry, true
}

// Len reports the number of pending predictions.
func (r *Ring[K]) Len() int { return r.l.Len() }
