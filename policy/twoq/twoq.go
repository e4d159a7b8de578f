// Package twoq implements the 2Q eviction policy (Johnson & Shasha): a
// small first-access queue (A1in) protects the resident set from one-hit
// wonders, a ghost queue (A1out) remembers recently evicted A1in keys to
// give them a second chance, and a mature queue (Am) holds keys that have
// proven themselves with a second access.
package twoq

import (
	"container/list"

	"github.com/fulgurance/fulgurance/policy"
)

// twoq tracks three queues, each MRU at Front() and LRU at Back():
//   - in:    A1in, first-time admissions
//   - am:    Am, keys accessed at least twice
//   - ghost: A1out, keys only, evicted-from-A1in history
type twoq[K comparable] struct {
	capIn    int
	capGhost int

	in    *list.List
	inIdx map[K]*list.Element

	am    *list.List
	amIdx map[K]*list.Element

	ghost    *list.List
	ghostIdx map[K]*list.Element
}

// New returns a policy.Factory for 2Q with the given A1in and A1out
// (ghost) capacities. As a rule of thumb, capIn ≈ 25% and capGhost ≈
// 50-100% of the cache's total capacity.
func New[K comparable](capIn, capGhost int) policy.Factory[K] {
	if capIn < 1 {
		capIn = 1
	}
	if capGhost < 1 {
		capGhost = 1
	}
	return policy.FactoryFunc[K](func() policy.Policy[K] {
		return &twoq[K]{
			capIn:    capIn,
			capGhost: capGhost,
			in:       list.New(),
			inIdx:    make(map[K]*list.Element),
			am:       list.New(),
			amIdx:    make(map[K]*list.Element),
			ghost:    list.New(),
			ghostIdx: make(map[K]*list.Element),
		}
	})
}

// OnAccess promotes a key from A1in into Am on its second access, or
// refreshes its MRU position if it is already in Am.
func (q *twoq[K]) OnAccess(k K) {
	if el, ok := q.inIdx[k]; ok {
		q.in.Remove(el)
		delete(q.inIdx, k)
		q.amIdx[k] = q.am.PushFront(k)
		return
	}
	if el, ok := q.amIdx[k]; ok {
		q.am.MoveToFront(el)
	}
}

// OnInsert admits a brand-new key into A1in, unless it is found in the
// ghost queue, in which case it is given a second chance straight into Am
// and the ghost entry is dropped.
func (q *twoq[K]) OnInsert(k K) {
	if _, ok := q.inIdx[k]; ok {
		return
	}
	if _, ok := q.amIdx[k]; ok {
		return
	}
	if ge, ok := q.ghostIdx[k]; ok {
		q.ghost.Remove(ge)
		delete(q.ghostIdx, k)
		q.amIdx[k] = q.am.PushFront(k)
		return
	}
	q.inIdx[k] = q.in.PushFront(k)
}

// OnRemove drops the key from whichever queue holds it. A key evicted out
// of A1in is recorded in the ghost queue (capped at capGhost); a key
// evicted out of Am is simply forgotten.
func (q *twoq[K]) OnRemove(k K) {
	if el, ok := q.inIdx[k]; ok {
		q.in.Remove(el)
		delete(q.inIdx, k)
		q.pushGhost(k)
		return
	}
	if el, ok := q.amIdx[k]; ok {
		q.am.Remove(el)
		delete(q.amIdx, k)
	}
}

// SelectVictim prefers A1in's LRU end — one-hit wonders are shed first —
// but only once A1in is at or above its quota (capIn). Below quota, A1in
// is still building up its one-hit-wonder population, so the victim comes
// from Am's LRU end instead, falling back to A1in if Am is empty.
func (q *twoq[K]) SelectVictim() (K, bool) {
	if q.in.Len() >= q.capIn {
		if el := q.in.Back(); el != nil {
			return el.Value.(K), true
		}
	}
	if el := q.am.Back(); el != nil {
		return el.Value.(K), true
	}
	if el := q.in.Back(); el != nil {
		return el.Value.(K), true
	}
	var zero K
	return zero, false
}

// Len reports the number of resident keys (A1in + Am; the ghost queue is
// bookkeeping, not residency).
func (q *twoq[K]) Len() int { return q.in.Len() + q.am.Len() }

func (q *twoq[K]) pushGhost(k K) {
	if old, ok := q.ghostIdx[k]; ok {
		q.ghost.Remove(old)
	}
	q.ghostIdx[k] = q.ghost.PushFront(k)
	for q.ghost.Len() > q.capGhost {
		tail := q.ghost.Back()
		if tail == nil {
			break
		}
		delete(q.ghostIdx, tail.Value.(K))
		q.ghost.Remove(tail)
	}
}
