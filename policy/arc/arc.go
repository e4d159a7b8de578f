// Package arc implements the Adaptive Replacement Cache policy
// (Megiddo & Modha): two resident lists, T1 (recency) and T2 (frequency),
// each shadowed by a ghost list, B1 and B2, that remembers recently
// evicted keys so a repeat access can tell which direction the workload
// is leaning. The target T1 size, p, adapts toward whichever ghost list
// is producing hits.
package arc

import (
	"container/list"

	"github.com/fulgurance/fulgurance/policy"
)

// arc tracks T1/T2 (resident) and B1/B2 (ghost) as four MRU-front lists,
// each with its own key->element index.
type arc[K comparable] struct {
	capacity int
	p        int

	t1, t2       *list.List
	t1Idx, t2Idx map[K]*list.Element

	b1, b2       *list.List
	b1Idx, b2Idx map[K]*list.Element
}

// New returns a policy.Factory for ARC with the given total capacity. ARC
// needs to know capacity up front (unlike the simpler single-list
// policies) because its adaptation parameter p and ghost-list trimming are
// both defined relative to it.
func New[K comparable](capacity int) policy.Factory[K] {
	if capacity < 1 {
		capacity = 1
	}
	return policy.FactoryFunc[K](func() policy.Policy[K] {
		return &arc[K]{
			capacity: capacity,
			t1:       list.New(), t2: list.New(),
			t1Idx: make(map[K]*list.Element), t2Idx: make(map[K]*list.Element),
			b1: list.New(), b2: list.New(),
			b1Idx: make(map[K]*list.Element), b2Idx: make(map[K]*list.Element),
		}
	})
}

// OnAccess promotes a T1 key into T2 (it has now been seen twice), or
// refreshes MRU position for an already-T2 key.
func (a *arc[K]) OnAccess(k K) {
	if el, ok := a.t1Idx[k]; ok {
		a.t1.Remove(el)
		delete(a.t1Idx, k)
		a.t2Idx[k] = a.t2.PushFront(k)
		return
	}
	if el, ok := a.t2Idx[k]; ok {
		a.t2.MoveToFront(el)
	}
}

// OnInsert admits a key that is not currently resident. A ghost hit (the
// key is in B1 or B2) adapts p toward that ghost list and readmits
// straight into T2; a genuine newcomer is admitted into T1, first dropping
// one ghost (B2's LRU end, else B1's) when the ghost lists alone already
// hold capacity keys.
func (a *arc[K]) OnInsert(k K) {
	if _, ok := a.t1Idx[k]; ok {
		return
	}
	if _, ok := a.t2Idx[k]; ok {
		return
	}

	if el, ok := a.b1Idx[k]; ok {
		delta := ceilDiv(a.b2.Len(), maxInt(a.b1.Len(), 1))
		a.p = minInt(a.capacity, a.p+delta)
		a.b1.Remove(el)
		delete(a.b1Idx, k)
		a.t2Idx[k] = a.t2.PushFront(k)
		return
	}
	if el, ok := a.b2Idx[k]; ok {
		delta := ceilDiv(a.b1.Len(), maxInt(a.b2.Len(), 1))
		a.p = maxInt(0, a.p-delta)
		a.b2.Remove(el)
		delete(a.b2Idx, k)
		a.t2Idx[k] = a.t2.PushFront(k)
		return
	}

	totalCache := a.t1.Len() + a.t2.Len()
	totalHistory := a.b1.Len() + a.b2.Len()
	if totalCache+totalHistory >= a.capacity && totalHistory >= a.capacity {
		if el := a.b2.Back(); el != nil {
			delete(a.b2Idx, el.Value.(K))
			a.b2.Remove(el)
		} else if el := a.b1.Back(); el != nil {
			delete(a.b1Idx, el.Value.(K))
			a.b1.Remove(el)
		}
	}
	a.t1Idx[k] = a.t1.PushFront(k)
}

// OnRemove retires a resident key into its shadow ghost list (T1 -> B1,
// T2 -> B2), or simply forgets the key if it was already a ghost.
func (a *arc[K]) OnRemove(k K) {
	if el, ok := a.t1Idx[k]; ok {
		a.t1.Remove(el)
		delete(a.t1Idx, k)
		a.pushGhost(a.b1, a.b1Idx, k)
		return
	}
	if el, ok := a.t2Idx[k]; ok {
		a.t2.Remove(el)
		delete(a.t2Idx, k)
		a.pushGhost(a.b2, a.b2Idx, k)
		return
	}
	if el, ok := a.b1Idx[k]; ok {
		a.b1.Remove(el)
		delete(a.b1Idx, k)
		return
	}
	if el, ok := a.b2Idx[k]; ok {
		a.b2.Remove(el)
		delete(a.b2Idx, k)
	}
}

// SelectVictim implements ARC's REPLACE rule: shrink T1 when it has grown
// past its adaptive target p, otherwise shrink T2. This is a simplified
// form of the paper's rule — it drops the "in_b2 and t1Size == p" tie-break,
// which needs to know the key about to be inserted, information
// SelectVictim's key-less signature does not carry.
func (a *arc[K]) SelectVictim() (K, bool) {
	if a.t1.Len() >= 1 && a.t1.Len() > a.p {
		return a.t1.Back().Value.(K), true
	}
	if a.t2.Len() >= 1 {
		return a.t2.Back().Value.(K), true
	}
	if a.t1.Len() >= 1 {
		return a.t1.Back().Value.(K), true
	}
	var zero K
	return zero, false
}

// Len reports the number of resident keys (T1 + T2; ghosts are not
// resident).
func (a *arc[K]) Len() int { return a.t1.Len() + a.t2.Len() }

func (a *arc[K]) pushGhost(l *list.List, idx map[K]*list.Element, k K) {
	idx[k] = l.PushFront(k)
	for l.Len()+a.t1.Len()+a.t2.Len() > 2*a.capacity {
		tail := l.Back()
		if tail == nil {
			break
		}
		delete(idx, tail.Value.(K))
		l.Remove(tail)
	}
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 1
	}
	if a == 0 {
		return 1
	}
	return (a + b - 1) / b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
