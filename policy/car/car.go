// Package car implements CAR (Clock with Adaptive Replacement, Bansal &
// Modha): the same T1/T2 resident + B1/B2 ghost bookkeeping as ARC, but
// replacement within T1 and T2 uses a Clock sweep instead of strict LRU,
// so hot keys survive on a reference bit rather than a list move on every
// access.
package car

import "github.com/fulgurance/fulgurance/policy"

type carSlot[K comparable] struct {
	key    K
	refBit bool
	live   bool
}

// clockRing is the same tombstone-reusing ring policy/clock uses,
// repurposed here as a private building block for CAR's T1 and T2.
type clockRing[K comparable] struct {
	ring  []carSlot[K]
	index map[K]int
	hand  int
	n     int
}

func newClockRing[K comparable]() *clockRing[K] {
	return &clockRing[K]{index: make(map[K]int)}
}

func (r *clockRing[K]) push(k K) {
	for i := range r.ring {
		if !r.ring[i].live {
			r.ring[i] = carSlot[K]{key: k, live: true}
			r.index[k] = i
			r.n++
			return
		}
	}
	r.ring = append(r.ring, carSlot[K]{key: k, live: true})
	r.index[k] = len(r.ring) - 1
	r.n++
}

func (r *clockRing[K]) remove(k K) bool {
	i, ok := r.index[k]
	if !ok {
		return false
	}
	r.ring[i] = carSlot[K]{live: false}
	delete(r.index, k)
	r.n--
	return true
}

func (r *clockRing[K]) setRef(k K) {
	if i, ok := r.index[k]; ok {
		r.ring[i].refBit = true
	}
}

// sweepOneClear advances the hand, clearing reference bits, until it finds
// a live slot with a clear bit; it reports that key without removing it.
// Slots it passes over with the bit set have their bit cleared in place,
// same as policy/clock.
func (r *clockRing[K]) sweepOneClear() (K, bool) {
	if r.n == 0 {
		var zero K
		return zero, false
	}
	for {
		s := &r.ring[r.hand]
		if s.live {
			if !s.refBit {
				return s.key, true
			}
			s.refBit = false
		}
		r.hand = (r.hand + 1) % len(r.ring)
	}
}

type car[K comparable] struct {
	capacity int
	p        int

	t1, t2 *clockRing[K]

	b1, b2       []K
	b1Idx, b2Idx map[K]int
}

// New returns a policy.Factory for CAR with the given total capacity.
func New[K comparable](capacity int) policy.Factory[K] {
	if capacity < 1 {
		capacity = 1
	}
	return policy.FactoryFunc[K](func() policy.Policy[K] {
		return &car[K]{
			capacity: capacity,
			t1:       newClockRing[K](),
			t2:       newClockRing[K](),
			b1Idx:    make(map[K]int),
			b2Idx:    make(map[K]int),
		}
	})
}

// OnAccess sets the reference bit for a resident key. No key ever moves
// from T1 to T2: T2 is filled only by ghost-hit readmissions in OnInsert.
func (c *car[K]) OnAccess(k K) {
	c.t1.setRef(k)
	c.t2.setRef(k)
}

// OnInsert admits a key that is not currently resident, adapting p on a
// ghost hit exactly like ARC does.
func (c *car[K]) OnInsert(k K) {
	if _, ok := c.t1.index[k]; ok {
		return
	}
	if _, ok := c.t2.index[k]; ok {
		return
	}

	if i, ok := c.b1Idx[k]; ok {
		delta := ceilDiv(len(c.b2), maxInt(len(c.b1), 1))
		c.p = minInt(c.capacity, c.p+delta)
		c.removeGhost(&c.b1, c.b1Idx, i, k)
		c.t2.push(k)
		return
	}
	if i, ok := c.b2Idx[k]; ok {
		delta := ceilDiv(len(c.b1), maxInt(len(c.b2), 1))
		c.p = maxInt(0, c.p-delta)
		c.removeGhost(&c.b2, c.b2Idx, i, k)
		c.t2.push(k)
		return
	}

	totalCache := c.t1.n + c.t2.n
	totalHistory := len(c.b1) + len(c.b2)
	if totalCache+totalHistory >= c.capacity && totalHistory >= c.capacity {
		if len(c.b2) > 0 {
			c.removeGhost(&c.b2, c.b2Idx, 0, c.b2[0])
		} else if len(c.b1) > 0 {
			c.removeGhost(&c.b1, c.b1Idx, 0, c.b1[0])
		}
	}
	c.t1.push(k)
}

// OnRemove retires a resident key into its shadow ghost list.
func (c *car[K]) OnRemove(k K) {
	if c.t1.remove(k) {
		c.pushGhost(&c.b1, c.b1Idx, k)
		return
	}
	if c.t2.remove(k) {
		c.pushGhost(&c.b2, c.b2Idx, k)
		return
	}
	if i, ok := c.b1Idx[k]; ok {
		c.removeGhost(&c.b1, c.b1Idx, i, k)
		return
	}
	if i, ok := c.b2Idx[k]; ok {
		c.removeGhost(&c.b2, c.b2Idx, i, k)
	}
}

// SelectVictim runs CAR's adaptive Clock sweep: while T1 holds at least
// max(p, 1) keys, sweep T1; otherwise sweep T2 (or T1 if T2 is empty).
// The sweep clears the reference bit of each referenced key it passes,
// leaving that key in its ring, and the first unreferenced key found is
// the victim.
func (c *car[K]) SelectVictim() (K, bool) {
	if c.t1.n > 0 && c.t1.n >= maxInt(c.p, 1) {
		return c.t1.sweepOneClear()
	}
	if c.t2.n > 0 {
		return c.t2.sweepOneClear()
	}
	if c.t1.n > 0 {
		return c.t1.sweepOneClear()
	}
	var zero K
	return zero, false
}

// Len reports the number of resident keys (T1 + T2; ghosts are not
// resident).
func (c *car[K]) Len() int { return c.t1.n + c.t2.n }

func (c *car[K]) pushGhost(list *[]K, idx map[K]int, k K) {
	idx[k] = len(*list)
	*list = append(*list, k)
	for len(*list)+c.t1.n+c.t2.n > 2*c.capacity {
		c.removeGhost(list, idx, 0, (*list)[0])
	}
}

func (c *car[K]) removeGhost(list *[]K, idx map[K]int, i int, k K) {
	if _, ok := idx[k]; !ok {
		return
	}
	last := len(*list) - 1
	(*list)[i] = (*list)[last]
	idx[(*list)[i]] = i
	*list = (*list)[:last]
	delete(idx, k)
}

func ceilDiv(a, b int) int {
	if b <= 0 || a == 0 {
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
