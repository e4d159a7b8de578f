// Package clock implements the Clock (second-chance) eviction policy: a
// ring of tracked keys with a reference bit each, and a hand that sweeps
// the ring clearing bits until it finds one already clear.
package clock

import "github.com/fulgurance/fulgurance/policy"

type slot[K comparable] struct {
	key    K
	refBit bool
	live   bool // false once the slot has been vacated by OnRemove
}

// clock keeps tracked keys in a ring slice plus a key->slot-index map. A
// removed slot is tombstoned in place (live=false) rather than shifting the
// ring, so existing indices and the hand position stay valid; tombstones
// are reclaimed by OnInsert before the ring grows.
type clock[K comparable] struct {
	ring  []slot[K]
	index map[K]int
	hand  int
	n     int // number of live slots
}

// New returns a policy.Factory for Clock.
func New[K comparable]() policy.Factory[K] {
	return policy.FactoryFunc[K](func() policy.Policy[K] {
		return &clock[K]{index: make(map[K]int)}
	})
}

// OnAccess sets the key's reference bit.
func (p *clock[K]) OnAccess(k K) {
	if i, ok := p.index[k]; ok {
		p.ring[i].refBit = true
	}
}

// OnInsert adds a new key to the ring with its reference bit clear,
// reusing a tombstoned slot if one is available.
func (p *clock[K]) OnInsert(k K) {
	if _, ok := p.index[k]; ok {
		return
	}
	for i := range p.ring {
		if !p.ring[i].live {
			p.ring[i] = slot[K]{key: k, live: true}
			p.index[k] = i
			p.n++
			return
		}
	}
	p.ring = append(p.ring, slot[K]{key: k, live: true})
	p.index[k] = len(p.ring) - 1
	p.n++
}

// OnRemove tombstones the key's slot.
func (p *clock[K]) OnRemove(k K) {
	i, ok := p.index[k]
	if !ok {
		return
	}
	p.ring[i] = slot[K]{live: false}
	delete(p.index, k)
	p.n--
}

// SelectVictim sweeps the ring from the current hand position, clearing
// reference bits along the way, until it finds a live slot whose bit was
// already clear, and returns that key. The sweep's bit-clearing and hand
// advance are the Clock algorithm's defining behavior, not incidental
// state — unlike the list-based policies, Clock has no separate "commit"
// step, so SelectVictim leaves the hand just past the chosen slot, ready
// for the next eviction.
func (p *clock[K]) SelectVictim() (K, bool) {
	if p.n == 0 {
		var zero K
		return zero, false
	}
	for {
		s := &p.ring[p.hand]
		if s.live {
			if !s.refBit {
				key := s.key
				p.hand = (p.hand + 1) % len(p.ring)
				return key, true
			}
			s.refBit = false
		}
		p.hand = (p.hand + 1) % len(p.ring)
	}
}

// Len reports the number of tracked keys.
func (p *clock[K]) Len() int { return p.n }
