// Package fifo implements a plain First-In-First-Out eviction policy:
// insertion order decides the victim, and access never changes that order.
package fifo

import "github.com/fulgurance/fulgurance/policy"

type node[K comparable] struct {
	key        K
	prev, next *node[K]
}

// fifo keeps a doubly linked insertion queue (head = newest, tail = oldest)
// plus a key->node index. OnAccess is a no-op by definition.
type fifo[K comparable] struct {
	index      map[K]*node[K]
	head, tail *node[K]
}

// New returns a policy.Factory for FIFO.
func New[K comparable]() policy.Factory[K] {
	return policy.FactoryFunc[K](func() policy.Policy[K] {
		return &fifo[K]{index: make(map[K]*node[K])}
	})
}

// OnAccess is a no-op: FIFO ignores access order entirely.
func (p *fifo[K]) OnAccess(K) {}

// OnInsert places a new key at the head of the queue.
func (p *fifo[K]) OnInsert(k K) {
	if _, ok := p.index[k]; ok {
		return
	}
	n := &node[K]{key: k}
	p.index[k] = n
	n.next = p.head
	if p.head != nil {
		p.head.prev = n
	}
	p.head = n
	if p.tail == nil {
		p.tail = n
	}
}

// OnRemove detaches the key from the queue.
func (p *fifo[K]) OnRemove(k K) {
	n, ok := p.index[k]
	if !ok {
		return
	}
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		p.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		p.tail = n.prev
	}
	delete(p.index, k)
}

// SelectVictim returns the oldest inserted key (tail) without mutating state.
func (p *fifo[K]) SelectVictim() (K, bool) {
	if p.tail == nil {
		var zero K
		return zero, false
	}
	return p.tail.key, true
}

// Len reports the number of tracked keys.
func (p *fifo[K]) Len() int { return len(p.index) }
