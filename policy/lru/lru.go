// Package lru implements the Least-Recently-Used eviction policy.
package lru

import "github.com/fulgurance/fulgurance/policy"

type node[K comparable] struct {
	key        K
	prev, next *node[K]
}

// lru is a classic move-to-front policy: a doubly linked list (head = MRU,
// tail = LRU) plus a key->node index for O(1) access.
type lru[K comparable] struct {
	index      map[K]*node[K]
	head, tail *node[K]
}

// New returns a policy.Factory for LRU.
func New[K comparable]() policy.Factory[K] {
	return policy.FactoryFunc[K](func() policy.Policy[K] {
		return &lru[K]{index: make(map[K]*node[K])}
	})
}

// OnAccess promotes the key to MRU.
func (p *lru[K]) OnAccess(k K) {
	if n, ok := p.index[k]; ok {
		p.moveToFront(n)
	}
}

// OnInsert places a new key at MRU.
func (p *lru[K]) OnInsert(k K) {
	if _, ok := p.index[k]; ok {
		return
	}
	n := &node[K]{key: k}
	p.index[k] = n
	p.pushFront(n)
}

// OnRemove detaches the key from the list.
func (p *lru[K]) OnRemove(k K) {
	n, ok := p.index[k]
	if !ok {
		return
	}
	p.detach(n)
	delete(p.index, k)
}

// SelectVictim returns the LRU key (tail) without mutating state.
func (p *lru[K]) SelectVictim() (K, bool) {
	if p.tail == nil {
		var zero K
		return zero, false
	}
	return p.tail.key, true
}

// Len reports the number of tracked keys.
func (p *lru[K]) Len() int { return len(p.index) }

func (p *lru[K]) pushFront(n *node[K]) {
	n.prev = nil
	n.next = p.head
	if p.head != nil {
		p.head.prev = n
	}
	p.head = n
	if p.tail == nil {
		p.tail = n
	}
}

func (p *lru[K]) detach(n *node[K]) {
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
	n.prev, n.next = nil, nil
}

func (p *lru[K]) moveToFront(n *node[K]) {
	if n == p.head {
		return
	}
	p.detach(n)
	p.pushFront(n)
}
