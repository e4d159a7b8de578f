// Package mru implements the Most-Recently-Used eviction policy: the same
// bookkeeping as LRU, but the victim is the MRU end instead of the LRU end.
package mru

import "github.com/fulgurance/fulgurance/policy"

type node[K comparable] struct {
	key        K
	prev, next *node[K]
}

// mru keeps a doubly linked list (head = MRU, tail = LRU) plus a key->node
// index, identical to policy/lru's structure; only SelectVictim differs.
type mru[K comparable] struct {
	index      map[K]*node[K]
	head, tail *node[K]
}

// New returns a policy.Factory for MRU.
func New[K comparable]() policy.Factory[K] {
	return policy.FactoryFunc[K](func() policy.Policy[K] {
		return &mru[K]{index: make(map[K]*node[K])}
	})
}

// OnAccess promotes the key to MRU.
func (p *mru[K]) OnAccess(k K) {
	if n, ok := p.index[k]; ok {
		p.moveToFront(n)
	}
}

// OnInsert places a new key at MRU.
func (p *mru[K]) OnInsert(k K) {
	if _, ok := p.index[k]; ok {
		return
	}
	n := &node[K]{key: k}
	p.index[k] = n
	p.pushFront(n)
}

// OnRemove detaches the key from the list.
func (p *mru[K]) OnRemove(k K) {
	n, ok := p.index[k]
	if !ok {
		return
	}
	p.detach(n)
	delete(p.index, k)
}

// SelectVictim returns the MRU key (head) without mutating state.
func (p *mru[K]) SelectVictim() (K, bool) {
	if p.head == nil {
		var zero K
		return zero, false
	}
	return p.head.key, true
}

// Len reports the number of tracked keys.
func (p *mru[K]) Len() int { return len(p.index) }

func (p *mru[K]) pushFront(n *node[K]) {
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

func (p *mru[K]) detach(n *node[K]) {
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

func (p *mru[K]) moveToFront(n *node[K]) {
	if n == p.head {
		return
	}
	p.detach(n)
	p.pushFront(n)
}
