// Package lfu implements the Least-Frequently-Used eviction policy with
// O(1) SelectVictim via frequency buckets (the classic Shah/Cao scheme).
package lfu

import (
	"container/list"
	"math"

	"github.com/fulgurance/fulgurance/policy"
)

type entry[K comparable] struct {
	key  K
	freq uint64
}

// lfu tracks, for every key, a frequency counter; keys with equal frequency
// are kept in a container/list.List bucket in insertion/access order so
// that ties break on recency within the bucket. minFreq always names a
// non-empty bucket (or is meaningless when the policy is empty).
type lfu[K comparable] struct {
	buckets map[uint64]*list.List
	index   map[K]*list.Element
	minFreq uint64
}

// New returns a policy.Factory for LFU.
func New[K comparable]() policy.Factory[K] {
	return policy.FactoryFunc[K](func() policy.Policy[K] {
		return &lfu[K]{
			buckets: make(map[uint64]*list.List),
			index:   make(map[K]*list.Element),
		}
	})
}

// OnAccess increments the key's frequency, saturating at math.MaxUint64.
func (p *lfu[K]) OnAccess(k K) {
	el, ok := p.index[k]
	if !ok {
		return
	}
	p.bump(el)
}

// OnInsert starts a new key at frequency 1.
func (p *lfu[K]) OnInsert(k K) {
	if _, ok := p.index[k]; ok {
		return
	}
	b := p.bucket(1)
	el := b.PushBack(&entry[K]{key: k, freq: 1})
	p.index[k] = el
	p.minFreq = 1
}

// OnRemove drops the key from its bucket.
func (p *lfu[K]) OnRemove(k K) {
	el, ok := p.index[k]
	if !ok {
		return
	}
	e := el.Value.(*entry[K])
	b := p.buckets[e.freq]
	b.Remove(el)
	if b.Len() == 0 {
		delete(p.buckets, e.freq)
		if p.minFreq == e.freq {
			p.minFreq = 0
			for f := range p.buckets {
				if p.minFreq == 0 || f < p.minFreq {
					p.minFreq = f
				}
			}
		}
	}
	delete(p.index, k)
}

// SelectVictim returns the least-frequently-used key, breaking ties toward
// the oldest entry within the minimum-frequency bucket, without mutating
// state.
func (p *lfu[K]) SelectVictim() (K, bool) {
	b, ok := p.buckets[p.minFreq]
	if !ok || b.Len() == 0 {
		var zero K
		return zero, false
	}
	return b.Front().Value.(*entry[K]).key, true
}

// Len reports the number of tracked keys.
func (p *lfu[K]) Len() int { return len(p.index) }

func (p *lfu[K]) bucket(freq uint64) *list.List {
	b, ok := p.buckets[freq]
	if !ok {
		b = list.New()
		p.buckets[freq] = b
	}
	return b
}

func (p *lfu[K]) bump(el *list.Element) {
	e := el.Value.(*entry[K])
	oldFreq := e.freq
	b := p.buckets[oldFreq]
	b.Remove(el)
	if b.Len() == 0 {
		delete(p.buckets, oldFreq)
		if p.minFreq == oldFreq {
			p.minFreq = oldFreq + 1
		}
	}

	if e.freq != math.MaxUint64 {
		e.freq++
	}
	nb := p.bucket(e.freq)
	p.index[e.key] = nb.PushBack(e)
}
