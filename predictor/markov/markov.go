// Package markov implements a first-order Markov-chain predictor: for
// each key it has seen, it tracks which key followed it and how often,
// and predicts the degree most frequent successors. Ties break toward
// whichever successor was most recently observed.
package markov

import (
	"sort"

	"github.com/fulgurance/fulgurance/predictor"
)

type transitions[K comparable] struct {
	counts   map[K]uint64
	lastSeen map[K]uint64
}

type markov[K comparable] struct {
	table   map[K]*transitions[K]
	prev    K
	hasPrev bool
	clock   uint64
	degree  int
}

// New returns a predictor.Factory for the first-order Markov predictor,
// which returns up to degree successors per Predict call (clamped to at
// least 1).
func New[K comparable](degree int) predictor.Factory[K] {
	if degree < 1 {
		degree = 1
	}
	return predictor.FactoryFunc[K](func() predictor.Predictor[K] {
		return &markov[K]{table: make(map[K]*transitions[K]), degree: degree}
	})
}

// OnAccess records the transition from the previous key to k.
func (p *markov[K]) OnAccess(k K) {
	if p.hasPrev {
		p.record(p.prev, k)
	}
	p.prev = k
	p.hasPrev = true
}

// OnMiss is treated the same as a successful access.
func (p *markov[K]) OnMiss(k K) {
	p.OnAccess(k)
}

// Predict returns up to degree of the most frequent successors of the
// last accessed key, if any transition has been observed from it.
func (p *markov[K]) Predict() []K {
	if !p.hasPrev {
		return nil
	}
	t, ok := p.table[p.prev]
	if !ok || len(t.counts) == 0 {
		return nil
	}
	return topN(t, p.degree)
}

// topN returns up to n successors from t, ordered by descending count
// and, on a tie, by most-recently-observed.
func topN[K comparable](t *transitions[K], n int) []K {
	type candidate struct {
		key   K
		count uint64
		seen  uint64
	}
	candidates := make([]candidate, 0, len(t.counts))
	for k, count := range t.counts {
		candidates = append(candidates, candidate{key: k, count: count, seen: t.lastSeen[k]})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].count != candidates[j].count {
			return candidates[i].count > candidates[j].count
		}
		return candidates[i].seen > candidates[j].seen
	})
	if n > len(candidates) {
		n = len(candidates)
	}
	out := make([]K, n)
	for i := 0; i < n; i++ {
		out[i] = candidates[i].key
	}
	return out
}

func (p *markov[K]) record(from, to K) {
	p.clock++
	t, ok := p.table[from]
	if !ok {
		t = &transitions[K]{counts: make(map[K]uint64), lastSeen: make(map[K]uint64)}
		p.table[from] = t
	}
	t.counts[to]++
	t.lastSeen[to] = p.clock
}
