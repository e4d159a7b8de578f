// Package history implements an N-gram prefetch predictor: it predicts
// the next key from what most often followed the same trailing suffix of
// the last N accesses, falling back to shorter suffixes when the longest
// one has never been seen before.
package history

import (
	"sort"

	"github.com/fulgurance/fulgurance/internal/keyhash"
	"github.com/fulgurance/fulgurance/predictor"
)

type transitions[K comparable] struct {
	counts   map[K]uint64
	lastSeen map[K]uint64
}

// defaultOrder is the suffix length of a trigram (N=3) model: the last two
// keys predict the third.
const defaultOrder = 2

// history keeps, for each suffix length from 1 up to order, a table keyed
// by the FNV hash of that suffix's keys.
type history[K comparable] struct {
	order  int
	degree int
	tables []map[uint64]*transitions[K]
	recent []K
	clock  uint64
}

// New returns a predictor.Factory for the History predictor using the
// default order (2, i.e. trigrams) and the given degree, which caps how many successors
// Predict returns per call (clamped to at least 1).
func New[K comparable](degree int) predictor.Factory[K] {
	return NewWithOrder[K](defaultOrder, degree)
}

// NewWithOrder returns a predictor.Factory for the History predictor with
// a custom maximum suffix length and degree, both clamped to at least 1.
func NewWithOrder[K comparable](order, degree int) predictor.Factory[K] {
	if order < 1 {
		order = 1
	}
	if degree < 1 {
		degree = 1
	}
	return predictor.FactoryFunc[K](func() predictor.Predictor[K] {
		tables := make([]map[uint64]*transitions[K], order)
		for i := range tables {
			tables[i] = make(map[uint64]*transitions[K])
		}
		return &history[K]{order: order, degree: degree, tables: tables}
	})
}

// OnAccess records, for every suffix length up to order that the recent
// history can support, the transition from that suffix to k, then appends
// k to the trailing history window.
func (p *history[K]) OnAccess(k K) {
	for n := 1; n <= p.order && n <= len(p.recent); n++ {
		suffix := p.recent[len(p.recent)-n:]
		p.record(n, suffix, k)
	}
	p.recent = append(p.recent, k)
	if len(p.recent) > p.order {
		p.recent = p.recent[len(p.recent)-p.order:]
	}
}

// OnMiss is treated the same as a successful access.
func (p *history[K]) OnMiss(k K) {
	p.OnAccess(k)
}

// Predict tries the longest known suffix first and falls back to shorter
// ones until a table has seen that suffix before.
func (p *history[K]) Predict() []K {
	for n := min(p.order, len(p.recent)); n >= 1; n-- {
		suffix := p.recent[len(p.recent)-n:]
		h := keyhash.Sequence(suffix)
		t, ok := p.tables[n-1][h]
		if !ok || len(t.counts) == 0 {
			continue
		}
		return topN(t, p.degree)
	}
	return nil
}

func (p *history[K]) record(n int, suffix []K, next K) {
	p.clock++
	h := keyhash.Sequence(suffix)
	t, ok := p.tables[n-1][h]
	if !ok {
		t = &transitions[K]{counts: make(map[K]uint64), lastSeen: make(map[K]uint64)}
		p.tables[n-1][h] = t
	}
	t.counts[next]++
	t.lastSeen[next] = p.clock
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

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
