// Package adaptive implements a meta-predictor that arbitrates a
// portfolio of child predictors by a decaying credit score: every child
// that correctly predicted a key that was accessed within its credit
// window earns a point, scores decay by a fixed factor on every access,
// and Predict returns the top-scoring children's suggestions.
package adaptive

import (
	"sort"

	"github.com/fulgurance/fulgurance/internal/ring"
	"github.com/fulgurance/fulgurance/predictor"
)

// defaultDecay and defaultCreditWindow match the spec's defaults: scores
// decay by 1% on every access, and a suggestion remains eligible to earn
// credit for 32 subsequent accesses.
const (
	defaultDecay        = 0.99
	defaultCreditWindow = 32
	defaultTopM         = 1
)

type child[K comparable] struct {
	pred  predictor.Predictor[K]
	score float64
}

type adaptive[K comparable] struct {
	children     []child[K]
	decay        float64
	topM         int
	creditWindow int
	pending      *ring.Ring[K]
	now          uint64
}

// Option configures an Adaptive predictor at construction time.
type Option[K comparable] func(*adaptive[K])

// WithDecay overrides the per-access score decay factor (default 0.99).
func WithDecay[K comparable](decay float64) Option[K] {
	return func(a *adaptive[K]) { a.decay = decay }
}

// WithTopM overrides how many top-scoring children contribute
// suggestions to Predict (default 1).
func WithTopM[K comparable](topM int) Option[K] {
	return func(a *adaptive[K]) {
		if topM < 1 {
			topM = 1
		}
		a.topM = topM
	}
}

// WithCreditWindow overrides how many subsequent accesses a suggestion
// remains eligible to earn credit for (default 32).
func WithCreditWindow[K comparable](window int) Option[K] {
	return func(a *adaptive[K]) {
		if window < 1 {
			window = 1
		}
		a.creditWindow = window
	}
}

// New returns a predictor.Factory that arbitrates the given child
// factories by decaying credit score.
func New[K comparable](children []predictor.Factory[K], opts ...Option[K]) predictor.Factory[K] {
	return predictor.FactoryFunc[K](func() predictor.Predictor[K] {
		a := &adaptive[K]{
			decay:        defaultDecay,
			topM:         defaultTopM,
			creditWindow: defaultCreditWindow,
		}
		for _, opt := range opts {
			opt(a)
		}
		for _, f := range children {
			a.children = append(a.children, child[K]{pred: f.New()})
		}
		a.pending = ring.New[K](len(a.children)*a.creditWindow + 1)
		return a
	})
}

// OnAccess decays every child's score, credits whichever child correctly
// predicted k (if that prediction is still within its credit window),
// then feeds the access to every child so they can keep learning.
func (a *adaptive[K]) OnAccess(k K) {
	a.now++
	for i := range a.children {
		a.children[i].score *= a.decay
	}
	if entry, ok := a.pending.Take(k, a.now); ok {
		a.children[entry.Source].score++
	}
	for i := range a.children {
		a.children[i].pred.OnAccess(k)
	}
}

// OnMiss feeds the miss to every child; misses do not themselves earn or
// cost credit.
func (a *adaptive[K]) OnMiss(k K) {
	a.now++
	for i := range a.children {
		a.children[i].pred.OnMiss(k)
	}
}

// Predict asks the topM highest-scoring children for their suggestions,
// deduplicates, and records each suggestion as pending credit.
func (a *adaptive[K]) Predict() []K {
	if len(a.children) == 0 {
		return nil
	}
	order := make([]int, len(a.children))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return a.children[order[i]].score > a.children[order[j]].score
	})

	topM := a.topM
	if topM > len(order) {
		topM = len(order)
	}

	seen := make(map[K]bool)
	var out []K
	for _, idx := range order[:topM] {
		for _, k := range a.children[idx].pred.Predict() {
			if seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, k)
			a.pending.Push(k, idx, a.now+uint64(a.creditWindow))
		}
	}
	return out
}
