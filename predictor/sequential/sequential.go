// Package sequential implements a predictor that, after observing key k,
// predicts k+1: the classic read-ahead pattern for monotonically
// increasing integer-like keys. It degrades to predicting nothing for key
// types internal/numeric cannot take a successor of.
package sequential

import (
	"github.com/fulgurance/fulgurance/diagnostics"
	"github.com/fulgurance/fulgurance/internal/numeric"
	"github.com/fulgurance/fulgurance/predictor"
)

type sequential[K comparable] struct {
	hook     diagnostics.Hook
	last     K
	hasLast  bool
	degraded bool
}

// New returns a predictor.Factory for Sequential. hook may be nil, in
// which case degradation is silent.
func New[K comparable](hook diagnostics.Hook) predictor.Factory[K] {
	if hook == nil {
		hook = diagnostics.Noop{}
	}
	return predictor.FactoryFunc[K](func() predictor.Predictor[K] {
		return &sequential[K]{hook: hook}
	})
}

// OnAccess records k as the most recent key.
func (p *sequential[K]) OnAccess(k K) {
	p.last = k
	p.hasLast = true
}

// OnMiss is treated the same as a successful access: a miss still tells
// us what the caller is asking for.
func (p *sequential[K]) OnMiss(k K) {
	p.OnAccess(k)
}

// Predict returns [last+1] if last has a successor, else nothing.
func (p *sequential[K]) Predict() []K {
	if !p.hasLast {
		return nil
	}
	next, ok := numeric.Successor(p.last)
	if !ok {
		if !p.degraded {
			p.degraded = true
			p.hook.Notify("predictor/sequential", "unordered-key")
		}
		return nil
	}
	return []K{next}
}
