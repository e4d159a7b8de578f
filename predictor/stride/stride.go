// Package stride implements a predictor that learns the constant offset
// between consecutive accesses (e.g. always +4, or always -1) and predicts
// the next key by applying that offset again. It degrades to predicting
// nothing for key types internal/numeric cannot take a delta of.
package stride

import (
	"github.com/fulgurance/fulgurance/diagnostics"
	"github.com/fulgurance/fulgurance/internal/numeric"
	"github.com/fulgurance/fulgurance/predictor"
)

type stride[K comparable] struct {
	hook diagnostics.Hook

	prev         K
	hasPrev      bool
	delta        int64
	hasStride    bool
	lastDelta    int64
	hasLastDelta bool
	degraded     bool
}

// New returns a predictor.Factory for Stride. hook may be nil, in which
// case degradation is silent.
func New[K comparable](hook diagnostics.Hook) predictor.Factory[K] {
	if hook == nil {
		hook = diagnostics.Noop{}
	}
	return predictor.FactoryFunc[K](func() predictor.Predictor[K] {
		return &stride[K]{hook: hook}
	})
}

// OnAccess updates the learned stride from the gap between this access and
// the previous one. A freshly observed delta is trusted on its own (there
// is nothing yet to compare it against); from the second delta onward,
// confidence requires the new delta to match the previous one — a change
// in stride resets confidence until the stride stabilizes again.
func (p *stride[K]) OnAccess(k K) {
	if !p.hasPrev {
		p.prev = k
		p.hasPrev = true
		return
	}
	delta, ok := numeric.Delta(p.prev, k)
	if !ok {
		if !p.degraded {
			p.degraded = true
			p.hook.Notify("predictor/stride", "non-numeric-key")
		}
		p.prev = k
		return
	}
	if p.hasLastDelta {
		p.hasStride = delta == p.lastDelta
	} else {
		p.hasStride = true
	}
	p.delta = delta
	p.lastDelta = delta
	p.hasLastDelta = true
	p.prev = k
}

// OnMiss is treated the same as a successful access.
func (p *stride[K]) OnMiss(k K) {
	p.OnAccess(k)
}

// Predict returns [prev+delta] once a stride has been learned from at
// least two accesses.
func (p *stride[K]) Predict() []K {
	if !p.hasStride {
		return nil
	}
	next, ok := numeric.Offset(p.prev, p.delta)
	if !ok {
		return nil
	}
	return []K{next}
}
