// Package none implements the no-op prefetch predictor: it never
// predicts anything. This is the default when prefetching is disabled,
// and the fallback target for predictors that degrade on key types they
// cannot reason about.
package none

import "github.com/fulgurance/fulgurance/predictor"

type none[K comparable] struct{}

// New returns a predictor.Factory that always yields the no-op predictor.
func New[K comparable]() predictor.Factory[K] {
	return predictor.FactoryFunc[K](func() predictor.Predictor[K] {
		return none[K]{}
	})
}

// OnAccess is a no-op.
func (none[K]) OnAccess(K) {}

// OnMiss is a no-op.
func (none[K]) OnMiss(K) {}

// Predict always returns no suggestions.
func (none[K]) Predict() []K { return nil }
