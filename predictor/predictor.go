// Package predictor defines the prefetch-predictor contract shared by every
// strategy under predictor/ (none, sequential, stride, markov, history,
// adaptive).
//
// A Predictor observes the same key stream the Engine dispatches to the
// active policy.Policy and, on demand, emits a bounded list of keys it
// believes the client will request next.
package predictor

// Predictor observes an access stream and predicts future keys.
//
// Contract:
//   - OnAccess is called for every key the client successfully retrieved
//     (a cache hit, including the first hit against a previously
//     prefetched entry — the "promoted" transition) and for every key the
//     client writes with Put.
//   - OnMiss is called for every key the client requested that was not
//     resident. Most predictors treat OnAccess and OnMiss identically for
//     the purpose of building their model of "what key was requested
//     next": both represent an observed key in the request sequence.
//   - Predict returns up to the configured degree of candidate keys the
//     Engine should consider prefetching. The Engine filters out keys
//     already resident; a Predictor need not filter itself.
//   - Predict is never called for prefetch-driven insertions: those are
//     system-initiated and are not reported via OnAccess/OnMiss at all,
//     per the spec's event-tagging rules.
type Predictor[K comparable] interface {
	OnAccess(k K)
	OnMiss(k K)
	Predict() []K
}

// Factory constructs fresh, independent Predictor instances.
type Factory[K comparable] interface {
	New() Predictor[K]
}

// FactoryFunc adapts a plain function to Factory.
type FactoryFunc[K comparable] func() Predictor[K]

// New implements Factory.
func (f FactoryFunc[K]) New() Predictor[K] { return f() }
