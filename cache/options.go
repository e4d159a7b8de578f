package cache

import (
	"context"

	"github.com/fulgurance/fulgurance/diagnostics"
	"github.com/fulgurance/fulgurance/policy"
	"github.com/fulgurance/fulgurance/policy/lru"
	"github.com/fulgurance/fulgurance/predictor"
	"github.com/fulgurance/fulgurance/predictor/none"
)

// defaultPrefetchDegree caps how many prefetch candidates are loaded per
// access when a PredictorFactory is configured but PrefetchDegree isn't.
const defaultPrefetchDegree = 1

// Options configures a cache Engine. Zero values are safe: New applies
// the same defaults the field comments describe.
type Options[K comparable, V any] struct {
	// Capacity is the maximum number of resident entries. Required (> 0).
	Capacity int

	// PolicyFactory builds the eviction policy instance. nil => LRU.
	PolicyFactory policy.Factory[K]

	// PredictorFactory builds the prefetch predictor instance. nil =>
	// predictor/none (prefetching disabled).
	PredictorFactory predictor.Factory[K]

	// PrefetchDegree bounds how many not-yet-resident predicted keys are
	// loaded per access. Ignored if PredictorFactory or Loader is nil.
	// 0 => 1; a negative value is rejected by New.
	PrefetchDegree int

	// Loader fetches a value on a miss (used by GetOrLoad) or a value to
	// prefetch (used by the internal prefetch phase). nil disables both.
	Loader func(ctx context.Context, k K) (V, error)

	// Metrics receives hit/miss/eviction/prefetch counters. nil =>
	// NoopMetrics.
	Metrics Metrics

	// DiagnosticHook receives the Engine's non-fatal notices (a prefetch
	// load that failed). Predictors report their own degradation to the
	// hook passed to their constructor, not to this one. nil => silent.
	DiagnosticHook diagnostics.Hook
}

func (o *Options[K, V]) validate() error {
	if o.Capacity <= 0 {
		return invalidConfig("Capacity must be > 0")
	}
	if o.PrefetchDegree < 0 {
		return invalidConfig("PrefetchDegree must be >= 0")
	}
	return nil
}

func (o *Options[K, V]) applyDefaults() {
	if o.PolicyFactory == nil {
		o.PolicyFactory = lru.New[K]()
	}
	if o.PredictorFactory == nil {
		o.PredictorFactory = none.New[K]()
	}
	if o.PrefetchDegree <= 0 {
		o.PrefetchDegree = defaultPrefetchDegree
	}
	if o.Metrics == nil {
		o.Metrics = NoopMetrics{}
	}
	if o.DiagnosticHook == nil {
		o.DiagnosticHook = diagnostics.Noop{}
	}
}
