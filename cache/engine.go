package cache

import (
	"context"

	"github.com/fulgurance/fulgurance/policy"
	"github.com/fulgurance/fulgurance/predictor"
)

// engine is the single-writer implementation of CacheHandle: one map, one
// eviction policy, one prefetch predictor, no internal locking. Exactly
// one goroutine is expected to call its methods at a time.
type engine[K comparable, V any] struct {
	opt Options[K, V]

	store map[K]*entry[V]
	pol   policy.Policy[K]
	pred  predictor.Predictor[K]
	seq   uint64

	hits, misses, prefetchHits, prefetchIssued, evictions uint64
}

// New constructs a CacheHandle from Options, applying defaults and
// rejecting an invalid configuration.
func New[K comparable, V any](opt Options[K, V]) (CacheHandle[K, V], error) {
	if err := opt.validate(); err != nil {
		return nil, err
	}
	opt.applyDefaults()

	return &engine[K, V]{
		opt:   opt,
		store: make(map[K]*entry[V], opt.Capacity),
		pol:   opt.PolicyFactory.New(),
		pred:  opt.PredictorFactory.New(),
	}, nil
}

// Get implements CacheHandle.
func (e *engine[K, V]) Get(k K) (V, bool) {
	ent, ok := e.store[k]
	if !ok {
		e.misses++
		e.opt.Metrics.Miss()
		e.pred.OnMiss(k)
		return zeroOf[V](), false
	}

	wasPrefetched := ent.prefetched
	ent.prefetched = false
	e.seq++
	ent.seq = e.seq

	e.hits++
	e.opt.Metrics.Hit()
	if wasPrefetched {
		e.prefetchHits++
		e.opt.Metrics.PrefetchHit()
	}

	e.pol.OnAccess(k)
	e.pred.OnAccess(k)
	e.runPrefetch()

	return ent.value, true
}

// GetOrLoad implements CacheHandle.
func (e *engine[K, V]) GetOrLoad(ctx context.Context, k K) (V, error) {
	if v, ok := e.Get(k); ok {
		return v, nil
	}
	if e.opt.Loader == nil {
		return zeroOf[V](), ErrNoLoader
	}
	v, err := e.opt.Loader(ctx, k)
	if err != nil {
		return zeroOf[V](), &LoaderError{Key: k, Err: err}
	}
	// Get already reported k to the predictor via OnMiss; admit directly
	// rather than through Put so the same request is not observed twice.
	e.admit(k, v, false)
	e.runPrefetch()
	return v, nil
}

// Put implements CacheHandle.
func (e *engine[K, V]) Put(k K, v V) {
	if ent, ok := e.store[k]; ok {
		ent.value = v
		ent.prefetched = false
		e.seq++
		ent.seq = e.seq
		e.pol.OnAccess(k)
		e.pred.OnAccess(k)
		e.runPrefetch()
		return
	}

	e.admit(k, v, false)
	e.pred.OnAccess(k)
	e.runPrefetch()
}

// Remove implements CacheHandle.
func (e *engine[K, V]) Remove(k K) bool {
	if _, ok := e.store[k]; !ok {
		return false
	}
	delete(e.store, k)
	e.pol.OnRemove(k)
	e.opt.Metrics.Size(len(e.store))
	return true
}

// Len implements CacheHandle.
func (e *engine[K, V]) Len() int { return len(e.store) }

// Capacity implements CacheHandle.
func (e *engine[K, V]) Capacity() int { return e.opt.Capacity }

// Metrics implements CacheHandle.
func (e *engine[K, V]) Metrics() Snapshot {
	return Snapshot{
		Hits:           e.hits,
		Misses:         e.misses,
		PrefetchHits:   e.prefetchHits,
		PrefetchIssued: e.prefetchIssued,
		Evictions:      e.evictions,
		Size:           len(e.store),
	}
}

// Clear implements CacheHandle.
func (e *engine[K, V]) Clear() {
	e.store = make(map[K]*entry[V], e.opt.Capacity)
	e.pol = e.opt.PolicyFactory.New()
	e.pred = e.opt.PredictorFactory.New()
	e.opt.Metrics.Size(0)
}

// admit inserts a brand-new key, evicting a victim first if the cache is
// already at capacity. The victim is selected by the read-only
// SelectVictim and then removed via the two-step OnRemove/OnInsert
// contract policy.Policy documents.
func (e *engine[K, V]) admit(k K, v V, prefetched bool) {
	if len(e.store) >= e.opt.Capacity {
		if victim, ok := e.pol.SelectVictim(); ok {
			delete(e.store, victim)
			e.pol.OnRemove(victim)
			e.evictions++
			e.opt.Metrics.Evict(EvictPolicy)
		}
	}

	e.seq++
	e.store[k] = &entry[V]{value: v, seq: e.seq, prefetched: prefetched}
	e.pol.OnInsert(k)
	e.opt.Metrics.Size(len(e.store))
}

// runPrefetch consults the predictor for candidates, filters out keys
// that are already resident, and loads up to PrefetchDegree of the rest
// (if a Loader is configured), tagging them prefetched so the first
// genuine hit against one of them can be told apart from a cold miss.
func (e *engine[K, V]) runPrefetch() {
	if e.opt.Loader == nil {
		return
	}
	candidates := e.pred.Predict()
	if len(candidates) == 0 {
		return
	}

	issued := 0
	for _, k := range candidates {
		if issued >= e.opt.PrefetchDegree {
			break
		}
		if _, resident := e.store[k]; resident {
			continue
		}
		v, err := e.opt.Loader(context.Background(), k)
		if err != nil {
			e.opt.DiagnosticHook.Notify("cache/engine", "prefetch-load-failed")
			continue
		}
		e.admit(k, v, true)
		issued++
		e.prefetchIssued++
		e.opt.Metrics.PrefetchIssued()
	}
}

func zeroOf[V any]() V {
	var zero V
	return zero
}
