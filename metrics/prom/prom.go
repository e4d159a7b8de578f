// Package prom implements cache.Metrics on top of Prometheus counters and
// gauges, grounded on the shape of a typical Prometheus-backed cache
// metrics adapter: one Counter per simple event, a CounterVec for
// eviction reasons, and a Gauge for resident size.
package prom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/fulgurance/fulgurance/cache"
)

// Adapter implements cache.Metrics and exports Prometheus counters and
// gauges. Safe for concurrent use: all Prometheus metric types are
// goroutine-safe, even though the cache Engine itself is not.
type Adapter struct {
	hits           prometheus.Counter
	misses         prometheus.Counter
	prefetchHits   prometheus.Counter
	prefetchIssued prometheus.Counter
	evicts         *prometheus.CounterVec
	size           prometheus.Gauge
}

// New constructs a Prometheus metrics adapter.
//   - reg:         registry to register metrics with (nil => prometheus.DefaultRegisterer)
//   - ns, sub:     Prometheus namespace and subsystem
//   - constLabels: static labels applied to all metrics (may be nil)
func New(reg prometheus.Registerer, ns, sub string, constLabels prometheus.Labels) *Adapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	a := &Adapter{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "hits_total",
			Help:        "Cache hits",
			ConstLabels: constLabels,
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "misses_total",
			Help:        "Cache misses",
			ConstLabels: constLabels,
		}),
		prefetchHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "prefetch_hits_total",
			Help:        "Hits against an entry that was resident because a predictor prefetched it",
			ConstLabels: constLabels,
		}),
		prefetchIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "prefetch_issued_total",
			Help:        "Keys loaded speculatively on a predictor's suggestion",
			ConstLabels: constLabels,
		}),
		evicts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   sub,
				Name:        "evictions_total",
				Help:        "Cache evictions by reason",
				ConstLabels: constLabels,
			},
			[]string{"reason"},
		),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "size_entries",
			Help:        "Number of resident entries",
			ConstLabels: constLabels,
		}),
	}
	reg.MustRegister(a.hits, a.misses, a.prefetchHits, a.prefetchIssued, a.evicts, a.size)
	return a
}

// Hit implements cache.Metrics.
func (a *Adapter) Hit() { a.hits.Inc() }

// Miss implements cache.Metrics.
func (a *Adapter) Miss() { a.misses.Inc() }

// PrefetchHit implements cache.Metrics.
func (a *Adapter) PrefetchHit() { a.prefetchHits.Inc() }

// PrefetchIssued implements cache.Metrics.
func (a *Adapter) PrefetchIssued() { a.prefetchIssued.Inc() }

// Evict implements cache.Metrics.
func (a *Adapter) Evict(r cache.EvictReason) {
	a.evicts.WithLabelValues(r.String()).Inc()
}

// Size implements cache.Metrics.
func (a *Adapter) Size(entries int) {
	a.size.Set(float64(entries))
}

var _ cache.Metrics = (*Adapter)(nil)
