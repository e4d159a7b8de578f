package prom

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/fulgurance/fulgurance/cache"
)

func TestAdapter_CountersIncrement(t *testing.T) {
	reg := prometheus.NewRegistry()
	a := New(reg, "fulgurance", "cache", nil)

	a.Hit()
	a.Hit()
	a.Miss()
	a.PrefetchHit()
	a.PrefetchIssued()
	a.PrefetchIssued()
	a.Evict(cache.EvictPolicy)
	a.Size(7)

	if got := testutil.ToFloat64(a.hits); got != 2 {
		t.Fatalf("hits = %v, want 2", got)
	}
	if got := testutil.ToFloat64(a.misses); got != 1 {
		t.Fatalf("misses = %v, want 1", got)
	}
	if got := testutil.ToFloat64(a.prefetchHits); got != 1 {
		t.Fatalf("prefetchHits = %v, want 1", got)
	}
	if got := testutil.ToFloat64(a.prefetchIssued); got != 2 {
		t.Fatalf("prefetchIssued = %v, want 2", got)
	}
	if got := testutil.ToFloat64(a.evicts.WithLabelValues("policy")); got != 1 {
		t.Fatalf("evicts[policy] = %v, want 1", got)
	}
	if got := testutil.ToFloat64(a.size); got != 7 {
		t.Fatalf("size = %v, want 7", got)
	}
}

func TestAdapter_ImplementsCacheMetrics(t *testing.T) {
	var _ cache.Metrics = New(prometheus.NewRegistry(), "", "", nil)
}
