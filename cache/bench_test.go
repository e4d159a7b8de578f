package cache

import (
	"strconv"
	"testing"
)

// benchmarkMix exercises a read/write mix against a warm cache. The Engine
// is single-writer, so unlike a sharded cache's parallel benchmark this
// runs sequentially — it measures the policy/predictor dispatch cost, not
// lock contention.
func benchmarkMix(b *testing.B, readsPct int) {
	c, err := New[string, string](Options[string, string]{Capacity: 100_000})
	if err != nil {
		b.Fatal(err)
	}

	for i := 0; i < 50_000; i++ {
		c.Put("k:"+strconv.Itoa(i), "v")
	}

	b.ReportAllocs()
	b.ResetTimer()

	keyMask := (1 << 16) - 1
	for i := 0; i < b.N; i++ {
		k := "k:" + strconv.Itoa(i&keyMask)
		if i%100 < readsPct {
			c.Get(k)
		} else {
			c.Put(k, "v")
		}
	}
}

func BenchmarkEngine_90r10w(b *testing.B) { benchmarkMix(b, 90) }
func BenchmarkEngine_50r50w(b *testing.B) { benchmarkMix(b, 50) }

// benchmarkMixInt is the same workload with int keys, removing
// strconv/alloc noise from the measured hot path.
func benchmarkMixInt(b *testing.B, readsPct int) {
	c, err := New[int, int](Options[int, int]{Capacity: 100_000})
	if err != nil {
		b.Fatal(err)
	}

	for i := 0; i < 50_000; i++ {
		c.Put(i, 1)
	}

	b.ReportAllocs()
	b.ResetTimer()

	keyMask := (1 << 16) - 1
	for i := 0; i < b.N; i++ {
		k := i & keyMask
		if i%100 < readsPct {
			c.Get(k)
		} else {
			c.Put(k, 1)
		}
	}
}

func BenchmarkEngine_IntKeys_90r10w(b *testing.B) { benchmarkMixInt(b, 90) }
func BenchmarkEngine_IntKeys_50r50w(b *testing.B) { benchmarkMixInt(b, 50) }
