// Command bench runs a synthetic Zipfian workload against the cache and
// exposes optional pprof/Prometheus endpoints.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof/* on DefaultServeMux
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fulgurance/fulgurance/cache"
	pmet "github.com/fulgurance/fulgurance/metrics/prom"
	"github.com/fulgurance/fulgurance/policy"
	"github.com/fulgurance/fulgurance/policy/arc"
	"github.com/fulgurance/fulgurance/policy/car"
	"github.com/fulgurance/fulgurance/policy/clock"
	"github.com/fulgurance/fulgurance/policy/fifo"
	"github.com/fulgurance/fulgurance/policy/lfu"
	"github.com/fulgurance/fulgurance/policy/lru"
	"github.com/fulgurance/fulgurance/policy/mru"
	"github.com/fulgurance/fulgurance/policy/random"
	"github.com/fulgurance/fulgurance/policy/slru"
	"github.com/fulgurance/fulgurance/policy/twoq"
	"github.com/fulgurance/fulgurance/predictor"
	"github.com/fulgurance/fulgurance/predictor/adaptive"
	"github.com/fulgurance/fulgurance/predictor/history"
	"github.com/fulgurance/fulgurance/predictor/markov"
	"github.com/fulgurance/fulgurance/predictor/none"
	"github.com/fulgurance/fulgurance/predictor/sequential"
	"github.com/fulgurance/fulgurance/predictor/stride"
)

// engineCache serializes access to a single cache.CacheHandle, since the
// Engine itself is single-writer. Every worker goroutine contends on the
// same mutex; this bench measures the policy/predictor logic's cost, not
// a lock-free fast path.
type engineCache struct {
	mu sync.Mutex
	h  cache.CacheHandle[string, string]
}

func (c *engineCache) Get(k string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.h.Get(k)
}

func (c *engineCache) Put(k, v string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.h.Put(k, v)
}

func (c *engineCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.h.Len()
}

func main() {
	var (
		capacity  = flag.Int("cap", 100_000, "cache capacity (entries)")
		pol       = flag.String("policy", "lru", "eviction policy: lru|mru|fifo|lfu|random|clock|twoq|slru|arc|car")
		pred      = flag.String("predictor", "none", "prefetch predictor: none|sequential|stride|markov|history|adaptive")
		prefetchN = flag.Int("prefetch_degree", 1, "max speculative loads per access")

		workers  = flag.Int("workers", 2*runtime.GOMAXPROCS(0), "number of worker goroutines")
		duration = flag.Duration("duration", 10*time.Second, "benchmark duration")
		readPct  = flag.Int("reads", 80, "read percentage [0..100]")

		keys    = flag.Int("keys", 1_000_000, "keyspace size")
		zipfS   = flag.Float64("zipf_s", 1.1, "Zipf s > 1 (skew)")
		zipfV   = flag.Float64("zipf_v", 1.0, "Zipf v")
		seed    = flag.Int64("seed", time.Now().UnixNano(), "random seed")
		preload = flag.Int("preload", 0, "preload entries (0 = cap/2)")

		pprofAddr   = flag.String("pprof", "", "serve pprof at addr (e.g. :6060); empty = disabled")
		metricsAddr = flag.String("http", ":8080", "serve Prometheus metrics at addr")
	)
	flag.Parse()

	runID := uuid.NewString()

	if *pprofAddr != "" {
		go func() {
			log.Printf("pprof: serving at %s", *pprofAddr)
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	metrics := pmet.New(nil, "fulgurance", "bench", nil)
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Printf("metrics: serving at %s", *metricsAddr)
		log.Println(http.ListenAndServe(*metricsAddr, nil))
	}()

	policyFactory, err := buildPolicy(*pol, *capacity)
	if err != nil {
		log.Fatal(err)
	}
	predictorFactory, err := buildPredictor(*pred, *prefetchN)
	if err != nil {
		log.Fatal(err)
	}

	h, err := cache.New[string, string](cache.Options[string, string]{
		Capacity:         *capacity,
		PolicyFactory:    policyFactory,
		PredictorFactory: predictorFactory,
		PrefetchDegree:   *prefetchN,
		Metrics:          metrics,
	})
	if err != nil {
		log.Fatal(err)
	}
	c := &engineCache{h: h}

	pl := *preload
	if pl == 0 {
		pl = *capacity / 2
	}
	for i := 0; i < pl; i++ {
		k := "k:" + strconv.Itoa(i)
		c.Put(k, "v"+strconv.Itoa(i))
	}

	readPctVal := *readPct
	keysMax := uint64(*keys - 1)
	seedBase := *seed
	zipfSVal := *zipfS
	zipfVVal := *zipfV
	workersN := *workers
	if workersN <= 0 {
		workersN = 1
	}

	var reads, writes, hits, misses, total uint64
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	start := time.Now()
	var wg sync.WaitGroup
	wg.Add(workersN)
	for w := 0; w < workersN; w++ {
		go func(id int) {
			defer wg.Done()

			localR := rand.New(rand.NewSource(seedBase + int64(id)*9973))
			localZipf := rand.NewZipf(localR, zipfSVal, zipfVVal, keysMax)

			keyByZipf := func() string {
				return "k:" + strconv.FormatUint(localZipf.Uint64(), 10)
			}

			for {
				select {
				case <-ctx.Done():
					return
				default:
				}

				atomic.AddUint64(&total, 1)
				if int(localR.Int31n(100)) < readPctVal {
					atomic.AddUint64(&reads, 1)
					if _, ok := c.Get(keyByZipf()); ok {
						atomic.AddUint64(&hits, 1)
					} else {
						atomic.AddUint64(&misses, 1)
					}
				} else {
					atomic.AddUint64(&writes, 1)
					k := keyByZipf()
					c.Put(k, "v"+strconv.Itoa(localR.Int()))
				}
			}
		}(w)
	}
	wg.Wait()
	elapsed := time.Since(start)

	ops := atomic.LoadUint64(&total)
	readsN := atomic.LoadUint64(&reads)
	writesN := atomic.LoadUint64(&writes)
	hitsN := atomic.LoadUint64(&hits)
	missesN := atomic.LoadUint64(&misses)

	hitRate := 0.0
	if readsN > 0 {
		hitRate = float64(hitsN) / float64(readsN) * 100
	}

	fmt.Printf("run=%s policy=%s predictor=%s cap=%d workers=%d keys=%d dur=%v seed=%d\n",
		runID, *pol, *pred, *capacity, workersN, *keys, elapsed, seedBase)
	fmt.Printf("ops=%d (%.0f ops/s)  reads=%d  writes=%d\n",
		ops, float64(ops)/elapsed.Seconds(), readsN, writesN)
	fmt.Printf("hits=%d  misses=%d  hit-rate=%.2f%%\n", hitsN, missesN, hitRate)
	fmt.Printf("Len()=%d\n", c.Len())
}

func buildPolicy(name string, capacity int) (policy.Factory[string], error) {
	switch name {
	case "lru":
		return lru.New[string](), nil
	case "mru":
		return mru.New[string](), nil
	case "fifo":
		return fifo.New[string](), nil
	case "lfu":
		return lfu.New[string](), nil
	case "random":
		return random.New[string](), nil
	case "clock":
		return clock.New[string](), nil
	case "twoq":
		return twoq.New[string](capacity/4, capacity/2), nil
	case "slru":
		return slru.New[string](capacity), nil
	case "arc":
		return arc.New[string](capacity), nil
	case "car":
		return car.New[string](capacity), nil
	default:
		return nil, fmt.Errorf("unknown policy: %q", name)
	}
}

func buildPredictor(name string, degree int) (predictor.Factory[string], error) {
	switch name {
	case "none":
		return none.New[string](), nil
	case "sequential":
		return sequential.New[string](nil), nil
	case "stride":
		return stride.New[string](nil), nil
	case "markov":
		return markov.New[string](degree), nil
	case "history":
		return history.New[string](degree), nil
	case "adaptive":
		return adaptive.New[string]([]predictor.Factory[string]{
			sequential.New[string](nil),
			stride.New[string](nil),
			markov.New[string](degree),
		}), nil
	default:
		return nil, fmt.Errorf("unknown predictor: %q", name)
	}
}
