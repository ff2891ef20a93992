// Command bench runs a synthetic reader/writer workload against one shared
// cell and exposes optional pprof/Prometheus endpoints.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof/* on DefaultServeMux
	"runtime"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/IvanBrykalov/sharedcache/cache"
	zaplog "github.com/IvanBrykalov/sharedcache/log/zap"
	pmet "github.com/IvanBrykalov/sharedcache/metrics/prom"
)

func main() {
	// ---- Flags ----
	var (
		readers  = flag.Int("readers", 2*runtime.GOMAXPROCS(0), "number of reader goroutines")
		writers  = flag.Int("writers", 1, "number of writer goroutines")
		duration = flag.Duration("duration", 10*time.Second, "benchmark duration")
		writeGap = flag.Duration("write_gap", 0, "pause between writes (0 = none)")

		verbose = flag.Bool("v", false, "debug-log writes and contended reads via zap")

		pprofAddr   = flag.String("pprof", "", "serve pprof at addr (e.g. :6060); empty = disabled")
		metricsAddr = flag.String("http", ":8080", "serve Prometheus metrics at addr")
	)
	flag.Parse()

	// ---- pprof server (on DefaultServeMux) ----
	if *pprofAddr != "" {
		go func() {
			log.Printf("pprof: serving at %s", *pprofAddr)
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	// ---- Prometheus metrics (on DefaultServeMux) ----
	metrics := pmet.New(nil, "sharedcache", "bench", nil)
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Printf("metrics: serving at %s", *metricsAddr)
		log.Println(http.ListenAndServe(*metricsAddr, nil))
	}()

	opt := cache.Options{Metrics: metrics}
	if *verbose {
		zl, err := zap.NewDevelopment()
		if err != nil {
			log.Fatal(err)
		}
		defer func() { _ = zl.Sync() }()
		opt.Logger = zaplog.Logger{L: zl}
	}

	origin := cache.NewWithOptions(0, opt)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	var reads, fresh, writes atomic.Int64

	g, ctx := errgroup.WithContext(ctx)

	for w := 0; w < *writers; w++ {
		h := origin.Clone()
		base := (w + 1) * 1_000_000
		g.Go(func() error {
			seq := 0
			for ctx.Err() == nil {
				seq++
				h.Set(base + seq)
				writes.Add(1)
				if *writeGap > 0 {
					time.Sleep(*writeGap)
				}
			}
			return nil
		})
	}

	for r := 0; r < *readers; r++ {
		h := origin.Clone()
		g.Go(func() error {
			last := h.Get()
			for ctx.Err() == nil {
				if v, ok := h.TryUpdateCache(); ok {
					fresh.Add(1)
					last = v
				} else {
					_ = last // stale read; keep spinning
				}
				reads.Add(1)
			}
			return nil
		})
	}

	start := time.Now()
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	totalReads := reads.Load()
	freshReads := fresh.Load()
	staleReads := totalReads - freshReads

	fmt.Printf("elapsed:      %v\n", elapsed.Round(time.Millisecond))
	fmt.Printf("writes:       %d (%.0f/s)\n", writes.Load(), float64(writes.Load())/elapsed.Seconds())
	fmt.Printf("reads:        %d (%.0f/s)\n", totalReads, float64(totalReads)/elapsed.Seconds())
	fmt.Printf("fresh reads:  %d (%.2f%%)\n", freshReads, pct(freshReads, totalReads))
	fmt.Printf("stale reads:  %d (%.2f%%)\n", staleReads, pct(staleReads, totalReads))
	fmt.Printf("final value:  %d\n", origin.GetUpdated())
}

func pct(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(part) / float64(total)
}
