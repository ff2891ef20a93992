package prom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/IvanBrykalov/sharedcache/cache"
)

// Adapter implements cache.Metrics and exports Prometheus counters.
// Safe for concurrent use; all Prometheus metric types are goroutine-safe.
type Adapter struct {
	refreshes prometheus.Counter
	stale     prometheus.Counter
	writes    prometheus.Counter
	overrides prometheus.Counter
}

// New constructs a Prometheus metrics adapter.
//   - reg:          registry to register metrics with (nil => prometheus.DefaultRegisterer)
//   - ns, sub:      Prometheus namespace and subsystem
//   - constLabels:  static labels applied to all metrics (may be nil)
func New(reg prometheus.Registerer, ns, sub string, constLabels prometheus.Labels) *Adapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	a := &Adapter{
		refreshes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "refreshes_total",
			Help:        "Non-blocking reads that acquired the cell and served a fresh value",
			ConstLabels: constLabels,
		}),
		stale: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "stale_reads_total",
			Help:        "Reads served from the handle-local cache due to cell contention",
			ConstLabels: constLabels,
		}),
		writes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "writes_total",
			Help:        "Values committed to the shared cell",
			ConstLabels: constLabels,
		}),
		overrides: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "override_reads_total",
			Help:        "Reads answered by a handle override",
			ConstLabels: constLabels,
		}),
	}
	reg.MustRegister(a.refreshes, a.stale, a.writes, a.overrides)
	return a
}

// Refresh increments the fresh-read counter.
func (a *Adapter) Refresh() { a.refreshes.Inc() }

// Stale increments the stale-read counter.
func (a *Adapter) Stale() { a.stale.Inc() }

// Write increments the write counter.
func (a *Adapter) Write() { a.writes.Inc() }

// OverrideRead increments the override-read counter.
func (a *Adapter) OverrideRead() { a.overrides.Inc() }

// Compile-time check: ensure Adapter implements cache.Metrics.
var _ cache.Metrics = (*Adapter)(nil)
