package cache

// Metrics exposes handle-level observability hooks.
// A NoopMetrics implementation is provided and used by default.
//
// Only the composite paths report: Get and GetTrue signal Refresh or Stale,
// Get signals OverrideRead when short-circuited by an override, and Set
// signals Write. A direct TryUpdateCache call reports nothing, so callers
// layering their own policy on it do not skew the counters.
type Metrics interface {
	// Refresh — a non-blocking read acquired the cell lock and served the
	// current value.
	Refresh()
	// Stale — the cell was contended and the last-known local copy was
	// served instead.
	Stale()
	// Write — Set committed a value to the cell.
	Write()
	// OverrideRead — Get returned the handle's override.
	OverrideRead()
}

// NoopMetrics is a drop-in Metrics implementation that does nothing.
// It is safe for concurrent use and intended as the default when
// no observability backend is configured.
type NoopMetrics struct{}

func (NoopMetrics) Refresh()      {}
func (NoopMetrics) Stale()        {}
func (NoopMetrics) Write()        {}
func (NoopMetrics) OverrideRead() {}

// Ensure NoopMetrics implements the Metrics interface at compile time.
var _ Metrics = NoopMetrics{}
