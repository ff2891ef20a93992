package cache

// Options configures observability for a handle family. Zero values are
// safe; defaults are applied in NewWithOptions:
//   - nil Metrics => NoopMetrics
//   - nil Logger  => NopLogger
//
// Options are copied into every Clone, so all handles of one family report
// to the same Metrics and Logger.
type Options struct {
	// Metrics receives Refresh/Stale/Write/OverrideRead signals from the
	// instrumented read and write paths (Get, GetTrue, Set).
	Metrics Metrics

	// Logger, when set, gets a debug line on writes and on contended reads.
	// Keep the backend cheap at debug level; GetTrue is a hot path.
	Logger Logger
}
