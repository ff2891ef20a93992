// Package cache provides a generic, concurrency-safe single-value cache:
// a handle onto one shared, mutex-guarded cell of a small copyable type,
// with a handle-local cached copy for non-blocking reads and a handle-local
// override that takes precedence over both.
//
// # Design
//
//   - Sharing: all handles cloned from one origin point at the same cell,
//     a mutex plus a value on the heap. The garbage collector frees the
//     cell when the last handle is dropped. Local cache and override are
//     per-handle and never contended.
//
//   - Two-tier reads: GetTrue first attempts a non-blocking TryLock on the
//     cell. If it wins, the local cache is refreshed and the fresh value
//     returned; if the cell is contended, the last-known local copy is
//     served instead. Get adds one more tier on top: an override set on the
//     handle wins over both. Neither ever blocks. This suits high-frequency
//     polling (a value sampled every scheduling tick) where blocking on
//     contention is worse than a one-tick-stale read.
//
//   - Blocking paths: Set, UpdateCache and GetUpdated acquire the cell lock
//     unconditionally, waiting as long as it takes. Use them when a caller
//     needs a guaranteed-fresh write or read and can tolerate the wait.
//
//   - Staleness contract: writes are totally ordered by lock acquisition.
//     Any read that acquires the lock observes the most recent completed
//     write. A read that falls back to the local cache observes some value
//     no newer than the handle's last successful refresh; refreshing is the
//     caller's responsibility, nothing is pushed to other handles.
//
//   - Errors: there are none. Go mutexes have no poisoning, so the blocking
//     operations always complete once the lock frees up, and the
//     non-blocking operations degrade to a previously observed value.
//     Contention on the try path is reported as (zero, false) from
//     TryUpdateCache and is a normal, frequent outcome.
//
//   - Metrics: Options.Metrics receives Refresh/Stale/Write/OverrideRead
//     signals. NoopMetrics is the default; plug the Prometheus adapter from
//     metrics/prom to export them.
//
//   - Logging: Options.Logger gets debug lines for writes and contended
//     reads. Adapters for zap, slog and logrus live under log/.
//
// # Basic usage
//
//	c := cache.New(1)
//	h := c.Clone() // second handle, same cell
//
//	h.Set(2)               // blocking write, visible to everyone
//	_ = c.GetUpdated()     // 2: blocking, guaranteed fresh
//	_ = c.Get()            // 2: non-blocking, fresh or last-known
//
// # Overrides
//
//	h.SetOverride(99)
//	_ = h.Get()     // 99: override wins
//	_ = h.GetTrue() // 2: override ignored
//	_ = c.Get()     // 2: other handles unaffected
//	h.ClearOverride()
//
// # Polling loop
//
//	for range ticker.C {
//	    v := h.Get() // never blocks; worst case one tick stale
//	    step(v)
//	}
//
// # Thread-safety
//
// The cell is safe for any number of handles in any number of goroutines.
// One handle belongs to one goroutine: its reads mutate the local cache, so
// share a family by cloning, not by passing a single handle around.
package cache
