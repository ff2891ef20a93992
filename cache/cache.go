package cache

// Cache is a handle onto a single shared, mutex-guarded value of type T.
// Handles cloned from one origin share the authoritative cell; each handle
// additionally carries its own last-known copy of the value and an optional
// override that wins over everything for that handle's Get.
//
// T should be a small value type that is cheap to copy by assignment
// (integers, enums, small structs of such). The cell never hands out
// pointers into its interior, so values are always copied in and out.
//
// A single handle is not safe for concurrent use by multiple goroutines:
// reads refresh the handle-local cache. Give each goroutine its own Clone;
// the clones coordinate through the shared cell.
type Cache[T any] struct {
	cached   T
	override *T
	cell     *cell[T]

	opt Options
}

// New creates a fresh shared cell holding value and returns the first handle
// onto it. The handle's local cache starts at value; the override is unset.
// There is no failure mode.
func New[T any](value T) *Cache[T] {
	return NewWithOptions(value, Options{})
}

// NewWithOptions is New with Metrics/Logger wiring.
// Defaults for zero-value Options:
//   - nil Metrics -> NoopMetrics
//   - nil Logger  -> NopLogger
func NewWithOptions[T any](value T, opt Options) *Cache[T] {
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}
	if opt.Logger == nil {
		opt.Logger = NopLogger{}
	}
	return &Cache[T]{
		cached: value,
		cell:   newCell(value),
		opt:    opt,
	}
}

// Clone returns a new handle onto the same cell. The local cache, override
// and Options are copied; subsequent mutation of either handle's local state
// does not affect the other. Writes through either handle are visible to
// both via the shared cell.
func (c *Cache[T]) Clone() *Cache[T] {
	n := &Cache[T]{
		cached: c.cached,
		cell:   c.cell,
		opt:    c.opt,
	}
	if c.override != nil {
		ov := *c.override
		n.override = &ov
	}
	return n
}

// Set writes value into the shared cell and updates this handle's local
// cache. Blocks the calling goroutine until the cell lock is free; there is
// no time bound on the wait. Other handles observe value on their next
// successful read of the cell; their local caches are not touched.
func (c *Cache[T]) Set(value T) {
	c.cached = value
	c.cell.store(value)
	c.opt.Metrics.Write()
	c.opt.Logger.Debug("cell written", Fields{"value": value})
}

// UpdateCache copies the cell's current value into the local cache.
// Blocks until the cell lock is free.
func (c *Cache[T]) UpdateCache() {
	c.cached = c.cell.load()
}

// GetUpdated refreshes the local cache from the cell and returns it.
// Always reflects the latest committed write, at the cost of a blocking
// lock acquisition.
func (c *Cache[T]) GetUpdated() T {
	c.UpdateCache()
	return c.cached
}

// TryUpdateCache attempts a non-blocking refresh of the local cache from the
// cell. On success it returns the now-current value and true. If the lock is
// held elsewhere it returns (zero, false) and leaves the local cache
// untouched; contention is an expected, frequent outcome under concurrent
// access, not an error.
func (c *Cache[T]) TryUpdateCache() (T, bool) {
	v, ok := c.cell.tryLoad()
	if !ok {
		var zero T
		return zero, false
	}
	c.cached = v
	return v, true
}

// GetTrue returns the cell value if a non-blocking refresh succeeds, and the
// handle's last-known local copy otherwise. Never blocks. The override is
// ignored.
func (c *Cache[T]) GetTrue() T {
	if v, ok := c.TryUpdateCache(); ok {
		c.opt.Metrics.Refresh()
		return v
	}
	c.opt.Metrics.Stale()
	c.opt.Logger.Debug("cell contended, serving cached value", Fields{"value": c.cached})
	return c.cached
}

// GetCached returns the handle's last-known local copy with no lock traffic
// at all. It can be arbitrarily stale; use an explicit refresh when that
// matters.
func (c *Cache[T]) GetCached() T {
	return c.cached
}

// Get is the default read path: the override if one is set, otherwise
// GetTrue. Never blocks.
//
// Override wins over everything, a fresh value wins over a stale one, and a
// stale cached value is served rather than blocking.
func (c *Cache[T]) Get() T {
	if c.override != nil {
		c.opt.Metrics.OverrideRead()
		return *c.override
	}
	return c.GetTrue()
}

// SetOverride pins this handle's Get to value until ClearOverride. The cell
// and all other handles are unaffected.
func (c *Cache[T]) SetOverride(value T) {
	c.override = &value
}

// ClearOverride removes the override, restoring the normal read path.
func (c *Cache[T]) ClearOverride() {
	c.override = nil
}

// Override reports this handle's override value, if set.
func (c *Cache[T]) Override() (T, bool) {
	if c.override == nil {
		var zero T
		return zero, false
	}
	return *c.override, true
}
