package cache

import (
	"sync"

	"github.com/IvanBrykalov/sharedcache/internal/util"
)

// cell is the single authoritative value location shared by every handle
// cloned from one origin. It is a plain heap object: the garbage collector
// releases it when the last handle referencing it is dropped, so no explicit
// reference counting is needed.
//
// The mutex and value are padded to their own cache line so that a hot cell
// does not false-share with whatever the allocator placed next to it.
type cell[T any] struct {
	_  util.CacheLinePad
	mu sync.Mutex
	v  T
	_  util.CacheLinePad
}

func newCell[T any](value T) *cell[T] {
	return &cell[T]{v: value}
}

// store replaces the cell value. Blocks until the lock is free.
func (c *cell[T]) store(value T) {
	c.mu.Lock()
	c.v = value
	c.mu.Unlock()
}

// load returns the current cell value. Blocks until the lock is free.
func (c *cell[T]) load() T {
	c.mu.Lock()
	v := c.v
	c.mu.Unlock()
	return v
}

// tryLoad returns the current cell value if the lock is immediately
// available. On contention it returns (zero, false) without waiting.
func (c *cell[T]) tryLoad() (T, bool) {
	if !c.mu.TryLock() {
		var zero T
		return zero, false
	}
	v := c.v
	c.mu.Unlock()
	return v, true
}
