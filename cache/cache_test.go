package cache

import (
	"sync"
	"sync/atomic"
	"testing"

	"golang.org/x/sync/errgroup"
)

// countMetrics counts signals; safe for concurrent use.
type countMetrics struct {
	refresh, stale, write, override atomic.Int64
}

func (m *countMetrics) Refresh()      { m.refresh.Add(1) }
func (m *countMetrics) Stale()        { m.stale.Add(1) }
func (m *countMetrics) Write()        { m.write.Add(1) }
func (m *countMetrics) OverrideRead() { m.override.Add(1) }

// A fresh handle returns its initial value on every read path.
func TestCache_NewReturnsInitial(t *testing.T) {
	t.Parallel()

	c := New(42)
	if got := c.Get(); got != 42 {
		t.Fatalf("Get want 42, got %d", got)
	}
	if got := c.GetTrue(); got != 42 {
		t.Fatalf("GetTrue want 42, got %d", got)
	}
	if got := c.GetUpdated(); got != 42 {
		t.Fatalf("GetUpdated want 42, got %d", got)
	}
	if got := c.GetCached(); got != 42 {
		t.Fatalf("GetCached want 42, got %d", got)
	}
}

// A write through one handle is visible to another after an explicit refresh.
func TestCache_SetVisibleAfterGetUpdated(t *testing.T) {
	t.Parallel()

	h1 := New(1)
	h2 := h1.Clone()

	h1.Set(2)
	if got := h2.GetUpdated(); got != 2 {
		t.Fatalf("GetUpdated want 2, got %d", got)
	}
	// The refresh also settled h2's local copy.
	if got := h2.GetCached(); got != 2 {
		t.Fatalf("GetCached after refresh want 2, got %d", got)
	}
}

// The concrete end-to-end scenario: clone, write, refresh, override.
func TestCache_Scenario(t *testing.T) {
	t.Parallel()

	h2 := New(1)
	h1 := h2.Clone()

	h1.Set(2)
	if got := h2.GetUpdated(); got != 2 {
		t.Fatalf("h2.GetUpdated want 2, got %d", got)
	}

	h1.SetOverride(99)
	if got := h1.Get(); got != 99 {
		t.Fatalf("h1.Get with override want 99, got %d", got)
	}
	if got := h1.GetTrue(); got != 2 {
		t.Fatalf("h1.GetTrue must ignore override, want 2, got %d", got)
	}
	if got := h2.Get(); got != 2 {
		t.Fatalf("h2.Get must not see h1's override, want 2, got %d", got)
	}

	h1.ClearOverride()
	if got := h1.Get(); got != 2 {
		t.Fatalf("h1.Get after ClearOverride want 2, got %d", got)
	}
}

// Override accessors round-trip and cloning copies the override by value.
func TestCache_OverrideCloneIndependence(t *testing.T) {
	t.Parallel()

	h1 := New(7)
	h1.SetOverride(99)

	if ov, ok := h1.Override(); !ok || ov != 99 {
		t.Fatalf("Override want (99,true), got (%d,%v)", ov, ok)
	}

	h2 := h1.Clone()
	if got := h2.Get(); got != 99 {
		t.Fatalf("clone must inherit override, want 99, got %d", got)
	}

	h2.ClearOverride()
	if _, ok := h2.Override(); ok {
		t.Fatal("h2 override must be cleared")
	}
	if got := h1.Get(); got != 99 {
		t.Fatalf("clearing h2 must not touch h1, want 99, got %d", got)
	}

	h1.SetOverride(100)
	if got := h2.Get(); got == 100 {
		t.Fatal("h1's new override must not leak into h2")
	}
}

// TryUpdateCache under guaranteed contention: the lock is pinned by another
// goroutine for the duration of the call, so the attempt must fail and the
// local cache must be left alone.
func TestCache_TryUpdateCacheContended(t *testing.T) {
	t.Parallel()

	h1 := New(1)
	h2 := h1.Clone()
	h1.Set(2) // h2's local copy still holds 1

	h1.cell.mu.Lock()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if _, ok := h2.TryUpdateCache(); ok {
			t.Error("TryUpdateCache must fail while the cell is held")
		}
		if got := h2.GetCached(); got != 1 {
			t.Errorf("local cache must be untouched, want 1, got %d", got)
		}
		// The never-blocking reads fall back to the stale copy.
		if got := h2.GetTrue(); got != 1 {
			t.Errorf("GetTrue under contention want 1, got %d", got)
		}
		if got := h2.Get(); got != 1 {
			t.Errorf("Get under contention want 1, got %d", got)
		}
	}()
	wg.Wait()
	h1.cell.mu.Unlock()

	if got := h2.GetUpdated(); got != 2 {
		t.Fatalf("after the cell frees up want 2, got %d", got)
	}
}

// UpdateCache is idempotent absent intervening writes.
func TestCache_UpdateCacheIdempotent(t *testing.T) {
	t.Parallel()

	c := New(5)
	c.UpdateCache()
	first := c.GetCached()
	c.UpdateCache()
	second := c.GetCached()
	if first != second || first != 5 {
		t.Fatalf("want 5 both times, got %d then %d", first, second)
	}
}

// Metrics see the expected signals on each path.
func TestCache_Metrics(t *testing.T) {
	t.Parallel()

	m := &countMetrics{}
	c := NewWithOptions(1, Options{Metrics: m})

	c.Set(2)       // Write
	c.Get()        // Refresh (uncontended)
	c.GetTrue()    // Refresh
	c.SetOverride(9)
	c.Get()        // OverrideRead
	c.ClearOverride()

	c.cell.mu.Lock()
	done := make(chan struct{})
	go func() {
		defer close(done)
		c.Get() // Stale
	}()
	<-done
	c.cell.mu.Unlock()

	if got := m.write.Load(); got != 1 {
		t.Fatalf("writes want 1, got %d", got)
	}
	if got := m.refresh.Load(); got != 2 {
		t.Fatalf("refreshes want 2, got %d", got)
	}
	if got := m.override.Load(); got != 1 {
		t.Fatalf("override reads want 1, got %d", got)
	}
	if got := m.stale.Load(); got != 1 {
		t.Fatalf("stale reads want 1, got %d", got)
	}
}

// Concurrent writers and a refreshing reader: GetUpdated always lands on the
// most recent completed write once the writers drain, and every intermediate
// observation is a value somebody actually wrote.
func TestCache_ConcurrentWriters(t *testing.T) {
	t.Parallel()

	origin := New(0)

	const writers = 8
	const perWriter = 200

	var g errgroup.Group
	for w := 0; w < writers; w++ {
		h := origin.Clone()
		base := (w + 1) * 1000
		g.Go(func() error {
			for i := 0; i < perWriter; i++ {
				h.Set(base + i)
			}
			return nil
		})
	}

	reader := origin.Clone()
	var gr errgroup.Group
	gr.Go(func() error {
		for i := 0; i < 2000; i++ {
			v := reader.Get()
			if v != 0 && (v < 1000 || v%1000 >= perWriter) {
				t.Errorf("observed value %d was never written", v)
				return nil
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	if err := gr.Wait(); err != nil {
		t.Fatal(err)
	}

	final := origin.GetUpdated()
	if final < 1000 || final%1000 != perWriter-1 {
		t.Fatalf("final value %d is not any writer's last write", final)
	}
}
