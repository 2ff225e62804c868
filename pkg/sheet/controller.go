package sheet

import (
	"slices"
	"sync"
)

// Controller drives a sheet programmatically and fans out its snapshots.
// Create with NewController and pass it in Config, or use the one a sheet
// creates for itself via Sheet.Controller.
type Controller struct {
	mu sync.Mutex

	snapToIndexFunc  func(int)
	snapToHeightFunc func(float64)
	snapshotFunc     func() Snapshot

	progress     float64
	listeners    []listenerEntry
	nextListener int
}

// NewController creates a controller that is not yet attached to a sheet.
func NewController() *Controller {
	return &Controller{}
}

// SnapTo animates the sheet to the candidate stop at index. Candidates are
// the sheet's stops followed by the viewport height. An out-of-range index
// snaps to the header stop.
func (c *Controller) SnapTo(index int) {
	c.mu.Lock()
	snapFunc := c.snapToIndexFunc
	c.mu.Unlock()
	if snapFunc != nil {
		snapFunc(index)
	}
}

// SnapToHeight animates the sheet to an arbitrary height, clamped to the viewport.
func (c *Controller) SnapToHeight(height float64) {
	c.mu.Lock()
	snapFunc := c.snapToHeightFunc
	c.mu.Unlock()
	if snapFunc != nil {
		snapFunc(height)
	}
}

// Collapse snaps the sheet to the header stop.
func (c *Controller) Collapse() {
	c.SnapTo(0)
}

// Expand snaps the sheet to the full viewport height. It does nothing until
// the sheet knows its viewport.
func (c *Controller) Expand() {
	snap, ok := c.Snapshot()
	if !ok || snap.ViewportHeight <= 0 {
		return
	}
	c.SnapTo(len(snap.Stops))
}

// Snapshot returns the attached sheet's committed values.
func (c *Controller) Snapshot() (Snapshot, bool) {
	c.mu.Lock()
	snapshotFunc := c.snapshotFunc
	c.mu.Unlock()
	if snapshotFunc == nil {
		return Snapshot{}, false
	}
	return snapshotFunc(), true
}

// Extent returns the committed container height, or 0 when detached.
func (c *Controller) Extent() float64 {
	snap, _ := c.Snapshot()
	return snap.ContainerHeight
}

// Progress returns the container height as a fraction of the viewport, in [0, 1].
func (c *Controller) Progress() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.progress
}

// AddListener registers a callback for every committed change. Listeners
// are called in registration order.
// Returns an unsubscribe function.
func (c *Controller) AddListener(listener func(Snapshot)) func() {
	if listener == nil {
		return func() {}
	}
	c.mu.Lock()
	id := c.nextListener
	c.nextListener++
	c.listeners = append(c.listeners, listenerEntry{id: id, fn: listener})
	c.mu.Unlock()
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.listeners = slices.DeleteFunc(c.listeners, func(e listenerEntry) bool { return e.id == id })
	}
}

type listenerEntry struct {
	id int
	fn func(Snapshot)
}

// attach binds the controller to a sheet's callbacks.
func (c *Controller) attach(snapToIndex func(int), snapToHeight func(float64), snapshot func() Snapshot) {
	c.mu.Lock()
	c.snapToIndexFunc = snapToIndex
	c.snapToHeightFunc = snapToHeight
	c.snapshotFunc = snapshot
	c.mu.Unlock()
}

// detach unbinds the controller. Later calls are no-ops.
func (c *Controller) detach() {
	c.mu.Lock()
	c.snapToIndexFunc = nil
	c.snapToHeightFunc = nil
	c.snapshotFunc = nil
	c.mu.Unlock()
}

// publish updates progress and notifies listeners outside the lock.
func (c *Controller) publish(snap Snapshot, viewportHeight float64) {
	progress := 0.0
	if viewportHeight > 0 {
		progress = clampUnit(snap.ContainerHeight / viewportHeight)
	}
	c.mu.Lock()
	c.progress = progress
	listeners := slices.Clone(c.listeners)
	c.mu.Unlock()
	for _, l := range listeners {
		l.fn(snap)
	}
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
