package sheet

import (
	"strings"
	"testing"
)

func TestControllerDetached(t *testing.T) {
	c := NewController()
	c.SnapTo(1)
	c.SnapToHeight(300)
	c.Expand()
	c.Collapse()
	if _, ok := c.Snapshot(); ok {
		t.Error("Snapshot() should report detached")
	}
	if c.Extent() != 0 || c.Progress() != 0 {
		t.Errorf("Extent/Progress = %v/%v, want 0/0", c.Extent(), c.Progress())
	}
}

func TestControllerSnaps(t *testing.T) {
	c := NewController()
	cfg := WithStops(300, 500)
	cfg.Controller = c
	s := New(cfg)
	s.SetViewport(Viewport{Height: 800})
	s.SetHeaderHeight(100)

	if s.Controller() != c {
		t.Fatal("sheet should use the configured controller")
	}

	tests := []struct {
		name string
		do   func()
		want float64
	}{
		{"first stop", func() { c.SnapTo(1) }, 300},
		{"second stop", func() { c.SnapTo(2) }, 500},
		{"expand", c.Expand, 800},
		{"collapse", c.Collapse, 100},
		{"out of range", func() { c.SnapTo(9) }, 100},
		{"negative index", func() { c.SnapTo(-1) }, 100},
		{"height", func() { c.SnapToHeight(420) }, 420},
		{"height above viewport", func() { c.SnapToHeight(5000) }, 800},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.do()
			if got := c.Extent(); got != tt.want {
				t.Errorf("Extent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestControllerProgressAndListeners(t *testing.T) {
	s := newReadySheet(t, 100, 800, 400)
	c := s.Controller()

	var got []Snapshot
	remove := c.AddListener(func(snap Snapshot) { got = append(got, snap) })

	c.SnapTo(1)
	if p := c.Progress(); p != 0.5 {
		t.Errorf("Progress() = %v, want 0.5", p)
	}
	if len(got) != 1 || got[0].ContainerHeight != 400 || !got[0].IsMainContentShown {
		t.Errorf("listener snapshots = %+v", got)
	}

	s.OnDragChange(drag(-100), 800)
	if len(got) != 2 || got[1].Phase != PhaseDragging {
		t.Errorf("drag not published: %+v", got)
	}

	remove()
	s.OnDragEnd(drag(-100), 800)
	if len(got) != 2 {
		t.Errorf("listener called after removal: %d snapshots", len(got))
	}
	if p := c.Progress(); p != 0.5 {
		t.Errorf("Progress() = %v after snapping back, want 0.5", p)
	}
}

func TestControllerCollapseResetsScroll(t *testing.T) {
	s := newReadySheet(t, 100, 800, 300)
	s.SetContentHeight(2000)
	c := s.Controller()
	c.Expand()
	s.OnDragChange(drag(-300), 800)
	s.OnDragEnd(drag(-300), 800)
	if got := s.State().ContentOffset; got != -300 {
		t.Fatalf("ContentOffset = %v, want -300", got)
	}

	// Collapsing resets the scroll position.
	c.Collapse()
	if got := s.State().ContentOffset; got != 0 {
		t.Errorf("ContentOffset = %v after collapse, want 0", got)
	}
	if got := s.State().StartContentOffset; got != 0 {
		t.Errorf("StartContentOffset = %v after collapse, want 0", got)
	}
}

func TestAddNilListener(t *testing.T) {
	c := NewController()
	remove := c.AddListener(nil)
	remove()
}

func TestControllerExpandWithoutViewport(t *testing.T) {
	s := New(WithStops(300))
	s.SetHeaderHeight(100)
	c := s.Controller()

	c.SnapTo(1)
	if got := c.Extent(); got != 300 {
		t.Fatalf("Extent() = %v, want 300", got)
	}
	c.Expand()
	if got := c.Extent(); got != 300 {
		t.Errorf("Extent() = %v after Expand without a viewport, want 300", got)
	}

	s.SetViewport(Viewport{Height: 800})
	c.Expand()
	if got := c.Extent(); got != 800 {
		t.Errorf("Extent() = %v after Expand, want 800", got)
	}
}

func TestControllerListenerOrder(t *testing.T) {
	s := newReadySheet(t, 100, 800, 400)
	c := s.Controller()

	var order []string
	c.AddListener(func(Snapshot) { order = append(order, "a") })
	removeB := c.AddListener(func(Snapshot) { order = append(order, "b") })
	c.AddListener(func(Snapshot) { order = append(order, "c") })
	c.AddListener(func(Snapshot) { order = append(order, "d") })

	c.SnapTo(1)
	removeB()
	c.SnapTo(0)

	want := "abcdacd"
	if got := strings.Join(order, ""); got != want {
		t.Errorf("listener calls = %q, want %q", got, want)
	}
}
