package tui

import (
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/anchorsheet/cmd/anchorsheet/internal/config"
	"github.com/go-drift/anchorsheet/pkg/anchor"
	sheettest "github.com/go-drift/anchorsheet/pkg/testing"
)

func newTestModel(t *testing.T, cfg *config.Config) *Model {
	t.Helper()
	if cfg == nil {
		cfg = &config.Config{}
	}
	resolved, err := cfg.Resolve(t.TempDir())
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	m := New(*resolved)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	return updated.(*Model)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func mouse(action tea.MouseAction, y int) tea.MouseMsg {
	return tea.MouseMsg{X: 10, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func settle(m *Model, frames int) {
	for i := 0; i < frames; i++ {
		m.Update(FrameMsg(time.Now()))
	}
}

func TestWindowSizeMeasuresSheet(t *testing.T) {
	m := newTestModel(t, nil)
	snap := m.Sheet().Snapshot()
	if !snap.Ready {
		t.Fatal("sheet should be ready after the first window size")
	}
	// Header is 3 rows; anchors sit before Collections and Recents.
	if want := []float64{3, 8, 15}; !reflect.DeepEqual(snap.Stops, want) {
		t.Errorf("Stops = %v, want %v", snap.Stops, want)
	}
	if snap.ContainerHeight != 3 {
		t.Errorf("ContainerHeight = %v, want 3", snap.ContainerHeight)
	}
	if got := m.sheetTop(); got != 37 {
		t.Errorf("sheetTop() = %d, want 37", got)
	}
}

func TestMouseDragSnapsToAnchor(t *testing.T) {
	clk := sheettest.InstallClock(t)
	m := newTestModel(t, nil)

	m.Update(mouse(tea.MouseActionPress, 37))
	clk.Advance(time.Second)
	m.Update(mouse(tea.MouseActionMotion, 34))
	if got := m.Sheet().Snapshot().ContainerHeight; got != 6 {
		t.Errorf("ContainerHeight = %v while dragging, want 6", got)
	}
	clk.Advance(time.Second)
	m.Update(mouse(tea.MouseActionMotion, 31))
	clk.Advance(time.Second)
	m.Update(mouse(tea.MouseActionRelease, 31))

	if got := m.Sheet().Snapshot().ContainerHeight; got != 8 {
		t.Fatalf("ContainerHeight = %v after release, want 8", got)
	}
	settle(m, 300)
	if got := m.sheetTop(); got != 32 {
		t.Errorf("sheetTop() = %d after settling, want 32", got)
	}
}

func TestPressOnMapIsIgnored(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(mouse(tea.MouseActionPress, 5))
	if m.pointerDown {
		t.Error("press above the sheet should not start a drag")
	}
	m.Update(mouse(tea.MouseActionMotion, 2))
	if got := m.Sheet().Snapshot().ContainerHeight; got != 3 {
		t.Errorf("ContainerHeight = %v, want 3", got)
	}
}

func TestKeyboardStepsThroughStops(t *testing.T) {
	m := newTestModel(t, nil)
	steps := []struct {
		key  string
		want float64
	}{
		{"k", 8},
		{"up", 15},
		{"e", 40},
		{"j", 15},
		{"down", 8},
		{"c", 3},
		{"down", 3},
	}
	for _, step := range steps {
		m.Update(key(step.key))
		if got := m.Sheet().Snapshot().ContainerHeight; got != step.want {
			t.Errorf("after %q: ContainerHeight = %v, want %v", step.key, got, step.want)
		}
	}
}

func TestSearchFocus(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(key("/"))
	if !m.search.Focused() {
		t.Fatal("search should be focused after /")
	}
	if got := m.Sheet().Snapshot().ContainerHeight; got != 40 {
		t.Errorf("ContainerHeight = %v, want expanded 40", got)
	}

	m.Update(key("Praha"))
	if got := m.search.Value(); got != "Praha" {
		t.Errorf("search value = %q, want Praha", got)
	}
	// Keys go to the field while it is focused.
	if got := m.Sheet().Snapshot().ContainerHeight; got != 40 {
		t.Errorf("typing moved the sheet to %v", got)
	}

	m.Update(key("esc"))
	if m.search.Focused() {
		t.Error("esc should blur the search field")
	}
}

func TestViewFillsTerminal(t *testing.T) {
	m := newTestModel(t, nil)
	view := m.View()
	if lines := strings.Count(view, "\n") + 1; lines != 40 {
		t.Errorf("view has %d lines, want 40", lines)
	}
	if strings.Contains(view, "Favourites") {
		t.Error("content should be hidden at the header stop")
	}

	m.Update(key("e"))
	settle(m, 300)
	view = m.View()
	for _, want := range []string{"Favourites", "Collections", "Recents", "My Places"} {
		if !strings.Contains(view, want) {
			t.Errorf("expanded view is missing %q", want)
		}
	}
}

func TestAnchorMarkers(t *testing.T) {
	m := newTestModel(t, &config.Config{Demo: config.DemoConfig{Anchors: "always"}})
	if m.cfg.AnchorVisibility != anchor.VisibilityAlways {
		t.Fatalf("AnchorVisibility = %v", m.cfg.AnchorVisibility)
	}
	m.Update(key("e"))
	settle(m, 300)
	if got := strings.Count(m.View(), "◆"); got != 2 {
		t.Errorf("view shows %d anchor markers, want 2", got)
	}
}

func TestFrameSchedulesNextFrame(t *testing.T) {
	m := newTestModel(t, nil)
	_, cmd := m.Update(FrameMsg(time.Now()))
	if cmd == nil {
		t.Error("FrameMsg should schedule another frame")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, nil)
	_, cmd := m.Update(key("q"))
	if !m.quitting || cmd == nil {
		t.Fatal("q should quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}
