// Package tui is the terminal demo: a map backdrop under a bottom sheet with
// a search header and a list of places, driven by mouse drags.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/go-drift/anchorsheet/cmd/anchorsheet/internal/config"
	"github.com/go-drift/anchorsheet/pkg/anchor"
	"github.com/go-drift/anchorsheet/pkg/errors"
	"github.com/go-drift/anchorsheet/pkg/sheet"
)

// dragSlop is the recognizer slop in terminal rows. One row of travel
// starts a drag.
const dragSlop = 0.5

const searchZone = "search"

// FrameMsg advances sheet animations by one frame.
type FrameMsg time.Time

// Model is the Bubble Tea model of the demo.
type Model struct {
	cfg      config.Resolved
	sheet    *sheet.Sheet
	drag     *sheet.Recognizer
	registry *anchor.Registry
	zones    *zone.Manager
	search   textinput.Model

	header  *anchor.Scope[float64]
	content *anchor.Scope[float64]
	anchors *anchor.Scope[[]anchor.Point]

	lines       []contentLine
	anchorLines []int
	selected    string
	pointerDown bool
	width       int
	height      int
	quitting    bool
}

// New creates the demo model. The sheet becomes ready on the first
// window size message.
func New(cfg config.Resolved) *Model {
	search := textinput.New()
	search.Placeholder = "Search for a place or address"
	search.Prompt = "⌕ "
	search.CharLimit = 64

	registry := anchor.NewRegistry()
	headerCh := anchor.NewHeightChannel()
	contentCh := anchor.NewHeightChannel()
	anchorCh := registry.Anchors(cfg.Sheet.Key)

	s := sheet.New(cfg.Sheet)
	s.Attach(sheet.Measurements{Header: headerCh, Content: contentCh, Anchors: anchorCh})

	m := &Model{
		cfg:      cfg,
		sheet:    s,
		registry: registry,
		zones:    zone.New(),
		search:   search,
		header:   headerCh.Scope(),
		content:  contentCh.Scope(),
		anchors:  anchorCh.Scope(),
	}
	m.drag = sheet.Bind(s, func() float64 { return float64(m.height) })
	m.drag.Slop = dragSlop
	return m
}

// Sheet returns the demo's sheet.
func (m *Model) Sheet() *sheet.Sheet { return m.sheet }

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.frameCmd())
}

func (m *Model) frameInterval() time.Duration {
	fps := m.cfg.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	return time.Second / time.Duration(fps)
}

func (m *Model) frameCmd() tea.Cmd {
	return tea.Tick(m.frameInterval(), func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

func (m *Model) Update(msg tea.Msg) (model tea.Model, cmd tea.Cmd) {
	defer errors.RecoverWithCallback("tui.Update", func(any) { model, cmd = m, nil })

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case FrameMsg:
		m.sheet.Tick(m.frameInterval().Seconds())
		return m, m.frameCmd()
	}

	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m *Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.search.Width = max(0, msg.Width-8)
	m.lines, m.anchorLines = buildContent(msg.Width)

	m.sheet.SetViewport(sheet.Viewport{Height: float64(msg.Height)})
	// Header first: anchors are measured against the sheet's current top edge.
	m.header.Report(headerRows)
	m.content.Report(float64(len(m.lines)))
	m.reportAnchors()
	return m, nil
}

// reportAnchors reports the global row of every anchor with the sheet laid
// out at its committed height and offset.
func (m *Model) reportAnchors() {
	snap := m.sheet.Snapshot()
	top := float64(m.height) - snap.ContainerHeight
	points := make([]anchor.Point, len(m.anchorLines))
	for i, line := range m.anchorLines {
		points[i] = anchor.Point{Y: top + headerRows + float64(line) + snap.ContentOffset}
	}
	m.anchors.Report(points)
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.search.Focused() {
		switch msg.String() {
		case "ctrl+c":
			return m.quit()
		case "esc", "enter":
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	c := m.sheet.Controller()
	switch msg.String() {
	case "q", "ctrl+c":
		return m.quit()
	case "/":
		c.Expand()
		return m, m.search.Focus()
	case "up", "k":
		m.stepStop(1)
	case "down", "j":
		m.stepStop(-1)
	case "e":
		c.Expand()
	case "c", "esc":
		c.Collapse()
	}
	return m, nil
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.sheet.Dispose()
	m.zones.Close()
	return m, tea.Quit
}

// stepStop snaps to the candidate dir positions away from the one nearest
// the current height.
func (m *Model) stepStop(dir int) {
	snap := m.sheet.Snapshot()
	if !snap.Ready {
		return
	}
	candidates := sheet.CandidateStops(snap.Stops, float64(m.height))
	nearest := sheet.ResolveSnap(candidates, snap.ContainerHeight)
	index := 0
	for i, c := range candidates {
		if c == nearest {
			index = i
			break
		}
	}
	index = min(max(index+dir, 0), len(candidates)-1)
	m.sheet.Controller().SnapTo(index)
}

func (m *Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	y := float64(msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || msg.Y < m.sheetTop() {
			return m, nil
		}
		m.pointerDown = true
		m.drag.Handle(sheet.PointerEvent{Phase: sheet.PointerDown, Y: y})

	case tea.MouseActionMotion:
		if m.pointerDown {
			m.drag.Handle(sheet.PointerEvent{Phase: sheet.PointerMove, Y: y})
		}

	case tea.MouseActionRelease:
		if !m.pointerDown {
			return m, nil
		}
		m.pointerDown = false
		dragged := m.drag.Active()
		m.drag.Handle(sheet.PointerEvent{Phase: sheet.PointerUp, Y: y})
		if !dragged {
			return m, m.tap(msg)
		}
	}
	return m, nil
}

// tap handles a press and release that never became a drag.
func (m *Model) tap(msg tea.MouseMsg) tea.Cmd {
	if m.zones.Get(searchZone).InBounds(msg) {
		m.sheet.Controller().Expand()
		return m.search.Focus()
	}
	for _, l := range m.lines {
		if l.zone != "" && m.zones.Get(l.zone).InBounds(msg) {
			m.selected = l.label
			return nil
		}
	}
	return nil
}

// Start runs the demo until the user quits.
func Start(cfg config.Resolved) error {
	p := tea.NewProgram(
		New(cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
