package sheet

import (
	"math"
	"slices"

	"github.com/go-drift/anchorsheet/pkg/anchor"
	"github.com/go-drift/anchorsheet/pkg/errors"
)

// Sheet is the drag state machine of one bottom sheet.
type Sheet struct {
	cfg        Config
	state      State
	phase      Phase
	mode       Mode
	viewport   Viewport
	presenter  *presenter
	controller *Controller

	// Anchor positions received before the header was measured.
	pendingAnchors []anchor.Point

	cancels []func()
}

// Measurements are the channels a sheet listens to. Nil channels are skipped.
type Measurements struct {
	Header  *anchor.Channel[float64]
	Content *anchor.Channel[float64]
	Anchors *anchor.Channel[[]anchor.Point]
}

// New creates a sheet. The sheet becomes ready once its header height is measured.
func New(cfg Config) *Sheet {
	cfg = normalizeConfig(cfg)
	s := &Sheet{
		cfg:       cfg,
		presenter: newPresenter(cfg.Spring, cfg.FadeDuration),
		state: State{
			FixedStops: slices.Clone(cfg.Stops),
		},
	}
	s.controller = cfg.Controller
	if s.controller == nil {
		s.controller = NewController()
	}
	s.controller.attach(s.snapToIndex, s.snapToHeight, s.Snapshot)
	return s
}

// Attach subscribes the sheet to measurement channels. Subscriptions are
// released by Dispose.
func (s *Sheet) Attach(m Measurements) {
	if m.Header != nil {
		s.cancels = append(s.cancels, m.Header.Subscribe(s.SetHeaderHeight))
	}
	if m.Content != nil {
		s.cancels = append(s.cancels, m.Content.Subscribe(s.SetContentHeight))
	}
	if m.Anchors != nil {
		s.cancels = append(s.cancels, m.Anchors.Subscribe(s.SetAnchorPositions))
	}
}

// Dispose releases subscriptions and detaches the controller.
func (s *Sheet) Dispose() {
	for _, cancel := range s.cancels {
		cancel()
	}
	s.cancels = nil
	s.controller.detach()
}

// Key returns the anchor key the sheet was configured with.
func (s *Sheet) Key() anchor.Key { return s.cfg.Key }

// UsesAnchors reports whether stops come from anchors.
func (s *Sheet) UsesAnchors() bool { return s.cfg.UseAnchors }

// Controller returns the sheet's controller.
func (s *Sheet) Controller() *Controller { return s.controller }

// Ready reports whether the header, and so the first stop, has been measured.
func (s *Sheet) Ready() bool {
	return s.state.HeaderHeight.IsSet() && s.state.ContainerHeight.IsSet()
}

// State returns a copy of the full layout state.
func (s *Sheet) State() State { return s.state.clone() }

// Viewport returns the last viewport the sheet was given.
func (s *Sheet) Viewport() Viewport { return s.viewport }

// Stops returns [headerHeight] followed by anchor or fixed stops.
// It is nil until the header has been measured.
func (s *Sheet) Stops() []float64 {
	header, ok := s.state.HeaderHeight.Get()
	if !ok {
		return nil
	}
	if s.cfg.UseAnchors {
		return ComposeStops(header, s.state.AnchorStops)
	}
	return ComposeStops(header, s.state.FixedStops)
}

// Snapshot returns the committed values.
func (s *Sheet) Snapshot() Snapshot {
	return Snapshot{
		Ready:              s.Ready(),
		ContainerHeight:    s.state.ContainerHeight.Or(0),
		ContentOffset:      s.state.ContentOffset,
		IsMainContentShown: s.state.IsMainContentShown,
		Phase:              s.phase,
		Mode:               s.mode,
		Stops:              s.Stops(),
		ViewportHeight:     s.viewport.Height,
	}
}

// Presentation returns the animated values currently on screen.
func (s *Sheet) Presentation() Presentation { return s.presenter.values() }

// Tick advances presentation animations by dt seconds. Returns true when
// every animation has settled.
func (s *Sheet) Tick(dt float64) bool { return s.presenter.step(dt) }

// Settled reports whether no presentation animation is running.
func (s *Sheet) Settled() bool { return s.presenter.settled() }

// SetViewport records the viewport geometry used for anchor projection and
// controller snaps.
func (s *Sheet) SetViewport(v Viewport) {
	if !validHeight(v.Height) || !validHeight(v.BottomInset) {
		errors.ReportMeasurement("sheet.SetViewport", string(s.cfg.Key), "viewport", v.Height)
		return
	}
	s.viewport = v
	s.notify()
}

// SetHeaderHeight records the aggregated header height. The first
// measurement rests the sheet at the header stop.
func (s *Sheet) SetHeaderHeight(height float64) {
	if !validHeight(height) {
		errors.ReportMeasurement("sheet.SetHeaderHeight", string(s.cfg.Key), "header height", height)
		return
	}
	s.state.HeaderHeight = Measure(height)
	if !s.state.ContainerHeight.IsSet() {
		s.state.ContainerHeight = Measure(height)
		s.state.StartContainerHeight = Measure(height)
		s.presenter.height.Jump(height)
		if len(s.pendingAnchors) > 0 {
			s.projectAnchors(s.pendingAnchors)
			s.pendingAnchors = nil
		}
	}
	s.updateMainContentShown()
	s.notify()
}

// SetContentHeight records the aggregated intrinsic height of the content.
func (s *Sheet) SetContentHeight(height float64) {
	if !validHeight(height) {
		errors.ReportMeasurement("sheet.SetContentHeight", string(s.cfg.Key), "content height", height)
		return
	}
	s.state.ContentHeight = Measure(height)
	s.notify()
}

// SetAnchorPositions records global anchor positions, in traversal order,
// converting them to offsets from the top edge of the committed container.
func (s *Sheet) SetAnchorPositions(positions []anchor.Point) {
	valid := make([]anchor.Point, 0, len(positions))
	for _, p := range positions {
		if math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			errors.ReportMeasurement("sheet.SetAnchorPositions", string(s.cfg.Key), "anchor position", p.Y)
			continue
		}
		valid = append(valid, p)
	}
	if !s.Ready() {
		s.pendingAnchors = valid
		return
	}
	s.projectAnchors(valid)
	s.notify()
}

func (s *Sheet) projectAnchors(positions []anchor.Point) {
	g := anchor.Geometry{
		ViewportHeight:  s.viewport.Height,
		ContainerHeight: s.state.ContainerHeight.Or(0),
		BottomInset:     s.viewport.BottomInset,
	}
	s.state.AnchorStops = g.ProjectAll(positions)
}

// OnDragChange applies one drag sample. While the sheet is fully expanded and
// the drag scrolls into the content, the content offset changes; otherwise
// the container height follows the finger and the content returns to the top.
func (s *Sheet) OnDragChange(drag DragValue, viewportHeight float64) {
	if !s.Ready() || viewportHeight <= 0 {
		return
	}
	s.phase = PhaseDragging
	s.applyDrag(drag.Translation, viewportHeight)
	s.notify()
}

// OnDragEnd applies the final sample and settles the sheet. A drag that never
// resized the sheet flings the content; otherwise the sheet snaps to the stop
// nearest the predicted height.
func (s *Sheet) OnDragEnd(drag DragValue, viewportHeight float64) {
	if !s.Ready() || viewportHeight <= 0 {
		return
	}
	s.applyDrag(drag.Translation, viewportHeight)

	st := &s.state
	container := st.ContainerHeight.Or(0)
	startContainer := st.StartContainerHeight.Or(container)

	switch {
	case container-startContainer == 0 && container < viewportHeight:
		// A sheet below the viewport never scrolls, so there is nothing to fling.
		st.StartContentOffset = st.ContentOffset
	case container-startContainer == 0:
		target := -(st.StartContentOffset + drag.PredictedEndTranslation)
		end := ClampScrollOffset(target, st.ContentHeight.Or(0), viewportHeight, st.HeaderHeight.Or(0))
		st.ContentOffset = end
		st.StartContentOffset = end
		s.presenter.offset.AnimateTo(end)
	default:
		predicted := PredictedHeight(startContainer, st.StartContentOffset, st.ContentOffset, drag.PredictedEndTranslation)
		target := ResolveSnap(CandidateStops(s.Stops(), viewportHeight), predicted)
		st.ContainerHeight = Measure(target)
		st.StartContainerHeight = Measure(target)
		st.StartContentOffset = st.ContentOffset
		s.presenter.height.AnimateTo(target)
		s.updateMainContentShown()
	}

	s.phase = PhaseIdle
	s.mode = ModeNone
	s.notify()
}

func (s *Sheet) applyDrag(translation, viewportHeight float64) {
	s.viewport.Height = viewportHeight
	st := &s.state
	container := st.ContainerHeight.Or(0)
	startContainer := st.StartContainerHeight.Or(container)

	if container >= viewportHeight && st.StartContentOffset+translation < 0 {
		s.mode = ModeContentScrolling
		heightDelta := startContainer - container
		st.ContentOffset = math.Min(0, st.StartContentOffset+(translation-heightDelta))
		s.presenter.offset.Jump(st.ContentOffset)
		return
	}

	s.mode = ModeSheetResizing
	st.ContentOffset = 0
	s.presenter.offset.Jump(0)
	height := math.Min(startContainer-st.StartContentOffset-translation, viewportHeight)
	height = math.Max(0, height)
	st.ContainerHeight = Measure(height)
	s.presenter.height.Jump(height)
	s.updateMainContentShown()
}

func (s *Sheet) updateMainContentShown() {
	shown := MainContentShown(s.state.ContainerHeight.Or(0), s.Stops())
	s.state.IsMainContentShown = shown
	s.presenter.fade(shown)
}

// snapToHeight commits target as the resting height, outside of a drag.
func (s *Sheet) snapToHeight(target float64) {
	if !s.Ready() || s.phase == PhaseDragging {
		return
	}
	if s.viewport.Height > 0 {
		target = math.Min(target, s.viewport.Height)
	}
	target = math.Max(0, target)

	st := &s.state
	st.ContainerHeight = Measure(target)
	st.StartContainerHeight = Measure(target)
	if s.viewport.Height <= 0 || target < s.viewport.Height {
		st.ContentOffset = 0
		s.presenter.offset.AnimateTo(0)
	}
	st.StartContentOffset = st.ContentOffset
	s.presenter.height.AnimateTo(target)
	s.updateMainContentShown()
	s.notify()
}

// snapToIndex snaps to the index-th candidate stop; out of range goes to the header stop.
func (s *Sheet) snapToIndex(index int) {
	if !s.Ready() {
		return
	}
	candidates := CandidateStops(s.Stops(), s.viewport.Height)
	if s.viewport.Height <= 0 {
		candidates = candidates[:len(candidates)-1]
	}
	if index < 0 || index >= len(candidates) {
		index = 0
	}
	s.snapToHeight(candidates[index])
}

func (s *Sheet) notify() {
	s.controller.publish(s.Snapshot(), s.viewport.Height)
}
