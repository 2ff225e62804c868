package script

import (
	"time"

	"github.com/go-drift/anchorsheet/pkg/anchor"
	"github.com/go-drift/anchorsheet/pkg/sheet"
)

// DefaultFrameInterval is the duration of one tick frame.
const DefaultFrameInterval = time.Second / 60

// Step is the sheet state observed after one event.
type Step struct {
	Index        int
	Event        string
	Snapshot     sheet.Snapshot
	Presentation sheet.Presentation
}

// Runner feeds script events into a sheet through measurement channels.
type Runner struct {
	Sheet         *sheet.Sheet
	Viewport      sheet.Viewport
	FrameInterval time.Duration

	header  *anchor.Scope[float64]
	content *anchor.Scope[float64]
	anchors *anchor.Scope[[]anchor.Point]
}

// NewRunner creates a sheet from cfg inside viewport. Anchor positions are
// reported on the registry channel for cfg.Key.
func NewRunner(cfg sheet.Config, viewport sheet.Viewport, registry *anchor.Registry) *Runner {
	headerCh := anchor.NewHeightChannel()
	contentCh := anchor.NewHeightChannel()
	anchorCh := registry.Anchors(cfg.Key)

	s := sheet.New(cfg)
	s.SetViewport(viewport)
	s.Attach(sheet.Measurements{Header: headerCh, Content: contentCh, Anchors: anchorCh})

	return &Runner{
		Sheet:         s,
		Viewport:      viewport,
		FrameInterval: DefaultFrameInterval,
		header:        headerCh.Scope(),
		content:       contentCh.Scope(),
		anchors:       anchorCh.Scope(),
	}
}

// Close withdraws the runner's measurements and disposes the sheet.
func (r *Runner) Close() {
	r.header.Close()
	r.content.Close()
	r.anchors.Close()
	r.Sheet.Dispose()
}

// Run applies every event of s in order and calls observe after each one.
func (r *Runner) Run(s *Script, observe func(Step)) {
	for i, e := range s.Events {
		r.apply(e)
		if observe != nil {
			observe(Step{
				Index:        i,
				Event:        e.Kind(),
				Snapshot:     r.Sheet.Snapshot(),
				Presentation: r.Sheet.Presentation(),
			})
		}
	}
}

func (r *Runner) apply(e Event) {
	vh := r.Viewport.Height
	switch {
	case e.Header != nil:
		r.header.Report(*e.Header)
	case e.Content != nil:
		r.content.Report(*e.Content)
	case e.Anchors != nil:
		points := make([]anchor.Point, len(*e.Anchors))
		for i, y := range *e.Anchors {
			points[i] = anchor.Point{Y: y}
		}
		r.anchors.Report(points)
	case e.Drag != nil:
		samples := e.Drag.Samples
		for _, translation := range samples {
			r.Sheet.OnDragChange(sheet.DragValue{
				Translation:             translation,
				PredictedEndTranslation: translation,
			}, vh)
		}
		r.Sheet.OnDragEnd(e.Drag.release(), vh)
	case e.Tick != nil:
		dt := r.FrameInterval.Seconds()
		for i := 0; i < *e.Tick; i++ {
			r.Sheet.Tick(dt)
		}
	case e.Snap != nil:
		r.Sheet.Controller().SnapTo(*e.Snap)
	}
}

func (d *Drag) release() sheet.DragValue {
	last := d.Samples[len(d.Samples)-1]
	predicted := last + sheet.ProjectFling(d.Velocity, sheet.DecelerationNormal)
	if d.PredictedEnd != nil {
		predicted = *d.PredictedEnd
	}
	return sheet.DragValue{
		Translation:             last,
		Velocity:                d.Velocity,
		PredictedEndTranslation: predicted,
	}
}
