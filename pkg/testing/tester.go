package testing

import (
	"testing"
	"time"

	"github.com/go-drift/anchorsheet/pkg/anchor"
	"github.com/go-drift/anchorsheet/pkg/sheet"
)

// FrameInterval is the frame duration used by Settle.
const FrameInterval = time.Second / 60

// maxSettleFrames bounds Settle to one simulated minute.
const maxSettleFrames = 60 * 60

// SheetTester wires a sheet to measurement channels, a recognizer and a
// fake clock.
type SheetTester struct {
	tb testing.TB

	Sheet      *sheet.Sheet
	Recognizer *sheet.Recognizer
	Clock      *FakeClock
	Registry   *anchor.Registry

	// ViewportHeight is passed to every drag sample.
	ViewportHeight float64

	header  *anchor.Scope[float64]
	content *anchor.Scope[float64]
	anchors *anchor.Scope[[]anchor.Point]
}

// NewSheetTester creates a sheet from cfg inside a viewport of the given
// height, attached to fresh header, content and anchor channels.
func NewSheetTester(tb testing.TB, cfg sheet.Config, viewportHeight float64) *SheetTester {
	tb.Helper()
	t := &SheetTester{
		tb:             tb,
		Clock:          InstallClock(tb),
		Registry:       anchor.NewRegistry(),
		ViewportHeight: viewportHeight,
	}
	headerCh := anchor.NewHeightChannel()
	contentCh := anchor.NewHeightChannel()
	anchorCh := t.Registry.Anchors(cfg.Key)

	t.Sheet = sheet.New(cfg)
	t.Sheet.SetViewport(sheet.Viewport{Height: viewportHeight})
	t.Sheet.Attach(sheet.Measurements{Header: headerCh, Content: contentCh, Anchors: anchorCh})
	tb.Cleanup(t.Sheet.Dispose)

	t.header = headerCh.Scope()
	t.content = contentCh.Scope()
	t.anchors = anchorCh.Scope()
	t.Recognizer = sheet.Bind(t.Sheet, func() float64 { return t.ViewportHeight })
	return t
}

// ReportHeader reports the header height.
func (t *SheetTester) ReportHeader(height float64) { t.header.Report(height) }

// ReportContent reports the content height.
func (t *SheetTester) ReportContent(height float64) { t.content.Report(height) }

// ReportAnchors replaces the reported anchor positions with points at the
// given global y coordinates.
func (t *SheetTester) ReportAnchors(ys ...float64) {
	points := make([]anchor.Point, len(ys))
	for i, y := range ys {
		points[i] = anchor.Point{Y: y}
	}
	t.anchors.Report(points)
}

// Drag moves a pointer by dy in steps equal moves spread over duration,
// then releases it. The start point is the top edge of the sheet.
func (t *SheetTester) Drag(dy float64, steps int, duration time.Duration) {
	t.tb.Helper()
	if steps < 1 {
		steps = 1
	}
	start := t.ViewportHeight - t.Sheet.Snapshot().ContainerHeight
	t.Recognizer.Handle(sheet.PointerEvent{Phase: sheet.PointerDown, Y: start, Time: t.Clock.Now()})
	step := duration / time.Duration(steps)
	for i := 1; i <= steps; i++ {
		t.Clock.Advance(step)
		y := start + dy*float64(i)/float64(steps)
		t.Recognizer.Handle(sheet.PointerEvent{Phase: sheet.PointerMove, Y: y, Time: t.Clock.Now()})
	}
	t.Recognizer.Handle(sheet.PointerEvent{Phase: sheet.PointerUp, Y: start + dy, Time: t.Clock.Now()})
}

// Fling drags by dy in a single fast motion lasting duration.
func (t *SheetTester) Fling(dy float64, duration time.Duration) {
	t.tb.Helper()
	t.Drag(dy, 4, duration)
}

// Settle steps presentation animations until they settle.
// It fails the test if they never do.
func (t *SheetTester) Settle() int {
	t.tb.Helper()
	for frame := 1; frame <= maxSettleFrames; frame++ {
		t.Clock.Advance(FrameInterval)
		if t.Sheet.Tick(FrameInterval.Seconds()) {
			return frame
		}
	}
	t.tb.Fatalf("sheet did not settle within %d frames", maxSettleFrames)
	return maxSettleFrames
}
