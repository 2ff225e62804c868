package sheet

import (
	"math"
	"testing"
	"time"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

type recordedDrag struct {
	changes []DragValue
	ends    []DragValue
}

func newRecordingRecognizer() (*Recognizer, *recordedDrag) {
	rec := &recordedDrag{}
	r := NewRecognizer()
	r.OnChange = func(d DragValue) { rec.changes = append(rec.changes, d) }
	r.OnEnd = func(d DragValue) { rec.ends = append(rec.ends, d) }
	return r, rec
}

func TestProjectFling(t *testing.T) {
	tests := []struct {
		velocity, rate, want float64
	}{
		{0, DecelerationNormal, 0},
		{1000, DecelerationNormal, 499},
		{-1000, DecelerationNormal, -499},
		{1000, DecelerationFast, 99},
		{1000, 1, 0},
		{1000, 0, 0},
	}
	for _, tt := range tests {
		if got := ProjectFling(tt.velocity, tt.rate); !approxEqual(got, tt.want) {
			t.Errorf("ProjectFling(%v, %v) = %v, want %v", tt.velocity, tt.rate, got, tt.want)
		}
	}
}

func TestRecognizerSlopAndVelocity(t *testing.T) {
	r, rec := newRecordingRecognizer()
	t0 := time.Unix(0, 0)

	r.Handle(PointerEvent{Phase: PointerDown, Y: 100, Time: t0})
	r.Handle(PointerEvent{Phase: PointerMove, Y: 105, Time: t0.Add(10 * time.Millisecond)})
	if len(rec.changes) != 0 {
		t.Fatalf("drag accepted inside slop: %+v", rec.changes)
	}
	if r.Active() {
		t.Error("Active() should be false inside slop")
	}

	r.Handle(PointerEvent{Phase: PointerMove, Y: 120, Time: t0.Add(20 * time.Millisecond)})
	if len(rec.changes) != 1 {
		t.Fatalf("changes = %d, want 1", len(rec.changes))
	}
	d := rec.changes[0]
	if d.StartLocation != 100 || d.Location != 120 || d.Translation != 20 {
		t.Errorf("drag = %+v, want start 100, location 120, translation 20", d)
	}
	// 0.8*(0.2*500) + 0.2*1500
	if !approxEqual(d.Velocity, 380) {
		t.Errorf("Velocity = %v, want 380", d.Velocity)
	}
	if want := 20 + ProjectFling(380, DecelerationNormal); !approxEqual(d.PredictedEndTranslation, want) {
		t.Errorf("PredictedEndTranslation = %v, want %v", d.PredictedEndTranslation, want)
	}
	if !r.Active() {
		t.Error("Active() should be true after acceptance")
	}

	r.Handle(PointerEvent{Phase: PointerUp, Y: 120, Time: t0.Add(20 * time.Millisecond)})
	if len(rec.ends) != 1 {
		t.Fatalf("ends = %d, want 1", len(rec.ends))
	}
	if !approxEqual(rec.ends[0].Velocity, 380) {
		t.Errorf("end velocity = %v, want 380", rec.ends[0].Velocity)
	}
	if r.Active() {
		t.Error("Active() should be false after release")
	}
}

func TestRecognizerShouldAcceptVeto(t *testing.T) {
	r, rec := newRecordingRecognizer()
	r.ShouldAccept = func(translation float64) bool { return translation < 0 }
	t0 := time.Unix(0, 0)

	r.Handle(PointerEvent{Phase: PointerDown, Y: 100, Time: t0})
	r.Handle(PointerEvent{Phase: PointerMove, Y: 130, Time: t0.Add(10 * time.Millisecond)})
	r.Handle(PointerEvent{Phase: PointerMove, Y: 50, Time: t0.Add(20 * time.Millisecond)})
	r.Handle(PointerEvent{Phase: PointerUp, Y: 50, Time: t0.Add(30 * time.Millisecond)})

	if len(rec.changes) != 0 || len(rec.ends) != 0 {
		t.Errorf("vetoed drag delivered callbacks: %+v", rec)
	}
}

func TestRecognizerTapDoesNotEnd(t *testing.T) {
	r, rec := newRecordingRecognizer()
	t0 := time.Unix(0, 0)
	r.Handle(PointerEvent{Phase: PointerDown, Y: 100, Time: t0})
	r.Handle(PointerEvent{Phase: PointerUp, Y: 103, Time: t0.Add(50 * time.Millisecond)})
	if len(rec.ends) != 0 {
		t.Errorf("tap delivered OnEnd: %+v", rec.ends)
	}
}

func TestRecognizerCancelStopsFling(t *testing.T) {
	r, rec := newRecordingRecognizer()
	t0 := time.Unix(0, 0)
	r.Handle(PointerEvent{Phase: PointerDown, Y: 400, Time: t0})
	r.Handle(PointerEvent{Phase: PointerMove, Y: 300, Time: t0.Add(10 * time.Millisecond)})
	r.Handle(PointerEvent{Phase: PointerCancel, Time: t0.Add(20 * time.Millisecond)})

	if len(rec.ends) != 1 {
		t.Fatalf("ends = %d, want 1", len(rec.ends))
	}
	end := rec.ends[0]
	if end.Velocity != 0 {
		t.Errorf("Velocity = %v, want 0 after cancel", end.Velocity)
	}
	if end.PredictedEndTranslation != end.Translation {
		t.Errorf("PredictedEndTranslation = %v, want %v", end.PredictedEndTranslation, end.Translation)
	}
}

func TestRecognizerIgnoresMovesWithoutDown(t *testing.T) {
	r, rec := newRecordingRecognizer()
	r.Handle(PointerEvent{Phase: PointerMove, Y: 10, Time: time.Unix(0, 0)})
	r.Handle(PointerEvent{Phase: PointerUp, Y: 100, Time: time.Unix(1, 0)})
	if len(rec.changes) != 0 || len(rec.ends) != 0 {
		t.Errorf("callbacks without pointer down: %+v", rec)
	}
}

func TestBindDrivesSheet(t *testing.T) {
	s := newReadySheet(t, 100, 800, 300, 500)
	r := Bind(s, func() float64 { return 800 })
	t0 := time.Unix(0, 0)

	r.Handle(PointerEvent{Phase: PointerDown, Y: 700, Time: t0})
	r.Handle(PointerEvent{Phase: PointerMove, Y: 600, Time: t0.Add(time.Second)})
	if got := s.Snapshot().ContainerHeight; got != 200 {
		t.Errorf("ContainerHeight = %v while dragging, want 200", got)
	}
	r.Handle(PointerEvent{Phase: PointerUp, Y: 500, Time: t0.Add(2 * time.Second)})
	// A slow release at 300 predicts about 318.
	if got := s.Snapshot().ContainerHeight; got != 300 {
		t.Errorf("ContainerHeight = %v after release, want 300", got)
	}
}

func TestPointerPhaseString(t *testing.T) {
	phases := map[PointerPhase]string{
		PointerDown:      "down",
		PointerMove:      "move",
		PointerUp:        "up",
		PointerCancel:    "cancel",
		PointerPhase(42): "unknown",
	}
	for p, want := range phases {
		if got := p.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(p), got, want)
		}
	}
}
