package sheet

import (
	"math"
	"time"

	"github.com/go-drift/anchorsheet/pkg/animation"
)

const (
	// DefaultTouchSlop is the distance a pointer must travel before a drag starts.
	DefaultTouchSlop = 8.0
	// DecelerationNormal is the per-millisecond velocity retention of a
	// normally decelerating fling.
	DecelerationNormal = 0.998
	// DecelerationFast is the per-millisecond velocity retention of a fast
	// decelerating fling.
	DecelerationFast = 0.99
)

// PointerPhase is the lifecycle stage of a pointer sample.
type PointerPhase int

const (
	PointerDown PointerPhase = iota
	PointerMove
	PointerUp
	PointerCancel
)

func (p PointerPhase) String() string {
	switch p {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// PointerEvent is one vertical pointer sample in viewport coordinates.
type PointerEvent struct {
	Phase PointerPhase
	Y     float64
	// Time is when the sample was taken. Zero uses animation.Now.
	Time time.Time
}

// DragValue describes a drag at one sample.
type DragValue struct {
	// StartLocation is where the pointer went down.
	StartLocation float64
	// Location is the current pointer position.
	Location float64
	// Translation is Location - StartLocation; negative means upward.
	Translation float64
	// Velocity is the smoothed vertical velocity in units per second.
	Velocity float64
	// PredictedEndTranslation is where the translation would come to rest if
	// the pointer were released now and decelerated.
	PredictedEndTranslation float64
}

// ProjectFling returns the distance a fling with velocity travels while
// decelerating at rate per millisecond.
func ProjectFling(velocity, rate float64) float64 {
	if rate <= 0 || rate >= 1 {
		return 0
	}
	return velocity / 1000 * rate / (1 - rate)
}

// Recognizer turns raw vertical pointer samples into drag values.
// Velocity is exponentially smoothed between samples.
type Recognizer struct {
	// Slop is the travel needed before the drag is accepted.
	Slop float64
	// DecelerationRate is used to predict the end translation.
	DecelerationRate float64
	// ShouldAccept may veto a drag once the slop is exceeded.
	ShouldAccept func(translation float64) bool
	// OnChange receives every sample after acceptance.
	OnChange func(DragValue)
	// OnEnd receives the final sample of an accepted drag.
	OnEnd func(DragValue)

	start    float64
	last     float64
	lastTime time.Time
	velocity float64
	tracking bool
	accepted bool
	rejected bool
}

// NewRecognizer creates a recognizer with default slop and deceleration.
func NewRecognizer() *Recognizer {
	return &Recognizer{Slop: DefaultTouchSlop, DecelerationRate: DecelerationNormal}
}

// Bind returns a recognizer that feeds s. viewportHeight is read on every sample.
func Bind(s *Sheet, viewportHeight func() float64) *Recognizer {
	r := NewRecognizer()
	r.OnChange = func(d DragValue) { s.OnDragChange(d, viewportHeight()) }
	r.OnEnd = func(d DragValue) { s.OnDragEnd(d, viewportHeight()) }
	return r
}

// Active reports whether a drag has been accepted and not yet ended.
func (r *Recognizer) Active() bool { return r.tracking && r.accepted }

// Handle processes one pointer sample.
func (r *Recognizer) Handle(e PointerEvent) {
	now := e.Time
	if now.IsZero() {
		now = animation.Now()
	}
	switch e.Phase {
	case PointerDown:
		r.start = e.Y
		r.last = e.Y
		r.lastTime = now
		r.velocity = 0
		r.tracking = true
		r.accepted = false
		r.rejected = false
	case PointerMove:
		if !r.tracking || r.rejected {
			return
		}
		r.handleMove(e.Y, now)
	case PointerUp:
		if !r.tracking {
			return
		}
		if r.accepted && !r.rejected {
			r.handleMove(e.Y, now)
			if r.OnEnd != nil {
				r.OnEnd(r.value())
			}
		}
		r.tracking = false
	case PointerCancel:
		if !r.tracking {
			return
		}
		if r.accepted && !r.rejected {
			r.velocity = 0
			if r.OnEnd != nil {
				r.OnEnd(r.value())
			}
		}
		r.tracking = false
	}
}

func (r *Recognizer) handleMove(y float64, now time.Time) {
	dt := now.Sub(r.lastTime).Seconds()
	if dt > 0 {
		inst := (y - r.last) / dt
		r.velocity = r.velocity*0.8 + inst*0.2
	}
	r.last = y
	r.lastTime = now

	if !r.accepted {
		total := y - r.start
		if math.Abs(total) <= r.slop() {
			return
		}
		if r.ShouldAccept != nil && !r.ShouldAccept(total) {
			r.rejected = true
			return
		}
		r.accepted = true
	}
	if r.OnChange != nil {
		r.OnChange(r.value())
	}
}

func (r *Recognizer) slop() float64 {
	if r.Slop < 0 {
		return 0
	}
	return r.Slop
}

func (r *Recognizer) value() DragValue {
	translation := r.last - r.start
	rate := r.DecelerationRate
	if rate == 0 {
		rate = DecelerationNormal
	}
	return DragValue{
		StartLocation:           r.start,
		Location:                r.last,
		Translation:             translation,
		Velocity:                r.velocity,
		PredictedEndTranslation: translation + ProjectFling(r.velocity, rate),
	}
}
