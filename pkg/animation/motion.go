package animation

import "time"

// CurveMotion animates a value over a fixed duration along a Curve.
// Retargeting mid-flight restarts from the current value.
type CurveMotion struct {
	Duration time.Duration
	Curve    Curve

	from    float64
	to      float64
	value   float64
	elapsed time.Duration
	active  bool
}

// NewCurveMotion creates a motion resting at value.
func NewCurveMotion(duration time.Duration, curve Curve, value float64) *CurveMotion {
	if curve == nil {
		curve = Linear
	}
	return &CurveMotion{Duration: duration, Curve: curve, from: value, to: value, value: value}
}

// AnimateTo starts moving toward target. A no-op if already heading there.
func (m *CurveMotion) AnimateTo(target float64) {
	if target == m.to && (m.active || m.value == target) {
		return
	}
	m.from = m.value
	m.to = target
	m.elapsed = 0
	m.active = m.value != target
}

// Jump sets the value immediately and cancels any motion.
func (m *CurveMotion) Jump(value float64) {
	m.from, m.to, m.value = value, value, value
	m.elapsed = 0
	m.active = false
}

// Step advances the motion by dt seconds. Returns true once finished.
func (m *CurveMotion) Step(dt float64) bool {
	if !m.active {
		return true
	}
	m.elapsed += time.Duration(dt * float64(time.Second))
	if m.Duration <= 0 || m.elapsed >= m.Duration {
		m.Jump(m.to)
		return true
	}
	progress := float64(m.elapsed) / float64(m.Duration)
	m.value = m.from + (m.to-m.from)*m.Curve(progress)
	return false
}

// Value returns the current animated value.
func (m *CurveMotion) Value() float64 { return m.value }

// Target returns the value the motion is heading to.
func (m *CurveMotion) Target() float64 { return m.to }

// IsActive reports whether the motion has not finished yet.
func (m *CurveMotion) IsActive() bool { return m.active }
