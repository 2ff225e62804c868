package animation

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// SpringDescription configures a critically-or-under damped spring the way
// declarative UI toolkits describe it: a response time and a damping fraction.
type SpringDescription struct {
	// Response is the period of the undamped spring in seconds.
	Response float64
	// DampingFraction is the damping ratio; 1 is critically damped.
	DampingFraction float64
}

// DefaultSpring matches the usual platform default spring (0.55s, 0.825).
func DefaultSpring() SpringDescription {
	return SpringDescription{Response: 0.55, DampingFraction: 0.825}
}

// AngularFrequency converts the response time to the spring's angular frequency.
func (d SpringDescription) AngularFrequency() float64 {
	if d.Response <= 0 {
		return 0
	}
	return 2 * math.Pi / d.Response
}

// Valid reports whether the description can drive a spring.
func (d SpringDescription) Valid() bool {
	return d.Response > 0 && d.DampingFraction > 0
}

const (
	springRestPosition = 0.01
	springRestVelocity = 0.01
)

// SpringMotion animates a single value toward a target with harmonica springs.
// Harmonica precomputes coefficients for a fixed time step, so the motion
// keeps the spring for the last step size it saw.
type SpringMotion struct {
	desc     SpringDescription
	position float64
	velocity float64
	target   float64
	active   bool

	spring   harmonica.Spring
	springDt float64
}

// NewSpringMotion creates a motion resting at position.
func NewSpringMotion(desc SpringDescription, position float64) *SpringMotion {
	if !desc.Valid() {
		desc = DefaultSpring()
	}
	return &SpringMotion{desc: desc, position: position, target: position}
}

// AnimateTo starts moving toward target, keeping the current velocity.
func (m *SpringMotion) AnimateTo(target float64) {
	m.target = target
	m.active = m.position != target || m.velocity != 0
}

// Jump sets the value immediately and cancels any motion.
func (m *SpringMotion) Jump(value float64) {
	m.position = value
	m.target = value
	m.velocity = 0
	m.active = false
}

// Step advances the motion by dt seconds. Returns true once settled.
func (m *SpringMotion) Step(dt float64) bool {
	if !m.active {
		return true
	}
	if dt <= 0 {
		return false
	}
	if dt != m.springDt {
		m.spring = harmonica.NewSpring(dt, m.desc.AngularFrequency(), m.desc.DampingFraction)
		m.springDt = dt
	}
	m.position, m.velocity = m.spring.Update(m.position, m.velocity, m.target)
	if math.Abs(m.position-m.target) < springRestPosition && math.Abs(m.velocity) < springRestVelocity {
		m.Jump(m.target)
		return true
	}
	return false
}

// Value returns the current animated value.
func (m *SpringMotion) Value() float64 { return m.position }

// Velocity returns the current velocity in units per second.
func (m *SpringMotion) Velocity() float64 { return m.velocity }

// Target returns the value the motion is heading to.
func (m *SpringMotion) Target() float64 { return m.target }

// IsActive reports whether the motion has not settled yet.
func (m *SpringMotion) IsActive() bool { return m.active }
