package animation

import "time"

// Clock provides time for gesture sampling and frame stepping. The default
// implementation uses system time. Tests inject a fake clock via SetClock to
// make velocity estimation and frame deltas deterministic.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

var clock Clock = realClock{}

// SetClock replaces the package clock. Returns the previous clock
// so callers can restore it during cleanup. A nil clock restores system time.
func SetClock(c Clock) Clock {
	prev := clock
	if c == nil {
		c = realClock{}
	}
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time { return clock.Now() }
