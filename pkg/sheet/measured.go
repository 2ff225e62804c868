package sheet

import "strconv"

// Measured is a layout value that may not have been measured yet.
type Measured struct {
	value float64
	ok    bool
}

// Unmeasured returns a Measured with no value.
func Unmeasured() Measured { return Measured{} }

// Measure returns a Measured holding v.
func Measure(v float64) Measured { return Measured{value: v, ok: true} }

// Get returns the value and whether it has been measured.
func (m Measured) Get() (float64, bool) { return m.value, m.ok }

// IsSet reports whether the value has been measured.
func (m Measured) IsSet() bool { return m.ok }

// Or returns the value, or def when unmeasured.
func (m Measured) Or(def float64) float64 {
	if !m.ok {
		return def
	}
	return m.value
}

func (m Measured) String() string {
	if !m.ok {
		return "unmeasured"
	}
	return strconv.FormatFloat(m.value, 'g', -1, 64)
}
