package anchor

// Visibility controls whether an anchor draws a debug marker.
type Visibility int

const (
	// VisibilityNever never draws the marker.
	VisibilityNever Visibility = iota
	// VisibilityAlways always draws the marker.
	VisibilityAlways
	// VisibilitySimulator draws the marker only when running in a simulator.
	VisibilitySimulator
	// VisibilityDebug draws the marker only in debug builds.
	VisibilityDebug
	// VisibilitySimulatorAndDebug draws the marker in a simulator or a debug build.
	VisibilitySimulatorAndDebug
)

// MarkerSize is the side of a visible debug marker.
const MarkerSize = 10

func (v Visibility) String() string {
	switch v {
	case VisibilityAlways:
		return "always"
	case VisibilitySimulator:
		return "simulator"
	case VisibilityDebug:
		return "debug"
	case VisibilitySimulatorAndDebug:
		return "simulatorAndDebug"
	default:
		return "never"
	}
}

// Environment describes the build the anchors are running in.
type Environment struct {
	Debug     bool
	Simulator bool
}

// Visible resolves v against env.
func (v Visibility) Visible(env Environment) bool {
	switch v {
	case VisibilityAlways:
		return true
	case VisibilitySimulator:
		return env.Simulator
	case VisibilityDebug:
		return env.Debug
	case VisibilitySimulatorAndDebug:
		return env.Debug || env.Simulator
	default:
		return false
	}
}

// MarkerSize returns the debug marker side for env: MarkerSize or 0.
func (v Visibility) MarkerSize(env Environment) float64 {
	if v.Visible(env) {
		return MarkerSize
	}
	return 0
}
