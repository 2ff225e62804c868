package sheet

import "slices"

// State is the sheet's layout state. It is owned by a single Sheet.
type State struct {
	// ContainerHeight is the visible height of the sheet.
	ContainerHeight Measured
	// StartContainerHeight is the height committed at the end of the last drag.
	StartContainerHeight Measured
	// ContentHeight is the intrinsic height of the scrollable content.
	ContentHeight Measured
	// ContentOffset is the content scroll offset; never positive.
	ContentOffset float64
	// StartContentOffset is the offset committed at the end of the last drag.
	StartContentOffset float64
	// IsMainContentShown is derived from ContainerHeight and the header stop.
	IsMainContentShown bool
	// HeaderHeight is the measured height of handle plus header.
	HeaderHeight Measured
	// AnchorStops are anchor offsets relative to the sheet's top edge.
	AnchorStops []float64
	// FixedStops are developer-supplied stop heights.
	FixedStops []float64
}

func (s State) clone() State {
	s.AnchorStops = slices.Clone(s.AnchorStops)
	s.FixedStops = slices.Clone(s.FixedStops)
	return s
}

// Phase is the coarse gesture state.
type Phase int

const (
	// PhaseIdle means no drag is in progress.
	PhaseIdle Phase = iota
	// PhaseDragging means a drag is in progress.
	PhaseDragging
)

func (p Phase) String() string {
	if p == PhaseDragging {
		return "dragging"
	}
	return "idle"
}

// Mode is how the latest drag sample was applied. It is re-evaluated on
// every sample and carries no state of its own.
type Mode int

const (
	// ModeNone means no drag sample has been applied since the last release.
	ModeNone Mode = iota
	// ModeSheetResizing means the sample changed the container height.
	ModeSheetResizing
	// ModeContentScrolling means the sample scrolled the content.
	ModeContentScrolling
)

func (m Mode) String() string {
	switch m {
	case ModeSheetResizing:
		return "resizing"
	case ModeContentScrolling:
		return "scrolling"
	default:
		return "none"
	}
}

// Snapshot is a read-only copy of the committed values a renderer needs.
type Snapshot struct {
	Ready              bool
	ContainerHeight    float64
	ContentOffset      float64
	IsMainContentShown bool
	Phase              Phase
	Mode               Mode
	Stops              []float64
	// ViewportHeight is 0 until the sheet has been given a viewport.
	ViewportHeight float64
}

// Presentation holds the animated values currently on screen.
type Presentation struct {
	ContainerHeight float64
	ContentOffset   float64
	// ContentOpacity fades between 0 and 1 following IsMainContentShown.
	ContentOpacity float64
}

// Viewport is the space the sheet lives in.
type Viewport struct {
	Height      float64
	BottomInset float64
}
