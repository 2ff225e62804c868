package anchor

// Point is a position in some coordinate space, y growing downward.
type Point struct {
	X float64
	Y float64
}

// Frame is the global origin of a nested anchor container.
type Frame struct {
	Origin Point
}

// Relative converts a global position into this frame's coordinates.
func (f Frame) Relative(p Point) Point {
	return Point{X: p.X - f.Origin.X, Y: p.Y - f.Origin.Y}
}

// RelativeAll converts every position in ps; the input is not modified.
func (f Frame) RelativeAll(ps []Point) []Point {
	out := make([]Point, len(ps))
	for i, p := range ps {
		out[i] = f.Relative(p)
	}
	return out
}

// Geometry describes where a sheet sits in its viewport. The sheet is pinned
// to the bottom edge, so its top edge is at ViewportHeight - ContainerHeight.
type Geometry struct {
	ViewportHeight  float64
	ContainerHeight float64
	BottomInset     float64
}

// Project returns p's offset below the sheet's own top edge. The result does
// not depend on the current container height as long as p was measured with
// the same geometry.
func (g Geometry) Project(p Point) float64 {
	return p.Y - (g.ViewportHeight - g.ContainerHeight) - g.BottomInset
}

// ProjectAll projects every position, preserving order.
func (g Geometry) ProjectAll(ps []Point) []float64 {
	if len(ps) == 0 {
		return nil
	}
	out := make([]float64, len(ps))
	for i, p := range ps {
		out[i] = g.Project(p)
	}
	return out
}

// AggregateHeight sums child heights.
func AggregateHeight(heights ...float64) float64 {
	total := 0.0
	for _, h := range heights {
		total += h
	}
	return total
}
