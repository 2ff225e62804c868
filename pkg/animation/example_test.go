package animation_test

import (
	"fmt"
	"time"

	"github.com/go-drift/anchorsheet/pkg/animation"
)

// This example settles a spring the way the sheet settles its height after a fling.
func ExampleSpringMotion() {
	height := animation.NewSpringMotion(animation.DefaultSpring(), 120)
	height.AnimateTo(480)

	for !height.Step(1.0 / 60) {
	}

	fmt.Printf("Settled at %.0f\n", height.Value())

	// Output:
	// Settled at 480
}

// This example fades content in with the ease-in-out curve.
func ExampleCurveMotion() {
	opacity := animation.NewCurveMotion(300*time.Millisecond, animation.EaseInOut, 0)
	opacity.AnimateTo(1)
	opacity.Step(0.15)
	fmt.Printf("Halfway: %.2f\n", opacity.Value())
	opacity.Step(0.15)
	fmt.Printf("Done: %.2f\n", opacity.Value())

	// Output:
	// Halfway: 0.50
	// Done: 1.00
}
