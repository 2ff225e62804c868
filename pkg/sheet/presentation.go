package sheet

import (
	"time"

	"github.com/go-drift/anchorsheet/pkg/animation"
)

// presenter interpolates the values on screen toward the committed state.
type presenter struct {
	height  *animation.SpringMotion
	offset  *animation.SpringMotion
	opacity *animation.CurveMotion
}

func newPresenter(spring animation.SpringDescription, fade time.Duration) *presenter {
	return &presenter{
		height:  animation.NewSpringMotion(spring, 0),
		offset:  animation.NewSpringMotion(spring, 0),
		opacity: animation.NewCurveMotion(fade, animation.EaseInOut, 0),
	}
}

func (p *presenter) fade(shown bool) {
	if shown {
		p.opacity.AnimateTo(1)
	} else {
		p.opacity.AnimateTo(0)
	}
}

func (p *presenter) step(dt float64) bool {
	h := p.height.Step(dt)
	o := p.offset.Step(dt)
	f := p.opacity.Step(dt)
	return h && o && f
}

func (p *presenter) settled() bool {
	return !p.height.IsActive() && !p.offset.IsActive() && !p.opacity.IsActive()
}

func (p *presenter) values() Presentation {
	return Presentation{
		ContainerHeight: p.height.Value(),
		ContentOffset:   p.offset.Value(),
		ContentOpacity:  p.opacity.Value(),
	}
}
