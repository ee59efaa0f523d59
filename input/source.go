// Package input turns raw keyboard, touch, joystick and scripted input into
// one MotionIntent per frame.
package input

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/catjump/common"
	"github.com/milk9111/catjump/ecs/component"
)

// Contribution is one source's share of the frame's intent. Direction is
// not normalized.
type Contribution struct {
	Direction mgl32.Vec3
	Jump      bool
}

// Source is polled once per frame.
type Source interface {
	Poll() Contribution
}

// Aggregator sums every source into a single MotionIntent.
type Aggregator struct {
	sources []Source
}

func NewAggregator(sources ...Source) *Aggregator {
	a := &Aggregator{}
	for _, s := range sources {
		a.Add(s)
	}
	return a
}

func (a *Aggregator) Add(s Source) {
	if a == nil || s == nil {
		return
	}
	a.sources = append(a.sources, s)
}

// Poll polls every source exactly once, so queued sources are drained even
// when nobody consumes the result.
func (a *Aggregator) Poll() component.MotionIntent {
	if a == nil {
		return component.MotionIntent{}
	}
	var sum Contribution
	for _, s := range a.sources {
		c := s.Poll()
		sum.Direction = sum.Direction.Add(c.Direction)
		sum.Jump = sum.Jump || c.Jump
	}
	return component.MotionIntent{
		Direction: common.NormalizeOrZero(sum.Direction),
		Jump:      sum.Jump,
	}
}
