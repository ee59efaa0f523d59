package input

import "github.com/go-gl/mathgl/mgl32"

// Joystick queues virtual-stick axis samples for the current frame. Poll
// drains the queue; samples never carry over to the next frame.
type Joystick struct {
	samples []mgl32.Vec2
}

// Push queues one axis sample, clamped to [-1, 1] on both axes. Positive Y
// is stick-up.
func (j *Joystick) Push(axis mgl32.Vec2) {
	if j == nil {
		return
	}
	j.samples = append(j.samples, mgl32.Vec2{
		mgl32.Clamp(axis.X(), -1, 1),
		mgl32.Clamp(axis.Y(), -1, 1),
	})
}

func (j *Joystick) Pending() int {
	if j == nil {
		return 0
	}
	return len(j.samples)
}

func (j *Joystick) Poll() Contribution {
	if j == nil {
		return Contribution{}
	}
	var dir mgl32.Vec3
	for _, s := range j.samples {
		dir = dir.Add(axisToWorld(s))
	}
	j.samples = j.samples[:0]
	return Contribution{Direction: dir}
}

func axisToWorld(axis mgl32.Vec2) mgl32.Vec3 {
	return mgl32.Vec3{axis.X(), 0, -axis.Y()}
}
