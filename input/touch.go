package input

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

type TouchState interface {
	Touches() []image.Point
	ScreenSize() (int, int)
}

// Touch maps the screen quadrant of the first touch to a direction. It is
// inert unless Enabled is set.
type Touch struct {
	State   TouchState
	Enabled bool
}

func (t *Touch) Poll() Contribution {
	if t == nil || !t.Enabled || t.State == nil {
		return Contribution{}
	}
	touches := t.State.Touches()
	if len(touches) == 0 {
		return Contribution{}
	}
	w, h := t.State.ScreenSize()
	p := touches[0]

	var dir mgl32.Vec3
	if p.X < w/2 {
		dir[0] -= 1
	} else {
		dir[0] += 1
	}
	// Screen Y grows downward: the lower half walks toward the camera.
	if p.Y >= h/2 {
		dir[2] += 1
	} else {
		dir[2] -= 1
	}
	return Contribution{Direction: dir}
}
