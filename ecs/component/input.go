package component

import "github.com/go-gl/mathgl/mgl32"

// MotionIntent is the combined player input for one frame. Direction is
// either unit length or exactly zero.
type MotionIntent struct {
	Direction mgl32.Vec3
	Jump      bool
}

var MotionIntentComponent = NewComponent[MotionIntent]()
