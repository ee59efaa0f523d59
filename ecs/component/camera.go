package component

import "github.com/go-gl/mathgl/mgl32"

// CameraFollow is the follow-camera tuning.
type CameraFollow struct {
	Offset       mgl32.Vec3
	LookAtOffset mgl32.Vec3
	Smoothness   float32
	// ClampBlend limits the per-frame blend factor to 1 so a long frame
	// cannot carry the camera past its target.
	ClampBlend bool
}

var CameraFollowComponent = NewComponent[CameraFollow]()

// CameraFollowState is the smoothed camera position. Only the camera system
// writes it.
type CameraFollowState struct {
	Position mgl32.Vec3
}

var CameraFollowStateComponent = NewComponent[CameraFollowState]()

type Projection struct {
	FovY float32
	Near float32
	Far  float32
}

var ProjectionComponent = NewComponent[Projection]()
