package component

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jakecoffman/cp"
)

// PhysicsBody is a dynamic capsule actor. The horizontal plane (X, Z) is
// simulated by Chipmunk as (X, Y); height is integrated by the physics system.
type PhysicsBody struct {
	Body  *cp.Body
	Shape *cp.Shape

	Radius     float32
	HalfHeight float32
	Mass       float32

	VerticalVelocity float32
	Grounded         bool
	Jumping          bool
	// PendingRespawn sends the body back to Spawn on the next physics step.
	PendingRespawn bool

	Spawn mgl32.Vec3
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()

// StaticCollider is an axis-aligned box centered on the entity transform.
type StaticCollider struct {
	HalfExtents mgl32.Vec3
	Shape       *cp.Shape
}

var StaticColliderComponent = NewComponent[StaticCollider]()
