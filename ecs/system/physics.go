package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/catjump/common"
	"github.com/milk9111/catjump/ecs"
	"github.com/milk9111/catjump/ecs/component"
)

const (
	groundAccel   = 60.0
	airAccel      = 20.0
	groundSnap    = 0.05
	floatSpring   = 20.0
	shortJumpGrav = 2.0
	killPlaneY    = -20.0
)

// PhysicsSystem consumes each actor's locomotion command. Chipmunk simulates
// the horizontal plane with world X and Z mapped onto its X and Y; height
// is integrated here against the static colliders under the actor.
type PhysicsSystem struct {
	space *cp.Space
}

func NewPhysicsSystem() *PhysicsSystem {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})
	return &PhysicsSystem{space: space}
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ps.syncEntities(w)

	dt := w.Delta()
	if dt <= 0 {
		return
	}
	frame := w.Frame()

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.PhysicsBody, _ *component.Transform) {
		if body.Body == nil {
			return
		}
		var desired mgl32.Vec3
		if ctrl, ok := ecs.Get(w, e, component.CharacterControllerComponent.Kind()); ok && ctrl.Fed && ctrl.Frame == frame {
			desired = ctrl.Command.Basis.DesiredVelocity
		}
		accel := airAccel
		if body.Grounded {
			accel = groundAccel
		}
		v := body.Body.Velocity()
		delta := cp.Vector{X: float64(desired.X()), Y: float64(desired.Z())}.Sub(v)
		if limit := accel * float64(dt); delta.Length() > limit {
			delta = delta.Mult(limit / delta.Length())
		}
		body.Body.SetVelocityVector(v.Add(delta))
		body.Body.SetAngle(0)
		body.Body.SetAngularVelocity(0)
	})

	ps.space.Step(float64(dt))

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.PhysicsBody, t *component.Transform) {
		if body.Body == nil {
			return
		}
		ctrl, _ := ecs.Get(w, e, component.CharacterControllerComponent.Kind())
		ps.stepVertical(w, body, t, ctrl, frame, dt)
	})
}

func (ps *PhysicsSystem) stepVertical(w *ecs.World, body *component.PhysicsBody, t *component.Transform, ctrl *component.CharacterController, frame uint64, dt float32) {
	if body.PendingRespawn {
		ps.respawn(body)
		t.Position = body.Spawn
		return
	}

	p := body.Body.Position()
	y := t.Position.Y()

	floatHeight := body.Radius + body.HalfHeight
	if ctrl != nil && ctrl.Fed {
		floatHeight = max(ctrl.Command.Basis.FloatHeight, 0)
	}
	jumpFed := ctrl.Jumping(frame)

	top, overFloor := floorTopAt(w, p, y)
	rest := top + floatHeight

	if body.Grounded && !overFloor {
		body.Grounded = false
	}

	if body.Grounded && jumpFed && ctrl.Command.Jump.Height > 0 {
		body.VerticalVelocity = float32(math.Sqrt(2 * common.Gravity * float64(ctrl.Command.Jump.Height)))
		body.Grounded = false
		body.Jumping = true
	}

	if body.Grounded {
		body.VerticalVelocity = 0
		y += (rest - y) * common.Clamp01(floatSpring*dt)
	} else {
		g := float32(common.Gravity)
		// Releasing jump on the way up cuts the jump short.
		if body.Jumping && body.VerticalVelocity > 0 && !jumpFed {
			g *= shortJumpGrav
		}
		body.VerticalVelocity -= g * dt
		y += body.VerticalVelocity * dt
		if body.VerticalVelocity <= 0 {
			body.Jumping = false
		}
		if overFloor && body.VerticalVelocity <= 0 && y <= rest+groundSnap {
			body.Grounded = true
			body.VerticalVelocity = 0
		}
	}

	if y < killPlaneY {
		ps.respawn(body)
		t.Position = body.Spawn
		return
	}

	t.Position = mgl32.Vec3{float32(p.X), y, float32(p.Y)}
}

// floorTopAt returns the highest collider top under p that is not above y.
func floorTopAt(w *ecs.World, p cp.Vector, y float32) (float32, bool) {
	var (
		top   float32
		found bool
	)
	ecs.ForEach2(w, component.StaticColliderComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, col *component.StaticCollider, t *component.Transform) {
		if col.Shape == nil || col.Shape.PointQuery(p).Distance > 0 {
			return
		}
		surface := t.Position.Y() + col.HalfExtents.Y()
		if surface > y+groundSnap {
			return
		}
		if !found || surface > top {
			top = surface
			found = true
		}
	})
	return top, found
}

func (ps *PhysicsSystem) respawn(body *component.PhysicsBody) {
	body.Body.SetPosition(cp.Vector{X: float64(body.Spawn.X()), Y: float64(body.Spawn.Z())})
	body.Body.SetVelocityVector(cp.Vector{})
	body.VerticalVelocity = 0
	body.Grounded = false
	body.Jumping = false
	body.PendingRespawn = false
}

// RequestRespawn queues e for a return to its spawn point. It reports false
// when e has no physics body.
func RequestRespawn(w *ecs.World, e ecs.Entity) bool {
	body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok {
		return false
	}
	body.PendingRespawn = true
	return true
}

// syncEntities creates Chipmunk bodies and shapes for newly built actors.
func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, body *component.PhysicsBody, t *component.Transform) {
		if body.Body != nil {
			return
		}
		mass := float64(body.Mass)
		if mass <= 0 {
			mass = 1
		}
		radius := float64(body.Radius)
		cb := cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{}))
		cb.SetPosition(cp.Vector{X: float64(t.Position.X()), Y: float64(t.Position.Z())})
		shape := cp.NewCircle(cb, radius, cp.Vector{})
		shape.SetFriction(0)
		ps.space.AddBody(cb)
		ps.space.AddShape(shape)
		body.Body = cb
		body.Shape = shape
	})

	ecs.ForEach2(w, component.StaticColliderComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, col *component.StaticCollider, t *component.Transform) {
		if col.Shape != nil {
			return
		}
		x, z := float64(t.Position.X()), float64(t.Position.Z())
		hx, hz := float64(col.HalfExtents.X()), float64(col.HalfExtents.Z())
		shape := cp.NewBox2(ps.space.StaticBody, cp.BB{L: x - hx, B: z - hz, R: x + hx, T: z + hz}, 0)
		// Actors stand on colliders rather than being pushed out of them.
		shape.SetSensor(true)
		ps.space.AddShape(shape)
		col.Shape = shape
	})
}
