package component

import "github.com/go-gl/mathgl/mgl32"

// Locomotion holds the walk/jump tuning for a controllable actor.
type Locomotion struct {
	MaxSpeed    float32
	FloatHeight float32
	JumpHeight  float32
}

var LocomotionComponent = NewComponent[Locomotion]()

// WalkBasis is the continuously resubmitted grounded-movement request.
type WalkBasis struct {
	DesiredVelocity mgl32.Vec3
	// FloatHeight is the hover distance between the ground and the actor's
	// center.
	FloatHeight float32
}

type JumpAction struct {
	Height float32
}

// LocomotionCommand is what the controller hands the physics step each frame.
type LocomotionCommand struct {
	Basis WalkBasis
	Jump  *JumpAction
}

// CharacterController is the per-actor mailbox between locomotion and physics.
// Command is overwritten every frame; a nil Jump means the action was not fed.
type CharacterController struct {
	Command LocomotionCommand
	Fed     bool
	Frame   uint64
}

// Submit replaces the current command.
func (c *CharacterController) Submit(cmd LocomotionCommand, frame uint64) {
	if c == nil {
		return
	}
	c.Command = cmd
	c.Fed = true
	c.Frame = frame
}

// Jumping reports whether the command fed on frame carries a jump action.
func (c *CharacterController) Jumping(frame uint64) bool {
	return c != nil && c.Fed && c.Frame == frame && c.Command.Jump != nil
}

var CharacterControllerComponent = NewComponent[CharacterController]()
