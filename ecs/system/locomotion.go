package system

import (
	"github.com/milk9111/catjump/ecs"
	"github.com/milk9111/catjump/ecs/component"
)

// BuildCommand turns one frame of intent into the command for the character
// controller. The jump action is present only while jump is requested.
func BuildCommand(intent component.MotionIntent, loco component.Locomotion) component.LocomotionCommand {
	cmd := component.LocomotionCommand{
		Basis: component.WalkBasis{
			DesiredVelocity: intent.Direction.Mul(loco.MaxSpeed),
			FloatHeight:     loco.FloatHeight,
		},
	}
	if intent.Jump {
		cmd.Jump = &component.JumpAction{Height: loco.JumpHeight}
	}
	return cmd
}

type LocomotionSystem struct {
	player ecs.Handle
	seen   presence
}

func NewLocomotionSystem(player ecs.Handle) *LocomotionSystem {
	return &LocomotionSystem{player: player, seen: presence{system: "locomotion"}}
}

func (s *LocomotionSystem) Update(w *ecs.World) {
	e, ok := s.player.Entity(w)
	if !s.seen.observe(ok) {
		return
	}

	intent, okIntent := ecs.Get(w, e, component.MotionIntentComponent.Kind())
	loco, okLoco := ecs.Get(w, e, component.LocomotionComponent.Kind())
	ctrl, okCtrl := ecs.Get(w, e, component.CharacterControllerComponent.Kind())
	if !okIntent || !okLoco || !okCtrl {
		return
	}

	ctrl.Submit(BuildCommand(*intent, *loco), w.Frame())
}
