package system

import (
	"github.com/milk9111/catjump/ecs"
	"github.com/milk9111/catjump/ecs/component"
)

// AnimationSelectorSystem plays the jump clip, looping, on every frame whose
// command carries a jump action. There is no idle or walk transition.
type AnimationSelectorSystem struct{}

func NewAnimationSelectorSystem() *AnimationSelectorSystem {
	return &AnimationSelectorSystem{}
}

func (s *AnimationSelectorSystem) Update(w *ecs.World) {
	frame := w.Frame()
	ecs.ForEach3(w, component.CharacterControllerComponent.Kind(), component.AnimationGraphComponent.Kind(), component.AnimationPlayerComponent.Kind(), func(_ ecs.Entity, ctrl *component.CharacterController, graph *component.AnimationGraph, anim *component.AnimationPlayer) {
		if !ctrl.Jumping(frame) {
			return
		}
		if graph.JumpClip < 0 || graph.JumpClip >= len(graph.Clips) {
			return
		}
		anim.Play(graph.JumpClip, true)
	})
}
