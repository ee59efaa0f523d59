package system

import (
	"github.com/milk9111/catjump/ecs"
	"github.com/milk9111/catjump/ecs/component"
)

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

// Update advances the playing clip by the frame delta, wrapping looped clips
// and holding one-shot clips on their last frame.
func (a *AnimationSystem) Update(w *ecs.World) {
	dt := w.Delta()
	ecs.ForEach2(w, component.AnimationPlayerComponent.Kind(), component.AnimationGraphComponent.Kind(), func(_ ecs.Entity, anim *component.AnimationPlayer, graph *component.AnimationGraph) {
		if !anim.Playing || anim.Current < 0 || anim.Current >= len(graph.Clips) {
			return
		}
		duration := graph.Clips[anim.Current].Duration
		if duration <= 0 {
			return
		}

		anim.Elapsed += dt
		if anim.Elapsed < duration {
			return
		}
		if anim.Looping {
			for anim.Elapsed >= duration {
				anim.Elapsed -= duration
			}
			return
		}
		anim.Elapsed = duration
		anim.Playing = false
	})
}
