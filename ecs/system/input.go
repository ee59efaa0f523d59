package system

import (
	"github.com/milk9111/catjump/ecs"
	"github.com/milk9111/catjump/ecs/component"
)

// IntentSource produces the combined intent for one frame.
type IntentSource interface {
	Poll() component.MotionIntent
}

type InputSystem struct {
	source IntentSource
	player ecs.Handle
	seen   presence
}

func NewInputSystem(source IntentSource, player ecs.Handle) *InputSystem {
	return &InputSystem{source: source, player: player, seen: presence{system: "input"}}
}

// Update polls the sources every frame, even without a player, so queued
// joystick samples never carry over into a later frame.
func (s *InputSystem) Update(w *ecs.World) {
	var intent component.MotionIntent
	if s.source != nil {
		intent = s.source.Poll()
	}

	e, ok := s.player.Entity(w)
	if !s.seen.observe(ok) {
		return
	}
	if mi, ok := ecs.Get(w, e, component.MotionIntentComponent.Kind()); ok {
		*mi = intent
		return
	}
	_ = ecs.Add(w, e, component.MotionIntentComponent.Kind(), &intent)
}
