package system

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/catjump/common"
	"github.com/milk9111/catjump/ecs"
	"github.com/milk9111/catjump/ecs/component"
)

// FollowStep advances the smoothed camera toward player+offset and returns
// the new state with the orientation looking at player+lookAtOffset. ok is
// false when the camera sits on its look target; the caller keeps its
// previous orientation then.
func FollowStep(state component.CameraFollowState, player mgl32.Vec3, dt float32, follow component.CameraFollow) (component.CameraFollowState, mgl32.Quat, bool) {
	target := player.Add(follow.Offset)
	blend := follow.Smoothness * dt
	if follow.ClampBlend {
		blend = common.Clamp01(blend)
	}
	next := component.CameraFollowState{Position: common.LerpVec3(state.Position, target, blend)}

	rot, ok := common.LookRotation(player.Add(follow.LookAtOffset).Sub(next.Position), common.Up)
	return next, rot, ok
}

type CameraSystem struct {
	player ecs.Handle
	camera ecs.Handle
	seen   presence
}

func NewCameraSystem(player, camera ecs.Handle) *CameraSystem {
	return &CameraSystem{player: player, camera: camera, seen: presence{system: "camera"}}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	pe, okPlayer := cs.player.Entity(w)
	ce, okCamera := cs.camera.Entity(w)
	if !cs.seen.observe(okPlayer && okCamera) {
		return
	}

	playerTransform, ok := ecs.Get(w, pe, component.TransformComponent.Kind())
	if !ok {
		return
	}
	follow, okFollow := ecs.Get(w, ce, component.CameraFollowComponent.Kind())
	state, okState := ecs.Get(w, ce, component.CameraFollowStateComponent.Kind())
	camTransform, okTransform := ecs.Get(w, ce, component.TransformComponent.Kind())
	if !okFollow || !okState || !okTransform {
		return
	}

	next, rot, ok := FollowStep(*state, playerTransform.Position, w.Delta(), *follow)
	*state = next
	camTransform.Position = next.Position
	if ok {
		camTransform.Rotation = rot
	}
}
