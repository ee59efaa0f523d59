package entity

import (
	"fmt"

	"github.com/milk9111/catjump/ecs"
	"github.com/milk9111/catjump/ecs/component"
	"github.com/milk9111/catjump/logger"
	"github.com/milk9111/catjump/prefabs"
	"go.uber.org/zap"
)

const (
	PlayerPrefab = "player.yaml"
	CameraPrefab = "camera.yaml"
	FloorPrefab  = "floor.yaml"
)

var lightPrefabs = []string{"point_light.yaml", "sun.yaml"}

// Scene holds the expected-unique actors, resolved once after the scene is
// built. A handle is empty when its actor is missing or ambiguous.
type Scene struct {
	Player ecs.Handle
	Camera ecs.Handle
}

type SceneOptions struct {
	// Animated keeps the player's animation rig.
	Animated bool
}

func BuildScene(w *ecs.World, opts SceneOptions) (*Scene, error) {
	for _, prefab := range append([]string{FloorPrefab, PlayerPrefab, CameraPrefab}, lightPrefabs...) {
		e, err := BuildEntity(w, prefab)
		if err != nil {
			return nil, fmt.Errorf("scene: %w", err)
		}
		if prefab == PlayerPrefab && !opts.Animated {
			ecs.Remove(w, e, component.AnimationGraphComponent.Kind())
			ecs.Remove(w, e, component.AnimationPlayerComponent.Kind())
		}
	}

	scene := ResolveScene(w)
	logger.L().Info("scene built",
		zap.Int("entities", len(ecs.Entities(w))),
		zap.Bool("player", scene.Player.Set()),
		zap.Bool("camera", scene.Camera.Set()),
		zap.Bool("animated", opts.Animated),
	)
	return scene, nil
}

// ResolveScene binds the player and camera handles for an already populated
// world.
func ResolveScene(w *ecs.World) *Scene {
	return &Scene{
		Player: ecs.Resolve(w, component.PlayerTagComponent.Kind()),
		Camera: ecs.Resolve(w, component.CameraTagComponent.Kind()),
	}
}

// ReloadTuning re-reads the tuning components of a changed prefab into the
// live actors. It reports whether the file was one it knows.
func ReloadTuning(w *ecs.World, scene *Scene, prefab string) (bool, error) {
	if w == nil || scene == nil {
		return false, nil
	}
	switch prefab {
	case PlayerPrefab:
		e, ok := scene.Player.Entity(w)
		if !ok {
			return true, nil
		}
		spec, err := prefabs.LoadEntityBuildSpec(prefab)
		if err != nil {
			return true, fmt.Errorf("reload %s: %w", prefab, err)
		}
		loco, err := decodeLocomotion(spec.Components["locomotion"])
		if err != nil {
			return true, fmt.Errorf("reload %s: %w", prefab, err)
		}
		if err := ecs.Add(w, e, component.LocomotionComponent.Kind(), loco); err != nil {
			return true, fmt.Errorf("reload %s: %w", prefab, err)
		}
		logger.L().Info("player tuning reloaded",
			zap.Object("entity", e),
			zap.Float32("max_speed", loco.MaxSpeed),
			zap.Float32("float_height", loco.FloatHeight),
			zap.Float32("jump_height", loco.JumpHeight),
		)
		return true, nil
	case CameraPrefab:
		e, ok := scene.Camera.Entity(w)
		if !ok {
			return true, nil
		}
		spec, err := prefabs.LoadEntityBuildSpec(prefab)
		if err != nil {
			return true, fmt.Errorf("reload %s: %w", prefab, err)
		}
		follow, err := decodeCameraFollow(spec.Components["camera_follow"])
		if err != nil {
			return true, fmt.Errorf("reload %s: %w", prefab, err)
		}
		if err := ecs.Add(w, e, component.CameraFollowComponent.Kind(), follow); err != nil {
			return true, fmt.Errorf("reload %s: %w", prefab, err)
		}
		logger.L().Info("camera tuning reloaded",
			zap.Object("entity", e),
			zap.Float32("smoothness", follow.Smoothness),
			zap.Bool("clamp_blend", follow.ClampBlend),
		)
		return true, nil
	}
	return false, nil
}
