package entity

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/catjump/common"
	"github.com/milk9111/catjump/ecs"
	"github.com/milk9111/catjump/ecs/component"
	"github.com/milk9111/catjump/prefabs"
)

type entityPrefabSpec = prefabs.EntityBuildSpec

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":           addPlayerTag,
	"camera_tag":           addCameraTag,
	"floor_tag":            addFloorTag,
	"transform":            addTransform,
	"motion_intent":        addMotionIntent,
	"locomotion":           addLocomotion,
	"character_controller": addCharacterController,
	"physics_body":         addPhysicsBody,
	"static_collider":      addStaticCollider,
	"camera_follow":        addCameraFollow,
	"camera_follow_state":  addCameraFollowState,
	"projection":           addProjection,
	"animation_graph":      addAnimationGraph,
	"light":                addLight,
}

// Components that read other components at build time come after them.
var componentBuildOrder = []string{
	"player_tag",
	"camera_tag",
	"floor_tag",
	"transform",
	"motion_intent",
	"locomotion",
	"character_controller",
	"physics_body",
	"static_collider",
	"camera_follow",
	"camera_follow_state",
	"projection",
	"animation_graph",
	"light",
}

// BuildEntity creates an entity from a prefab file. On any error the
// partially built entity is destroyed.
func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	return buildFromSpec(w, spec, prefabPath)
}

func buildFromSpec(w *ecs.World, spec entityPrefabSpec, prefabPath string) (ecs.Entity, error) {
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	names := make([]string, 0, len(remaining))
	for _, name := range componentBuildOrder {
		if _, ok := remaining[name]; ok {
			names = append(names, name)
			delete(remaining, name)
		}
	}
	unknown := make([]string, 0, len(remaining))
	for name := range remaining {
		unknown = append(unknown, name)
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, unknown[0])
	}

	for _, name := range names {
		if err := componentRegistry[name](w, e, spec.Components[name], ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
	}

	return e, nil
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
}

func addFloorTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.FloorTagComponent.Kind(), &component.FloorTag{})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	pos, err := vec3(spec.Position, mgl32.Vec3{})
	if err != nil {
		return fmt.Errorf("position: %w", err)
	}
	scale, err := vec3(spec.Scale, mgl32.Vec3{1, 1, 1})
	if err != nil {
		return fmt.Errorf("scale: %w", err)
	}
	up, err := vec3(spec.Up, common.Up)
	if err != nil {
		return fmt.Errorf("up: %w", err)
	}

	rot := mgl32.QuatIdent()
	if len(spec.LookAt) > 0 {
		target, err := vec3(spec.LookAt, mgl32.Vec3{})
		if err != nil {
			return fmt.Errorf("look_at: %w", err)
		}
		q, ok := common.LookRotation(target.Sub(pos), up)
		if !ok {
			return fmt.Errorf("look_at %v is degenerate from %v with up %v", target, pos, up)
		}
		rot = q
	}

	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		Position: pos,
		Rotation: rot,
		Scale:    scale,
	})
}

func addMotionIntent(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.MotionIntentComponent.Kind(), &component.MotionIntent{})
}

type locomotionSpec = prefabs.LocomotionComponentSpec

func addLocomotion(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	loco, err := decodeLocomotion(raw)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.LocomotionComponent.Kind(), loco)
}

func decodeLocomotion(raw any) (*component.Locomotion, error) {
	spec, err := prefabs.DecodeComponentSpec[locomotionSpec](raw)
	if err != nil {
		return nil, fmt.Errorf("decode locomotion spec: %w", err)
	}
	loco := &component.Locomotion{
		MaxSpeed:    valueOr(spec.MaxSpeed, 10),
		FloatHeight: valueOr(spec.FloatHeight, 0.4),
		JumpHeight:  valueOr(spec.JumpHeight, 4),
	}
	if loco.MaxSpeed < 0 || loco.FloatHeight < 0 || loco.JumpHeight < 0 {
		return nil, fmt.Errorf("locomotion values must not be negative: %+v", *loco)
	}
	return loco, nil
}

// valueOr returns def when the field was left out of the prefab.
func valueOr(v *float32, def float32) float32 {
	if v == nil {
		return def
	}
	return *v
}

func addCharacterController(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CharacterControllerComponent.Kind(), &component.CharacterController{})
}

type physicsBodySpec = prefabs.PhysicsBodyComponentSpec

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[physicsBodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics body spec: %w", err)
	}
	if spec.Radius <= 0 {
		spec.Radius = 0.4
	}
	if spec.Mass <= 0 {
		spec.Mass = 1
	}

	var spawn mgl32.Vec3
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		spawn = t.Position
	}
	return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Radius:     spec.Radius,
		HalfHeight: spec.HalfHeight,
		Mass:       spec.Mass,
		Spawn:      spawn,
	})
}

type staticColliderSpec = prefabs.StaticColliderComponentSpec

func addStaticCollider(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[staticColliderSpec](raw)
	if err != nil {
		return fmt.Errorf("decode static collider spec: %w", err)
	}
	size, err := vec3(spec.Size, mgl32.Vec3{1, 1, 1})
	if err != nil {
		return fmt.Errorf("size: %w", err)
	}
	if size.X() <= 0 || size.Y() <= 0 || size.Z() <= 0 {
		return fmt.Errorf("size must be positive, got %v", size)
	}
	return ecs.Add(w, e, component.StaticColliderComponent.Kind(), &component.StaticCollider{
		HalfExtents: size.Mul(0.5),
	})
}

type cameraFollowSpec = prefabs.CameraFollowComponentSpec

func addCameraFollow(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	follow, err := decodeCameraFollow(raw)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.CameraFollowComponent.Kind(), follow)
}

func decodeCameraFollow(raw any) (*component.CameraFollow, error) {
	spec, err := prefabs.DecodeComponentSpec[cameraFollowSpec](raw)
	if err != nil {
		return nil, fmt.Errorf("decode camera follow spec: %w", err)
	}
	offset, err := vec3(spec.Offset, mgl32.Vec3{0, 2.5, 8})
	if err != nil {
		return nil, fmt.Errorf("offset: %w", err)
	}
	lookAt, err := vec3(spec.LookAtOffset, mgl32.Vec3{0, 1.5, 0})
	if err != nil {
		return nil, fmt.Errorf("look_at_offset: %w", err)
	}
	smoothness := valueOr(spec.Smoothness, 5)
	if smoothness < 0 {
		return nil, fmt.Errorf("smoothness must not be negative, got %v", smoothness)
	}
	clamp := true
	if spec.ClampBlend != nil {
		clamp = *spec.ClampBlend
	}
	return &component.CameraFollow{
		Offset:       offset,
		LookAtOffset: lookAt,
		Smoothness:   smoothness,
		ClampBlend:   clamp,
	}, nil
}

type cameraFollowStateSpec = prefabs.CameraFollowStateComponentSpec

func addCameraFollowState(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[cameraFollowStateSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera follow state spec: %w", err)
	}
	pos, err := vec3(spec.Position, mgl32.Vec3{})
	if err != nil {
		return fmt.Errorf("position: %w", err)
	}
	return ecs.Add(w, e, component.CameraFollowStateComponent.Kind(), &component.CameraFollowState{Position: pos})
}

type projectionSpec = prefabs.ProjectionComponentSpec

func addProjection(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[projectionSpec](raw)
	if err != nil {
		return fmt.Errorf("decode projection spec: %w", err)
	}
	if spec.FovY == 0 {
		spec.FovY = 45
	}
	if spec.Near == 0 {
		spec.Near = 0.1
	}
	if spec.Far == 0 {
		spec.Far = 1000
	}
	return ecs.Add(w, e, component.ProjectionComponent.Kind(), &component.Projection{
		FovY: mgl32.DegToRad(spec.FovY),
		Near: spec.Near,
		Far:  spec.Far,
	})
}

type animationGraphSpec = prefabs.AnimationGraphComponentSpec

// addAnimationGraph loads the clip handles in order and starts the initial
// clip looping.
func addAnimationGraph(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[animationGraphSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animation graph spec: %w", err)
	}
	names := spec.Clips
	if len(names) == 0 {
		if spec.Asset == "" || spec.ClipCount <= 0 {
			return fmt.Errorf("animation graph needs clips or asset and clip_count")
		}
		names = make([]string, spec.ClipCount)
		for i := range names {
			names[i] = fmt.Sprintf("%s#Animation%d", spec.Asset, i)
		}
	}
	if spec.ClipDuration <= 0 {
		spec.ClipDuration = 1
	}
	if spec.JumpClip < 0 || spec.JumpClip >= len(names) {
		return fmt.Errorf("jump_clip %d out of range [0, %d)", spec.JumpClip, len(names))
	}
	if spec.InitialClip < 0 || spec.InitialClip >= len(names) {
		return fmt.Errorf("initial_clip %d out of range [0, %d)", spec.InitialClip, len(names))
	}

	graph := &component.AnimationGraph{
		Clips:    make([]component.ClipHandle, len(names)),
		JumpClip: spec.JumpClip,
		Initial:  spec.InitialClip,
	}
	for i, name := range names {
		graph.Clips[i] = component.ClipHandle{Index: i, Name: name, Duration: spec.ClipDuration}
	}
	if err := ecs.Add(w, e, component.AnimationGraphComponent.Kind(), graph); err != nil {
		return err
	}

	player := component.NewAnimationPlayer()
	player.Play(graph.Initial, true)
	return ecs.Add(w, e, component.AnimationPlayerComponent.Kind(), player)
}

type lightSpec = prefabs.LightComponentSpec

func addLight(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[lightSpec](raw)
	if err != nil {
		return fmt.Errorf("decode light spec: %w", err)
	}
	var kind component.LightKind
	switch strings.ToLower(spec.Kind) {
	case "", "point":
		kind = component.PointLight
	case "directional":
		kind = component.DirectionalLight
	default:
		return fmt.Errorf("unknown light kind %q", spec.Kind)
	}
	clr := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	if spec.Color != "" {
		clr, err = parseHexColor(spec.Color)
		if err != nil {
			return err
		}
	}
	return ecs.Add(w, e, component.LightComponent.Kind(), &component.Light{
		Kind:        kind,
		Color:       clr,
		Illuminance: spec.Illuminance,
		Shadows:     spec.Shadows,
	})
}

func vec3(v []float32, def mgl32.Vec3) (mgl32.Vec3, error) {
	switch len(v) {
	case 0:
		return def, nil
	case 3:
		return mgl32.Vec3{v[0], v[1], v[2]}, nil
	default:
		return mgl32.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(v))
	}
}

func parseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
