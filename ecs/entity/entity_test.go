package entity

import (
	"image/color"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/catjump/common"
	"github.com/milk9111/catjump/ecs"
	"github.com/milk9111/catjump/ecs/component"
	"github.com/milk9111/catjump/prefabs"
)

// vecNear compares component-wise with an absolute tolerance.
func vecNear(a, b mgl32.Vec3, eps float32) bool {
	for i := range a {
		if mgl32.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

func TestBuildScene(t *testing.T) {
	tests := []struct {
		name     string
		animated bool
	}{
		{"animated", true},
		{"static", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			scene, err := BuildScene(w, SceneOptions{Animated: tc.animated})
			if err != nil {
				t.Fatalf("BuildScene: %v", err)
			}
			player, ok := scene.Player.Entity(w)
			if !ok {
				t.Fatal("player handle not resolved")
			}
			if _, ok := scene.Camera.Entity(w); !ok {
				t.Fatal("camera handle not resolved")
			}

			loco, ok := ecs.Get(w, player, component.LocomotionComponent.Kind())
			if !ok || loco.MaxSpeed != 10 || loco.FloatHeight != 0.4 || loco.JumpHeight != 4 {
				t.Fatalf("unexpected locomotion %+v", loco)
			}
			body, ok := ecs.Get(w, player, component.PhysicsBodyComponent.Kind())
			if !ok || body.Spawn != (mgl32.Vec3{0, 0.8, 0}) {
				t.Fatalf("unexpected physics body %+v", body)
			}

			graph, hasGraph := ecs.Get(w, player, component.AnimationGraphComponent.Kind())
			if hasGraph != tc.animated {
				t.Fatalf("animation graph present = %v, want %v", hasGraph, tc.animated)
			}
			if tc.animated {
				if len(graph.Clips) != 8 || graph.JumpClip != 1 {
					t.Fatalf("unexpected graph %+v", graph)
				}
				if graph.Clips[1].Name != "cat4.glb#Animation1" || graph.Clips[7].Index != 7 {
					t.Fatalf("clips not in load order: %+v", graph.Clips)
				}
				anim, _ := ecs.Get(w, player, component.AnimationPlayerComponent.Kind())
				if anim.Current != 0 || !anim.Looping {
					t.Fatalf("initial clip not looping: %+v", anim)
				}
			}
		})
	}
}

func TestCameraPrefab(t *testing.T) {
	w := ecs.NewWorld()
	cam, err := BuildEntity(w, CameraPrefab)
	if err != nil {
		t.Fatal(err)
	}
	follow, _ := ecs.Get(w, cam, component.CameraFollowComponent.Kind())
	if follow.Offset != (mgl32.Vec3{0, 2.5, 8}) || follow.LookAtOffset != (mgl32.Vec3{0, 1.5, 0}) || follow.Smoothness != 5 {
		t.Fatalf("unexpected follow %+v", follow)
	}
	state, _ := ecs.Get(w, cam, component.CameraFollowStateComponent.Kind())
	if state.Position != (mgl32.Vec3{}) {
		t.Fatalf("follow state should start at origin, got %v", state.Position)
	}
	tr, _ := ecs.Get(w, cam, component.TransformComponent.Kind())
	fwd := tr.Rotation.Rotate(common.Forward)
	want := mgl32.Vec3{0, -1, -8}.Normalize()
	if !vecNear(fwd, want, 1e-4) {
		t.Fatalf("camera forward = %v, want %v", fwd, want)
	}
}

func TestSunLooksDown(t *testing.T) {
	w := ecs.NewWorld()
	sun, err := BuildEntity(w, "sun.yaml")
	if err != nil {
		t.Fatal(err)
	}
	tr, _ := ecs.Get(w, sun, component.TransformComponent.Kind())
	if fwd := tr.Rotation.Rotate(common.Forward); !vecNear(fwd, mgl32.Vec3{0, -1, 0}, 1e-4) {
		t.Fatalf("sun forward = %v", fwd)
	}
	light, _ := ecs.Get(w, sun, component.LightComponent.Kind())
	if light.Kind != component.DirectionalLight || light.Color != (color.NRGBA{R: 0xff, G: 0xf4, B: 0xe0, A: 0xff}) {
		t.Fatalf("unexpected light %+v", light)
	}
}

func TestBuildFromSpecErrors(t *testing.T) {
	tests := []struct {
		name    string
		spec    prefabs.EntityBuildSpec
		wantErr string
	}{
		{"empty", prefabs.EntityBuildSpec{Name: "empty"}, "does not define components"},
		{"unknown_component", prefabs.EntityBuildSpec{Components: map[string]any{"player_tag": nil, "jetpack": nil}}, `"jetpack"`},
		{"bad_vector", prefabs.EntityBuildSpec{Components: map[string]any{
			"transform": map[string]any{"position": []any{1, 2}},
		}}, "expected 3 components"},
		{"bad_jump_clip", prefabs.EntityBuildSpec{Components: map[string]any{
			"animation_graph": map[string]any{"asset": "cat.glb", "clip_count": 2, "jump_clip": 5},
		}}, "jump_clip 5 out of range"},
		{"bad_light", prefabs.EntityBuildSpec{Components: map[string]any{
			"light": map[string]any{"kind": "spot"},
		}}, "unknown light kind"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			_, err := buildFromSpec(w, tc.spec, tc.name)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("err = %v, want containing %q", err, tc.wantErr)
			}
			if n := len(ecs.Entities(w)); n != 0 {
				t.Fatalf("failed build left %d entities", n)
			}
		})
	}
}

func TestResolveSceneAmbiguousPlayer(t *testing.T) {
	w := ecs.NewWorld()
	for i := 0; i < 2; i++ {
		if _, err := BuildEntity(w, PlayerPrefab); err != nil {
			t.Fatal(err)
		}
	}
	scene := ResolveScene(w)
	if scene.Player.Set() {
		t.Fatal("two players should leave the handle empty")
	}
	if scene.Camera.Set() {
		t.Fatal("no camera should leave the handle empty")
	}
}

func TestReloadTuning(t *testing.T) {
	w := ecs.NewWorld()
	scene, err := BuildScene(w, SceneOptions{})
	if err != nil {
		t.Fatal(err)
	}
	player, _ := scene.Player.Entity(w)
	loco, _ := ecs.Get(w, player, component.LocomotionComponent.Kind())
	loco.MaxSpeed = 99

	known, err := ReloadTuning(w, scene, PlayerPrefab)
	if !known || err != nil {
		t.Fatalf("ReloadTuning known=%v err=%v", known, err)
	}
	loco, _ = ecs.Get(w, player, component.LocomotionComponent.Kind())
	if loco.MaxSpeed != 10 {
		t.Fatalf("max speed not reloaded: %v", loco.MaxSpeed)
	}

	if known, _ := ReloadTuning(w, scene, "notes.yaml"); known {
		t.Fatal("unrelated prefab should not be handled")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#ffffff", color.NRGBA{255, 255, 255, 255}, false},
		{"102030", color.NRGBA{0x10, 0x20, 0x30, 0xff}, false},
		{"#10203040", color.NRGBA{0x10, 0x20, 0x30, 0x40}, false},
		{"#xyz", color.NRGBA{}, true},
	}
	for _, tc := range tests {
		got, err := parseHexColor(tc.in)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Fatalf("parseHexColor(%q) = %v, %v", tc.in, got, err)
		}
	}
}

func TestExplicitZeroTuningIsKept(t *testing.T) {
	loco, err := decodeLocomotion(map[string]any{"max_speed": 6, "float_height": 0})
	if err != nil {
		t.Fatal(err)
	}
	if loco.MaxSpeed != 6 || loco.FloatHeight != 0 || loco.JumpHeight != 4 {
		t.Fatalf("unexpected locomotion %+v", loco)
	}

	follow, err := decodeCameraFollow(map[string]any{"smoothness": 0})
	if err != nil {
		t.Fatal(err)
	}
	if follow.Smoothness != 0 {
		t.Fatalf("smoothness = %v, want an explicit 0 kept", follow.Smoothness)
	}

	follow, err = decodeCameraFollow(nil)
	if err != nil {
		t.Fatal(err)
	}
	if follow.Smoothness != 5 || !follow.ClampBlend {
		t.Fatalf("defaults not applied: %+v", follow)
	}

	if _, err := decodeLocomotion(map[string]any{"jump_height": -1}); err == nil {
		t.Fatal("negative jump height should be rejected")
	}
}
