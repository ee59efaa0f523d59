package main

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/catjump/ecs"
	"github.com/milk9111/catjump/ecs/component"
	"github.com/milk9111/catjump/ecs/entity"
	"github.com/milk9111/catjump/input"
	"github.com/milk9111/catjump/prefabs"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	w := ecs.NewWorld()
	scene, err := entity.BuildScene(w, entity.SceneOptions{})
	if err != nil {
		t.Fatal(err)
	}
	g := &Game{world: w, scene: scene, clampBlend: true}
	g.applyClampBlend()
	return g
}

func TestToggleClampBlend(t *testing.T) {
	g := newTestGame(t)
	cam, _ := g.scene.Camera.Entity(g.world)
	follow, _ := ecs.Get(g.world, cam, component.CameraFollowComponent.Kind())

	if g.toggleClampBlend() || follow.ClampBlend {
		t.Fatal("first toggle should turn the clamp off")
	}
	if clampLabel(false) != "Camera clamp: off" {
		t.Fatalf("label = %q", clampLabel(false))
	}
	if !g.toggleClampBlend() || !follow.ClampBlend {
		t.Fatal("second toggle should turn the clamp back on")
	}
}

func TestRespawnPlayerUnpauses(t *testing.T) {
	g := newTestGame(t)
	g.paused = true
	g.respawnPlayer()

	player, _ := g.scene.Player.Entity(g.world)
	body, _ := ecs.Get(g.world, player, component.PhysicsBodyComponent.Kind())
	if !body.PendingRespawn || g.paused {
		t.Fatalf("pending=%v paused=%v", body.PendingRespawn, g.paused)
	}
}

func TestReloadScriptOnlyForRunningScript(t *testing.T) {
	g := newTestGame(t)
	script, err := input.NewScript("demo", []byte(`axis_x = 1 / (frame - 1)`))
	if err != nil {
		t.Fatal(err)
	}
	g.script = script
	g.scriptFile = prefabs.ScriptFile("demo")
	if c := script.Poll(); c.Direction != (mgl32.Vec3{}) {
		t.Fatalf("broken script should contribute nothing, got %v", c.Direction)
	}

	g.reloadScript("box.tengo")
	if c := script.Poll(); c.Direction != (mgl32.Vec3{}) {
		t.Fatal("another script's change must not reload this one")
	}

	g.reloadScript("demo.tengo")
	if c := script.Poll(); c.Direction == (mgl32.Vec3{}) {
		t.Fatal("demo script should walk after reload")
	}
}
