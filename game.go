package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/catjump/common"
	"github.com/milk9111/catjump/ecs"
	"github.com/milk9111/catjump/ecs/component"
	"github.com/milk9111/catjump/ecs/entity"
	"github.com/milk9111/catjump/ecs/system"
	"github.com/milk9111/catjump/input"
	"github.com/milk9111/catjump/logger"
	"github.com/milk9111/catjump/prefabs"
	"go.uber.org/zap"
)

const tps = 60

type GameOptions struct {
	Debug bool
	// Touch enables the screen-quadrant touch source.
	Touch bool
	// Script names a tengo script under prefabs/scripts fed as extra input.
	Script     string
	ClampBlend bool
	HotReload  bool
}

type Game struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	scene     *entity.Scene
	render    *system.RenderSystem

	drag       *input.DragStick
	script     *input.Script
	scriptFile string
	watcher    *prefabs.Watcher

	pauseUI *ebitenui.UI
	paused  bool

	clampBlend bool
}

func NewGame(opts GameOptions) (*Game, error) {
	w := ecs.NewWorld()
	scene, err := entity.BuildScene(w, entity.SceneOptions{Animated: true})
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	joystick := &input.Joystick{}
	agg := input.NewAggregator(
		input.NewKeyboard(input.EbitenKeys{}),
		&input.Touch{
			State:   &input.EbitenTouches{Width: common.BaseWidth, Height: common.BaseHeight},
			Enabled: opts.Touch,
		},
		joystick,
	)
	g := &Game{
		world:      w,
		scene:      scene,
		clampBlend: opts.ClampBlend,
	}

	if opts.Script != "" {
		src, err := prefabs.LoadScript(opts.Script)
		if err != nil {
			return nil, fmt.Errorf("game: load script: %w", err)
		}
		script, err := input.NewScript(opts.Script, src)
		if err != nil {
			return nil, fmt.Errorf("game: %w", err)
		}
		agg.Add(script)
		g.script = script
		g.scriptFile = prefabs.ScriptFile(opts.Script)
		logger.L().Info("script input enabled", zap.String("script", g.scriptFile))
	}
	if !opts.Touch {
		g.drag = input.NewDragStick(&input.EbitenPointer{}, joystick)
	}
	g.applyClampBlend()

	g.render = system.NewRenderSystem(scene.Player, scene.Camera)
	g.render.Debug = opts.Debug
	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(agg, scene.Player),
		system.NewLocomotionSystem(scene.Player),
		system.NewPhysicsSystem(),
		system.NewCameraSystem(scene.Player, scene.Camera),
		system.NewAnimationSelectorSystem(),
		system.NewAnimationSystem(),
	)
	g.pauseUI = NewPauseUI(g)

	if opts.HotReload {
		watcher, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			logger.L().Warn("hot reload disabled", zap.Error(err))
		} else {
			g.watcher = watcher
			logger.L().Info("watching prefabs for changes")
		}
	}

	return g, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.reloadChanged()
	if g.drag != nil {
		g.drag.Update()
	}
	g.world.Advance(1.0 / tps)
	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) reloadChanged() {
	if g.watcher == nil {
		return
	}
	for _, name := range g.watcher.Drain() {
		if prefabs.IsScriptFile(name) {
			g.reloadScript(name)
			continue
		}
		known, err := entity.ReloadTuning(g.world, g.scene, name)
		if err != nil {
			logger.L().Warn("reload failed", zap.String("file", name), zap.Error(err))
			continue
		}
		if known && name == entity.CameraPrefab {
			g.applyClampBlend()
		}
	}
}

func (g *Game) reloadScript(name string) {
	if g.script == nil || name != g.scriptFile {
		return
	}
	src, err := prefabs.LoadScript(name)
	if err == nil {
		err = g.script.Reload(src)
	}
	if err != nil {
		logger.L().Warn("script reload failed", zap.String("script", name), zap.Error(err))
		return
	}
	logger.L().Info("script reloaded", zap.String("script", name))
}

// respawnPlayer is the pause menu's way out of a stuck or lost player.
func (g *Game) respawnPlayer() {
	if e, ok := g.scene.Player.Entity(g.world); ok {
		system.RequestRespawn(g.world, e)
	}
	g.paused = false
}

func (g *Game) toggleClampBlend() bool {
	g.clampBlend = !g.clampBlend
	g.applyClampBlend()
	logger.L().Info("camera blend clamp", zap.Bool("enabled", g.clampBlend))
	return g.clampBlend
}

// applyClampBlend lets the command line override the camera prefab.
func (g *Game) applyClampBlend() {
	e, ok := g.scene.Camera.Entity(g.world)
	if !ok {
		return
	}
	if follow, ok := ecs.Get(g.world, e, component.CameraFollowComponent.Kind()); ok {
		follow.ClampBlend = g.clampBlend
	}
}

var stickColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x50}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)

	if origin, ok := g.drag.Active(); ok {
		vector.StrokeCircle(screen, origin.X(), origin.Y(), g.drag.Radius, 2, stickColor, true)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
