package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/catjump/common"
	"github.com/milk9111/catjump/logger"
	"go.uber.org/zap"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	touch := flag.Bool("touch", false, "steer with screen-quadrant touches")
	script := flag.String("script", "", "tengo input script in prefabs/scripts (basename, .tengo optional)")
	clamp := flag.Bool("clamp", true, "clamp the camera blend factor to 1")
	hot := flag.Bool("hot", false, "reload prefab tuning when files in prefabs/ change")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	level := "info"
	if *debug {
		level = "debug"
	}
	lg, err := logger.New(logger.Config{Level: level, Development: *debug})
	if err != nil {
		log.Fatal(err)
	}
	logger.Set(lg)
	defer func() { _ = lg.Sync() }()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("Anoncat Jump Jump")
	ebiten.SetTPS(tps)

	game, err := NewGame(GameOptions{
		Debug:      *debug,
		Touch:      *touch,
		Script:     *script,
		ClampBlend: *clamp,
		HotReload:  *hot,
	})
	if err != nil {
		lg.Fatal("start game", zap.Error(err))
	}
	defer func() { _ = game.Close() }()

	if err := ebiten.RunGame(game); err != nil {
		lg.Error("game exited", zap.Error(err))
	}
}
