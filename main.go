package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/hexplore/ecs/mode"
	"github.com/milk9111/hexplore/session"
	"go.uber.org/zap"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging and overlay")
	watch := flag.Bool("watch", false, "hot reload prefabs from disk")
	startMode := flag.String("mode", "explore", "starting mode: base, explore or event")
	flag.Parse()

	logger, err := newLogger(*debug)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	start, err := mode.Parse(*startMode)
	if err != nil {
		logger.Fatal("bad -mode flag", zap.Error(err))
	}

	cfg, err := session.LoadConfig()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	cfg.StartMode = start

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("hexplore")

	game, err := NewGame(cfg, *debug, *watch, logger)
	if err != nil {
		logger.Fatal("start game", zap.Error(err))
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		logger.Error("run game", zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
