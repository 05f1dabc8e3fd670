package main

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/hexplore/common"
	"github.com/milk9111/hexplore/ecs"
	"github.com/milk9111/hexplore/ecs/component"
	"github.com/milk9111/hexplore/ecs/system"
	"github.com/milk9111/hexplore/prefabs"
	"github.com/milk9111/hexplore/session"
	"go.uber.org/zap"
	"golang.org/x/image/colornames"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Game struct {
	frames int
	debug  bool

	session *session.Session
	render  *system.DebugRenderSystem
	watcher *prefabs.Watcher
	log     *zap.Logger
}

func NewGame(cfg session.Config, debug, watch bool, log *zap.Logger) (*Game, error) {
	g := &Game{debug: debug, log: log}

	cfg.Viewport = common.Viewport{Width: baseWidth, Height: baseHeight}
	poll := system.EbitenPoller(func() common.Viewport { return g.session.Viewport() })
	g.session = session.New(cfg, poll, log)
	g.render = system.NewDebugRenderSystem(g.session.Handles)

	if watch {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			return nil, fmt.Errorf("game: watch prefabs: %w", err)
		}
		g.watcher = w
	}

	if err := g.session.Set(cfg.StartMode); err != nil {
		g.Close()
		return nil, fmt.Errorf("game: start %s: %w", cfg.StartMode, err)
	}
	log.Info("session started", zap.Stringer("id", g.session.ID), zap.Stringer("mode", cfg.StartMode))
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	if err := g.session.Close(); err != nil {
		g.log.Warn("session close", zap.Error(err))
	}
}

func (g *Game) Update() error {
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if err := g.session.ToggleEvent(); err != nil {
			g.log.Warn("toggle event", zap.Error(err))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyGraveAccent) {
		g.debug = !g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		active := g.session.ToggleActive()
		g.log.Debug("player active", zap.Bool("active", active))
	}
	g.reload()

	g.session.Update(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	for _, change := range g.watcher.Drain() {
		if err := g.session.Reload(change); err != nil && !session.IsUnhandledReload(err) {
			g.log.Warn("prefab reload", zap.String("file", change.Name), zap.Error(err))
		}
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.log.Warn("prefab watcher", zap.Error(err))
		}
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Darkslategray)
	g.render.Draw(g.session.World, screen)

	if !g.debug {
		return
	}
	msg := fmt.Sprintf("Frames: %d    FPS: %.2f    Mode: %s", g.frames, ebiten.ActualFPS(), g.session.Mode())
	if pos, ok := g.session.PlayerPosition(); ok {
		msg += fmt.Sprintf("\nPlayer: %.1f, %.1f", pos.X, pos.Y)
	}
	if grid, ok := ecs.Get(g.session.World, g.session.Handles.Player, component.GridTargetComponent.Kind()); ok {
		msg += fmt.Sprintf("\nTarget: %.1f, %.1f", grid.Target.X, grid.Target.Y)
	}
	if p, ok := ecs.Get(g.session.World, g.session.Handles.Camera, component.ProjectionComponent.Kind()); ok {
		msg += fmt.Sprintf("\nZoom: %.3f", p.Scale)
	}
	ebitenutil.DebugPrint(screen, msg)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	vp := common.Viewport{Width: float64(outsideWidth), Height: float64(outsideHeight)}
	if vp.Valid() && vp != g.session.Viewport() {
		g.session.SetViewport(vp)
	}
	return outsideWidth, outsideHeight
}
