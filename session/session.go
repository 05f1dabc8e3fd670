// Package session owns one play session: the world, the mode stack and the
// per-mode frame schedules.
package session

import (
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/hexplore/common"
	"github.com/milk9111/hexplore/ecs"
	"github.com/milk9111/hexplore/ecs/component"
	"github.com/milk9111/hexplore/ecs/mode"
	"github.com/milk9111/hexplore/ecs/system"
	"github.com/milk9111/hexplore/prefabs"
	"go.uber.org/zap"
)

// PlayerState survives explore exits so re-entering resumes in place.
type PlayerState struct {
	Position cp.Vector
}

type Session struct {
	ID      uuid.UUID
	World   *ecs.World
	Handles *system.Handles
	Offset  component.CameraOffset
	Player  PlayerState

	cfg       Config
	machine   *mode.Machine
	schedules map[mode.Mode]*ecs.Scheduler
	scripts   map[mode.Mode]*modeScript
	log       *zap.Logger
}

// New builds a session with no active mode. A nil poll leaves input
// components untouched, which tests use to script input directly.
func New(cfg Config, poll system.InputPoller, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	id := uuid.New()
	s := &Session{
		ID:      id,
		World:   ecs.NewWorld(),
		Handles: &system.Handles{},
		cfg:     cfg,
		machine: mode.NewMachine(),
		scripts: make(map[mode.Mode]*modeScript),
		log:     log.With(zap.String("session", id.String())),
	}

	var input ecs.System
	if poll != nil {
		input = system.NewInputSystem(poll)
	}
	rotation := system.NewRotationSystem(s.Handles)
	follow := system.NewCameraFollowSystem(s.Handles, &s.Offset)
	zoom := system.NewZoomSystem(s.Handles)

	s.schedules = map[mode.Mode]*ecs.Scheduler{
		mode.Base: ecs.NewScheduler(),
		mode.Explore: ecs.NewScheduler(
			input,
			system.NewTargetingSystem(s.Handles, s.log),
			system.NewGridMovementSystem(s.Handles),
			rotation,
			follow,
			zoom,
		),
		mode.Event: ecs.NewScheduler(
			input,
			system.NewFreeMovementSystem(s.Handles),
			rotation,
			follow,
			zoom,
		),
	}

	s.registerHooks()
	return s
}

func (s *Session) Mode() mode.Mode {
	return s.machine.Current()
}

func (s *Session) Stack() []mode.Mode {
	return s.machine.Stack()
}

// Set transitions to m, running exit and enter hooks along the way.
func (s *Session) Set(m mode.Mode) error {
	return s.machine.Set(m)
}

// Leave pops the current mode.
func (s *Session) Leave() error {
	return s.machine.Pop()
}

// ToggleEvent enters event mode from explore and returns from it.
func (s *Session) ToggleEvent() error {
	switch s.Mode() {
	case mode.Event:
		return s.machine.Set(mode.Explore)
	case mode.Explore:
		return s.machine.Push(mode.Event)
	default:
		return fmt.Errorf("%w: event needs explore, current is %s", mode.ErrInvalidTransition, s.Mode())
	}
}

// Close exits every mode.
func (s *Session) Close() error {
	return s.machine.Set(mode.None)
}

// Update advances the clock and runs the current mode's systems.
func (s *Session) Update(dt time.Duration) {
	s.World.Tick(dt)
	s.schedules[s.Mode()].Update(s.World)
}

func (s *Session) Viewport() common.Viewport {
	return s.cfg.Viewport
}

func (s *Session) SetViewport(vp common.Viewport) {
	s.cfg.Viewport = vp
	if p, ok := ecs.Get(s.World, s.Handles.Camera, component.ProjectionComponent.Kind()); ok {
		p.Viewport = vp
	}
}

func (s *Session) Zoom() prefabs.ZoomSpec {
	return s.cfg.Zoom
}

// PlayerPosition reports the live player position while explore is active.
func (s *Session) PlayerPosition() (cp.Vector, bool) {
	t, ok := ecs.Get(s.World, s.Handles.Player, component.TransformComponent.Kind())
	if !ok {
		return cp.Vector{}, false
	}
	return t.Position(), true
}

// SetActive freezes or unfreezes the player. It reports false when there
// is no player.
func (s *Session) SetActive(active bool) bool {
	p, ok := ecs.Get(s.World, s.Handles.Player, component.PlayerComponent.Kind())
	if !ok {
		return false
	}
	p.Active = active
	return true
}

func (s *Session) ToggleActive() bool {
	p, ok := ecs.Get(s.World, s.Handles.Player, component.PlayerComponent.Kind())
	if !ok {
		return false
	}
	p.Active = !p.Active
	return p.Active
}

// ApplyPlayerSpec updates the live player's speeds.
func (s *Session) ApplyPlayerSpec(spec prefabs.PlayerComponentSpec) {
	p, ok := ecs.Get(s.World, s.Handles.Player, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	p.MoveSpeed = spec.MoveSpeed
	p.RotateSpeed = spec.RotateSpeed
}

// ApplyZoom replaces the zoom levels used by later transitions. A running
// transition keeps its target.
func (s *Session) ApplyZoom(z prefabs.ZoomSpec) {
	s.cfg.Zoom = z
}

var errUnknownPrefab = errors.New("session: no reload handler")

// Reload applies a changed prefab file to the running session.
func (s *Session) Reload(change prefabs.Change) error {
	switch {
	case change.Kind == prefabs.ScriptChange:
		for m, ms := range s.scripts {
			if path.Base(ms.path) == path.Base(change.Name) {
				delete(s.scripts, m)
			}
		}
	case change.Name == "player.yaml":
		spec, err := prefabs.LoadEntityBuildSpec(change.Name)
		if err != nil {
			return err
		}
		player, err := prefabs.DecodeComponentSpec[prefabs.PlayerComponentSpec](spec.Components["player"])
		if err != nil {
			return fmt.Errorf("session: reload player: %w", err)
		}
		s.ApplyPlayerSpec(player)
	case change.Name == "camera.yaml":
		camera, err := prefabs.LoadCameraSettings()
		if err != nil {
			return err
		}
		s.ApplyZoom(camera.Zoom)
	case change.Name == "modes.yaml":
		modes, err := prefabs.LoadModesSpec()
		if err != nil {
			return err
		}
		s.cfg.Modes = modes
		s.scripts = make(map[mode.Mode]*modeScript)
	default:
		return fmt.Errorf("%w: %s", errUnknownPrefab, change.Name)
	}
	s.log.Info("prefab reloaded", zap.String("file", change.Name))
	return nil
}

// IsUnhandledReload reports whether err came from a file nothing reloads.
func IsUnhandledReload(err error) bool {
	return errors.Is(err, errUnknownPrefab)
}
