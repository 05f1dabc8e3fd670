package session

import (
	"fmt"

	"github.com/milk9111/hexplore/ecs"
	"github.com/milk9111/hexplore/ecs/component"
	"github.com/milk9111/hexplore/ecs/entity"
	"github.com/milk9111/hexplore/ecs/mode"
	"github.com/milk9111/hexplore/ecs/system"
	"go.uber.org/zap"
)

func (s *Session) registerHooks() {
	s.on(mode.Base, s.enterBase, s.exitBase)
	s.on(mode.Explore, s.enterExplore, s.exitExplore)
	s.on(mode.Event, s.enterEvent, s.exitEvent)
}

// on wraps the built-in hooks with logging and the mode's script.
func (s *Session) on(m mode.Mode, enter, exit func() error) {
	s.machine.On(m, mode.Hooks{
		Enter: func() error {
			if err := enter(); err != nil {
				return err
			}
			s.log.Info("mode enter", modeField(m))
			s.runScript(m, phaseEnter)
			return nil
		},
		Exit: func() error {
			err := exit()
			s.log.Info("mode exit", modeField(m))
			s.runScript(m, phaseExit)
			return err
		},
	})
}

func (s *Session) enterBase() error {
	camera, err := entity.NewCamera(s.World, s.cfg.Viewport)
	if err != nil {
		return fmt.Errorf("session: spawn camera: %w", err)
	}
	zoom := s.cfg.Zoom.Explore
	if p, ok := ecs.Get(s.World, camera, component.ProjectionComponent.Kind()); ok {
		p.Scale = zoom
	}
	if f, ok := ecs.Get(s.World, camera, component.CameraFollowComponent.Kind()); ok {
		*f = component.CameraFollow{Scale: zoom, Target: zoom}
	}

	resolved, err := ecs.Single(s.World, component.CameraTagComponent.Kind())
	if err != nil {
		entity.DespawnScope(s.World, mode.Base)
		return fmt.Errorf("session: resolve camera: %w", err)
	}
	s.Handles.Camera = resolved
	return nil
}

func (s *Session) exitBase() error {
	entity.DespawnScope(s.World, mode.Base)
	s.Handles.Camera = 0
	s.Offset = component.CameraOffset{}
	return nil
}

func (s *Session) enterExplore() error {
	spawn := s.Player.Position
	if _, err := entity.NewPlayerAt(s.World, spawn); err != nil {
		return fmt.Errorf("session: spawn player: %w", err)
	}
	if _, err := entity.NewTargetMarkerAt(s.World, spawn); err != nil {
		entity.DespawnScope(s.World, mode.Explore)
		return fmt.Errorf("session: spawn target marker: %w", err)
	}

	player, err := ecs.Single(s.World, component.PlayerTagComponent.Kind())
	if err != nil {
		entity.DespawnScope(s.World, mode.Explore)
		return fmt.Errorf("session: resolve player: %w", err)
	}
	marker, err := ecs.Single(s.World, component.TargetMarkerTagComponent.Kind())
	if err != nil {
		entity.DespawnScope(s.World, mode.Explore)
		return fmt.Errorf("session: resolve target marker: %w", err)
	}
	s.Handles.Player = player
	s.Handles.Marker = marker
	s.log.Debug("player spawned", positionFields(spawn)...)
	return nil
}

func (s *Session) exitExplore() error {
	if pos, ok := s.PlayerPosition(); ok {
		s.Player.Position = pos
	}
	entity.DespawnScope(s.World, mode.Explore)
	s.Handles.Player = 0
	s.Handles.Marker = 0
	s.log.Debug("player saved", positionFields(s.Player.Position)...)
	return nil
}

// enterEvent zooms out and drops any pending click target so free movement
// starts from where the player stands.
func (s *Session) enterEvent() error {
	s.retargetZoom(s.cfg.Zoom.Event)
	grid, ok := ecs.Get(s.World, s.Handles.Player, component.GridTargetComponent.Kind())
	if !ok {
		return nil
	}
	if pos, ok := s.PlayerPosition(); ok {
		grid.Target = pos
	}
	return nil
}

func (s *Session) exitEvent() error {
	s.retargetZoom(s.cfg.Zoom.Explore)
	return nil
}

// retargetZoom starts a zoom transition on the camera. It reports false
// when there is no camera.
func (s *Session) retargetZoom(target float64) bool {
	follow, ok := ecs.Get(s.World, s.Handles.Camera, component.CameraFollowComponent.Kind())
	if !ok {
		return false
	}
	projection, ok := ecs.Get(s.World, s.Handles.Camera, component.ProjectionComponent.Kind())
	if !ok {
		return false
	}
	*follow = system.RetargetZoom(*follow, target, projection.Scale, s.cfg.Zoom.Duration)
	s.log.Debug("zoom retarget", zap.Float64("from", projection.Scale), zap.Float64("to", target))
	return true
}
