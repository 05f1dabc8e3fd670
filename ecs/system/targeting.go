package system

import (
	"github.com/milk9111/hexplore/ecs"
	"github.com/milk9111/hexplore/ecs/component"
	"go.uber.org/zap"
)

// TargetingSystem keeps the live cursor point on the player's grid target,
// commits it on click and moves the target marker to preview it.
type TargetingSystem struct {
	handles *Handles
	log     *zap.Logger
}

func NewTargetingSystem(handles *Handles, log *zap.Logger) *TargetingSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &TargetingSystem{handles: handles, log: log}
}

func (s *TargetingSystem) Update(w *ecs.World) {
	if w == nil || s.handles == nil {
		return
	}

	e := s.handles.Player
	grid, ok := ecs.Get(w, e, component.GridTargetComponent.Kind())
	if !ok {
		return
	}
	input, ok := ecs.Get(w, e, component.InputComponent.Kind())
	if !ok {
		return
	}

	// No cursor this frame: keep the last known point.
	if world, ok := cursorWorld(w, s.handles.Camera, input); ok {
		grid.Mouse = world
	}

	player, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if ok && player.Active && input.CommitPressed {
		grid.Target = grid.Mouse
		input.CommitPressed = false
		s.logCommit(w, e, grid)
	}

	if marker, ok := ecs.Get(w, s.handles.Marker, component.TransformComponent.Kind()); ok {
		marker.SetPosition(grid.Mouse)
	}
}

func (s *TargetingSystem) logCommit(w *ecs.World, e ecs.Entity, grid *component.GridTarget) {
	fields := []zap.Field{
		zap.Float64("x", grid.Target.X),
		zap.Float64("y", grid.Target.Y),
	}
	transform, hasTransform := ecs.Get(w, e, component.TransformComponent.Kind())
	movement, hasMovement := ecs.Get(w, e, component.GridMovementComponent.Kind())
	if hasTransform && hasMovement {
		dist := transform.Position().Distance(grid.Target)
		fields = append(fields,
			zap.Float64("distance", dist),
			zap.Stringer("cost", movement.TripCost(dist)),
		)
	}
	s.log.Debug("commit target", fields...)
}
