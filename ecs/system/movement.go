package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/hexplore/common"
	"github.com/milk9111/hexplore/ecs"
	"github.com/milk9111/hexplore/ecs/component"
)

// StepFree applies one frame of keyboard movement. Opposing keys cancel; the
// second result is true whenever any directional key is held, even if the
// net direction is zero.
func StepFree(pos cp.Vector, in component.Input, moveSpeed, dt float64) (cp.Vector, bool) {
	var dir cp.Vector
	if in.Up {
		dir.Y += 1
	}
	if in.Down {
		dir.Y -= 1
	}
	if in.Left {
		dir.X -= 1
	}
	if in.Right {
		dir.X += 1
	}

	moved := in.AnyDirection()
	if dir.X == 0 && dir.Y == 0 {
		return pos, moved
	}

	step := moveSpeed * dt * common.TileSize * 0.5
	return pos.Add(dir.Normalize().Mult(step)), moved
}

// StepToward walks pos toward target by at most moveSpeed*dt*TileSize and
// snaps onto target when it is within one step. Within ArrivalThreshold,
// pos is returned unchanged.
func StepToward(pos, target cp.Vector, moveSpeed, dt float64) cp.Vector {
	dist := pos.Distance(target)
	if dist <= common.ArrivalThreshold {
		return pos
	}

	step := moveSpeed * dt * common.TileSize
	if dist > step {
		return pos.Add(target.Sub(pos).Mult(step / dist))
	}
	return target
}

// FreeMovementSystem moves the player directly from the keyboard. Free
// movement always counts as arrived: the grid target follows the player.
type FreeMovementSystem struct {
	handles *Handles
}

func NewFreeMovementSystem(handles *Handles) *FreeMovementSystem {
	return &FreeMovementSystem{handles: handles}
}

func (s *FreeMovementSystem) Update(w *ecs.World) {
	if w == nil || s.handles == nil {
		return
	}

	e := s.handles.Player
	player, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	player.Moved = false
	if !player.Active {
		return
	}

	input, ok := ecs.Get(w, e, component.InputComponent.Kind())
	if !ok {
		return
	}
	transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}

	pos, moved := StepFree(transform.Position(), *input, player.MoveSpeed, w.DeltaSeconds())
	if !moved {
		return
	}
	player.Moved = true
	transform.SetPosition(pos)
	if grid, ok := ecs.Get(w, e, component.GridTargetComponent.Kind()); ok {
		grid.Target = pos
	}
}

// GridMovementSystem walks the player toward its committed grid target.
type GridMovementSystem struct {
	handles *Handles
}

func NewGridMovementSystem(handles *Handles) *GridMovementSystem {
	return &GridMovementSystem{handles: handles}
}

func (s *GridMovementSystem) Update(w *ecs.World) {
	if w == nil || s.handles == nil {
		return
	}

	e := s.handles.Player
	player, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	player.Moved = false
	if !player.Active {
		return
	}

	grid, ok := ecs.Get(w, e, component.GridTargetComponent.Kind())
	if !ok {
		return
	}
	transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}

	pos := transform.Position()
	next := StepToward(pos, grid.Target, player.MoveSpeed, w.DeltaSeconds())
	if next != pos {
		transform.SetPosition(next)
		player.Moved = true
	}
}
