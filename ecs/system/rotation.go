package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hexplore/common"
	"github.com/milk9111/hexplore/ecs"
	"github.com/milk9111/hexplore/ecs/component"
)

// Heading is the angle from the +Y axis toward to, clockwise positive, so a
// heading of 0 faces up.
func Heading(from, to cp.Vector) float64 {
	return math.Atan2(to.X-from.X, to.Y-from.Y)
}

// RotateToward interpolates rotation toward target along the shorter arc.
// t is clamped to [0,1].
func RotateToward(rotation, target, t float64) float64 {
	t = common.Clamp(t, 0, 1)
	current := cp.ForAngle(rotation)
	goal := cp.ForAngle(target)
	if current.Dot(goal) <= -1+1e-9 {
		// Opposite headings have no unique arc; turn counter-clockwise.
		return current.Rotate(cp.ForAngle(t * math.Pi)).ToAngle()
	}
	return current.SLerp(goal, t).ToAngle()
}

// RotationSystem turns the player to face the cursor. The approach rate is
// RotateSpeed per second rather than a fixed duration.
type RotationSystem struct {
	handles *Handles
}

func NewRotationSystem(handles *Handles) *RotationSystem {
	return &RotationSystem{handles: handles}
}

func (s *RotationSystem) Update(w *ecs.World) {
	if w == nil || s.handles == nil {
		return
	}

	e := s.handles.Player
	player, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok || !player.Active {
		return
	}
	transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	input, ok := ecs.Get(w, e, component.InputComponent.Kind())
	if !ok {
		return
	}

	world, ok := cursorWorld(w, s.handles.Camera, input)
	if !ok {
		return
	}

	// Heading is clockwise from up; Rotation is counter-clockwise about depth.
	target := -Heading(transform.Position(), world)
	transform.Rotation = RotateToward(transform.Rotation, target, player.RotateSpeed*w.DeltaSeconds())
}
