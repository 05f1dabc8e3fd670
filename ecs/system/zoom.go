package system

import (
	"time"

	"github.com/milk9111/hexplore/common"
	"github.com/milk9111/hexplore/ecs"
	"github.com/milk9111/hexplore/ecs/component"
)

// RetargetZoom starts a transition from the rendered scale to target.
// Retargeting to the current target is a no-op and does not restart the timer.
func RetargetZoom(cf component.CameraFollow, target, rendered float64, duration time.Duration) component.CameraFollow {
	if target == cf.Target {
		return cf
	}
	cf.Scale = rendered
	cf.Target = target
	cf.Timer = common.NewTimer(duration)
	return cf
}

// AdvanceZoom ticks a transition and returns the new state and the scale to
// render. On completion the scale snaps exactly to the target.
func AdvanceZoom(cf component.CameraFollow, dt time.Duration) (component.CameraFollow, float64) {
	if !cf.Transitioning() {
		return cf, cf.Scale
	}

	cf.Timer.Tick(dt)
	if cf.Timer.Finished() {
		cf.Scale = cf.Target
		return cf, cf.Target
	}
	return cf, common.Lerp(cf.Scale, cf.Target, cf.Timer.Fraction())
}

// ZoomSystem applies zoom transitions to the camera projection.
type ZoomSystem struct {
	handles *Handles
}

func NewZoomSystem(handles *Handles) *ZoomSystem {
	return &ZoomSystem{handles: handles}
}

func (z *ZoomSystem) Update(w *ecs.World) {
	if w == nil || z.handles == nil {
		return
	}

	follow, ok := ecs.Get(w, z.handles.Camera, component.CameraFollowComponent.Kind())
	if !ok || !follow.Transitioning() {
		return
	}
	projection, ok := ecs.Get(w, z.handles.Camera, component.ProjectionComponent.Kind())
	if !ok {
		return
	}

	next, scale := AdvanceZoom(*follow, w.Delta())
	*follow = next
	projection.Scale = scale
}
