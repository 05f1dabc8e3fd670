package system

import (
	"github.com/milk9111/hexplore/ecs"
	"github.com/milk9111/hexplore/ecs/component"
)

// CameraFollowSystem centers the camera on the player with no lag and
// mirrors the position into the shared camera offset.
type CameraFollowSystem struct {
	handles *Handles
	offset  *component.CameraOffset
}

func NewCameraFollowSystem(handles *Handles, offset *component.CameraOffset) *CameraFollowSystem {
	return &CameraFollowSystem{handles: handles, offset: offset}
}

func (cs *CameraFollowSystem) Update(w *ecs.World) {
	if w == nil || cs.handles == nil {
		return
	}

	playerTransform, ok := ecs.Get(w, cs.handles.Player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, cs.handles.Camera, component.TransformComponent.Kind())
	if !ok {
		return
	}

	camTransform.X = playerTransform.X
	camTransform.Y = playerTransform.Y
	if cs.offset != nil {
		cs.offset.X = playerTransform.X
		cs.offset.Y = playerTransform.Y
	}
}
