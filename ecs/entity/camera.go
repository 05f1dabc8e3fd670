package entity

import (
	"github.com/milk9111/hexplore/common"
	"github.com/milk9111/hexplore/ecs"
	"github.com/milk9111/hexplore/ecs/component"
)

// NewCamera spawns the camera for a viewport. The prefab's projection scale
// is the starting zoom.
func NewCamera(w *ecs.World, vp common.Viewport) (ecs.Entity, error) {
	camera, err := BuildEntity(w, "camera.yaml")
	if err != nil {
		return 0, err
	}
	if p, ok := ecs.Get(w, camera, component.ProjectionComponent.Kind()); ok {
		p.Viewport = vp
	}
	return camera, nil
}
