package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/hexplore/common"
	"github.com/milk9111/hexplore/ecs"
	"github.com/milk9111/hexplore/ecs/component"
)

// cursorWorld unprojects the cursor through the camera. It reports false when
// there is no cursor or the camera cannot be resolved.
func cursorWorld(w *ecs.World, camera ecs.Entity, in *component.Input) (cp.Vector, bool) {
	if in == nil || !in.HasCursor {
		return cp.Vector{}, false
	}
	camTransform, ok := ecs.Get(w, camera, component.TransformComponent.Kind())
	if !ok {
		return cp.Vector{}, false
	}
	projection, ok := ecs.Get(w, camera, component.ProjectionComponent.Kind())
	if !ok {
		return cp.Vector{}, false
	}
	return common.Unproject(in.Cursor, projection.Viewport, common.ViewMatrix(camTransform.X, camTransform.Y), projection.Matrix())
}
