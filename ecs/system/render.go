package system

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/hexplore/common"
	"github.com/milk9111/hexplore/ecs"
	"github.com/milk9111/hexplore/ecs/component"
	"golang.org/x/image/colornames"
)

// screenShape is a DebugShape resolved to screen space.
type screenShape struct {
	Center cp.Vector
	Radius float64
	Color  color.Color
	Depth  float64
	Facing cp.Vector
	Player bool
}

// DebugRenderSystem draws every DebugShape through the camera, lowest depth
// first, with a facing line on the player.
type DebugRenderSystem struct {
	handles *Handles
}

func NewDebugRenderSystem(handles *Handles) *DebugRenderSystem {
	return &DebugRenderSystem{handles: handles}
}

func (r *DebugRenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil || r.handles == nil {
		return
	}
	for _, s := range r.shapes(w) {
		vector.DrawFilledCircle(screen, float32(s.Center.X), float32(s.Center.Y), float32(s.Radius), s.Color, true)
		if s.Player {
			vector.StrokeLine(screen,
				float32(s.Center.X), float32(s.Center.Y),
				float32(s.Facing.X), float32(s.Facing.Y),
				2, colornames.White, true)
		}
	}
}

func (r *DebugRenderSystem) shapes(w *ecs.World) []screenShape {
	camTransform, ok := ecs.Get(w, r.handles.Camera, component.TransformComponent.Kind())
	if !ok {
		return nil
	}
	projection, ok := ecs.Get(w, r.handles.Camera, component.ProjectionComponent.Kind())
	if !ok || projection.Scale <= 0 {
		return nil
	}
	view := common.ViewMatrix(camTransform.X, camTransform.Y)
	proj := projection.Matrix()

	var out []screenShape
	ecs.ForEach2(w, component.DebugShapeComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, shape *component.DebugShape, t *component.Transform) {
		center, ok := common.Project(t.Position(), projection.Viewport, view, proj)
		if !ok {
			return
		}
		s := screenShape{
			Center: center,
			Radius: shape.Radius / projection.Scale,
			Color:  shape.Color,
			Depth:  t.Z,
			Player: e == r.handles.Player,
		}
		if s.Color == nil {
			s.Color = colornames.Magenta
		}
		if s.Player {
			// Rotation is counter-clockwise; the heading it encodes is clockwise from up.
			heading := -t.Rotation
			tip := t.Position().Add(cp.Vector{X: math.Sin(heading), Y: math.Cos(heading)}.Mult(shape.Radius * 1.5))
			s.Facing, _ = common.Project(tip, projection.Viewport, view, proj)
		}
		out = append(out, s)
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Depth < out[j].Depth })
	return out
}
