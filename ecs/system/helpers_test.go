package system

import (
	"math"
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hexplore/common"
	"github.com/milk9111/hexplore/ecs"
	"github.com/milk9111/hexplore/ecs/component"
)

const eps = 1e-9

var testViewport = common.Viewport{Width: 800, Height: 600}

type fixture struct {
	w       *ecs.World
	handles *Handles
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	w := ecs.NewWorld()
	h := &Handles{
		Player: ecs.CreateEntity(w),
		Camera: ecs.CreateEntity(w),
		Marker: ecs.CreateEntity(w),
	}

	must(t, ecs.Add(w, h.Player, component.PlayerComponent.Kind(), &component.Player{Active: true, MoveSpeed: 6, RotateSpeed: 8}))
	must(t, ecs.Add(w, h.Player, component.TransformComponent.Kind(), &component.Transform{Z: 10, ScaleX: 1, ScaleY: 1}))
	must(t, ecs.Add(w, h.Player, component.GridTargetComponent.Kind(), &component.GridTarget{}))
	must(t, ecs.Add(w, h.Player, component.GridMovementComponent.Kind(), &component.GridMovement{Cost: 0_25, Speed: 6_00, Distance: 4_00}))
	must(t, ecs.Add(w, h.Player, component.InputComponent.Kind(), &component.Input{}))

	must(t, ecs.Add(w, h.Camera, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1}))
	must(t, ecs.Add(w, h.Camera, component.ProjectionComponent.Kind(), &component.Projection{Scale: 1, Viewport: testViewport}))
	must(t, ecs.Add(w, h.Camera, component.CameraFollowComponent.Kind(), &component.CameraFollow{Scale: 1, Target: 1}))

	must(t, ecs.Add(w, h.Marker, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1}))
	return &fixture{w: w, handles: h}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

func (f *fixture) player(t *testing.T) *component.Player {
	t.Helper()
	p, ok := ecs.Get(f.w, f.handles.Player, component.PlayerComponent.Kind())
	if !ok {
		t.Fatal("missing player")
	}
	return p
}

func (f *fixture) transform(t *testing.T, e ecs.Entity) *component.Transform {
	t.Helper()
	tr, ok := ecs.Get(f.w, e, component.TransformComponent.Kind())
	if !ok {
		t.Fatal("missing transform")
	}
	return tr
}

func (f *fixture) grid(t *testing.T) *component.GridTarget {
	t.Helper()
	g, ok := ecs.Get(f.w, f.handles.Player, component.GridTargetComponent.Kind())
	if !ok {
		t.Fatal("missing grid target")
	}
	return g
}

func (f *fixture) input(t *testing.T) *component.Input {
	t.Helper()
	in, ok := ecs.Get(f.w, f.handles.Player, component.InputComponent.Kind())
	if !ok {
		t.Fatal("missing input")
	}
	return in
}

func (f *fixture) run(s ecs.System, dt time.Duration) {
	f.w.Tick(dt)
	s.Update(f.w)
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func nearVec(a, b cp.Vector, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}
