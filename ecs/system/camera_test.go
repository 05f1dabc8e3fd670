package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hexplore/ecs/component"
)

func TestCameraFollowSystem(t *testing.T) {
	f := newFixture(t)
	var offset component.CameraOffset
	sys := NewCameraFollowSystem(f.handles, &offset)

	cam := f.transform(t, f.handles.Camera)
	cam.Z = 999
	f.transform(t, f.handles.Player).SetPosition(cp.Vector{X: 12, Y: -4})

	f.run(sys, seconds(1.0/60))

	cam = f.transform(t, f.handles.Camera)
	if cam.X != 12 || cam.Y != -4 {
		t.Fatalf("camera should be centered on player, got (%v, %v)", cam.X, cam.Y)
	}
	if cam.Z != 999 {
		t.Fatalf("camera depth changed to %v", cam.Z)
	}
	if offset != (component.CameraOffset{X: 12, Y: -4}) {
		t.Fatalf("offset not mirrored: %+v", offset)
	}
}

func TestCameraFollowWithoutOffset(t *testing.T) {
	f := newFixture(t)
	sys := NewCameraFollowSystem(f.handles, nil)
	f.transform(t, f.handles.Player).SetPosition(cp.Vector{X: 1, Y: 2})

	f.run(sys, seconds(1.0/60))

	if got := f.transform(t, f.handles.Camera).Position(); got != (cp.Vector{X: 1, Y: 2}) {
		t.Fatalf("expected (1,2), got %v", got)
	}
}
