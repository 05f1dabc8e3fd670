package system

import (
	"math"
	"testing"
	"time"

	"github.com/milk9111/hexplore/ecs"
	"github.com/milk9111/hexplore/ecs/component"
)

const (
	zoomExplore = 1.8
	zoomEvent   = 1.0
)

func TestRetargetZoom(t *testing.T) {
	idle := component.CameraFollow{Scale: zoomExplore, Target: zoomExplore}

	t.Run("same_target_is_noop", func(t *testing.T) {
		if got := RetargetZoom(idle, zoomExplore, zoomExplore, time.Second); got != idle {
			t.Fatalf("expected unchanged, got %+v", got)
		}
	})

	t.Run("starts_transition", func(t *testing.T) {
		got := RetargetZoom(idle, zoomEvent, zoomExplore, time.Second)
		if !got.Transitioning() || got.Scale != zoomExplore || got.Target != zoomEvent {
			t.Fatalf("unexpected state %+v", got)
		}
		if got.Timer.Duration != time.Second || got.Timer.Elapsed != 0 {
			t.Fatalf("timer not started: %+v", got.Timer)
		}
	})

	t.Run("retrigger_keeps_timer", func(t *testing.T) {
		cf := RetargetZoom(idle, zoomEvent, zoomExplore, time.Second)
		cf, _ = AdvanceZoom(cf, 400*time.Millisecond)
		again := RetargetZoom(cf, zoomEvent, 1.5, time.Second)
		if again.Timer.Elapsed != 400*time.Millisecond {
			t.Fatalf("timer jumped back to %v", again.Timer.Elapsed)
		}
		if again != cf {
			t.Fatalf("expected unchanged state, got %+v", again)
		}
	})

	t.Run("reverse_midway_starts_from_rendered", func(t *testing.T) {
		cf := RetargetZoom(idle, zoomEvent, zoomExplore, time.Second)
		cf, rendered := AdvanceZoom(cf, 500*time.Millisecond)
		back := RetargetZoom(cf, zoomExplore, rendered, time.Second)
		if back.Scale != rendered || back.Target != zoomExplore || back.Timer.Elapsed != 0 {
			t.Fatalf("unexpected state %+v", back)
		}
		_, next := AdvanceZoom(back, 0)
		if next != rendered {
			t.Fatalf("reversal should not jump: %v -> %v", rendered, next)
		}
	})
}

func TestAdvanceZoomExactAndMonotonic(t *testing.T) {
	cf := RetargetZoom(component.CameraFollow{Scale: zoomExplore, Target: zoomExplore}, zoomEvent, zoomExplore, time.Second)

	prev := zoomExplore
	var rendered float64
	for i := 1; i <= 10; i++ {
		cf, rendered = AdvanceZoom(cf, 100*time.Millisecond)
		if rendered > prev {
			t.Fatalf("step %d: zoom increased from %v to %v", i, prev, rendered)
		}
		if rendered < zoomEvent {
			t.Fatalf("step %d: overshoot to %v", i, rendered)
		}
		if i == 5 && math.Abs(rendered-1.4) > 1e-9 {
			t.Fatalf("expected 1.4 at half time, got %v", rendered)
		}
		if i < 10 && !cf.Transitioning() {
			t.Fatalf("step %d: finished early", i)
		}
		prev = rendered
	}
	if rendered != zoomEvent || cf.Scale != zoomEvent || cf.Transitioning() {
		t.Fatalf("expected exact %v after 1s, got rendered=%v state=%+v", zoomEvent, rendered, cf)
	}

	// Further frames keep the exact value.
	cf, rendered = AdvanceZoom(cf, time.Second)
	if rendered != zoomEvent || cf.Scale != zoomEvent {
		t.Fatalf("drift after completion: %v", rendered)
	}
}

func TestZoomSystem(t *testing.T) {
	f := newFixture(t)
	sys := NewZoomSystem(f.handles)

	follow, _ := ecs.Get(f.w, f.handles.Camera, component.CameraFollowComponent.Kind())
	proj, _ := ecs.Get(f.w, f.handles.Camera, component.ProjectionComponent.Kind())
	proj.Scale = zoomExplore
	*follow = RetargetZoom(component.CameraFollow{Scale: zoomExplore, Target: zoomExplore}, zoomEvent, proj.Scale, time.Second)

	for i := 0; i < 4; i++ {
		f.run(sys, 250*time.Millisecond)
	}
	if proj.Scale != zoomEvent || follow.Scale != zoomEvent {
		t.Fatalf("expected exact event zoom, got projection=%v follow=%+v", proj.Scale, follow)
	}

	// Idle cameras leave the projection alone.
	proj.Scale = 3
	f.run(sys, time.Second)
	if proj.Scale != 3 {
		t.Fatalf("idle zoom system wrote projection: %v", proj.Scale)
	}
}
