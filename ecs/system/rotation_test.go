package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hexplore/ecs/component"
)

// angleDiff returns a-b wrapped into (-pi, pi].
func angleDiff(a, b float64) float64 {
	d := math.Mod(a-b, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	}
	if d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

func TestHeading(t *testing.T) {
	tests := []struct {
		name string
		to   cp.Vector
		want float64
	}{
		{"up", cp.Vector{Y: 1}, 0},
		{"right", cp.Vector{X: 1}, math.Pi / 2},
		{"left", cp.Vector{X: -1}, -math.Pi / 2},
		{"down", cp.Vector{Y: -1}, math.Pi},
		{"up_right", cp.Vector{X: 1, Y: 1}, math.Pi / 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Heading(cp.Vector{}, tc.to); math.Abs(got-tc.want) > eps {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestRotateToward(t *testing.T) {
	tests := []struct {
		name     string
		rotation float64
		target   float64
		t        float64
		want     float64
	}{
		{"no_progress", 0.3, 1.2, 0, 0.3},
		{"halfway", 0, 1, 0.5, 0.5},
		{"full", 0, -math.Pi / 2, 1, -math.Pi / 2},
		{"clamped_above_one", 0.5, 1.5, 7, 1.5},
		{"shorter_arc_across_pi", 3, -3, 0.5, math.Pi},
		{"opposite_turns_ccw", 0, math.Pi, 0.5, math.Pi / 2},
		{"tiny_gap", 1, 1 + 1e-5, 0.5, 1 + 5e-6},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := RotateToward(tc.rotation, tc.target, tc.t)
			if d := angleDiff(got, tc.want); math.Abs(d) > 1e-7 {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestRotationSystem(t *testing.T) {
	cursorRight := component.Input{Cursor: cp.Vector{X: 600, Y: 300}, HasCursor: true}

	t.Run("approach_rate", func(t *testing.T) {
		f := newFixture(t)
		sys := NewRotationSystem(f.handles)
		*f.input(t) = cursorRight

		f.run(sys, seconds(1.0/60))

		tr := f.transform(t, f.handles.Player)
		factor := 8 * f.w.DeltaSeconds()
		want := -math.Pi / 2 * factor
		if math.Abs(tr.Rotation-want) > 1e-7 {
			t.Fatalf("expected %v, got %v", want, tr.Rotation)
		}
	})

	t.Run("converges", func(t *testing.T) {
		f := newFixture(t)
		sys := NewRotationSystem(f.handles)
		*f.input(t) = cursorRight

		for i := 0; i < 240; i++ {
			f.run(sys, seconds(1.0/60))
		}
		if d := angleDiff(f.transform(t, f.handles.Player).Rotation, -math.Pi/2); math.Abs(d) > 1e-6 {
			t.Fatalf("expected to face right, off by %v", d)
		}
	})

	t.Run("no_cursor_skips", func(t *testing.T) {
		f := newFixture(t)
		sys := NewRotationSystem(f.handles)
		f.transform(t, f.handles.Player).Rotation = 0.4

		f.run(sys, seconds(1.0/60))

		if got := f.transform(t, f.handles.Player).Rotation; got != 0.4 {
			t.Fatalf("rotation changed without cursor: %v", got)
		}
	})

	t.Run("inactive_skips", func(t *testing.T) {
		f := newFixture(t)
		sys := NewRotationSystem(f.handles)
		f.player(t).Active = false
		*f.input(t) = cursorRight

		f.run(sys, seconds(1.0/60))

		if got := f.transform(t, f.handles.Player).Rotation; got != 0 {
			t.Fatalf("inactive player rotated to %v", got)
		}
	})
}
