package common

import (
	"math"
	"testing"
	"time"

	"github.com/jakecoffman/cp"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestTimer(t *testing.T) {
	timer := NewTimer(time.Second)
	if timer.Finished() {
		t.Fatalf("new timer should not be finished")
	}
	timer.Tick(250 * time.Millisecond)
	if got := timer.Fraction(); got != 0.25 {
		t.Fatalf("expected 0.25, got %v", got)
	}
	timer.Tick(-time.Second)
	if timer.Elapsed != 250*time.Millisecond {
		t.Fatalf("negative tick should be ignored, elapsed=%v", timer.Elapsed)
	}
	timer.Tick(5 * time.Second)
	if !timer.Finished() || timer.Elapsed != time.Second || timer.Fraction() != 1 {
		t.Fatalf("expected clamp at duration, got %+v", timer)
	}
	timer.Reset()
	if timer.Elapsed != 0 || timer.Finished() {
		t.Fatalf("reset should clear elapsed")
	}

	var zero Timer
	if !zero.Finished() || zero.Fraction() != 1 {
		t.Fatalf("zero duration timer should be finished")
	}
}

func TestFixed(t *testing.T) {
	tests := []struct {
		in   Fixed
		str  string
		flt  float64
		from float64
	}{
		{in: 6_00, str: "6.00", flt: 6, from: 6},
		{in: 0_25, str: "0.25", flt: 0.25, from: 0.25},
		{in: 100_00, str: "100.00", flt: 100, from: 100},
		{in: -1_05, str: "-1.05", flt: -1.05, from: -1.05},
	}
	for _, tc := range tests {
		t.Run(tc.str, func(t *testing.T) {
			if tc.in.String() != tc.str {
				t.Fatalf("String: expected %s, got %s", tc.str, tc.in.String())
			}
			if !near(tc.in.Float(), tc.flt) {
				t.Fatalf("Float: expected %v, got %v", tc.flt, tc.in.Float())
			}
			if FixedFromFloat(tc.from) != tc.in {
				t.Fatalf("FixedFromFloat: expected %d, got %d", tc.in, FixedFromFloat(tc.from))
			}
		})
	}
	if got := Fixed(0_25).Mul(4_00); got != 1_00 {
		t.Fatalf("expected 1.00, got %s", got)
	}
}

func TestUnproject(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600}
	tests := []struct {
		name   string
		screen cp.Vector
		cam    cp.Vector
		scale  float64
		want   cp.Vector
	}{
		{"center", cp.Vector{X: 400, Y: 300}, cp.Vector{}, 1, cp.Vector{}},
		{"top_right", cp.Vector{X: 800, Y: 0}, cp.Vector{}, 1, cp.Vector{X: 400, Y: 300}},
		{"bottom_left", cp.Vector{X: 0, Y: 600}, cp.Vector{}, 1, cp.Vector{X: -400, Y: -300}},
		{"zoomed_out", cp.Vector{X: 800, Y: 0}, cp.Vector{}, 2, cp.Vector{X: 800, Y: 600}},
		{"camera_offset", cp.Vector{X: 400, Y: 300}, cp.Vector{X: 10, Y: -20}, 1.8, cp.Vector{X: 10, Y: -20}},
		{"offset_and_zoom", cp.Vector{X: 600, Y: 150}, cp.Vector{X: 100, Y: 50}, 0.5, cp.Vector{X: 200, Y: 125}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Unproject(tc.screen, vp, ViewMatrix(tc.cam.X, tc.cam.Y), ProjectionMatrix(vp, tc.scale))
			if !ok {
				t.Fatalf("unproject failed")
			}
			if math.Abs(got.X-tc.want.X) > 1e-6 || math.Abs(got.Y-tc.want.Y) > 1e-6 {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			back, ok := Project(got, vp, ViewMatrix(tc.cam.X, tc.cam.Y), ProjectionMatrix(vp, tc.scale))
			if !ok || math.Abs(back.X-tc.screen.X) > 1e-6 || math.Abs(back.Y-tc.screen.Y) > 1e-6 {
				t.Fatalf("project round trip: expected %v, got %v", tc.screen, back)
			}
		})
	}
}

func TestUnprojectDegenerate(t *testing.T) {
	if _, ok := Unproject(cp.Vector{}, Viewport{}, ViewMatrix(0, 0), ProjectionMatrix(Viewport{}, 1)); ok {
		t.Fatalf("expected failure for empty viewport")
	}
	vp := Viewport{Width: 10, Height: 10}
	if _, ok := Unproject(cp.Vector{}, vp, ViewMatrix(0, 0), ProjectionMatrix(vp, 0)); ok {
		t.Fatalf("expected failure for zero scale")
	}
}

func TestViewportContains(t *testing.T) {
	vp := Viewport{Width: 10, Height: 5}
	if !vp.Contains(0, 0) || !vp.Contains(9.5, 4.9) {
		t.Fatalf("expected points inside")
	}
	if vp.Contains(-1, 0) || vp.Contains(10, 1) || vp.Contains(1, 5) {
		t.Fatalf("expected points outside")
	}
}
