package common

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
)

// Viewport is the render target size in pixels.
type Viewport struct {
	Width  float64
	Height float64
}

func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// Contains reports whether a screen position lies inside the viewport.
func (v Viewport) Contains(x, y float64) bool {
	return x >= 0 && y >= 0 && x < v.Width && y < v.Height
}

// ProjectionMatrix maps view space to normalized device coordinates for an
// orthographic camera. A larger scale shows more of the world.
func ProjectionMatrix(vp Viewport, scale float64) ebiten.GeoM {
	var g ebiten.GeoM
	if !vp.Valid() || scale <= 0 {
		g.Scale(0, 0)
		return g
	}
	g.Scale(2/(vp.Width*scale), 2/(vp.Height*scale))
	return g
}

// ViewMatrix is the camera's world transform: view space to world space.
func ViewMatrix(x, y float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(x, y)
	return g
}

// ScreenToNDC converts a top-left origin screen position into normalized
// device coordinates with y pointing up.
func ScreenToNDC(screen cp.Vector, vp Viewport) cp.Vector {
	return cp.Vector{
		X: screen.X/vp.Width*2 - 1,
		Y: 1 - screen.Y/vp.Height*2,
	}
}

// Unproject maps a screen position to the world through the inverse
// projection followed by the view transform. It reports false when the
// viewport or projection is degenerate.
func Unproject(screen cp.Vector, vp Viewport, view, projection ebiten.GeoM) (cp.Vector, bool) {
	if !vp.Valid() || !projection.IsInvertible() {
		return cp.Vector{}, false
	}
	ndcToWorld := projection
	ndcToWorld.Invert()
	ndcToWorld.Concat(view)

	ndc := ScreenToNDC(screen, vp)
	x, y := ndcToWorld.Apply(ndc.X, ndc.Y)
	return cp.Vector{X: x, Y: y}, true
}

// Project maps a world position to the screen. It is the inverse of Unproject.
func Project(world cp.Vector, vp Viewport, view, projection ebiten.GeoM) (cp.Vector, bool) {
	if !vp.Valid() || !view.IsInvertible() {
		return cp.Vector{}, false
	}
	worldToNDC := view
	worldToNDC.Invert()
	worldToNDC.Concat(projection)

	x, y := worldToNDC.Apply(world.X, world.Y)
	return cp.Vector{
		X: (x + 1) / 2 * vp.Width,
		Y: (1 - y) / 2 * vp.Height,
	}, true
}
