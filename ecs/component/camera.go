package component

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/hexplore/common"
)

// Projection is the camera's orthographic projection. Scale is the rendered
// zoom; the viewport is set by the window layout.
type Projection struct {
	Scale    float64
	Viewport common.Viewport
}

// Matrix returns the view-space to NDC matrix.
func (p Projection) Matrix() ebiten.GeoM {
	return common.ProjectionMatrix(p.Viewport, p.Scale)
}

var ProjectionComponent = NewComponent[Projection]()

// CameraFollow drives zoom transitions. When Scale equals Target the timer
// is inert.
type CameraFollow struct {
	Scale  float64
	Target float64
	Timer  common.Timer
}

// Transitioning reports whether a zoom interpolation is in flight.
func (c CameraFollow) Transitioning() bool {
	return c.Scale != c.Target
}

var CameraFollowComponent = NewComponent[CameraFollow]()

// CameraOffset mirrors the camera position for readers outside the camera.
type CameraOffset struct {
	X float64
	Y float64
}
