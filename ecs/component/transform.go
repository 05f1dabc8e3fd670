package component

import "github.com/jakecoffman/cp"

// Transform places an entity in the world. X and Y are the gameplay plane,
// Z is render depth. Rotation is radians counter-clockwise about the depth axis.
type Transform struct {
	X        float64
	Y        float64
	Z        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

// Position returns the gameplay-plane position.
func (t Transform) Position() cp.Vector {
	return cp.Vector{X: t.X, Y: t.Y}
}

// SetPosition writes the gameplay-plane position and leaves Z untouched.
func (t *Transform) SetPosition(p cp.Vector) {
	t.X = p.X
	t.Y = p.Y
}

var TransformComponent = NewComponent[Transform]()
