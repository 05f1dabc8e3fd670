package component

import "image/color"

// DebugShape is drawn as a filled circle by the debug view.
type DebugShape struct {
	Radius float64
	Color  color.Color
}

var DebugShapeComponent = NewComponent[DebugShape]()
