package component

// Player is the controlled entity. Inactive players ignore movement,
// rotation and commits but keep their state.
type Player struct {
	Active      bool
	Moved       bool
	MoveSpeed   float64
	RotateSpeed float64
}

var PlayerComponent = NewComponent[Player]()

