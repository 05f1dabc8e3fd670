package component

import "github.com/jakecoffman/cp"

// Input stores per-frame input state for an entity.
type Input struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool

	// CommitPressed is the commit button's just-pressed edge. Consumers clear
	// it so one press commits once.
	CommitPressed bool

	Cursor    cp.Vector
	HasCursor bool
}

// AnyDirection reports whether a directional key is held.
func (i Input) AnyDirection() bool {
	return i.Up || i.Down || i.Left || i.Right
}

var InputComponent = NewComponent[Input]()
