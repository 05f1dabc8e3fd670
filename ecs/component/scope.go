package component

import "github.com/milk9111/hexplore/ecs/mode"

// Scope ties an entity's lifetime to a game mode; the entity is despawned
// when that mode exits.
type Scope struct {
	Mode mode.Mode
}

var ScopeComponent = NewComponent[Scope]()
