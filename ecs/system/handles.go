package system

import "github.com/milk9111/hexplore/ecs"

// Handles are the session's unique entities. The lifecycle resolves them on
// mode enter; per-frame systems assume they are set.
type Handles struct {
	Player ecs.Entity
	Camera ecs.Entity
	Marker ecs.Entity
}
