package entity

import (
	"github.com/milk9111/hexplore/ecs"
	"github.com/milk9111/hexplore/ecs/component"
	"github.com/milk9111/hexplore/ecs/mode"
)

// DespawnScope destroys every entity scoped to m and returns how many went.
func DespawnScope(w *ecs.World, m mode.Mode) int {
	var doomed []ecs.Entity
	ecs.ForEach(w, component.ScopeComponent.Kind(), func(e ecs.Entity, s *component.Scope) {
		if s.Mode == m {
			doomed = append(doomed, e)
		}
	})
	n := 0
	for _, e := range doomed {
		if ecs.DestroyEntity(w, e) {
			n++
		}
	}
	return n
}
