package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hexplore/ecs"
	"github.com/milk9111/hexplore/ecs/component"
)

func NewPlayer(w *ecs.World) (ecs.Entity, error) {
	return BuildEntity(w, "player.yaml")
}

// NewPlayerAt spawns the player at pos with its grid target already there.
func NewPlayerAt(w *ecs.World, pos cp.Vector) (ecs.Entity, error) {
	player, err := BuildEntity(w, "player.yaml")
	if err != nil {
		return 0, err
	}
	if err := SetEntityPosition(w, player, pos); err != nil {
		ecs.DestroyEntity(w, player)
		return 0, fmt.Errorf("player: override transform: %w", err)
	}
	if grid, ok := ecs.Get(w, player, component.GridTargetComponent.Kind()); ok {
		grid.Mouse = pos
		grid.Target = pos
	}
	return player, nil
}
