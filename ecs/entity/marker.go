package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hexplore/ecs"
)

func NewTargetMarkerAt(w *ecs.World, pos cp.Vector) (ecs.Entity, error) {
	marker, err := BuildEntity(w, "target_marker.yaml")
	if err != nil {
		return 0, err
	}
	if err := SetEntityPosition(w, marker, pos); err != nil {
		ecs.DestroyEntity(w, marker)
		return 0, fmt.Errorf("target marker: override transform: %w", err)
	}
	return marker, nil
}
