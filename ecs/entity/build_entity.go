package entity

import (
	"fmt"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hexplore/common"
	"github.com/milk9111/hexplore/ecs"
	"github.com/milk9111/hexplore/ecs/component"
	"github.com/milk9111/hexplore/ecs/mode"
	"github.com/milk9111/hexplore/prefabs"
)

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":        addPlayerTag,
	"camera_tag":        addCameraTag,
	"target_marker_tag": addTargetMarkerTag,
	"player":            addPlayer,
	"input":             addInput,
	"transform":         addTransform,
	"grid_target":       addGridTarget,
	"grid_movement":     addGridMovement,
	"projection":        addProjection,
	"camera_follow":     addCameraFollow,
	"debug_shape":       addDebugShape,
	"scope":             addScope,
}

// camera_follow reads projection, so projection is built first.
var componentBuildOrder = []string{
	"player_tag",
	"camera_tag",
	"target_marker_tag",
	"player",
	"input",
	"transform",
	"grid_target",
	"grid_movement",
	"projection",
	"camera_follow",
	"debug_shape",
	"scope",
}

// BuildEntity creates an entity from a prefab's component specs. On any
// failure the half-built entity is destroyed.
func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	build := func(name string) error {
		builder, ok := componentRegistry[name]
		if !ok {
			return fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, name)
		}
		if err := builder(w, e, remaining[name], ctx); err != nil {
			return fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
		return nil
	}

	for _, name := range componentBuildOrder {
		if _, ok := remaining[name]; !ok {
			continue
		}
		if err := build(name); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, err
		}
	}

	names := make([]string, 0, len(remaining))
	for name := range remaining {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := build(name); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, err
		}
	}

	return e, nil
}

// SetEntityPosition moves e on the gameplay plane, keeping its depth.
func SetEntityPosition(w *ecs.World, e ecs.Entity, pos cp.Vector) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.SetPosition(pos)
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
}

func addTargetMarkerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.TargetMarkerTagComponent.Kind(), &component.TargetMarkerTag{})
}

func addPlayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PlayerComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player spec: %w", err)
	}
	active := true
	if spec.Active != nil {
		active = *spec.Active
	}
	return ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		Active:      active,
		MoveSpeed:   spec.MoveSpeed,
		RotateSpeed: spec.RotateSpeed,
	})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TransformComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		Z:        spec.Z,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	})
}

// addGridTarget starts both points at the entity's position so a fresh
// player does not walk toward the origin.
func addGridTarget(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	var pos cp.Vector
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		pos = t.Position()
	}
	return ecs.Add(w, e, component.GridTargetComponent.Kind(), &component.GridTarget{Mouse: pos, Target: pos})
}

func addGridMovement(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.GridMovementComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode grid_movement spec: %w", err)
	}
	return ecs.Add(w, e, component.GridMovementComponent.Kind(), &component.GridMovement{
		Cost:     common.FixedFromFloat(spec.Cost),
		Speed:    common.FixedFromFloat(spec.Speed),
		Distance: common.FixedFromFloat(spec.Distance),
	})
}

func addProjection(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.ProjectionComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode projection spec: %w", err)
	}
	if spec.Scale <= 0 {
		spec.Scale = 1
	}
	return ecs.Add(w, e, component.ProjectionComponent.Kind(), &component.Projection{Scale: spec.Scale})
}

// addCameraFollow starts idle at the projection's scale.
func addCameraFollow(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	scale := 1.0
	if p, ok := ecs.Get(w, e, component.ProjectionComponent.Kind()); ok {
		scale = p.Scale
	}
	return ecs.Add(w, e, component.CameraFollowComponent.Kind(), &component.CameraFollow{Scale: scale, Target: scale})
}

func addDebugShape(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.DebugShapeComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode debug_shape spec: %w", err)
	}
	return ecs.Add(w, e, component.DebugShapeComponent.Kind(), &component.DebugShape{
		Radius: spec.Radius,
		Color:  spec.Color.Color,
	})
}

func addScope(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.ScopeComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode scope spec: %w", err)
	}
	m, err := mode.Parse(spec.Mode)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.ScopeComponent.Kind(), &component.Scope{Mode: m})
}
