package ecs

import (
	"errors"
	"fmt"

	"github.com/milk9111/hexplore/ecs/component"
)

var (
	ErrNoEntity         = errors.New("ecs: no entity matches")
	ErrMultipleEntities = errors.New("ecs: more than one entity matches")
)

// Query returns the entities holding every listed kind, in the order of the
// smallest store.
func Query(w *World, kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k.ID(), false)
		if s.Len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}
	smallest := 0
	for i, s := range sets {
		if s.Len() < sets[smallest].Len() {
			smallest = i
		}
	}
	out := make([]Entity, 0, sets[smallest].Len())
	for _, e := range sets[smallest].Entities() {
		matches := true
		for i, s := range sets {
			if i != smallest && !s.Has(e) {
				matches = false
				break
			}
		}
		if matches {
			out = append(out, e)
		}
	}
	return out
}

// First returns any entity holding kind.
func First(w *World, kind component.Kind) (Entity, bool) {
	entities := Query(w, kind)
	if len(entities) == 0 {
		return 0, false
	}
	return entities[0], true
}

// Single returns the only entity matching kinds. Zero or several matches are
// setup errors, reported as ErrNoEntity or ErrMultipleEntities.
func Single(w *World, kinds ...component.Kind) (Entity, error) {
	entities := Query(w, kinds...)
	switch len(entities) {
	case 1:
		return entities[0], nil
	case 0:
		return 0, ErrNoEntity
	default:
		return 0, fmt.Errorf("%w: found %d", ErrMultipleEntities, len(entities))
	}
}
