package ecs

import (
	"errors"
	"slices"
)

var (
	// ErrUnknownEntity is returned by Add when the entity was never created or
	// has already been destroyed.
	ErrUnknownEntity = errors.New("ecs: unknown entity")
	// ErrKindConflict is returned when two different Go types report the same Kind.
	ErrKindConflict = errors.New("ecs: component kind registered with another type")
)

// World contains all entities and their components
type World struct {
	nextID   Entity
	entities []Entity // creation order
	alive    map[Entity]struct{}
	stores   map[Kind]anyStore
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		nextID: 1,
		alive:  make(map[Entity]struct{}),
		stores: make(map[Kind]anyStore),
	}
}

// CreateEntity allocates the next unused identifier and registers it with no
// components.
func (w *World) CreateEntity() Entity {
	id := w.nextID
	w.nextID++
	w.entities = append(w.entities, id)
	w.alive[id] = struct{}{}
	return id
}

// DestroyEntity removes an entity and all its components. It is a no-op when
// the entity is already absent.
func (w *World) DestroyEntity(e Entity) {
	if _, ok := w.alive[e]; !ok {
		return
	}
	for _, s := range w.stores {
		s.remove(e)
	}
	delete(w.alive, e)
	if i := slices.Index(w.entities, e); i >= 0 {
		w.entities = slices.Delete(w.entities, i, i+1)
	}
}

// Alive reports whether the entity has been created and not destroyed
func (w *World) Alive(e Entity) bool {
	_, ok := w.alive[e]
	return ok
}

// Entities returns a snapshot of all live entities in creation order
func (w *World) Entities() []Entity {
	return slices.Clone(w.entities)
}

// Len returns the number of live entities
func (w *World) Len() int {
	return len(w.entities)
}
