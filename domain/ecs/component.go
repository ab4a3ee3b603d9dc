package ecs

import "fmt"

// Kind tags a component type. Each component type owns exactly one Kind.
type Kind uint16

// Component is implemented by every value that can be attached to an entity.
// ComponentKind must not depend on the receiver's value: it is called on the
// zero value to locate the store.
type Component interface {
	ComponentKind() Kind
}

func kindOf[T Component]() Kind {
	var zero T
	return zero.ComponentKind()
}

// storeOf returns the typed store for T, or nil when none exists yet
func storeOf[T Component](w *World) (*Store[T], error) {
	kind := kindOf[T]()
	s, ok := w.stores[kind]
	if !ok {
		return nil, nil
	}
	typed, ok := s.(*Store[T])
	if !ok {
		return nil, fmt.Errorf("%w: kind %d", ErrKindConflict, kind)
	}
	return typed, nil
}

// Add attaches value to e, replacing any value of the same type.
//
// Returns ErrUnknownEntity if e was never created or has been destroyed.
func Add[T Component](w *World, e Entity, value T) error {
	if !w.Alive(e) {
		return fmt.Errorf("%w: %s", ErrUnknownEntity, e)
	}
	s, err := storeOf[T](w)
	if err != nil {
		return err
	}
	if s == nil {
		s = NewStore[T]()
		w.stores[kindOf[T]()] = s
	}
	s.Set(e, value)
	return nil
}

// Get returns a copy of the T component of e. The boolean is false when e is
// unknown or has no T.
func Get[T Component](w *World, e Entity) (T, bool) {
	s, err := storeOf[T](w)
	if err != nil || s == nil {
		var zero T
		return zero, false
	}
	return s.Get(e)
}

// Has reports whether e currently holds a T component
func Has[T Component](w *World, e Entity) bool {
	_, ok := Get[T](w, e)
	return ok
}

// Remove deletes the T component of e. Unknown entities and missing
// components are ignored.
func Remove[T Component](w *World, e Entity) {
	s, err := storeOf[T](w)
	if err != nil || s == nil {
		return
	}
	s.Delete(e)
}

// EntitiesWith returns a snapshot of every live entity holding a T component,
// in entity creation order. Mutating the world does not affect the returned
// slice.
func EntitiesWith[T Component](w *World) []Entity {
	s, err := storeOf[T](w)
	if err != nil || s == nil {
		return nil
	}
	result := make([]Entity, 0, s.Len())
	for _, e := range w.entities {
		if s.Has(e) {
			result = append(result, e)
		}
	}
	return result
}

// Count returns the number of entities holding a T component
func Count[T Component](w *World) int {
	s, err := storeOf[T](w)
	if err != nil || s == nil {
		return 0
	}
	return s.Len()
}
