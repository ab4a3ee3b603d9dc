package ecs

// Store is a generic container for a specific component type T
type Store[T any] struct {
	components map[Entity]T
}

// anyStore provides type-erased operations for lifecycle management, so the
// World can drop an entity from every store without knowing the concrete type.
type anyStore interface {
	remove(e Entity)
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[Entity]T),
	}
}

// Set inserts or replaces the component of an entity
func (s *Store[T]) Set(e Entity, val T) {
	s.components[e] = val
}

// Get retrieves the component of an entity
func (s *Store[T]) Get(e Entity) (T, bool) {
	val, ok := s.components[e]
	return val, ok
}

// Delete removes the component of an entity, if any
func (s *Store[T]) Delete(e Entity) {
	delete(s.components, e)
}

// Has checks if the entity has this component
func (s *Store[T]) Has(e Entity) bool {
	_, ok := s.components[e]
	return ok
}

// Len returns the number of entities with this component
func (s *Store[T]) Len() int {
	return len(s.components)
}

func (s *Store[T]) remove(e Entity) { s.Delete(e) }
