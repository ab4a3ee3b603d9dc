package baking

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/luca-patrignani/card-ecs/domain/ecs"
)

// ErrNoBaker is returned by Bake when no baker is registered for the authoring type.
var ErrNoBaker = errors.New("no baker registered")

// Context is handed to a Baker for a single Bake call.
type Context struct {
	World   *ecs.World
	created []ecs.Entity
}

// CreateEntity creates an entity in the world and records it as baked output.
func (c *Context) CreateEntity() ecs.Entity {
	e := c.World.CreateEntity()
	c.created = append(c.created, e)
	return e
}

// Baker converts authoring data of type T into entities.
type Baker[T any] interface {
	Bake(ctx *Context, authoring T) error
}

// System holds the registered bakers for one world.
type System struct {
	world  *ecs.World
	bakers map[reflect.Type]any
}

func NewSystem(w *ecs.World) *System {
	return &System{world: w, bakers: make(map[reflect.Type]any)}
}

// Register installs b as the baker for T, replacing any previous one.
func Register[T any](s *System, b Baker[T]) {
	s.bakers[reflect.TypeOf((*T)(nil)).Elem()] = b
}

// Bake runs the baker registered for T and returns the entities it created.
// On error the entities created before the failure are destroyed.
func Bake[T any](s *System, authoring T) ([]ecs.Entity, error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	b, ok := s.bakers[t]
	if !ok {
		return nil, fmt.Errorf("%w for %v", ErrNoBaker, t)
	}
	ctx := &Context{World: s.world}
	if err := b.(Baker[T]).Bake(ctx, authoring); err != nil {
		for _, e := range ctx.created {
			s.world.DestroyEntity(e)
		}
		return nil, fmt.Errorf("baking %v: %w", t, err)
	}
	return ctx.created, nil
}
