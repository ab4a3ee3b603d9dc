package ecs

import "strconv"

// Entity is a unique identifier for an entity
type Entity uint64

// NoEntity is the reserved "absent" identifier. CreateEntity never returns it.
const NoEntity Entity = 0

// String returns "Entity(<id>)".
func (e Entity) String() string {
	return "Entity(" + strconv.FormatUint(uint64(e), 10) + ")"
}
