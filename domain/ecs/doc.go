// Package ecs implements a minimal entity-component store.
//
// # Core Types
//
// Entity: An opaque identifier. The zero value NoEntity is never allocated,
// identifiers grow monotonically from 1 and are never reused.
//
// World: The authoritative container. It allocates entities and owns one typed
// Store per component kind.
//
// Component: Any value type that reports its Kind. A Kind selects the typed
// Store holding values of that type, so an entity carries at most one value per
// component type at any time.
//
// # Access
//
// Components are attached and queried through the generic helpers Add, Get,
// Has, Remove and EntitiesWith. Values are returned by copy. Queries against an
// unknown or destroyed entity report "absent" instead of failing; only Add
// rejects an unknown entity with ErrUnknownEntity.
//
// # Concurrency
//
// A World is not safe for concurrent use. Callers that share one across
// goroutines must guard every read-modify-write group with a single lock.
package ecs
