// Package baking turns validated authoring data into entities and components.
//
// # Core Types
//
//   - Context: the world being populated plus the entities created so far.
//   - Baker: converts one authoring type into entities.
//   - System: a registry of bakers keyed by authoring type.
//
// # Usage
//
//	s := baking.NewSystem(world)
//	baking.Register[content.DeckAuthoring](s, baking.DeckBaker{})
//	cards, err := baking.Bake(s, deckAuthoring)
package baking
