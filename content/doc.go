// Package content loads card and deck definitions and turns them into
// authoring data ready for baking.
//
// A Catalog lists cards (id, rank, suit) and decks (id, name, ordered card
// ids). Catalogs are read from JSON or YAML; Standard returns the embedded
// 52-card catalog. A Manager validates a catalog once and then resolves decks
// by id into DeckAuthoring values.
package content
