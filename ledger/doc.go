// Package ledger records the actions of a card session in an append-only
// hash chain.
//
// # Core Components
//
// Chain: An append-only log of actions with SHA-256 hash chaining for tamper
// detection.
//
// Block: A single recorded action with its round id and a link to the hash
// of the previous block.
//
// # Usage
//
// Create a chain with New, which seeds it with a genesis block, then Append an
// Action for every shuffle, draw, discard and evaluation. Verify can be called
// at any time to check that the chain is intact.
package ledger
