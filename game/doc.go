// Package game wires content, baking, the card systems and the ledger into a
// single-player session: shuffle, draw a hand, evaluate it, discard it and
// start the next round.
//
// A Session is not safe for concurrent use.
package game
