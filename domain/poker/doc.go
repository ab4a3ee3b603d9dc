// Package poker classifies a hand of cards into a poker-hand category and the
// base score that category is worth.
//
// # Evaluation
//
// Evaluate reads the hand's members from the world, skipping any member that
// lacks a rank or a suit, and classifies the resulting card facts. Categories
// are checked from the strongest down and the first match wins:
//
//	Royal Flush      100
//	Straight Flush    75
//	Four of a Kind    50
//	Full House        25
//	Flush             20
//	Straight          15
//	Three of a Kind   10
//	Two Pair           5
//	Pair               2
//	High Card          1
//
// A hand without cards scores (HighCard, 0). Evaluation never mutates the
// world and never fails.
//
// # Description
//
// Describe renders a 5 or 7 card hand as a descriptive name ("pair of kings")
// using the github.com/paulhankin/poker evaluator.
package poker
