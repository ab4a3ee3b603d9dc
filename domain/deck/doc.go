// Package deck moves cards between the deck, a hand and the discard pile.
//
// Cards are entities carrying card.Rank, card.Suit and card.State components;
// a hand is an entity carrying a card.Hand component. All functions operate
// on an explicitly passed *ecs.World.
//
// # Draw Order
//
// Draw selects the first InDeck card in entity creation order. Shuffle keeps
// that rule and instead permutes the (rank, suit) facts among the InDeck
// cards, so the same seed always yields the same draw sequence.
package deck
