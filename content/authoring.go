package content

import "github.com/luca-patrignani/card-ecs/domain/card"

// CardAuthoring is a validated card definition.
type CardAuthoring struct {
	Rank card.Rank
	Suit card.Suit
}

// DeckAuthoring is a validated deck: its cards in deck order.
type DeckAuthoring struct {
	ID    string
	Name  string
	Cards []CardAuthoring
}
