package poker

import (
	"errors"
	"fmt"

	"github.com/paulhankin/poker"

	"github.com/luca-patrignani/card-ecs/domain/card"
)

// ErrUnsupportedHandSize is returned by Describe for hands that are neither 5
// nor 7 cards long.
var ErrUnsupportedHandSize = errors.New("describe needs exactly 5 or 7 cards")

// Describe returns a descriptive name for a 5 or 7 card hand, such as
// "king-high straight".
func Describe(cards []card.Card) (string, error) {
	if len(cards) != 5 && len(cards) != 7 {
		return "", fmt.Errorf("%w: got %d", ErrUnsupportedHandSize, len(cards))
	}
	converted := make([]poker.Card, len(cards))
	for i, c := range cards {
		pc, err := toPokerCard(c)
		if err != nil {
			return "", fmt.Errorf("invalid card at idx %d: %w", i, err)
		}
		converted[i] = pc
	}
	return poker.Describe(converted)
}

// toPokerCard maps a card fact onto the paulhankin representation, where the
// ace is rank 1.
func toPokerCard(c card.Card) (poker.Card, error) {
	var suit poker.Suit
	switch c.Suit {
	case card.Clubs:
		suit = poker.Club
	case card.Diamonds:
		suit = poker.Diamond
	case card.Hearts:
		suit = poker.Heart
	case card.Spades:
		suit = poker.Spade
	default:
		var zero poker.Card
		return zero, fmt.Errorf("%w: suit %d", card.ErrInvalidCard, c.Suit)
	}
	rank := poker.Rank(c.Rank)
	if c.Rank == card.Ace {
		rank = 1
	}
	return poker.MakeCard(suit, rank)
}
