package poker

import (
	"slices"

	"github.com/luca-patrignani/card-ecs/domain/card"
	"github.com/luca-patrignani/card-ecs/domain/ecs"
)

// minStraightLen is the fewest cards that can form a straight
const minStraightLen = 5

var wheel = []card.Rank{card.Two, card.Three, card.Four, card.Five, card.Ace}

// Evaluate classifies the cards held by the hand entity.
//
// Parameters:
//   - w: the world holding the hand and its cards (read only)
//   - hand: an entity carrying a card.Hand component
//
// Returns (HighCard, 0) when the entity has no hand or none of its members
// resolves to a card.
func Evaluate(w *ecs.World, hand ecs.Entity) Result {
	h, ok := ecs.Get[card.Hand](w, hand)
	if !ok {
		return Result{Category: HighCard}
	}
	return EvaluateCards(Resolve(w, h))
}

// Resolve reads the card fact of every hand member in play order, skipping
// members missing a rank or a suit.
func Resolve(w *ecs.World, h card.Hand) []card.Card {
	members := h.Cards()
	cards := make([]card.Card, 0, len(members))
	for _, e := range members {
		if c, ok := card.Read(w, e); ok {
			cards = append(cards, c)
		}
	}
	return cards
}

// EvaluateCards classifies card facts, checking categories from the strongest
// down. An empty slice scores (HighCard, 0).
func EvaluateCards(cards []card.Card) Result {
	if len(cards) == 0 {
		return Result{Category: HighCard}
	}

	counts := rankCounts(cards)
	switch {
	case isRoyalFlush(cards):
		return resultOf(RoyalFlush)
	case isStraightFlush(cards):
		return resultOf(StraightFlush)
	case hasCountAtLeast(counts, 4):
		return resultOf(FourOfAKind)
	case isFullHouse(counts):
		return resultOf(FullHouse)
	case isFlush(cards):
		return resultOf(Flush)
	case isStraight(cards):
		return resultOf(Straight)
	case hasCountAtLeast(counts, 3):
		return resultOf(ThreeOfAKind)
	case pairsCount(counts) >= 2:
		return resultOf(TwoPair)
	case hasCountAtLeast(counts, 2):
		return resultOf(Pair)
	}
	return resultOf(HighCard)
}

func isRoyalFlush(cards []card.Card) bool {
	return isStraightFlush(cards) && hasRank(cards, card.Ten) && hasRank(cards, card.Ace)
}

func isStraightFlush(cards []card.Card) bool {
	return isFlush(cards) && isStraight(cards)
}

func isFlush(cards []card.Card) bool {
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			return false
		}
	}
	return true
}

// isStraight accepts a run of consecutive ranks (duplicates break the run) or
// exactly the ace-low wheel 2-3-4-5-A.
func isStraight(cards []card.Card) bool {
	if len(cards) < minStraightLen {
		return false
	}
	ranks := make([]card.Rank, len(cards))
	for i, c := range cards {
		ranks[i] = c.Rank
	}
	slices.Sort(ranks)

	if slices.Equal(ranks, wheel) {
		return true
	}
	for i := 1; i < len(ranks); i++ {
		if ranks[i] != ranks[i-1]+1 {
			return false
		}
	}
	return true
}

func isFullHouse(counts map[card.Rank]int) bool {
	three, two := false, false
	for _, n := range counts {
		switch n {
		case 3:
			three = true
		case 2:
			two = true
		}
	}
	return three && two
}

func rankCounts(cards []card.Card) map[card.Rank]int {
	counts := make(map[card.Rank]int, len(cards))
	for _, c := range cards {
		counts[c.Rank]++
	}
	return counts
}

func hasCountAtLeast(counts map[card.Rank]int, n int) bool {
	for _, c := range counts {
		if c >= n {
			return true
		}
	}
	return false
}

func pairsCount(counts map[card.Rank]int) int {
	pairs := 0
	for _, c := range counts {
		if c >= 2 {
			pairs++
		}
	}
	return pairs
}

func hasRank(cards []card.Card, r card.Rank) bool {
	return slices.ContainsFunc(cards, func(c card.Card) bool { return c.Rank == r })
}
