package deck

import (
	"github.com/luca-patrignani/card-ecs/domain/card"
	"github.com/luca-patrignani/card-ecs/domain/ecs"
	"github.com/luca-patrignani/card-ecs/rng"
)

// Shuffle permutes the rank and suit of the cards still in the deck.
// Cards in a hand or in the discard pile are left as they are.
func Shuffle(w *ecs.World, src rng.Source) {
	var slots []ecs.Entity
	var facts []card.Card
	for _, e := range InState(w, card.InDeck) {
		c, ok := card.Read(w, e)
		if !ok {
			continue
		}
		slots = append(slots, e)
		facts = append(facts, c)
	}

	perm := permutation(src, len(facts))
	for i, e := range slots {
		c := facts[perm[i]]
		_ = ecs.Add(w, e, c.Rank)
		_ = ecs.Add(w, e, c.Suit)
	}
}

// Helper function to generate a random permutation of size permSize
// (Fisher-Yates, driven by src)
func permutation(src rng.Source, permSize int) []int {
	perm := make([]int, permSize)
	for i := range perm {
		perm[i] = i
	}
	for i := permSize - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}
