package deck

import (
	"errors"

	"github.com/luca-patrignani/card-ecs/domain/card"
	"github.com/luca-patrignani/card-ecs/domain/ecs"
)

// ErrNoHand is returned when the target entity carries no card.Hand component.
var ErrNoHand = errors.New("entity has no hand")

// Draw moves one InDeck card into the hand.
//
// It fails (ok is false, nothing changes) when the entity has no hand, the
// hand is full, or no card is left in the deck. Otherwise the selected card
// becomes InHand and is appended to the right end of the hand.
func Draw(w *ecs.World, hand ecs.Entity) (drawn ecs.Entity, ok bool) {
	h, ok := ecs.Get[card.Hand](w, hand)
	if !ok || h.Full() {
		return ecs.NoEntity, false
	}

	drawn = firstInState(w, card.InDeck)
	if drawn == ecs.NoEntity {
		return ecs.NoEntity, false
	}
	if err := h.Add(drawn); err != nil {
		return ecs.NoEntity, false
	}

	// both entities are alive, so neither write can fail
	_ = ecs.Add(w, drawn, card.InHand)
	_ = ecs.Add(w, hand, h)
	return drawn, true
}

// DrawN draws up to n cards, stopping at the first failed draw.
// Returns the number of cards actually drawn.
func DrawN(w *ecs.World, hand ecs.Entity, n int) int {
	drawn := 0
	for i := 0; i < n; i++ {
		if _, ok := Draw(w, hand); !ok {
			break
		}
		drawn++
	}
	return drawn
}

func firstInState(w *ecs.World, state card.State) ecs.Entity {
	for _, e := range ecs.EntitiesWith[card.State](w) {
		if s, _ := ecs.Get[card.State](w, e); s == state {
			return e
		}
	}
	return ecs.NoEntity
}

// InState returns the cards currently in the given state, in creation order
func InState(w *ecs.World, state card.State) []ecs.Entity {
	var result []ecs.Entity
	for _, e := range ecs.EntitiesWith[card.State](w) {
		if s, _ := ecs.Get[card.State](w, e); s == state {
			result = append(result, e)
		}
	}
	return result
}

// Remaining returns how many cards are still available to draw
func Remaining(w *ecs.World) int {
	return len(InState(w, card.InDeck))
}
