package deck

import (
	"fmt"

	"github.com/luca-patrignani/card-ecs/domain/card"
	"github.com/luca-patrignani/card-ecs/domain/ecs"
)

// Discard marks every card of the hand as Discarded and empties the hand.
// Entities without a hand are ignored, and discarding an empty hand is a no-op.
// Returns the discarded cards in play order.
func Discard(w *ecs.World, hand ecs.Entity) []ecs.Entity {
	h, ok := ecs.Get[card.Hand](w, hand)
	if !ok {
		return nil
	}
	cards := h.Cards()
	for _, c := range cards {
		markDiscarded(w, c)
	}
	h.Clear()
	_ = ecs.Add(w, hand, h)
	return cards
}

// DiscardAt removes the card at index from the hand and marks it Discarded.
//
// Returns ErrNoHand when the entity has no hand and card.ErrIndexOutOfRange
// when index is outside the hand.
func DiscardAt(w *ecs.World, hand ecs.Entity, index int) (ecs.Entity, error) {
	h, ok := ecs.Get[card.Hand](w, hand)
	if !ok {
		return ecs.NoEntity, fmt.Errorf("%w: %s", ErrNoHand, hand)
	}
	removed, err := h.RemoveAt(index)
	if err != nil {
		return ecs.NoEntity, err
	}
	markDiscarded(w, removed)
	_ = ecs.Add(w, hand, h)
	return removed, nil
}

// markDiscarded only touches cards that track a state
func markDiscarded(w *ecs.World, c ecs.Entity) {
	if ecs.Has[card.State](w, c) {
		_ = ecs.Add(w, c, card.Discarded)
	}
}
