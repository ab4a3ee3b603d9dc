package card

import (
	"fmt"
	"slices"

	"github.com/luca-patrignani/card-ecs/domain/ecs"
)

// Hand groups card entities in left-to-right play order under a size bound.
//
// The member slice is copy-on-write: every mutator builds a fresh slice, so a
// Hand read from the world never shares memory another copy can change.
type Hand struct {
	cards   []ecs.Entity
	maxSize int
}

// NewHand returns an empty hand holding at most maxSize cards.
// Returns ErrInvalidConfiguration if maxSize is less than 1.
func NewHand(maxSize int) (Hand, error) {
	if maxSize < 1 {
		return Hand{}, fmt.Errorf("%w: max hand size must be at least 1, got %d", ErrInvalidConfiguration, maxSize)
	}
	return Hand{maxSize: maxSize}, nil
}

// Cards returns a copy of the member entities in play order
func (h Hand) Cards() []ecs.Entity {
	return slices.Clone(h.cards)
}

// Len returns the current number of cards
func (h Hand) Len() int {
	return len(h.cards)
}

// MaxSize returns the configured capacity
func (h Hand) MaxSize() int {
	return h.maxSize
}

// Full reports whether no more cards fit
func (h Hand) Full() bool {
	return len(h.cards) >= h.maxSize
}

// Contains reports whether the card entity is a member
func (h Hand) Contains(e ecs.Entity) bool {
	return slices.Contains(h.cards, e)
}

// Add appends a card at the right end. The hand is left untouched when it is
// already full.
func (h *Hand) Add(e ecs.Entity) error {
	if h.Full() {
		return fmt.Errorf("%w: max hand size %d", ErrHandFull, h.maxSize)
	}
	cards := make([]ecs.Entity, len(h.cards), len(h.cards)+1)
	copy(cards, h.cards)
	h.cards = append(cards, e)
	return nil
}

// RemoveAt removes and returns the card at index.
func (h *Hand) RemoveAt(index int) (ecs.Entity, error) {
	if index < 0 || index >= len(h.cards) {
		return ecs.NoEntity, fmt.Errorf("%w: card index %d, hand size %d", ErrIndexOutOfRange, index, len(h.cards))
	}
	removed := h.cards[index]
	h.cards = slices.Delete(slices.Clone(h.cards), index, index+1)
	return removed, nil
}

// Clear empties the hand
func (h *Hand) Clear() {
	h.cards = nil
}

// SetMaxSize changes the capacity (buffs may grow or shrink it). The new size
// must be at least 1 and not below the current card count.
func (h *Hand) SetMaxSize(maxSize int) error {
	if maxSize < 1 || maxSize < len(h.cards) {
		return fmt.Errorf("%w: max hand size %d with %d cards held", ErrInvalidConfiguration, maxSize, len(h.cards))
	}
	h.maxSize = maxSize
	return nil
}
