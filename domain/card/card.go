package card

import (
	"errors"
	"fmt"

	"github.com/luca-patrignani/card-ecs/domain/ecs"
)

var (
	// ErrInvalidCard reports a rank or suit outside its domain.
	ErrInvalidCard = errors.New("invalid card")
	// ErrInvalidConfiguration reports a hand built with a maximum size below 1.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrIndexOutOfRange reports a hand position outside the current bounds.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrHandFull reports an attempt to exceed the hand's maximum size.
	ErrHandFull = errors.New("hand is full")
)

// Component kinds owned by this package
const (
	RankKind ecs.Kind = iota + 1
	SuitKind
	StateKind
	HandKind
)

func (Rank) ComponentKind() ecs.Kind  { return RankKind }
func (Suit) ComponentKind() ecs.Kind  { return SuitKind }
func (State) ComponentKind() ecs.Kind { return StateKind }
func (Hand) ComponentKind() ecs.Kind  { return HandKind }

// Card is the (rank, suit) fact of a playing card.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - rank: 2-14 (Jack=11, Queen=12, King=13, Ace=14)
//   - suit: Spades, Hearts, Diamonds or Clubs
//
// Returns the Card or an error wrapping ErrInvalidCard.
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.Valid() || !suit.Valid() {
		return Card{}, fmt.Errorf("%w: rank %d, suit %d", ErrInvalidCard, rank, suit)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// String returns a human-readable representation such as "A♠" or "10♥".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Read resolves the card fact of an entity. ok is false when the entity lacks
// a Rank or a Suit.
func Read(w *ecs.World, e ecs.Entity) (c Card, ok bool) {
	rank, ok := ecs.Get[Rank](w, e)
	if !ok {
		return Card{}, false
	}
	suit, ok := ecs.Get[Suit](w, e)
	if !ok {
		return Card{}, false
	}
	return Card{Rank: rank, Suit: suit}, true
}
