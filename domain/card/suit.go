package card

import (
	"fmt"
	"strings"
)

// Suit is one of the four card suits.
type Suit uint8

// Card suit constants
const (
	Spades   Suit = iota // ♠
	Hearts               // ♥
	Diamonds             // ♦
	Clubs                // ♣
)

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	return s <= Clubs
}

// String returns the suit symbol
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// Red reports whether the suit is printed in red
func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

// ParseSuit accepts suit names (singular or plural), single letters and symbols.
func ParseSuit(s string) (Suit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "spades", "spade", "s", "♠":
		return Spades, nil
	case "hearts", "heart", "h", "♥":
		return Hearts, nil
	case "diamonds", "diamond", "d", "♦":
		return Diamonds, nil
	case "clubs", "club", "c", "♣":
		return Clubs, nil
	}
	return 0, fmt.Errorf("%w: suit %q", ErrInvalidCard, s)
}
