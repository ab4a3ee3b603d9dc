package card

import (
	"fmt"
	"strconv"
	"strings"
)

// Rank is the ordinal value of a card, 2 through 14.
type Rank uint8

// Card rank constants
const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11 // J
	Queen Rank = 12 // Q
	King  Rank = 13 // K
	Ace   Rank = 14 // A (high; low only inside the wheel straight)
)

// Valid reports whether r is within 2..14
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// String returns the rank abbreviation: 2-10, J, Q, K or A.
func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return strconv.Itoa(int(r))
	}
}

// ParseRank converts "2".."14", "J", "Q", "K", "A" or the full English names
// (case-insensitive) into a Rank.
func ParseRank(s string) (Rank, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "j", "jack":
		return Jack, nil
	case "q", "queen":
		return Queen, nil
	case "k", "king":
		return King, nil
	case "a", "ace":
		return Ace, nil
	case "two":
		return Two, nil
	case "three":
		return Three, nil
	case "four":
		return Four, nil
	case "five":
		return Five, nil
	case "six":
		return Six, nil
	case "seven":
		return Seven, nil
	case "eight":
		return Eight, nil
	case "nine":
		return Nine, nil
	case "ten", "t":
		return Ten, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < int(Two) || n > int(Ace) {
		return 0, fmt.Errorf("%w: rank %q", ErrInvalidCard, s)
	}
	return Rank(n), nil
}
