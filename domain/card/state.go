package card

// State is the lifecycle tag of a card.
type State uint8

const (
	InDeck    State = iota // available to draw
	InHand                 // held by a hand
	Discarded              // played or thrown away
)

func (s State) String() string {
	switch s {
	case InDeck:
		return "InDeck"
	case InHand:
		return "InHand"
	case Discarded:
		return "Discarded"
	default:
		return "Unknown"
	}
}
