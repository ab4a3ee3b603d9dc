package poker

// Category is a poker-hand classification, weakest first.
type Category int

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

var baseScores = [...]int{
	HighCard:      1,
	Pair:          2,
	TwoPair:       5,
	ThreeOfAKind:  10,
	Straight:      15,
	Flush:         20,
	FullHouse:     25,
	FourOfAKind:   50,
	StraightFlush: 75,
	RoyalFlush:    100,
}

// BaseScore returns the points the category is worth
func (c Category) BaseScore() int {
	if c < HighCard || c > RoyalFlush {
		return 0
	}
	return baseScores[c]
}

// String returns the readable name of the category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// Result is the outcome of evaluating a hand
type Result struct {
	Category  Category
	BaseScore int
}

func resultOf(c Category) Result {
	return Result{Category: c, BaseScore: c.BaseScore()}
}
