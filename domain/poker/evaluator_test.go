package poker

import (
	"testing"

	"github.com/luca-patrignani/card-ecs/domain/card"
	"github.com/luca-patrignani/card-ecs/domain/ecs"
)

func c(r card.Rank, s card.Suit) card.Card {
	return card.Card{Rank: r, Suit: s}
}

const (
	S = card.Spades
	H = card.Hearts
	D = card.Diamonds
	C = card.Clubs
)

func TestEvaluateCards(t *testing.T) {
	tests := []struct {
		name  string
		cards []card.Card
		want  Result
	}{
		{"royal flush", []card.Card{c(10, S), c(card.Jack, S), c(card.Queen, S), c(card.King, S), c(card.Ace, S)}, Result{RoyalFlush, 100}},
		{"straight flush", []card.Card{c(5, H), c(6, H), c(7, H), c(8, H), c(9, H)}, Result{StraightFlush, 75}},
		{"wheel straight flush", []card.Card{c(card.Ace, D), c(2, D), c(3, D), c(4, D), c(5, D)}, Result{StraightFlush, 75}},
		{"four of a kind", []card.Card{c(9, S), c(9, H), c(9, D), c(9, C), c(2, S)}, Result{FourOfAKind, 50}},
		{"full house", []card.Card{c(2, H), c(2, D), c(2, C), c(5, S), c(5, H)}, Result{FullHouse, 25}},
		{"flush", []card.Card{c(2, C), c(7, C), c(9, C), c(card.Jack, C), c(card.King, C)}, Result{Flush, 20}},
		{"straight mixed suits", []card.Card{c(2, S), c(3, S), c(4, H), c(5, D), c(6, C)}, Result{Straight, 15}},
		{"ace-low straight", []card.Card{c(card.Ace, S), c(2, D), c(3, C), c(4, H), c(5, S)}, Result{Straight, 15}},
		{"unordered straight", []card.Card{c(card.King, S), c(10, D), c(card.Ace, C), c(card.Queen, H), c(card.Jack, S)}, Result{Straight, 15}},
		{"three of a kind", []card.Card{c(7, S), c(7, H), c(7, D), c(2, C), c(card.King, S)}, Result{ThreeOfAKind, 10}},
		{"two pair", []card.Card{c(3, S), c(3, H), c(8, D), c(8, C), c(card.Queen, S)}, Result{TwoPair, 5}},
		{"pair", []card.Card{c(card.Ace, S), c(card.Ace, H), c(4, D), c(8, C), c(card.Queen, S)}, Result{Pair, 2}},
		{"high card", []card.Card{c(2, S), c(5, H), c(9, D), c(card.Jack, C), c(card.King, S)}, Result{HighCard, 1}},
		{"empty", nil, Result{HighCard, 0}},
		{"single card", []card.Card{c(card.Ace, S)}, Result{Flush, 20}},
		{"four cards cannot straight", []card.Card{c(2, S), c(3, H), c(4, D), c(5, C)}, Result{HighCard, 1}},
		{"four suited run is only a flush", []card.Card{c(2, S), c(3, S), c(4, S), c(5, S)}, Result{Flush, 20}},
		{"duplicate breaks the run", []card.Card{c(2, S), c(3, H), c(4, D), c(5, C), c(5, S), c(6, H)}, Result{Pair, 2}},
		{"six card run", []card.Card{c(2, S), c(3, H), c(4, D), c(5, C), c(6, S), c(7, H)}, Result{Straight, 15}},
		{"wheel needs exactly five", []card.Card{c(card.Ace, S), c(2, D), c(3, C), c(4, H), c(5, S), c(card.King, D)}, Result{HighCard, 1}},
		{"full house beats flush", []card.Card{c(4, H), c(4, H), c(4, H), c(9, H), c(9, H)}, Result{FullHouse, 25}},
		{"three pairs", []card.Card{c(2, S), c(2, H), c(6, D), c(6, C), c(9, S), c(9, H)}, Result{TwoPair, 5}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := EvaluateCards(tc.cards)
			if got != tc.want {
				t.Fatalf("expected %v (%d), got %v (%d)", tc.want.Category, tc.want.BaseScore, got.Category, got.BaseScore)
			}
		})
	}
}

func newHand(t *testing.T, w *ecs.World, max int, cards ...card.Card) ecs.Entity {
	t.Helper()
	h, err := card.NewHand(max)
	if err != nil {
		t.Fatal(err)
	}
	for _, fact := range cards {
		e := w.CreateEntity()
		_ = ecs.Add(w, e, fact.Rank)
		_ = ecs.Add(w, e, fact.Suit)
		_ = ecs.Add(w, e, card.InHand)
		if err := h.Add(e); err != nil {
			t.Fatal(err)
		}
	}
	hand := w.CreateEntity()
	if err := ecs.Add(w, hand, h); err != nil {
		t.Fatal(err)
	}
	return hand
}

func TestEvaluateFromWorld(t *testing.T) {
	w := ecs.NewWorld()
	hand := newHand(t, w, 5, c(10, S), c(card.Jack, S), c(card.Queen, S), c(card.King, S), c(card.Ace, S))
	got := Evaluate(w, hand)
	if got != (Result{RoyalFlush, 100}) {
		t.Fatalf("expected royal flush, got %v", got)
	}
	if again := Evaluate(w, hand); again != got {
		t.Fatalf("evaluation is not idempotent: %v then %v", got, again)
	}
}

func TestEvaluateEmptyAndMissing(t *testing.T) {
	w := ecs.NewWorld()
	empty := newHand(t, w, 5)
	if got := Evaluate(w, empty); got != (Result{HighCard, 0}) {
		t.Fatalf("expected (HighCard, 0), got %v", got)
	}

	bare := w.CreateEntity()
	if got := Evaluate(w, bare); got != (Result{HighCard, 0}) {
		t.Fatalf("expected (HighCard, 0) without a hand, got %v", got)
	}

	// members without a rank or suit are skipped
	h, _ := card.NewHand(5)
	faceless := w.CreateEntity()
	_ = ecs.Add(w, faceless, card.Spades)
	_ = h.Add(faceless)
	_ = h.Add(w.CreateEntity())
	hand := w.CreateEntity()
	_ = ecs.Add(w, hand, h)
	if got := Evaluate(w, hand); got != (Result{HighCard, 0}) {
		t.Fatalf("expected (HighCard, 0) with no resolvable card, got %v", got)
	}

	pair := newHand(t, w, 5, c(card.King, S), c(card.King, H))
	hp, _ := ecs.Get[card.Hand](w, pair)
	_ = hp.Add(faceless)
	_ = ecs.Add(w, pair, hp)
	if got := Evaluate(w, pair); got != (Result{Pair, 2}) {
		t.Fatalf("expected pair, got %v", got)
	}
}

func TestEvaluateDoesNotMutate(t *testing.T) {
	w := ecs.NewWorld()
	hand := newHand(t, w, 5, c(2, S), c(2, H), c(9, D))
	before := w.Entities()
	h, _ := ecs.Get[card.Hand](w, hand)
	Evaluate(w, hand)
	after, _ := ecs.Get[card.Hand](w, hand)
	if len(w.Entities()) != len(before) || after.Len() != h.Len() {
		t.Fatal("evaluation changed the world")
	}
	for _, e := range h.Cards() {
		if s, _ := ecs.Get[card.State](w, e); s != card.InHand {
			t.Fatalf("%s state changed to %s", e, s)
		}
	}
}

func TestCategoryNames(t *testing.T) {
	if RoyalFlush.String() != "Royal Flush" || HighCard.String() != "High Card" {
		t.Fatal("unexpected category names")
	}
	if Category(42).BaseScore() != 0 || Category(42).String() != "Unknown" {
		t.Fatal("unknown categories score nothing")
	}
}
