package game

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/luca-patrignani/card-ecs/baking"
	"github.com/luca-patrignani/card-ecs/content"
	"github.com/luca-patrignani/card-ecs/domain/card"
	"github.com/luca-patrignani/card-ecs/domain/deck"
	"github.com/luca-patrignani/card-ecs/domain/ecs"
	"github.com/luca-patrignani/card-ecs/domain/poker"
	"github.com/luca-patrignani/card-ecs/ledger"
	"github.com/luca-patrignani/card-ecs/rng"
)

// Session owns a world holding one baked deck and one hand.
type Session struct {
	cfg         Config
	deckName    string
	world       *ecs.World
	hand        ecs.Entity
	src         rng.Source
	chain       *ledger.Chain
	roundID     string
	nextRoundID func() string
	logger      *slog.Logger
}

// NewSession bakes the configured deck into a fresh world, creates the hand
// and, when cfg.Shuffle is set, shuffles the deck.
//
// Parameters:
//   - cfg: validated session configuration
//   - m: content manager the deck is loaded from
//   - opts: WithLogger, WithSource, WithRoundIDs
//
// Returns an error if the config is invalid, the deck is unknown or baking fails.
func NewSession(cfg Config, m *content.Manager, opts ...option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	authoring, err := m.LoadDeck(cfg.Deck)
	if err != nil {
		return nil, err
	}

	s := Session{
		cfg:         cfg,
		deckName:    authoring.Name,
		world:       ecs.NewWorld(),
		chain:       ledger.New(),
		nextRoundID: uuid.NewString,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	if cfg.Seed != nil {
		s.src = rng.NewSeeded(*cfg.Seed)
	} else {
		s.src = rng.NewCrypto()
	}
	for _, opt := range opts {
		s = opt(s)
	}
	s.roundID = s.nextRoundID()

	bs := baking.NewSystem(s.world)
	baking.Register[content.DeckAuthoring](bs, baking.DeckBaker{})
	cards, err := baking.Bake(bs, authoring)
	if err != nil {
		return nil, err
	}

	h, err := card.NewHand(cfg.HandSize)
	if err != nil {
		return nil, err
	}
	s.hand = s.world.CreateEntity()
	if err := ecs.Add(s.world, s.hand, h); err != nil {
		return nil, err
	}
	s.logger.Info("session created",
		"deck", cfg.Deck,
		"cards", len(cards),
		"hand_size", cfg.HandSize,
		"round", s.roundID,
		"checksum", fmt.Sprintf("%016x", m.Checksum()),
	)

	if cfg.Shuffle {
		if err := s.Shuffle(); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

// Shuffle permutes the cards still in the deck.
func (s *Session) Shuffle() error {
	deck.Shuffle(s.world, s.src)
	s.logger.Debug("deck shuffled", "remaining", s.Remaining())
	return s.record(ledger.Action{Type: ledger.ActionShuffle})
}

// Draw draws up to n cards into the hand and returns the ones drawn. Fewer than
// n cards are returned when the hand fills up or the deck runs out.
func (s *Session) Draw(n int) ([]card.Card, error) {
	var drawn []card.Card
	for i := 0; i < n; i++ {
		e, ok := deck.Draw(s.world, s.hand)
		if !ok {
			break
		}
		c, _ := card.Read(s.world, e)
		drawn = append(drawn, c)
	}
	if len(drawn) < n {
		s.logger.Warn("short draw", "requested", n, "drawn", len(drawn), "remaining", s.Remaining())
	}
	s.logger.Info("cards drawn", "cards", labels(drawn))
	return drawn, s.record(ledger.Action{Type: ledger.ActionDraw, Hand: uint64(s.hand), Cards: labels(drawn)})
}

// HandCards returns the cards in the hand, left to right.
func (s *Session) HandCards() []card.Card {
	h, ok := ecs.Get[card.Hand](s.world, s.hand)
	if !ok {
		return nil
	}
	return poker.Resolve(s.world, h)
}

// Evaluate scores the current hand without changing it.
func (s *Session) Evaluate() (poker.Result, error) {
	result := poker.Evaluate(s.world, s.hand)
	s.logger.Info("hand evaluated", "category", result.Category, "score", result.BaseScore)
	return result, s.record(ledger.Action{
		Type:     ledger.ActionEvaluate,
		Hand:     uint64(s.hand),
		Cards:    labels(s.HandCards()),
		Category: result.Category.String(),
		Score:    result.BaseScore,
	})
}

// Describe names the hand with the paulhankin/poker evaluator. Only 5 and 7
// card hands can be described.
func (s *Session) Describe() (string, error) {
	return poker.Describe(s.HandCards())
}

// Discard sends the whole hand to the discard pile.
func (s *Session) Discard() ([]card.Card, error) {
	cards := s.HandCards()
	deck.Discard(s.world, s.hand)
	s.logger.Info("hand discarded", "cards", labels(cards))
	return cards, s.record(ledger.Action{Type: ledger.ActionDiscard, Hand: uint64(s.hand), Cards: labels(cards)})
}

// DiscardAt discards the card at index in the hand.
func (s *Session) DiscardAt(index int) (card.Card, error) {
	e, err := deck.DiscardAt(s.world, s.hand, index)
	if err != nil {
		return card.Card{}, err
	}
	c, _ := card.Read(s.world, e)
	s.logger.Info("card discarded", "card", c.String(), "index", index)
	return c, s.record(ledger.Action{Type: ledger.ActionDiscard, Hand: uint64(s.hand), Cards: []string{c.String()}})
}

// Play evaluates the hand, discards it and starts a new round.
func (s *Session) Play() (poker.Result, error) {
	result, err := s.Evaluate()
	if err != nil {
		return result, err
	}
	if _, err := s.Discard(); err != nil {
		return result, err
	}
	previous := s.roundID
	s.roundID = s.nextRoundID()
	s.logger.Info("round finished", "round", previous, "next", s.roundID, "score", result.BaseScore)
	return result, nil
}

// Remaining returns how many cards are left to draw
func (s *Session) Remaining() int {
	return deck.Remaining(s.world)
}

func (s *Session) Ledger() *ledger.Chain {
	return s.chain
}

func (s *Session) RoundID() string {
	return s.roundID
}

func (s *Session) DeckName() string {
	return s.deckName
}

func (s *Session) HandSize() int {
	return s.cfg.HandSize
}

func (s *Session) record(action ledger.Action) error {
	if err := s.chain.Append(action, s.roundID); err != nil {
		return fmt.Errorf("recording %s: %w", action.Type, err)
	}
	return nil
}

func labels(cards []card.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}
