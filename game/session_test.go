package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/card-ecs/content"
	"github.com/luca-patrignani/card-ecs/domain/card"
	"github.com/luca-patrignani/card-ecs/domain/poker"
	"github.com/luca-patrignani/card-ecs/ledger"
	"github.com/luca-patrignani/card-ecs/rng"
)

func standardManager(t *testing.T) *content.Manager {
	t.Helper()
	m, err := content.NewManager(content.Standard())
	require.NoError(t, err)
	return m
}

func seededConfig(seed int) Config {
	cfg := DefaultConfig()
	cfg.Seed = &seed
	return cfg
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("round-%d", n)
	}
}

func TestNewSessionUnshuffled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Shuffle = false
	s, err := NewSession(cfg, standardManager(t))
	require.NoError(t, err)
	assert.Equal(t, 52, s.Remaining())
	assert.Equal(t, "Standard Deck", s.DeckName())
	assert.NotEmpty(t, s.RoundID())

	drawn, err := s.Draw(5)
	require.NoError(t, err)
	require.Len(t, drawn, 5)
	// unshuffled decks are drawn in deck order: 2♠ 3♠ 4♠ 5♠ 6♠
	for i, c := range drawn {
		assert.Equal(t, card.Card{Rank: card.Rank(2 + i), Suit: card.Spades}, c)
	}
	assert.Equal(t, drawn, s.HandCards())

	result, err := s.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, poker.StraightFlush, result.Category)
	assert.Equal(t, 75, result.BaseScore)
}

// TestSeededSessionGolden pins the shuffle and draw order for seed 42.
func TestSeededSessionGolden(t *testing.T) {
	s, err := NewSession(seededConfig(42), standardManager(t), WithRoundIDs(sequentialIDs()))
	require.NoError(t, err)
	assert.Equal(t, "round-1", s.RoundID())

	drawn, err := s.Draw(5)
	require.NoError(t, err)
	assert.Equal(t, []string{"J♥", "5♥", "A♠", "J♣", "4♠"}, labels(drawn))

	result, err := s.Play()
	require.NoError(t, err)
	assert.Equal(t, poker.Pair, result.Category)
	assert.Equal(t, 2, result.BaseScore)
	assert.Empty(t, s.HandCards())
	assert.Equal(t, "round-2", s.RoundID())

	drawn, err = s.Draw(5)
	require.NoError(t, err)
	assert.Equal(t, []string{"Q♦", "4♣", "K♥", "7♣", "J♠"}, labels(drawn))
	result, err = s.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, poker.HighCard, result.Category)
	assert.Equal(t, 42, s.Remaining())
}

func TestSeededSessionsAgree(t *testing.T) {
	a, err := NewSession(seededConfig(7), standardManager(t))
	require.NoError(t, err)
	b, err := NewSession(seededConfig(7), standardManager(t))
	require.NoError(t, err)

	for round := 0; round < 3; round++ {
		da, err := a.Draw(5)
		require.NoError(t, err)
		db, err := b.Draw(5)
		require.NoError(t, err)
		require.Equal(t, da, db)
		_, err = a.Play()
		require.NoError(t, err)
		_, err = b.Play()
		require.NoError(t, err)
	}
}

func TestWithSourceOverridesSeed(t *testing.T) {
	a, err := NewSession(seededConfig(1), standardManager(t), WithSource(rng.NewSeeded(42)))
	require.NoError(t, err)
	drawn, err := a.Draw(3)
	require.NoError(t, err)
	assert.Equal(t, []string{"J♥", "5♥", "A♠"}, labels(drawn))
}

func TestDrawStopsWhenHandFull(t *testing.T) {
	s, err := NewSession(seededConfig(3), standardManager(t))
	require.NoError(t, err)
	drawn, err := s.Draw(8)
	require.NoError(t, err)
	assert.Len(t, drawn, 5)
	assert.Equal(t, 47, s.Remaining())

	drawn, err = s.Draw(1)
	require.NoError(t, err)
	assert.Empty(t, drawn)
}

func TestDiscardAt(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Shuffle = false
	s, err := NewSession(cfg, standardManager(t))
	require.NoError(t, err)
	_, err = s.Draw(5)
	require.NoError(t, err)

	c, err := s.DiscardAt(1)
	require.NoError(t, err)
	assert.Equal(t, card.Card{Rank: card.Three, Suit: card.Spades}, c)
	assert.Len(t, s.HandCards(), 4)

	_, err = s.DiscardAt(9)
	require.ErrorIs(t, err, card.ErrIndexOutOfRange)

	drawn, err := s.Draw(1)
	require.NoError(t, err)
	assert.Equal(t, []card.Card{{Rank: card.Seven, Suit: card.Spades}}, drawn)
	assert.Equal(t, card.Seven, s.HandCards()[4].Rank)
}

func TestDeckRunsOut(t *testing.T) {
	cfg := seededConfig(11)
	s, err := NewSession(cfg, standardManager(t))
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		drawn, err := s.Draw(5)
		require.NoError(t, err)
		require.Len(t, drawn, 5)
		_, err = s.Play()
		require.NoError(t, err)
	}
	drawn, err := s.Draw(5)
	require.NoError(t, err)
	assert.Len(t, drawn, 2)
	assert.Equal(t, 0, s.Remaining())
}

func TestLedgerRecordsEveryAction(t *testing.T) {
	s, err := NewSession(seededConfig(42), standardManager(t), WithRoundIDs(sequentialIDs()))
	require.NoError(t, err)
	_, err = s.Draw(5)
	require.NoError(t, err)
	_, err = s.Play()
	require.NoError(t, err)

	chain := s.Ledger()
	require.NoError(t, chain.Verify())
	var types []ledger.ActionType
	for _, b := range chain.Blocks() {
		types = append(types, b.Action.Type)
	}
	assert.Equal(t, []ledger.ActionType{
		ledger.ActionGenesis, ledger.ActionShuffle, ledger.ActionDraw, ledger.ActionEvaluate, ledger.ActionDiscard,
	}, types)

	eval, err := chain.ByIndex(3)
	require.NoError(t, err)
	assert.Equal(t, "Pair", eval.Action.Category)
	assert.Equal(t, 2, eval.Action.Score)
	assert.Equal(t, "round-1", eval.Metadata.RoundID)
}

func TestDescribe(t *testing.T) {
	s, err := NewSession(seededConfig(42), standardManager(t))
	require.NoError(t, err)
	_, err = s.Describe()
	require.ErrorIs(t, err, poker.ErrUnsupportedHandSize)

	_, err = s.Draw(5)
	require.NoError(t, err)
	desc, err := s.Describe()
	require.NoError(t, err)
	assert.NotEmpty(t, desc)
}

func TestNewSessionErrors(t *testing.T) {
	m := standardManager(t)

	cfg := DefaultConfig()
	cfg.HandSize = 0
	_, err := NewSession(cfg, m)
	require.ErrorIs(t, err, ErrInvalidConfig)

	cfg = DefaultConfig()
	cfg.Deck = "jokers"
	_, err = NewSession(cfg, m)
	require.ErrorIs(t, err, content.ErrUnknownDeck)
}

func TestUnseededSessionShuffles(t *testing.T) {
	s, err := NewSession(DefaultConfig(), standardManager(t))
	require.NoError(t, err)
	assert.Equal(t, 52, s.Remaining())
	drawn, err := s.Draw(5)
	require.NoError(t, err)
	assert.Len(t, drawn, 5)
}
