package content

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/luca-patrignani/card-ecs/domain/card"
)

var (
	// ErrInvalidContent wraps every catalog validation failure.
	ErrInvalidContent = errors.New("invalid content")
	// ErrUnknownDeck is returned by LoadDeck for ids the catalog does not define.
	ErrUnknownDeck = errors.New("unknown deck")
)

// Manager serves validated decks from a catalog.
type Manager struct {
	cards    map[string]CardAuthoring
	decks    map[string]DeckData
	checksum uint64
}

// NewManager validates the catalog: card and deck ids must be unique and
// non-empty, ranks and suits must parse, and every deck must list at least one
// known card.
func NewManager(c *Catalog) (*Manager, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: nil catalog", ErrInvalidContent)
	}
	m := &Manager{
		cards: make(map[string]CardAuthoring, len(c.Cards)),
		decks: make(map[string]DeckData, len(c.Decks)),
	}

	var errs []error
	for i, cd := range c.Cards {
		if cd.ID == "" {
			errs = append(errs, fmt.Errorf("card %d: missing id", i))
			continue
		}
		if _, dup := m.cards[cd.ID]; dup {
			errs = append(errs, fmt.Errorf("card %q: duplicate id", cd.ID))
			continue
		}
		rank, err := card.ParseRank(cd.Rank)
		if err != nil {
			errs = append(errs, fmt.Errorf("card %q: %w", cd.ID, err))
			continue
		}
		suit, err := card.ParseSuit(cd.Suit)
		if err != nil {
			errs = append(errs, fmt.Errorf("card %q: %w", cd.ID, err))
			continue
		}
		m.cards[cd.ID] = CardAuthoring{Rank: rank, Suit: suit}
	}

	for i, dd := range c.Decks {
		if dd.ID == "" {
			errs = append(errs, fmt.Errorf("deck %d: missing id", i))
			continue
		}
		if _, dup := m.decks[dd.ID]; dup {
			errs = append(errs, fmt.Errorf("deck %q: duplicate id", dd.ID))
			continue
		}
		if len(dd.CardIDs) == 0 {
			errs = append(errs, fmt.Errorf("deck %q: no cards", dd.ID))
			continue
		}
		for _, id := range dd.CardIDs {
			if _, ok := m.cards[id]; !ok {
				errs = append(errs, fmt.Errorf("deck %q: unknown card %q", dd.ID, id))
			}
		}
		m.decks[dd.ID] = dd
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidContent, errors.Join(errs...))
	}

	encoded, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	m.checksum = xxhash.Sum64(encoded)
	return m, nil
}

// LoadDeck resolves a deck id into its cards in deck order.
func (m *Manager) LoadDeck(id string) (DeckAuthoring, error) {
	dd, ok := m.decks[id]
	if !ok {
		return DeckAuthoring{}, fmt.Errorf("%w: %q", ErrUnknownDeck, id)
	}
	deck := DeckAuthoring{
		ID:    dd.ID,
		Name:  dd.Name,
		Cards: make([]CardAuthoring, len(dd.CardIDs)),
	}
	for i, cardID := range dd.CardIDs {
		deck.Cards[i] = m.cards[cardID]
	}
	return deck, nil
}

// Checksum identifies the catalog contents; equal catalogs share a checksum.
func (m *Manager) Checksum() uint64 {
	return m.checksum
}
