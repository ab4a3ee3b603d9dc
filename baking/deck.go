package baking

import (
	"github.com/luca-patrignani/card-ecs/content"
	"github.com/luca-patrignani/card-ecs/domain/card"
	"github.com/luca-patrignani/card-ecs/domain/ecs"
)

// DeckBaker creates one entity per card, in deck order, each carrying its
// rank, suit and the InDeck state.
type DeckBaker struct{}

func (DeckBaker) Bake(ctx *Context, deck content.DeckAuthoring) error {
	for _, a := range deck.Cards {
		if _, err := card.NewCard(a.Rank, a.Suit); err != nil {
			return err
		}
		e := ctx.CreateEntity()
		if err := ecs.Add(ctx.World, e, a.Rank); err != nil {
			return err
		}
		if err := ecs.Add(ctx.World, e, a.Suit); err != nil {
			return err
		}
		if err := ecs.Add(ctx.World, e, card.InDeck); err != nil {
			return err
		}
	}
	return nil
}
