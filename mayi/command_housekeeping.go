package mayi

import "github.com/google/uuid"

// ReshuffleCommand manually triggers the stock-empty reshuffle rather than
// waiting for it to happen implicitly on the next draw (spec.md §4.6).
type ReshuffleCommand struct{}

func NewReshuffle() Command {
	return &ReshuffleCommand{}
}

func (c *ReshuffleCommand) apply(g *Game) *EngineError {
	round, err := g.activeRound()
	if err != nil {
		return err
	}
	if !round.Stock.isEmpty() {
		return newEngineError(ErrKindPhaseMismatch, "stock is not empty, reshuffle is not needed")
	}
	round.ensureStockAvailable(g.Players, g.rng)
	return nil
}

// ReorderHandCommand lets a player rearrange their own hand for display
// purposes without changing its contents (spec.md §6). newOrder must be
// exactly a permutation of the player's current hand.
type ReorderHandCommand struct {
	cmdBase
	NewOrder []uuid.UUID
}

func NewReorderHand(playerID string, newOrder []uuid.UUID) Command {
	return &ReorderHandCommand{cmdBase{PlayerID: playerID}, newOrder}
}

func (c *ReorderHandCommand) apply(g *Game) *EngineError {
	player, idx := g.playerByID(c.PlayerID)
	if idx == -1 {
		return newEngineError(ErrKindNotYourTurn, "unknown player %q", c.PlayerID)
	}
	if len(c.NewOrder) != len(player.Hand) {
		return newEngineError(ErrKindCardNotInHand, "new order names %d cards, hand has %d", len(c.NewOrder), len(player.Hand))
	}
	reordered := make([]Card, 0, len(c.NewOrder))
	seen := map[uuid.UUID]bool{}
	for _, id := range c.NewOrder {
		if seen[id] {
			return newEngineError(ErrKindCardNotInHand, "card %s referenced more than once", id)
		}
		seen[id] = true
		card, ok := findCard(player.Hand, id)
		if !ok {
			return newEngineError(ErrKindCardNotInHand, "card %s is not in hand", id)
		}
		reordered = append(reordered, card)
	}
	player.Hand = reordered
	return nil
}
