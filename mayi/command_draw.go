package mayi

// DrawFromStockCommand draws the top stock card for the current player
// (spec.md §4.4 AwaitingDraw -> Drawn). If this closes a pending May I?
// window (spec.md §4.5 resolution case 2/3), the window resolves as part of
// the same atomic step.
type DrawFromStockCommand struct {
	cmdBase
}

func NewDrawFromStock(playerID string) Command {
	return &DrawFromStockCommand{cmdBase{PlayerID: playerID}}
}

func (c *DrawFromStockCommand) apply(g *Game) *EngineError {
	round, err := g.activeRound()
	if err != nil {
		return err
	}
	return g.drawFromStock(round, c.PlayerID)
}

// drawFromStock is shared by DrawFromStockCommand and AllowMayICommand: both
// put the same card in the current player's hand and resolve any open
// window the same way.
func (g *Game) drawFromStock(round *Round, playerID string) *EngineError {
	player, err := g.requireCurrentPlayer(round, playerID)
	if err != nil {
		return err
	}
	if round.Turn.Phase != TurnPhaseAwaitingDraw {
		return newEngineError(ErrKindPhaseMismatch, "already drew this turn")
	}

	if !round.ensureStockAvailable(g.Players, g.rng) {
		// the round just ended via the stock-exhaustion house rule (spec.md §4.6)
		return nil
	}
	card, _ := round.Stock.drawCard()
	player.Hand = append(player.Hand, card)
	round.Turn.Phase = TurnPhaseDrawn
	round.resolveMayIWindow(g.Players, g.rng)
	return nil
}

// DrawFromDiscardCommand takes the visible discard for the current player.
// This is the current player's veto of any pending May I? claims (spec.md
// §4.5 resolution case 1): no penalty, window closes, claimants denied.
// Rejected if the player is already isDown (spec.md §4.4 house rule).
type DrawFromDiscardCommand struct {
	cmdBase
}

func NewDrawFromDiscard(playerID string) Command {
	return &DrawFromDiscardCommand{cmdBase{PlayerID: playerID}}
}

func (c *DrawFromDiscardCommand) apply(g *Game) *EngineError {
	round, err := g.activeRound()
	if err != nil {
		return err
	}
	player, err := g.requireCurrentPlayer(round, c.PlayerID)
	if err != nil {
		return err
	}
	if round.Turn.Phase != TurnPhaseAwaitingDraw {
		return newEngineError(ErrKindPhaseMismatch, "already drew this turn")
	}
	if player.IsDown {
		return newEngineError(ErrKindPhaseMismatch, "a player who is already down may not draw from the discard")
	}
	card, ok := round.Discard.drawCard()
	if !ok {
		return newEngineError(ErrKindNotEnoughCards, "discard pile is empty")
	}
	player.Hand = append(player.Hand, card)
	round.Turn.Phase = TurnPhaseDrawn
	round.MayI = nil
	return nil
}
