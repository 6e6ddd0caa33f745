package mayi

import "github.com/google/uuid"

// SwapJokerCommand replaces a Joker in any player's run with a matching
// natural card from the acting player's hand (spec.md §4.2/§4.4). Legal
// only before the acting player is isDown; the displaced Joker moves to
// their hand.
type SwapJokerCommand struct {
	cmdBase
	MeldID     uuid.UUID
	JokerPos   int
	HandCardID uuid.UUID
}

func NewSwapJoker(playerID string, meldID uuid.UUID, jokerPos int, handCardID uuid.UUID) Command {
	return &SwapJokerCommand{cmdBase{PlayerID: playerID}, meldID, jokerPos, handCardID}
}

func (c *SwapJokerCommand) apply(g *Game) *EngineError {
	round, err := g.activeRound()
	if err != nil {
		return err
	}
	player, err := g.requireCurrentPlayer(round, c.PlayerID)
	if err != nil {
		return err
	}
	if round.Turn.Phase != TurnPhaseDrawn {
		return newEngineError(ErrKindPhaseMismatch, "must draw before swapping a joker")
	}
	if player.IsDown {
		return newEngineError(ErrKindPhaseMismatch, "a player who is already down may not swap a joker")
	}

	meld, _ := round.findMeld(c.MeldID)
	if meld == nil {
		return newEngineError(ErrKindIllegalMeld, "no such meld %s on the table", c.MeldID)
	}
	handCard, ok := findCard(player.Hand, c.HandCardID)
	if !ok {
		return newEngineError(ErrKindCardNotInHand, "card %s is not in hand", c.HandCardID)
	}

	newCards, displaced, ok := swapJokerCandidate(meld, c.JokerPos, handCard)
	if !ok {
		return newEngineError(ErrKindWildMisuse, "card does not replace the joker at position %d of meld %s", c.JokerPos, c.MeldID)
	}

	meld.Cards = newCards
	player.Hand, _ = removeCard(player.Hand, c.HandCardID)
	player.Hand = append(player.Hand, displaced)
	return nil
}
