package mayi

import "github.com/google/uuid"

// roundSixNumber is the final round, where lay-off is disallowed and GoOut
// via final lay-offs (or Stuck) replaces it (spec.md §4.8 "Round 6 special rules").
const roundSixNumber = 6

// LayOffCommand places a single hand card onto an existing table meld
// (spec.md §4.2/§4.4). Legal only while isDown, not on the same turn the
// player laid down, and never in round 6.
type LayOffCommand struct {
	cmdBase
	CardID uuid.UUID
	MeldID uuid.UUID
}

func NewLayOff(playerID string, cardID, meldID uuid.UUID) Command {
	return &LayOffCommand{cmdBase{PlayerID: playerID}, cardID, meldID}
}

func (c *LayOffCommand) apply(g *Game) *EngineError {
	round, err := g.activeRound()
	if err != nil {
		return err
	}
	player, err := g.requireCurrentPlayer(round, c.PlayerID)
	if err != nil {
		return err
	}
	if round.Turn.Phase != TurnPhaseDrawn {
		return newEngineError(ErrKindPhaseMismatch, "must draw before laying off")
	}
	if !player.IsDown {
		return newEngineError(ErrKindPhaseMismatch, "must be down before laying off")
	}
	if round.Turn.LaidDownThisTurn {
		return newEngineError(ErrKindPhaseMismatch, "may not lay off the same turn the contract was laid down")
	}
	if round.Number == roundSixNumber {
		return newEngineError(ErrKindPhaseMismatch, "lay-off is not permitted in round six")
	}

	meld, _ := round.findMeld(c.MeldID)
	if meld == nil {
		return newEngineError(ErrKindIllegalMeld, "no such meld %s on the table", c.MeldID)
	}
	card, ok := findCard(player.Hand, c.CardID)
	if !ok {
		return newEngineError(ErrKindCardNotInHand, "card %s is not in hand", c.CardID)
	}
	newCards, ok := layOffCandidate(meld, card)
	if !ok {
		return newEngineError(ErrKindIllegalMeld, "card does not extend meld %s", c.MeldID)
	}

	meld.Cards = newCards
	player.Hand, _ = removeCard(player.Hand, c.CardID)
	return nil
}
