package mayi

import "github.com/google/uuid"

// MeldInput names a proposed meld by type and the hand cards that form it,
// the wire shape of spec.md §6's `melds: [{type, cardIds}]`.
type MeldInput struct {
	Type    MeldType
	CardIDs []uuid.UUID
}

// LayDownCommand satisfies the round's contract in one atomic action
// (spec.md §4.3/§4.4): every proposed meld must individually validate, their
// shape counts must exactly match the contract, and every referenced card
// must be in the acting player's hand. Nothing is mutated unless the whole
// proposal is accepted.
type LayDownCommand struct {
	cmdBase
	Melds []MeldInput
}

func NewLayDown(playerID string, melds []MeldInput) Command {
	return &LayDownCommand{cmdBase{PlayerID: playerID}, melds}
}

func (c *LayDownCommand) apply(g *Game) *EngineError {
	round, err := g.activeRound()
	if err != nil {
		return err
	}
	player, err := g.requireCurrentPlayer(round, c.PlayerID)
	if err != nil {
		return err
	}
	if round.Turn.Phase != TurnPhaseDrawn {
		return newEngineError(ErrKindPhaseMismatch, "must draw before laying down")
	}
	if player.IsDown {
		return newEngineError(ErrKindPhaseMismatch, "player has already gone down this round")
	}

	proposals, usedIDs, meldErr := resolveMeldInputs(player.Hand, c.Melds)
	if meldErr != nil {
		return meldErr
	}
	if !checkContract(round.Contract, proposals) {
		return newEngineError(ErrKindContractNotMet, "proposed melds do not match round %d's contract %+v", round.Number, round.Contract)
	}

	for _, id := range usedIDs {
		player.Hand, _ = removeCard(player.Hand, id)
	}
	for _, p := range proposals {
		round.Table = append(round.Table, &Meld{ID: uuid.New(), OwnerID: player.ID, Type: p.Type, Cards: p.Cards})
	}
	player.IsDown = true
	round.Turn.LaidDownThisTurn = true
	return nil
}

// resolveMeldInputs resolves each MeldInput's card ids against hand and
// builds the corresponding proposedMeld list, without mutating hand. It
// rejects duplicate or unknown card ids before any meld is checked for
// validity, so a caller can checkContract on the result with confidence
// every card genuinely came from the hand exactly once.
func resolveMeldInputs(hand []Card, inputs []MeldInput) (proposals []proposedMeld, usedIDs []uuid.UUID, err *EngineError) {
	seen := map[uuid.UUID]bool{}
	for _, mi := range inputs {
		cards := make([]Card, 0, len(mi.CardIDs))
		for _, id := range mi.CardIDs {
			if seen[id] {
				return nil, nil, newEngineError(ErrKindCardNotInHand, "card %s referenced more than once", id)
			}
			card, ok := findCard(hand, id)
			if !ok {
				return nil, nil, newEngineError(ErrKindCardNotInHand, "card %s is not in hand", id)
			}
			seen[id] = true
			cards = append(cards, card)
			usedIDs = append(usedIDs, id)
		}
		proposals = append(proposals, proposedMeld{Type: mi.Type, Cards: cards})
	}
	return proposals, usedIDs, nil
}
