package mayi

import "github.com/google/uuid"

// SkipLayDownCommand moves the turn straight to AwaitingDiscard without
// attempting a lay-down this turn (spec.md §4.4).
type SkipLayDownCommand struct {
	cmdBase
}

func NewSkipLayDown(playerID string) Command {
	return &SkipLayDownCommand{cmdBase{PlayerID: playerID}}
}

func (c *SkipLayDownCommand) apply(g *Game) *EngineError {
	round, err := g.activeRound()
	if err != nil {
		return err
	}
	_, err = g.requireCurrentPlayer(round, c.PlayerID)
	if err != nil {
		return err
	}
	if round.Turn.Phase != TurnPhaseDrawn {
		return newEngineError(ErrKindPhaseMismatch, "must draw before skipping lay-down")
	}
	round.Turn.Phase = TurnPhaseAwaitingDiscard
	return nil
}

// DiscardCommand ends the acting player's turn by placing a hand card face
// up (spec.md §4.4). Emptying the hand ends the round immediately with this
// player as winner. Rejected in round six if it would empty an isDown
// player's hand, since round six requires GoOut or Stuck instead (spec.md §4.8).
type DiscardCommand struct {
	cmdBase
	CardID uuid.UUID
}

func NewDiscard(playerID string, cardID uuid.UUID) Command {
	return &DiscardCommand{cmdBase{PlayerID: playerID}, cardID}
}

func (c *DiscardCommand) apply(g *Game) *EngineError {
	round, err := g.activeRound()
	if err != nil {
		return err
	}
	player, err := g.requireCurrentPlayer(round, c.PlayerID)
	if err != nil {
		return err
	}
	if round.Turn.Phase != TurnPhaseDrawn && round.Turn.Phase != TurnPhaseAwaitingDiscard {
		return newEngineError(ErrKindPhaseMismatch, "must draw before discarding")
	}
	card, ok := findCard(player.Hand, c.CardID)
	if !ok {
		return newEngineError(ErrKindCardNotInHand, "card %s is not in hand", c.CardID)
	}
	if round.Number == roundSixNumber && player.IsDown && len(player.Hand) == 1 {
		return newEngineError(ErrKindPhaseMismatch, "round six forbids emptying a down hand by discard; use GoOut or Stuck")
	}

	player.Hand, _ = removeCard(player.Hand, c.CardID)
	round.Discard.addCard(card)

	if len(player.Hand) == 0 {
		round.Turn.Phase = TurnPhaseWentOut
		round.finishRound(g.Players, player.ID)
		return nil
	}

	round.Turn.Phase = TurnPhaseComplete
	nextIdx := (round.CurrentPlayerIndex + 1) % len(g.Players)
	round.openMayIWindow(card, player.ID, g.Players[nextIdx].ID)
	round.advanceTurn(g.Players)
	return nil
}

// LayOffInput names a single final lay-off by hand card and destination
// meld, the wire shape of spec.md §6's `GoOut{finalLayOffs: [{cardId, meldId}]}`.
type LayOffInput struct {
	CardID uuid.UUID
	MeldID uuid.UUID
}

// GoOutCommand empties the acting player's hand entirely through a sequence
// of lay-offs onto existing table melds (spec.md §4.4). This is the one path
// that lays off in round six, where LayOffCommand itself is blocked. Nothing
// is mutated unless every listed lay-off validates and the hand ends empty.
type GoOutCommand struct {
	cmdBase
	FinalLayOffs []LayOffInput
}

func NewGoOut(playerID string, finalLayOffs []LayOffInput) Command {
	return &GoOutCommand{cmdBase{PlayerID: playerID}, finalLayOffs}
}

func (c *GoOutCommand) apply(g *Game) *EngineError {
	round, err := g.activeRound()
	if err != nil {
		return err
	}
	player, err := g.requireCurrentPlayer(round, c.PlayerID)
	if err != nil {
		return err
	}
	if round.Turn.Phase != TurnPhaseDrawn {
		return newEngineError(ErrKindPhaseMismatch, "must draw before going out")
	}
	if !player.IsDown {
		return newEngineError(ErrKindPhaseMismatch, "must be down before going out")
	}
	if len(c.FinalLayOffs) == 0 {
		return newEngineError(ErrKindNotEnoughCards, "going out requires at least one lay-off")
	}

	workingHand := append([]Card{}, player.Hand...)
	meldUpdates := map[uuid.UUID][]Card{}

	for _, lo := range c.FinalLayOffs {
		card, ok := findCard(workingHand, lo.CardID)
		if !ok {
			return newEngineError(ErrKindCardNotInHand, "card %s is not in hand", lo.CardID)
		}
		meld, _ := round.findMeld(lo.MeldID)
		if meld == nil {
			return newEngineError(ErrKindIllegalMeld, "no such meld %s on the table", lo.MeldID)
		}
		currentCards, tracked := meldUpdates[lo.MeldID]
		if !tracked {
			currentCards = meld.Cards
		}
		newCards, ok := layOffCandidate(&Meld{Type: meld.Type, Cards: currentCards}, card)
		if !ok {
			return newEngineError(ErrKindIllegalMeld, "card %s does not extend meld %s", lo.CardID, lo.MeldID)
		}
		meldUpdates[lo.MeldID] = newCards
		workingHand, _ = removeCard(workingHand, lo.CardID)
	}

	if len(workingHand) != 0 {
		return newEngineError(ErrKindNotEnoughCards, "hand must be fully consumed by lay-offs to go out")
	}

	for meldID, cards := range meldUpdates {
		meld, _ := round.findMeld(meldID)
		meld.Cards = cards
	}
	player.Hand = workingHand
	round.Turn.Phase = TurnPhaseWentOut
	round.finishRound(g.Players, player.ID)
	return nil
}

// StuckCommand ends the acting player's turn holding their last card instead
// of discarding it, the round-six alternative to a forbidden final discard
// (spec.md §4.8, glossary "Stuck").
type StuckCommand struct {
	cmdBase
}

func NewStuck(playerID string) Command {
	return &StuckCommand{cmdBase{PlayerID: playerID}}
}

func (c *StuckCommand) apply(g *Game) *EngineError {
	round, err := g.activeRound()
	if err != nil {
		return err
	}
	player, err := g.requireCurrentPlayer(round, c.PlayerID)
	if err != nil {
		return err
	}
	if round.Number != roundSixNumber {
		return newEngineError(ErrKindPhaseMismatch, "Stuck is only legal in round six")
	}
	if !player.IsDown {
		return newEngineError(ErrKindPhaseMismatch, "only a player who is down may declare Stuck")
	}
	if round.Turn.Phase != TurnPhaseDrawn && round.Turn.Phase != TurnPhaseAwaitingDiscard {
		return newEngineError(ErrKindPhaseMismatch, "must draw before declaring Stuck")
	}
	if len(player.Hand) != 1 {
		return newEngineError(ErrKindNotEnoughCards, "Stuck only applies when holding exactly one card")
	}

	round.Turn.Phase = TurnPhaseComplete
	round.advanceTurn(g.Players)
	return nil
}
