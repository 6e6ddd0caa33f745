package mayi

// CallMayICommand registers playerID's claim on the currently open discard
// (spec.md §4.5). Claims are appended as they arrive but resolved strictly
// by seat priority, so arrival order never affects the outcome.
//
// Open question (spec.md §9 #1): whether a claim is still accepted after the
// current player has already drawn from stock. Because drawing from stock
// resolves and closes the window atomically within the same Send (spec.md
// §5: "a discard and the subsequent window-open are a single atomic step"),
// that race cannot occur here — by the time a later CallMayI is processed,
// round.MayI is already nil and it is rejected with PhaseMismatch below.
type CallMayICommand struct {
	cmdBase
}

func NewCallMayI(playerID string) Command {
	return &CallMayICommand{cmdBase{PlayerID: playerID}}
}

func (c *CallMayICommand) apply(g *Game) *EngineError {
	round, err := g.activeRound()
	if err != nil {
		return err
	}
	if round.MayI == nil {
		return newEngineError(ErrKindPhaseMismatch, "no open May I? window")
	}
	if !round.MayI.isEligible(c.PlayerID, g.Players) {
		return newEngineError(ErrKindNotYourTurn, "player %q may not claim this discard", c.PlayerID)
	}
	round.MayI.claimed[c.PlayerID] = true
	return nil
}

// AllowMayICommand is the current player's explicit "I'll draw from stock and
// let the claims resolve" action. It requires an open window and otherwise
// behaves exactly like DrawFromStock (spec.md §4.5 resolution case 2/3).
type AllowMayICommand struct {
	cmdBase
}

func NewAllowMayI(playerID string) Command {
	return &AllowMayICommand{cmdBase{PlayerID: playerID}}
}

func (c *AllowMayICommand) apply(g *Game) *EngineError {
	round, err := g.activeRound()
	if err != nil {
		return err
	}
	if round.MayI == nil {
		return newEngineError(ErrKindPhaseMismatch, "no open May I? window to allow")
	}
	return g.drawFromStock(round, c.PlayerID)
}

// ClaimMayICommand acknowledges a pending claim without forcing resolution.
// It never denies the current player's veto right (spec.md §4.5 resolution
// case 1 must remain available until the current player acts), so it is a
// pure no-op gated only on the window being open: it records nothing beyond
// what CallMayI already recorded.
type ClaimMayICommand struct {
	cmdBase
}

func NewClaimMayI(playerID string) Command {
	return &ClaimMayICommand{cmdBase{PlayerID: playerID}}
}

func (c *ClaimMayICommand) apply(g *Game) *EngineError {
	round, err := g.activeRound()
	if err != nil {
		return err
	}
	if round.MayI == nil {
		return newEngineError(ErrKindPhaseMismatch, "no open May I? window")
	}
	return nil
}
