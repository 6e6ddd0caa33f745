package mayi

// Availability is the set of commands currently legal for one player, plus
// human-readable hints for the three contextually-blocked actions (spec.md
// §4.9). It holds no state of its own beyond what DeriveAvailability reads
// out of a Snapshot.
type Availability struct {
	CanDrawFromStock      bool `json:"canDrawFromStock"`
	CanDrawFromDiscard    bool `json:"canDrawFromDiscard"`
	CanLayDown            bool `json:"canLayDown"`
	CanLayOff             bool `json:"canLayOff"`
	CanSwapJoker          bool `json:"canSwapJoker"`
	CanDiscard            bool `json:"canDiscard"`
	CanMayI               bool `json:"canMayI"`
	CanAllowMayI          bool `json:"canAllowMayI"`
	CanClaimMayI          bool `json:"canClaimMayI"`
	CanReorderHand        bool `json:"canReorderHand"`
	HasPendingMayIRequest bool `json:"hasPendingMayIRequest"`
	ShouldNudgeDiscard    bool `json:"shouldNudgeDiscard"`

	LayOffHint        string `json:"layOffHint,omitempty"`
	SwapJokerHint     string `json:"swapJokerHint,omitempty"`
	PickUpDiscardHint string `json:"pickUpDiscardHint,omitempty"`
}

// DeriveAvailability computes what playerId may do against snapshot. It is a
// pure function of its two arguments (spec.md §4.9, §8 "same snapshot → same
// availability"): it reads no engine state and holds none.
func DeriveAvailability(snapshot Snapshot, playerID string) Availability {
	player := findPlayerView(snapshot, playerID)
	if player == nil {
		return Availability{}
	}

	isCurrent := snapshot.CurrentPlayerIndex >= 0 &&
		snapshot.CurrentPlayerIndex < len(snapshot.Players) &&
		snapshot.Players[snapshot.CurrentPlayerIndex].ID == playerID
	hasRound := snapshot.Phase == SnapshotPhaseRoundActive || snapshot.Phase == SnapshotPhaseResolvingMayI
	awaitingDraw := isCurrent && hasRound && snapshot.TurnPhase == SnapshotTurnAwaitingDraw
	awaitingAction := isCurrent && hasRound && snapshot.TurnPhase == SnapshotTurnAwaitingAction
	awaitingDiscard := isCurrent && hasRound && snapshot.TurnPhase == SnapshotTurnAwaitingDiscard

	a := Availability{
		CanReorderHand:     hasRound,
		CanDrawFromStock:   awaitingDraw,
		ShouldNudgeDiscard: awaitingDiscard,
	}

	a.CanDrawFromDiscard, a.PickUpDiscardHint = canDrawFromDiscard(awaitingDraw, player, snapshot)
	a.CanLayDown = awaitingAction && !player.IsDown
	a.CanLayOff, a.LayOffHint = canLayOff(awaitingAction, player, snapshot)
	a.CanSwapJoker, a.SwapJokerHint = canSwapJoker(awaitingAction, player, snapshot)
	a.CanDiscard = awaitingAction || awaitingDiscard

	if snapshot.MayI != nil {
		eligible := isEligibleClaimant(player.ID, snapshot)
		a.CanMayI = eligible && !hasClaimed(player.ID, snapshot)
		a.CanClaimMayI = true
		a.HasPendingMayIRequest = hasClaimed(player.ID, snapshot)
		a.CanAllowMayI = isCurrent && snapshot.TurnPhase == SnapshotTurnAwaitingDraw
	}

	return a
}

func findPlayerView(snapshot Snapshot, playerID string) *PlayerView {
	for i := range snapshot.Players {
		if snapshot.Players[i].ID == playerID {
			return &snapshot.Players[i]
		}
	}
	return nil
}

func isEligibleClaimant(playerID string, snapshot Snapshot) bool {
	w := snapshot.MayI
	if w == nil {
		return false
	}
	if playerID == w.DiscarderID || playerID == w.CurrentPlayerID {
		return false
	}
	player := findPlayerView(snapshot, playerID)
	return player != nil && !player.IsDown
}

func hasClaimed(playerID string, snapshot Snapshot) bool {
	if snapshot.MayI == nil {
		return false
	}
	for _, id := range snapshot.MayI.Claimants {
		if id == playerID {
			return true
		}
	}
	return false
}

func canDrawFromDiscard(awaitingDraw bool, player *PlayerView, snapshot Snapshot) (bool, string) {
	if !awaitingDraw {
		return false, ""
	}
	if player.IsDown {
		return false, "a player who is already down may not pick up the discard"
	}
	if snapshot.DiscardTop == nil {
		return false, "the discard pile is empty"
	}
	return true, ""
}

func canLayOff(awaitingAction bool, player *PlayerView, snapshot Snapshot) (bool, string) {
	if !awaitingAction {
		return false, ""
	}
	if !player.IsDown {
		return false, "must go down before laying off"
	}
	if snapshot.CurrentRound == roundSixNumber {
		return false, "round six forbids laying off"
	}
	if snapshot.LaidDownThisTurn {
		return false, "may not lay off the same turn the contract was laid down"
	}
	if len(snapshot.Table) == 0 {
		return false, "no melds on the table yet"
	}
	return true, ""
}

func canSwapJoker(awaitingAction bool, player *PlayerView, snapshot Snapshot) (bool, string) {
	if !awaitingAction {
		return false, ""
	}
	if player.IsDown {
		return false, "a player who is already down may not swap a joker"
	}
	if len(snapshot.Table) == 0 {
		return false, "no melds on the table yet"
	}
	return true, ""
}
