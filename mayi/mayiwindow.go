package mayi

// MayIWindow is the concurrent claim window opened on a discard (spec.md
// §4.5). It is owned by the Round and lives until it resolves: either the
// current player vetoes by drawing the discard themselves, or the current
// player draws from stock and the engine resolves pending claims by seat
// priority.
type MayIWindow struct {
	DiscardedCard   Card            `json:"discardedCard"`
	DiscarderID     string          `json:"discarderId"`
	CurrentPlayerID string          `json:"currentPlayerId"`
	claimed         map[string]bool // set of player IDs who have called May I
}

func newMayIWindow(discarded Card, discarderID, currentPlayerID string) *MayIWindow {
	return &MayIWindow{
		DiscardedCard:   discarded,
		DiscarderID:     discarderID,
		CurrentPlayerID: currentPlayerID,
		claimed:         map[string]bool{},
	}
}

// Claimants returns the players who have called May I, in seat-priority
// order (spec.md §4.5: "ordering is by that priority, not by arrival time").
// Seating order and who is isDown are read from players; round is not read.
func (w *MayIWindow) Claimants(round *Round, players []*Player) []string {
	if w == nil {
		return nil
	}
	ordered := []string{}
	for _, id := range w.priorityOrder(round, players) {
		if w.claimed[id] {
			ordered = append(ordered, id)
		}
	}
	return ordered
}

// priorityOrder returns every eligible seat (not the current player, not the
// discarder, not isDown), starting immediately left of the current player and
// wrapping clockwise — whether or not they have actually claimed.
func (w *MayIWindow) priorityOrder(round *Round, players []*Player) []string {
	n := len(players)
	startIdx := playerIndex(players, w.CurrentPlayerID)
	if startIdx == -1 {
		return nil
	}
	order := []string{}
	for k := 1; k < n; k++ {
		idx := (startIdx + k) % n
		p := players[idx]
		if p.ID == w.DiscarderID || p.IsDown {
			continue
		}
		order = append(order, p.ID)
	}
	return order
}

// isEligible reports whether playerID may call May I on this window right
// now (spec.md §4.5 eligibility rules).
func (w *MayIWindow) isEligible(playerID string, players []*Player) bool {
	if w == nil {
		return false
	}
	if playerID == w.DiscarderID || playerID == w.CurrentPlayerID {
		return false
	}
	idx := playerIndex(players, playerID)
	if idx == -1 {
		return false
	}
	return !players[idx].IsDown
}

// winner returns the highest-priority player who has claimed, if any.
func (w *MayIWindow) winner(round *Round, players []*Player) (string, bool) {
	for _, id := range w.priorityOrder(round, players) {
		if w.claimed[id] {
			return id, true
		}
	}
	return "", false
}
