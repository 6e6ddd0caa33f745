package mayi

import "github.com/google/uuid"

// RoundPhase is the Round machine's state (spec.md §4.6).
type RoundPhase string

const (
	RoundPhaseDealing RoundPhase = "Dealing"
	RoundPhaseActive  RoundPhase = "Active"
	RoundPhaseScoring RoundPhase = "Scoring"
)

// noWinner marks a RoundRecord where the round ended without anyone going
// out (the stock-exhaustion house rule, spec.md §4.6 "Reshuffle").
const noWinner = ""

// Round is the per-round machine: it owns the shared zones (stock, discard,
// table), the current Turn, and an optional open MayIWindow.
type Round struct {
	Number             int          `json:"number"`
	Contract           Contract     `json:"contract"`
	DealerIndex        int          `json:"dealerIndex"`
	CurrentPlayerIndex int          `json:"currentPlayerIndex"`
	Phase              RoundPhase   `json:"phase"`
	Stock              pile         `json:"stock"`
	Discard            pile         `json:"discard"`
	Table              []*Meld      `json:"table"`
	Turn               *Turn        `json:"turn"`
	MayI               *MayIWindow  `json:"mayI"`
	Record             *RoundRecord `json:"record"`
}

// RoundRecord summarises a completed round (spec.md §3).
type RoundRecord struct {
	RoundNumber int            `json:"roundNumber"`
	WinnerID    string         `json:"winnerId"`
	Scores      map[string]int `json:"scores"`
}

// beginRound deals a fresh round and seats the first player. Dealing is
// unconditional and instantaneous per spec.md §4.6: there is nothing an
// embedder can observe between "Dealing" and "Active".
func beginRound(number, dealerIndex int, players []*Player, rng Rng) (*Round, *EngineError) {
	cfg, cfgErr := deckConfigFor(len(players))
	if cfgErr != nil {
		return nil, cfgErr
	}

	fresh := shuffleCards(createDeck(cfg.decks, cfg.jokers), rng)
	dealt, dealErr := deal(fresh, len(players))
	if dealErr != nil {
		return nil, dealErr
	}

	for i, p := range players {
		p.Hand = dealt.hands[i]
		p.IsDown = false
	}

	firstPlayerIdx := (dealerIndex + 1) % len(players)

	r := &Round{
		Number:             number,
		Contract:           ContractFor(number),
		DealerIndex:        dealerIndex,
		CurrentPlayerIndex: firstPlayerIdx,
		Phase:              RoundPhaseActive,
		Stock:              pile{Cards: dealt.stock},
		Discard:            pile{Cards: dealt.discard},
		Table:              []*Meld{},
		Turn:               newTurn(players[firstPlayerIdx].ID),
	}
	return r, nil
}

func (r *Round) currentPlayer(players []*Player) *Player {
	return players[r.CurrentPlayerIndex]
}

func (r *Round) findMeld(id uuid.UUID) (*Meld, int) {
	for i, m := range r.Table {
		if m.ID == id {
			return m, i
		}
	}
	return nil, -1
}

// reshuffleDiscardIntoStock implements spec.md §4.6 "Reshuffle": every
// discard except the visible top card is shuffled back in as the new stock.
func (r *Round) reshuffleDiscardIntoStock(rng Rng) {
	top, _ := r.Discard.topCard()
	rest := r.Discard.Cards[:len(r.Discard.Cards)-1]
	r.Stock = pile{Cards: shuffleCards(rest, rng)}
	r.Discard = pile{Cards: []Card{top}}
}

// ensureStockAvailable implements the implicit reshuffle-on-draw rule and
// the stock-exhaustion house rule (spec.md §4.4/§4.6). It returns true if a
// card can now be drawn from stock; false means the round has just ended
// because the discard held nothing but its visible top card.
func (r *Round) ensureStockAvailable(players []*Player, rng Rng) bool {
	if !r.Stock.isEmpty() {
		return true
	}
	if len(r.Discard.Cards) <= 1 {
		r.endRoundByStockExhaustion(players)
		return false
	}
	r.reshuffleDiscardIntoStock(rng)
	return true
}

// endRoundByStockExhaustion implements the house rule in spec.md §4.6: when
// the discard pile cannot replenish the stock, the round ends immediately.
// There is no player who went out, so there is no winner to score 0 —
// every player scores the point value of the cards left in their hand.
func (r *Round) endRoundByStockExhaustion(players []*Player) {
	r.finishRound(players, noWinner)
}

// finishRound transitions to Scoring and builds the RoundRecord. winnerID is
// noWinner when the round ended via stock exhaustion rather than a go-out.
func (r *Round) finishRound(players []*Player, winnerID string) {
	scores := map[string]int{}
	for _, p := range players {
		if p.ID == winnerID {
			scores[p.ID] = 0
		} else {
			scores[p.ID] = handScore(p.Hand)
		}
	}
	r.Phase = RoundPhaseScoring
	r.Record = &RoundRecord{RoundNumber: r.Number, WinnerID: winnerID, Scores: scores}
	r.Turn = nil
	r.MayI = nil
}

// resolveMayIWindow implements spec.md §4.5 resolution case 2/3: called once
// the current player has drawn from stock. The highest-priority claimant (if
// any) wins the discard plus one penalty card from the stock (null if the
// stock is empty); otherwise the window simply closes with the discard
// unchanged.
func (r *Round) resolveMayIWindow(players []*Player, rng Rng) {
	w := r.MayI
	if w == nil {
		return
	}
	r.MayI = nil

	winnerID, ok := w.winner(r, players)
	if !ok {
		return
	}

	winnerIdx := playerIndex(players, winnerID)
	winner := players[winnerIdx]
	winner.Hand = append(winner.Hand, w.DiscardedCard)
	if top, ok := r.Discard.topCard(); ok && top.ID == w.DiscardedCard.ID {
		r.Discard.drawCard()
	}
	if penalty, ok := r.Stock.drawCard(); ok {
		winner.Hand = append(winner.Hand, penalty)
	}
}

// openMayIWindow opens a claim window on a card that was just discarded,
// naming nextPlayerID (the player about to act, who may veto by drawing the
// discard themselves) as the window's current player.
func (r *Round) openMayIWindow(discarded Card, discarderID, nextPlayerID string) {
	r.MayI = newMayIWindow(discarded, discarderID, nextPlayerID)
}

// advanceTurn rotates CurrentPlayerIndex and spawns a fresh Turn for the new
// current player (spec.md §4.6 Active: "advance currentPlayerIndex :=
// (currentPlayerIndex+1) mod n and spawn next Turn").
func (r *Round) advanceTurn(players []*Player) {
	r.CurrentPlayerIndex = (r.CurrentPlayerIndex + 1) % len(players)
	r.Turn = newTurn(players[r.CurrentPlayerIndex].ID)
}
