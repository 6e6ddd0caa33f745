package mayi

// SnapshotPhase is the embedder-facing phase name (spec.md §6), a coarser
// view than the internal Game/Round phases: ResolvingMayI and RoundActive
// are both internally GamePhasePlaying/RoundPhaseActive, distinguished only
// by whether a May I? window is open.
type SnapshotPhase string

const (
	SnapshotPhaseSetup         SnapshotPhase = "Setup"
	SnapshotPhaseRoundActive   SnapshotPhase = "RoundActive"
	SnapshotPhaseResolvingMayI SnapshotPhase = "ResolvingMayI"
	SnapshotPhaseRoundEnd      SnapshotPhase = "RoundEnd"
	SnapshotPhaseGameEnd       SnapshotPhase = "GameEnd"
)

// SnapshotTurnPhase is the embedder-facing turn phase name (spec.md §6). It
// collapses the internal Turn's Drawn state to AwaitingAction and never
// surfaces TurnComplete/WentOut, since both are transient: by the time a
// command's resulting Send() returns, the round has already advanced past
// them (spec.md §5 "a discard and the subsequent window-open are a single
// atomic step").
type SnapshotTurnPhase string

const (
	SnapshotTurnAwaitingDraw    SnapshotTurnPhase = "AwaitingDraw"
	SnapshotTurnAwaitingAction  SnapshotTurnPhase = "AwaitingAction"
	SnapshotTurnAwaitingDiscard SnapshotTurnPhase = "AwaitingDiscard"
)

// PlayerView is one player's public-facing state. Hand is nil when redacted
// (spec.md §6 "hand[public or redacted]"); HandCount is always populated so
// an embedder can render opponents' hand sizes even when redacted.
type PlayerView struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Hand       []Card `json:"hand,omitempty"`
	HandCount  int    `json:"handCount"`
	IsDown     bool   `json:"isDown"`
	TotalScore int    `json:"totalScore"`
}

// MayIView is the public-facing state of an open May I? window.
type MayIView struct {
	DiscardedCard   Card     `json:"discardedCard"`
	DiscarderID     string   `json:"discarderId"`
	CurrentPlayerID string   `json:"currentPlayerId"`
	Claimants       []string `json:"claimants"`
}

// SnapshotError is the public-facing shape of a rejected command's error
// (spec.md §6 "lastError (nullable)").
type SnapshotError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// Snapshot is the complete, immutable, embedder-facing view of a Game
// (spec.md §6). It is cheap to build: every field is copied or derived, so
// holding onto a Snapshot never aliases engine-owned state.
type Snapshot struct {
	Phase              SnapshotPhase     `json:"phase"`
	TurnPhase          SnapshotTurnPhase `json:"turnPhase,omitempty"`
	CurrentRound       int               `json:"currentRound"`
	Contract           Contract          `json:"contract"`
	DealerIndex        int               `json:"dealerIndex"`
	CurrentPlayerIndex int               `json:"currentPlayerIndex"`
	Players            []PlayerView      `json:"players"`
	StockCount         int               `json:"stockCount"`
	DiscardTop         *Card             `json:"discardTop,omitempty"`
	DiscardCount       int               `json:"discardCount"`
	Table              []*Meld           `json:"table"`
	LaidDownThisTurn   bool              `json:"laidDownThisTurn"`
	MayI               *MayIView         `json:"mayI,omitempty"`
	History            []RoundRecord     `json:"history"`
	Winners            []string          `json:"winners,omitempty"`
	LastError          *SnapshotError    `json:"lastError,omitempty"`
}

// ToSnapshot builds the full-visibility snapshot: every player's hand is
// included. Use ToSnapshotFor to redact opponents' hands for a given viewer.
func (g *Game) ToSnapshot() Snapshot {
	return g.snapshotFor("")
}

// ToSnapshotFor builds a snapshot with every hand redacted except
// viewerID's, the shape an embedder hands to one specific player's client.
func (g *Game) ToSnapshotFor(viewerID string) Snapshot {
	return g.snapshotFor(viewerID)
}

func (g *Game) snapshotFor(viewerID string) Snapshot {
	s := Snapshot{
		Phase:        g.snapshotPhase(),
		CurrentRound: g.CurrentRound,
		DealerIndex:  g.DealerIndex,
		History:      make([]RoundRecord, 0, len(g.History)),
		Winners:      append([]string(nil), g.Winners...),
	}

	for _, rec := range g.History {
		scores := make(map[string]int, len(rec.Scores))
		for id, pts := range rec.Scores {
			scores[id] = pts
		}
		rec.Scores = scores
		s.History = append(s.History, rec)
	}

	for _, p := range g.Players {
		view := PlayerView{
			ID:         p.ID,
			Name:       p.Name,
			HandCount:  len(p.Hand),
			IsDown:     p.IsDown,
			TotalScore: p.TotalScore,
		}
		if viewerID == "" || viewerID == p.ID {
			view.Hand = append([]Card{}, p.Hand...)
		}
		s.Players = append(s.Players, view)
	}

	if g.Round != nil {
		r := g.Round
		s.TurnPhase = snapshotTurnPhase(r.Turn)
		s.Contract = r.Contract
		s.CurrentPlayerIndex = r.CurrentPlayerIndex
		s.StockCount = len(r.Stock.Cards)
		s.DiscardCount = len(r.Discard.Cards)
		if top, ok := r.Discard.topCard(); ok {
			s.DiscardTop = &top
		}
		s.Table = make([]*Meld, 0, len(r.Table))
		for _, m := range r.Table {
			mc := *m
			mc.Cards = append([]Card{}, m.Cards...)
			s.Table = append(s.Table, &mc)
		}
		if r.Turn != nil {
			s.LaidDownThisTurn = r.Turn.LaidDownThisTurn
		}
		if r.MayI != nil {
			s.MayI = &MayIView{
				DiscardedCard:   r.MayI.DiscardedCard,
				DiscarderID:     r.MayI.DiscarderID,
				CurrentPlayerID: r.MayI.CurrentPlayerID,
				Claimants:       r.MayI.Claimants(r, g.Players),
			}
		}
	}

	if g.LastError != nil {
		s.LastError = &SnapshotError{Kind: g.LastError.Kind, Message: g.LastError.Error()}
	}
	return s
}

func (g *Game) snapshotPhase() SnapshotPhase {
	switch {
	case g.Phase == GamePhaseSetup:
		return SnapshotPhaseSetup
	case g.Phase == GamePhaseGameEnd:
		return SnapshotPhaseGameEnd
	case g.Round == nil:
		return SnapshotPhaseRoundEnd
	case g.Round.Phase == RoundPhaseScoring:
		return SnapshotPhaseRoundEnd
	case g.Round.MayI != nil:
		return SnapshotPhaseResolvingMayI
	default:
		return SnapshotPhaseRoundActive
	}
}

func snapshotTurnPhase(t *Turn) SnapshotTurnPhase {
	if t == nil {
		return ""
	}
	switch t.Phase {
	case TurnPhaseAwaitingDraw:
		return SnapshotTurnAwaitingDraw
	case TurnPhaseDrawn:
		return SnapshotTurnAwaitingAction
	case TurnPhaseAwaitingDiscard:
		return SnapshotTurnAwaitingDiscard
	default:
		return ""
	}
}
