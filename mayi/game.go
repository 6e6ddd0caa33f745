package mayi

// GamePhase is the top-level machine's state (spec.md §4.7).
type GamePhase string

const (
	GamePhaseSetup   GamePhase = "Setup"
	GamePhasePlaying GamePhase = "Playing"
	GamePhaseGameEnd GamePhase = "GameEnd"
)

// totalRounds is fixed by the contract table (spec.md §4.3): six rounds,
// one per row of {sets, runs}.
const totalRounds = 6

// Game is the root state machine. It owns every player, the round-to-round
// bookkeeping (dealer rotation, cumulative score, history), and the single
// Round in flight. Commands are the only way to mutate a Game; everything
// else is read through Snapshot.
type Game struct {
	Phase       GamePhase     `json:"phase"`
	Players     []*Player     `json:"players"`
	CurrentRound int          `json:"currentRound"`
	DealerIndex int           `json:"dealerIndex"`
	Round       *Round        `json:"round"`
	History     []RoundRecord `json:"history"`
	Winners     []string      `json:"winners"`
	LastError   *EngineError  `json:"-"`

	rng Rng
}

// NewGame constructs an empty game in Setup phase. rng is the injected
// entropy source used for every shuffle this game performs (spec.md §5.3):
// tests pass a deterministic fake, production passes rand.New(rand.NewSource(...)).
func NewGame(rng Rng) *Game {
	return &Game{
		Phase: GamePhaseSetup,
		rng:   rng,
	}
}

// Send applies a single command and returns the resulting snapshot. A
// rejected command (non-nil error) leaves every field of Game unchanged
// except LastError (spec.md §7: "Rejected commands never mutate state").
func (g *Game) Send(cmd Command) (Snapshot, *EngineError) {
	err := cmd.apply(g)
	if err == nil {
		err = g.settleCompletedRound()
	}
	g.LastError = err
	return g.ToSnapshot(), err
}

// settleCompletedRound runs once per Send after a command succeeds. If the
// in-flight round just reached Scoring, it folds the RoundRecord into
// History and TotalScore, then either deals the next round or, after round
// six, ends the game (spec.md §4.7).
func (g *Game) settleCompletedRound() *EngineError {
	if g.Phase != GamePhasePlaying || g.Round == nil || g.Round.Phase != RoundPhaseScoring {
		return nil
	}

	record := *g.Round.Record
	g.History = append(g.History, record)
	for _, p := range g.Players {
		p.TotalScore += record.Scores[p.ID]
	}
	g.Round = nil

	if g.CurrentRound >= totalRounds {
		g.Phase = GamePhaseGameEnd
		g.Winners = lowestScorers(g.Players)
		return nil
	}

	g.CurrentRound++
	g.DealerIndex = (g.DealerIndex + 1) % len(g.Players)
	round, err := beginRound(g.CurrentRound, g.DealerIndex, g.Players, g.rng)
	if err != nil {
		return err
	}
	g.Round = round
	return nil
}

// lowestScorers returns every player tied for the minimum TotalScore (spec.md
// §4.7: "low cumulative score wins; ties stand as ties, no tiebreaker").
func lowestScorers(players []*Player) []string {
	if len(players) == 0 {
		return nil
	}
	min := players[0].TotalScore
	for _, p := range players[1:] {
		if p.TotalScore < min {
			min = p.TotalScore
		}
	}
	winners := []string{}
	for _, p := range players {
		if p.TotalScore == min {
			winners = append(winners, p.ID)
		}
	}
	return winners
}

func (g *Game) playerByID(id string) (*Player, int) {
	idx := playerIndex(g.Players, id)
	if idx == -1 {
		return nil, -1
	}
	return g.Players[idx], idx
}

// activeRound returns the in-flight round, rejecting the command with
// PhaseMismatch if the game isn't in a state where one exists.
func (g *Game) activeRound() (*Round, *EngineError) {
	if g.Phase != GamePhasePlaying || g.Round == nil || g.Round.Phase != RoundPhaseActive {
		return nil, newEngineError(ErrKindPhaseMismatch, "no round is active")
	}
	return g.Round, nil
}

// requireCurrentPlayer resolves the acting player and confirms they hold the
// Round's current turn (spec.md §7 NotYourTurn).
func (g *Game) requireCurrentPlayer(round *Round, playerID string) (*Player, *EngineError) {
	p, idx := g.playerByID(playerID)
	if idx == -1 {
		return nil, newEngineError(ErrKindNotYourTurn, "unknown player %q", playerID)
	}
	if round.Turn == nil || round.Turn.PlayerID != playerID {
		return nil, newEngineError(ErrKindNotYourTurn, "it is not %q's turn", playerID)
	}
	return p, nil
}
