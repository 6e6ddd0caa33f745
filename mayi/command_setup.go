package mayi

const (
	minPlayers = 3
	maxPlayers = 8
)

// AddPlayerCommand seats a new player during Setup (spec.md §4.8).
type AddPlayerCommand struct {
	Name string
}

func NewAddPlayer(name string) Command {
	return &AddPlayerCommand{Name: name}
}

func (c *AddPlayerCommand) apply(g *Game) *EngineError {
	if g.Phase != GamePhaseSetup {
		return newEngineError(ErrKindPhaseMismatch, "AddPlayer is only legal during setup")
	}
	if len(g.Players) >= maxPlayers {
		return newEngineError(ErrKindPlayerCountOutOfRange, "already have the maximum of %d players", maxPlayers)
	}
	g.Players = append(g.Players, &Player{ID: newPlayerID(), Name: c.Name})
	return nil
}

// StartGameCommand deals round one and moves the game into Playing
// (spec.md §4.8). It requires 3..8 seated players.
type StartGameCommand struct{}

func NewStartGame() Command {
	return &StartGameCommand{}
}

func (c *StartGameCommand) apply(g *Game) *EngineError {
	if g.Phase != GamePhaseSetup {
		return newEngineError(ErrKindPhaseMismatch, "StartGame is only legal during setup")
	}
	n := len(g.Players)
	if n < minPlayers || n > maxPlayers {
		return newEngineError(ErrKindPlayerCountOutOfRange, "need between %d and %d players to start, have %d", minPlayers, maxPlayers, n)
	}

	g.DealerIndex = 0
	g.CurrentRound = 1
	round, err := beginRound(1, 0, g.Players, g.rng)
	if err != nil {
		return err
	}
	g.Round = round
	g.Phase = GamePhasePlaying
	return nil
}
