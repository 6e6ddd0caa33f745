// Command mayisim drives one simulated game of May I? end to end, printing
// the number of rounds, the winners and each player's total score once the
// game ends. It exists to exercise the engine the way an embedder
// would: through Send and Snapshot only, never touching package mayi's
// internals.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/DroopyTersen/mayi-sub002/mayi"
)

func main() {
	seed := time.Now().UnixNano()
	if raw := os.Getenv("MAYI_SEED"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			fmt.Println("MAYI_SEED must be an integer:", err)
			return
		}
		seed = parsed
	}
	rng := rand.New(rand.NewSource(seed))
	g := mayi.NewGame(rng)

	names := []string{"Ada", "Grace", "Margaret", "Hedy"}
	for _, name := range names {
		if _, err := g.Send(mayi.NewAddPlayer(name)); err != nil {
			fmt.Println("add player:", err)
			return
		}
	}

	snapshot, err := g.Send(mayi.NewStartGame())
	if err != nil {
		fmt.Println("start game:", err)
		return
	}

	for snapshot.Phase != mayi.SnapshotPhaseGameEnd {
		snapshot = playOneTurn(g, snapshot, rng)
	}

	fmt.Printf("game over after %d rounds, winners: %v\n", len(snapshot.History), snapshot.Winners)
	for _, p := range snapshot.Players {
		fmt.Printf("  %-10s total score %d\n", p.Name, p.TotalScore)
	}
}

// playOneTurn drives the current player through draw, skip lay-down, and
// discard of an arbitrary card — a minimal legal turn, not an attempt to
// actually win. It sends only DrawFromStock, SkipLayDown and Discard.
func playOneTurn(g *mayi.Game, snapshot mayi.Snapshot, rng *rand.Rand) mayi.Snapshot {
	current := snapshot.Players[snapshot.CurrentPlayerIndex]

	snapshot, err := g.Send(mayi.NewDrawFromStock(current.ID))
	if err != nil {
		fmt.Println("draw:", err)
		return snapshot
	}
	if snapshot.Phase == mayi.SnapshotPhaseGameEnd {
		return snapshot
	}

	snapshot, err = g.Send(mayi.NewSkipLayDown(current.ID))
	if err != nil {
		fmt.Println("skip lay-down:", err)
		return snapshot
	}

	hand := snapshot.Players[snapshot.CurrentPlayerIndex].Hand
	discardID := hand[rng.Intn(len(hand))].ID

	snapshot, err = g.Send(mayi.NewDiscard(current.ID, discardID))
	if err != nil {
		fmt.Println("discard:", err)
	}
	return snapshot
}
