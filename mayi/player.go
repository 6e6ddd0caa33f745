package mayi

import "github.com/google/uuid"

// Player is a seated participant. ID is assigned at registration (AddPlayer)
// and is stable for the life of the game.
type Player struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Hand        []Card `json:"hand"`
	IsDown      bool   `json:"isDown"`
	TotalScore  int    `json:"totalScore"`
}

func newPlayerID() string {
	return uuid.NewString()
}

func playerIndex(players []*Player, id string) int {
	for i, p := range players {
		if p.ID == id {
			return i
		}
	}
	return -1
}
