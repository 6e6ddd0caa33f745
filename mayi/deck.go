package mayi

// Rng is the entropy source the deck builder and shuffler consume. Its shape
// mirrors math/rand.Rand.Shuffle (and, before it, pavelnikolov/deck's
// Shuffler interface) so *rand.Rand satisfies it with no adapter: production
// passes rand.New(rand.NewSource(time.Now().UnixNano())), tests pass a
// seeded rand.New(rand.NewSource(seed)). There is no hidden global RNG.
type Rng interface {
	Shuffle(n int, swap func(i, j int))
}

const handSize = 11

// deckConfig describes the shoe composition for a given player count.
type deckConfig struct {
	decks   int
	jokers  int
}

// deckConfigFor derives the deck composition from the player count per
// spec.md §3: 3-5 players get 2 decks + 4 jokers (108 cards), 6-8 players get
// 3 decks + 6 jokers (162 cards).
func deckConfigFor(playerCount int) (deckConfig, *EngineError) {
	switch {
	case playerCount >= 3 && playerCount <= 5:
		return deckConfig{decks: 2, jokers: 4}, nil
	case playerCount >= 6 && playerCount <= 8:
		return deckConfig{decks: 3, jokers: 6}, nil
	default:
		return deckConfig{}, newEngineError(ErrKindPlayerCountOutOfRange, "player count %d out of range 3..8", playerCount)
	}
}

// createDeck builds a fresh sequence of cards: deckCount copies of the 52
// standard rank/suit combinations, followed by jokerCount Jokers. Every card
// is given a fresh unique identity, even when its rank/suit duplicates one
// from another copy of the deck.
func createDeck(deckCount, jokerCount int) []Card {
	cards := make([]Card, 0, deckCount*52+jokerCount)
	for d := 0; d < deckCount; d++ {
		for _, suit := range allSuits {
			for rank := Ace; rank <= King; rank++ {
				cards = append(cards, newCard(rank, suit))
			}
		}
	}
	for j := 0; j < jokerCount; j++ {
		cards = append(cards, newCard(Joker, ""))
	}
	return cards
}

// shuffleCards returns a newly-ordered copy of cards via Fisher-Yates driven
// by rng. The input slice is never mutated.
func shuffleCards(cards []Card, rng Rng) []Card {
	out := make([]Card, len(cards))
	copy(out, cards)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// dealtHand is the outcome of dealing a shuffled shoe to a table.
type dealtHand struct {
	hands   [][]Card
	stock   []Card
	discard []Card
}

// deal distributes cards round-robin (card i -> player i mod playerCount)
// until each player has handSize cards, flips the next card face-up as the
// initial discard, and places the remainder into the stock preserving
// post-shuffle order.
func deal(cards []Card, playerCount int) (dealtHand, *EngineError) {
	needed := playerCount*handSize + 1
	if needed > len(cards) {
		return dealtHand{}, newEngineError(ErrKindNotEnoughCards, "need %d cards to deal %d players, have %d", needed, playerCount, len(cards))
	}

	hands := make([][]Card, playerCount)
	for i := 0; i < playerCount*handSize; i++ {
		seat := i % playerCount
		hands[seat] = append(hands[seat], cards[i])
	}

	discard := []Card{cards[playerCount*handSize]}
	stock := append([]Card{}, cards[playerCount*handSize+1:]...)

	return dealtHand{hands: hands, stock: stock, discard: discard}, nil
}
