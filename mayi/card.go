package mayi

import "github.com/google/uuid"

// Suit identifies one of the four standard suits. The zero value is used for
// Jokers, which carry no suit.
type Suit string

const (
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
	Spades   Suit = "spades"
)

var allSuits = [...]Suit{Hearts, Diamonds, Clubs, Spades}

// Rank identifies a card's rank. Joker is its own rank with no suit. Ace is
// low (rank 1) and never wraps past King in a run.
type Rank int

const (
	Joker Rank = iota
	Ace
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

func (r Rank) String() string {
	switch r {
	case Joker:
		return "Joker"
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return []string{"", "", "2", "3", "4", "5", "6", "7", "8", "9", "10"}[r]
	}
}

// Card is a single physical playing card. ID is an opaque unique token: two
// cards of the same rank/suit drawn from different decks in a multi-deck shoe
// are distinct cards with distinct IDs.
type Card struct {
	ID   uuid.UUID `json:"id"`
	Rank Rank      `json:"rank"`
	Suit Suit      `json:"suit,omitempty"`
}

func newCard(rank Rank, suit Suit) Card {
	return Card{ID: uuid.New(), Rank: rank, Suit: suit}
}

// IsWild reports whether the card can substitute for any rank in a set or run.
// Both Jokers and 2s are wild.
func (c Card) IsWild() bool {
	return c.Rank == Joker || c.Rank == Two
}

// IsJoker reports whether this is specifically a Joker, as opposed to the
// other kind of wild (a 2). Only Jokers are swappable out of runs.
func (c Card) IsJoker() bool {
	return c.Rank == Joker
}

func (c Card) String() string {
	if c.IsJoker() {
		return "Joker"
	}
	return c.Rank.String() + string(c.Suit[:1])
}

// containsCard reports whether id appears in cards.
func containsCard(cards []Card, id uuid.UUID) bool {
	for _, c := range cards {
		if c.ID == id {
			return true
		}
	}
	return false
}

// findCard returns the card with the given id and true, or the zero Card and
// false if it is not present.
func findCard(cards []Card, id uuid.UUID) (Card, bool) {
	for _, c := range cards {
		if c.ID == id {
			return c, true
		}
	}
	return Card{}, false
}

// removeCard returns a new slice with the first card matching id removed.
// The second return value is false if no card matched.
func removeCard(cards []Card, id uuid.UUID) ([]Card, bool) {
	out := make([]Card, 0, len(cards))
	removed := false
	for _, c := range cards {
		if !removed && c.ID == id {
			removed = true
			continue
		}
		out = append(out, c)
	}
	return out, removed
}
