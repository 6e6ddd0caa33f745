package mayi

import "github.com/google/uuid"

// MeldType distinguishes the two meld shapes a player can lay down.
type MeldType string

const (
	MeldSet MeldType = "set"
	MeldRun MeldType = "run"
)

// Meld is a laid-down combination of cards. Cards is kept in the order the
// owner arranged it in: for a Run this order is meaningful (ascending rank)
// and extensions never reorder it; for a Set the order carries no meaning
// beyond "however it was laid down".
type Meld struct {
	ID      uuid.UUID `json:"id"`
	OwnerID string    `json:"ownerId"`
	Type    MeldType  `json:"type"`
	Cards   []Card    `json:"cards"`
}

// IsValid reports whether the meld satisfies its shape's invariants
// (spec.md §3/§4.2).
func (m *Meld) IsValid() bool {
	switch m.Type {
	case MeldSet:
		return validateSet(m.Cards)
	case MeldRun:
		return validateRun(m.Cards)
	default:
		return false
	}
}

func wildNaturalCounts(cards []Card) (wild, natural int) {
	for _, c := range cards {
		if c.IsWild() {
			wild++
		} else {
			natural++
		}
	}
	return wild, natural
}

// validateSet reports whether cards form a valid set: size >= 3, every
// non-wild card shares one rank, and wild count <= natural count. Unlike the
// teacher's Chinchón sets, the May I? contract places no suit-uniqueness
// requirement on a set — spec.md §4.2 names only these three conditions.
func validateSet(cards []Card) bool {
	if len(cards) < 3 {
		return false
	}
	wild, natural := wildNaturalCounts(cards)
	if wild > natural {
		return false
	}
	rank := Rank(-1)
	for _, c := range cards {
		if c.IsWild() {
			continue
		}
		if rank == -1 {
			rank = c.Rank
		} else if c.Rank != rank {
			return false
		}
	}
	return rank != -1
}

// runImpliedRanksAndSuit validates cards as a run and, if valid, returns the
// rank implied at every position (natural cards contribute their own rank;
// wild cards contribute the rank their position implies from neighbours) and
// the run's suit. ok is false if cards do not form a valid run.
func runImpliedRanksAndSuit(cards []Card) (ranks []Rank, suit Suit, ok bool) {
	if len(cards) < 4 {
		return nil, "", false
	}
	wild, natural := wildNaturalCounts(cards)
	if wild > natural {
		return nil, "", false
	}

	firstNaturalIdx := -1
	for i, c := range cards {
		if !c.IsWild() {
			firstNaturalIdx = i
			break
		}
	}
	if firstNaturalIdx == -1 {
		return nil, "", false
	}

	suit = cards[firstNaturalIdx].Suit
	startRank := int(cards[firstNaturalIdx].Rank) - firstNaturalIdx
	if startRank < int(Ace) || startRank+len(cards)-1 > int(King) {
		return nil, "", false
	}

	ranks = make([]Rank, len(cards))
	for i, c := range cards {
		expected := Rank(startRank + i)
		ranks[i] = expected
		if !c.IsWild() {
			if c.Rank != expected || c.Suit != suit {
				return nil, "", false
			}
		}
	}
	return ranks, suit, true
}

// validateRun reports whether cards form a valid run per spec.md §4.2: size
// >= 4, a consistent suit and strictly-increasing A-low ranks once wilds are
// assigned implied ranks, wild count <= natural count, and no wrap past King.
func validateRun(cards []Card) bool {
	_, _, ok := runImpliedRanksAndSuit(cards)
	return ok
}

// layOffOntoSet reports whether card can be laid onto an existing valid set,
// and if so returns the resulting card sequence. A card fits a set iff the
// set remains valid once the card is appended — which is exactly "the card's
// rank matches, or it's a wild that doesn't break the wild-count invariant".
func layOffOntoSet(meld *Meld, card Card) ([]Card, bool) {
	candidate := append(append([]Card{}, meld.Cards...), card)
	if !validateSet(candidate) {
		return nil, false
	}
	return candidate, true
}

// layOffOntoRun reports whether card can be laid onto an existing valid run
// by extending the low end or the high end (existing cards are never
// reordered), and if so returns the resulting card sequence.
func layOffOntoRun(meld *Meld, card Card) ([]Card, bool) {
	highExtended := append(append([]Card{}, meld.Cards...), card)
	if validateRun(highExtended) {
		return highExtended, true
	}
	lowExtended := append([]Card{card}, meld.Cards...)
	if validateRun(lowExtended) {
		return lowExtended, true
	}
	return nil, false
}

// layOffCandidate dispatches to the set/run lay-off rule for meld.Type.
func layOffCandidate(meld *Meld, card Card) ([]Card, bool) {
	switch meld.Type {
	case MeldSet:
		return layOffOntoSet(meld, card)
	case MeldRun:
		return layOffOntoRun(meld, card)
	default:
		return nil, false
	}
}

// swapJokerCandidate reports whether handCard can replace the Joker at
// jokerPos in a run meld, and if so returns the meld's new card sequence and
// the displaced Joker. 2s are wild but never swappable (spec.md §4.2), and
// swaps are only defined for runs.
func swapJokerCandidate(meld *Meld, jokerPos int, handCard Card) (newCards []Card, displaced Card, ok bool) {
	if meld.Type != MeldRun {
		return nil, Card{}, false
	}
	if jokerPos < 0 || jokerPos >= len(meld.Cards) {
		return nil, Card{}, false
	}
	displaced = meld.Cards[jokerPos]
	if !displaced.IsJoker() {
		return nil, Card{}, false
	}

	ranks, suit, ok := runImpliedRanksAndSuit(meld.Cards)
	if !ok {
		return nil, Card{}, false
	}
	if handCard.Suit != suit || handCard.Rank != ranks[jokerPos] {
		return nil, Card{}, false
	}

	newCards = append([]Card{}, meld.Cards...)
	newCards[jokerPos] = handCard
	return newCards, displaced, true
}
