package mayi

// PointValue returns a card's contribution to a hand's score if left
// unmelded at round end (spec.md §4.7 / §3 Scoring): Joker=50, Ace=15,
// 2=20, J/Q/K/10=10, 3..9 face value.
func (c Card) PointValue() int {
	switch c.Rank {
	case Joker:
		return 50
	case Ace:
		return 15
	case Two:
		return 20
	case Jack, Queen, King:
		return 10
	default: // Three..Ten: Rank's int value already equals its face value.
		return int(c.Rank)
	}
}

// handScore sums the point values of every card in hand. Melded cards never
// appear in hand, so there is nothing to exclude here (unlike the teacher's
// deadwood calculation, which subtracts melded cards from a hand that still
// contains them).
func handScore(hand []Card) int {
	total := 0
	for _, c := range hand {
		total += c.PointValue()
	}
	return total
}
