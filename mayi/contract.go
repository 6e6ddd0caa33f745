package mayi

// Contract is the meld shape a player must lay down in one action to go
// down in a given round.
type Contract struct {
	Sets int `json:"sets"`
	Runs int `json:"runs"`
}

// contractTable holds the required meld counts for rounds 1..6
// (spec.md §3). Index 0 is unused so the table can be indexed directly by
// round number.
var contractTable = [...]Contract{
	{}, // unused, rounds are 1-indexed
	{Sets: 2, Runs: 0},
	{Sets: 1, Runs: 1},
	{Sets: 0, Runs: 2},
	{Sets: 3, Runs: 0},
	{Sets: 2, Runs: 1},
	{Sets: 1, Runs: 2},
}

// ContractFor returns the required meld shape for round (1..6).
func ContractFor(round int) Contract {
	if round < 1 || round >= len(contractTable) {
		return Contract{}
	}
	return contractTable[round]
}

// proposedMeld is a lay-down candidate before it is committed to the table:
// a meld shape plus the hand cards the player claims form it.
type proposedMeld struct {
	Type  MeldType
	Cards []Card
}

// checkContract reports whether proposals exactly satisfies contract's
// required meld counts and every individual meld validates (spec.md §4.3).
// It does not check hand membership; callers check that separately since the
// error kind differs (ContractNotMet vs CardNotInHand).
func checkContract(contract Contract, proposals []proposedMeld) bool {
	sets, runs := 0, 0
	for _, p := range proposals {
		m := Meld{Type: p.Type, Cards: p.Cards}
		if !m.IsValid() {
			return false
		}
		switch p.Type {
		case MeldSet:
			sets++
		case MeldRun:
			runs++
		default:
			return false
		}
	}
	return sets == contract.Sets && runs == contract.Runs
}
