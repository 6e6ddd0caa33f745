package mayi

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeckConfigForPlayerCount(t *testing.T) {
	cases := []struct {
		players     int
		wantDecks   int
		wantJokers  int
		wantErr     bool
	}{
		{3, 2, 4, false},
		{5, 2, 4, false},
		{6, 3, 6, false},
		{8, 3, 6, false},
		{2, 0, 0, true},
		{9, 0, 0, true},
	}
	for _, tc := range cases {
		cfg, err := deckConfigFor(tc.players)
		if tc.wantErr {
			require.Error(t, err)
			assert.Equal(t, ErrKindPlayerCountOutOfRange, err.Kind)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.wantDecks, cfg.decks)
		assert.Equal(t, tc.wantJokers, cfg.jokers)
	}
}

func TestCreateDeckSizeLaw(t *testing.T) {
	small := createDeck(2, 4)
	assert.Len(t, small, 108)

	large := createDeck(3, 6)
	assert.Len(t, large, 162)
}

func TestCreateDeckEveryCardUnique(t *testing.T) {
	cards := createDeck(2, 4)
	seen := map[string]bool{}
	for _, c := range cards {
		key := c.ID.String()
		require.False(t, seen[key], "duplicate card id")
		seen[key] = true
	}
}

func TestShuffleCardsPreservesMultisetAndDoesNotMutateInput(t *testing.T) {
	original := createDeck(2, 4)
	originalCopy := append([]Card{}, original...)

	rng := rand.New(rand.NewSource(42))
	shuffled := shuffleCards(original, rng)

	assert.ElementsMatch(t, originalCopy, original, "input slice must not be mutated")
	assert.ElementsMatch(t, originalCopy, shuffled, "shuffle must be a reordering, not a resample")
}

func TestDealRoundRobin(t *testing.T) {
	cards := createDeck(2, 4)
	dealt, err := deal(cards, 4)
	require.NoError(t, err)

	for _, hand := range dealt.hands {
		assert.Len(t, hand, handSize)
	}
	assert.Len(t, dealt.discard, 1)
	assert.Len(t, dealt.stock, len(cards)-4*handSize-1)

	assert.Equal(t, cards[0], dealt.hands[0][0])
	assert.Equal(t, cards[1], dealt.hands[1][0])
	assert.Equal(t, cards[4], dealt.hands[0][1])
	assert.Equal(t, cards[4*handSize], dealt.discard[0])
}

func TestDealNotEnoughCards(t *testing.T) {
	_, err := deal(createDeck(1, 0), 8)
	require.Error(t, err)
	assert.Equal(t, ErrKindNotEnoughCards, err.Kind)
}
