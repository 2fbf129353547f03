package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardroom/blackjack/internal/deck"
)

func card(suit deck.Suit, rank deck.Rank) deck.Card {
	return deck.NewCard(suit, rank)
}

func TestScores(t *testing.T) {
	tests := []struct {
		name     string
		hand     Hand
		expected []int
	}{
		{
			name:     "empty hand scores zero",
			hand:     Hand{},
			expected: []int{0},
		},
		{
			name:     "no aces gives a single total",
			hand:     Hand{card(deck.Spades, deck.Ten), card(deck.Hearts, deck.Nine), card(deck.Clubs, deck.Five)},
			expected: []int{24},
		},
		{
			name:     "ace and king",
			hand:     Hand{card(deck.Spades, deck.Ace), card(deck.Hearts, deck.King)},
			expected: []int{11, 21},
		},
		{
			name:     "only the first ace is promoted",
			hand:     Hand{card(deck.Spades, deck.Ace), card(deck.Hearts, deck.Ace), card(deck.Clubs, deck.Nine)},
			expected: []int{11, 21},
		},
		{
			name:     "two bare aces",
			hand:     Hand{card(deck.Spades, deck.Ace), card(deck.Hearts, deck.Ace)},
			expected: []int{2, 12},
		},
		{
			name:     "face cards count ten",
			hand:     Hand{card(deck.Spades, deck.Jack), card(deck.Hearts, deck.Queen)},
			expected: []int{20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Scores(tt.hand))
		})
	}
}

func TestTopScore(t *testing.T) {
	top, ok := TopScore(Hand{card(deck.Spades, deck.Ace), card(deck.Hearts, deck.King)})
	require.True(t, ok)
	assert.Equal(t, 21, top)

	// Ace falls back to low when the high total busts
	top, ok = TopScore(Hand{card(deck.Spades, deck.Ace), card(deck.Hearts, deck.King), card(deck.Clubs, deck.Five)})
	require.True(t, ok)
	assert.Equal(t, 16, top)

	_, ok = TopScore(Hand{card(deck.Spades, deck.Ten), card(deck.Hearts, deck.Nine), card(deck.Clubs, deck.Five)})
	assert.False(t, ok, "a busted hand has no top score")

	top, ok = TopScore(Hand{})
	require.True(t, ok)
	assert.Equal(t, 0, top)
}

func TestIsBusted(t *testing.T) {
	assert.True(t, IsBusted(Hand{card(deck.Spades, deck.Ten), card(deck.Hearts, deck.Nine), card(deck.Clubs, deck.Five)}))
	assert.False(t, IsBusted(Hand{card(deck.Spades, deck.Ten), card(deck.Hearts, deck.Nine)}))
	assert.False(t, IsBusted(Hand{}), "an empty hand is not busted")
	// An ace saves a hand the high reading would bust
	assert.False(t, IsBusted(Hand{card(deck.Spades, deck.Ace), card(deck.Hearts, deck.King), card(deck.Clubs, deck.King)}))
}

func TestIsOver16(t *testing.T) {
	tests := []struct {
		name     string
		hand     Hand
		expected bool
	}{
		{"hard sixteen keeps drawing", Hand{card(deck.Spades, deck.Ten), card(deck.Hearts, deck.Six)}, false},
		{"hard seventeen stands", Hand{card(deck.Spades, deck.Ten), card(deck.Hearts, deck.Seven)}, true},
		{"soft seventeen keeps drawing", Hand{card(deck.Spades, deck.Ace), card(deck.Hearts, deck.Six)}, false},
		{"busted hand stands", Hand{card(deck.Spades, deck.Ten), card(deck.Hearts, deck.Nine), card(deck.Clubs, deck.Five)}, true},
		{"empty hand keeps drawing", Hand{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsOver16(tt.hand))
		})
	}
}

func TestIsTwentyOne(t *testing.T) {
	assert.True(t, IsTwentyOne(Hand{card(deck.Spades, deck.Ace), card(deck.Hearts, deck.King)}))
	assert.True(t, IsTwentyOne(Hand{card(deck.Spades, deck.Seven), card(deck.Hearts, deck.Seven), card(deck.Clubs, deck.Seven)}))
	assert.False(t, IsTwentyOne(Hand{card(deck.Spades, deck.Ten), card(deck.Hearts, deck.Nine)}))
	assert.False(t, IsTwentyOne(Hand{}))
}

func TestPushes(t *testing.T) {
	twenty := Hand{card(deck.Spades, deck.Ten), card(deck.Hearts, deck.Queen)}
	alsoTwenty := Hand{card(deck.Clubs, deck.King), card(deck.Diamonds, deck.Jack)}
	nineteen := Hand{card(deck.Spades, deck.Ten), card(deck.Hearts, deck.Nine)}
	busted := Hand{card(deck.Spades, deck.Ten), card(deck.Hearts, deck.Nine), card(deck.Clubs, deck.Five)}

	assert.True(t, Pushes(twenty, twenty), "pushes is reflexive")
	assert.True(t, Pushes(twenty, alsoTwenty))
	assert.True(t, Pushes(alsoTwenty, twenty), "pushes is symmetric")
	assert.False(t, Pushes(twenty, nineteen))
	assert.False(t, Pushes(busted, busted), "busted hands never push")
}

func TestBeats(t *testing.T) {
	twenty := Hand{card(deck.Spades, deck.Ten), card(deck.Hearts, deck.Queen)}
	nineteen := Hand{card(deck.Spades, deck.Ten), card(deck.Hearts, deck.Nine)}
	busted := Hand{card(deck.Spades, deck.Ten), card(deck.Hearts, deck.Nine), card(deck.Clubs, deck.Five)}

	assert.True(t, Beats(twenty, nineteen))
	assert.False(t, Beats(nineteen, twenty))
	assert.False(t, Beats(twenty, twenty), "equal top scores do not beat")
	assert.False(t, Beats(busted, nineteen), "a busted hand beats nothing")
	assert.False(t, Beats(busted, busted))
	assert.True(t, Beats(nineteen, busted), "any live hand beats a busted one")
}
