package deck

import (
	"fmt"
	rand "math/rand/v2"
)

// DeckSize is the number of cards in a single standard deck
const DeckSize = 52

// NewShoe builds n interleaved copies of the standard 52-card set and
// returns them in uniformly random order, all face down. Multi-deck
// shoes are how casino blackjack discourages counting; n must be at
// least 1.
func NewShoe(n int, rng *rand.Rand) ([]Card, error) {
	if n < 1 {
		return nil, fmt.Errorf("shoe requires at least one deck, got %d", n)
	}

	cards := make([]Card, 0, n*DeckSize)
	for i := 0; i < n; i++ {
		for suit := Spades; suit <= Clubs; suit++ {
			for rank := Ace; rank <= King; rank++ {
				cards = append(cards, NewCard(suit, rank))
			}
		}
	}

	shuffle(cards, rng)
	return cards, nil
}

// ShuffleTogether concatenates the given stacks and returns a uniformly
// random permutation of the combined cards. The inputs are not modified.
// Used both for shoe construction and for recycling the discard pile
// back into the deck.
func ShuffleTogether(rng *rand.Rand, stacks ...[]Card) []Card {
	total := 0
	for _, stack := range stacks {
		total += len(stack)
	}

	combined := make([]Card, 0, total)
	for _, stack := range stacks {
		combined = append(combined, stack...)
	}

	shuffle(combined, rng)
	return combined
}

// shuffle performs an in-place Fisher-Yates shuffle
func shuffle(cards []Card, rng *rand.Rand) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}
