package game

import (
	"strings"

	"github.com/cardroom/blackjack/internal/deck"
)

// Hand is an ordered sequence of cards held by the player or dealer.
// Order is deal order and matters only for display; scoring ignores it.
type Hand []deck.Card

// String returns the hand as space-separated cards, e.g. "A♠ K♥"
func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Scores returns the candidate totals for a hand. Every card counts its
// low value; if the hand holds at least one ace a second candidate is
// added with that ace counted as 11. An ace never counts as 11 more
// than once, so at most two candidates exist and a hand of two aces
// scores [2, 12] rather than 22. An empty hand scores [0].
func Scores(h Hand) []int {
	low := 0
	hasAce := false
	for _, c := range h {
		low += c.Value()
		if c.IsAce() {
			hasAce = true
		}
	}
	if hasAce {
		return []int{low, low + 10}
	}
	return []int{low}
}

// TopScore returns the greatest candidate score that does not exceed 21.
// The second return is false when every candidate busts.
func TopScore(h Hand) (int, bool) {
	best := 0
	found := false
	for _, s := range Scores(h) {
		if s <= 21 && s >= best {
			best = s
			found = true
		}
	}
	return best, found
}

// IsBusted returns true if every candidate score exceeds 21
func IsBusted(h Hand) bool {
	_, ok := TopScore(h)
	return !ok
}

// IsOver16 reports whether every candidate score is at least 17. This is
// the dealer stand condition: the dealer keeps drawing until even the
// ace-low reading of its hand reaches 17.
func IsOver16(h Hand) bool {
	for _, s := range Scores(h) {
		if s < 17 {
			return false
		}
	}
	return true
}

// IsTwentyOne returns true if 21 is among the candidate scores
func IsTwentyOne(h Hand) bool {
	for _, s := range Scores(h) {
		if s == 21 {
			return true
		}
	}
	return false
}

// Pushes returns true if both hands have a top score and the top scores
// are equal
func Pushes(a, b Hand) bool {
	as, aok := TopScore(a)
	bs, bok := TopScore(b)
	return aok && bok && as == bs
}

// Beats returns true if a is not busted and a's top score exceeds b's.
// A busted b always loses to an unbusted a.
func Beats(a, b Hand) bool {
	as, aok := TopScore(a)
	if !aok {
		return false
	}
	bs, bok := TopScore(b)
	if !bok {
		return true
	}
	return as > bs
}
