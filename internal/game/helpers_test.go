package game

import (
	"testing"

	"github.com/cardroom/blackjack/internal/deck"
)

// scriptAgent plays back canned bets and moves. When the bet script is
// exhausted it quits, ending the session cleanly.
type scriptAgent struct {
	t     *testing.T
	bets  []int
	moves []Move

	continues int
}

func (a *scriptAgent) PromptBet(chips, betLimit int) (int, bool) {
	if len(a.bets) == 0 {
		return 0, true
	}
	bet := a.bets[0]
	a.bets = a.bets[1:]
	return bet, false
}

func (a *scriptAgent) PromptMove(choices []Move) Move {
	if len(a.moves) == 0 {
		a.t.Errorf("engine asked for a move but the script is empty (choices %v)", choices)
		return MoveExit
	}
	move := a.moves[0]
	a.moves = a.moves[1:]

	for _, c := range choices {
		if c == move {
			return move
		}
	}
	a.t.Errorf("scripted move %s not among offered choices %v", move, choices)
	return MoveExit
}

func (a *scriptAgent) PromptContinue() {
	a.continues++
}

// recordingDisplay captures everything the engine asked to show
type recordingDisplay struct {
	renders  []State
	outcomes []Outcome
}

func (d *recordingDisplay) Render(s State) {
	d.renders = append(d.renders, s)
}

func (d *recordingDisplay) AnnounceOutcome(o Outcome) {
	d.outcomes = append(d.outcomes, o)
}

// stackedState builds a four-deck state whose first cards are exactly
// the given prefix, so a test controls every deal. The rest of the shoe
// follows in construction order; conservation holds throughout.
func stackedState(t *testing.T, chips, betLimit int, prefix ...deck.Card) State {
	t.Helper()

	remaining := make([]deck.Card, 0, 4*deck.DeckSize)
	for i := 0; i < 4; i++ {
		for suit := deck.Spades; suit <= deck.Clubs; suit++ {
			for rank := deck.Ace; rank <= deck.King; rank++ {
				remaining = append(remaining, deck.NewCard(suit, rank))
			}
		}
	}

	cards := make([]deck.Card, 0, len(remaining))
	for _, want := range prefix {
		found := false
		for i, c := range remaining {
			if c.Suit == want.Suit && c.Rank == want.Rank {
				cards = append(cards, c)
				remaining = append(remaining[:i], remaining[i+1:]...)
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("stacked card %s not available in the shoe", want)
		}
	}
	cards = append(cards, remaining...)

	return State{
		Deck:      cards,
		Chips:     chips,
		BetLimit:  betLimit,
		DeckCount: 4,
	}
}
