package game

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/cardroom/blackjack/internal/deck"
)

// ReshuffleAt is the deck size below which the discard pile is shuffled
// back in between rounds
const ReshuffleAt = 52

// Deck count limits at table creation
const (
	MinDecks = 4
	MaxDecks = 8
)

// Target selects which hand a transition operates on
type Target int

const (
	TargetPlayer Target = iota
	TargetDealer
)

// String returns the string representation of a target
func (t Target) String() string {
	switch t {
	case TargetPlayer:
		return "player"
	case TargetDealer:
		return "dealer"
	default:
		return "unknown"
	}
}

// State is a snapshot of the whole table between two transitions: the
// shoe, the discard pile, both hands, and the betting ledger. Every
// transition returns a fresh State and leaves its receiver untouched, so
// a sequence of plays is a sequence of values and any prior state can be
// inspected or replayed.
//
// Transitions validate their preconditions and return an error when one
// is violated. Those errors are programming errors in the calling layer
// (input validation belongs to the prompt adapter), so the engine treats
// them as fatal rather than recoverable.
type State struct {
	RoundID    string // uuid for log correlation, set each round
	Deck       []deck.Card
	Discard    []deck.Card
	Player     Hand
	Dealer     Hand
	Chips      int
	BetLimit   int
	CurrentBet int
	Turns      int // player actions taken this round; 0 means a 21 is a natural
	DeckCount  int
}

// NewState creates the starting state for a session: a freshly shuffled
// multi-deck shoe, empty hands, no outstanding bet.
func NewState(chips, betLimit, decks int, rng *rand.Rand) (State, error) {
	if chips <= 0 {
		return State{}, fmt.Errorf("starting chips must be positive, got %d", chips)
	}
	if betLimit <= 0 {
		return State{}, fmt.Errorf("bet limit must be positive, got %d", betLimit)
	}
	if decks < MinDecks || decks > MaxDecks {
		return State{}, fmt.Errorf("deck count must be between %d and %d, got %d", MinDecks, MaxDecks, decks)
	}

	shoe, err := deck.NewShoe(decks, rng)
	if err != nil {
		return State{}, err
	}

	return State{
		Deck:      shoe,
		Chips:     chips,
		BetLimit:  betLimit,
		DeckCount: decks,
	}, nil
}

// DealCards moves the top n cards from the deck onto the target hand,
// each tagged with the given visibility. The caller must ensure the deck
// holds at least n cards; replenishment is DumpHands' job, kept separate
// so the deal itself stays cheap and predictable.
func (s State) DealCards(n int, target Target, show bool) (State, error) {
	if n < 0 {
		return s, fmt.Errorf("cannot deal %d cards", n)
	}
	if len(s.Deck) < n {
		return s, fmt.Errorf("deal of %d cards exceeds deck size %d", n, len(s.Deck))
	}

	dealt := make([]deck.Card, n)
	for i, c := range s.Deck[:n] {
		if show {
			dealt[i] = c.FaceUp()
		} else {
			dealt[i] = c.FaceDown()
		}
	}

	switch target {
	case TargetPlayer:
		s.Player = appendCards(s.Player, dealt...)
	case TargetDealer:
		s.Dealer = appendCards(s.Dealer, dealt...)
	default:
		return s, fmt.Errorf("unknown deal target %d", target)
	}

	s.Deck = s.Deck[n:]
	return s, nil
}

// ShowHand turns every card in the target hand face up. Used to reveal
// the dealer's hole card when the dealer's turn begins.
func (s State) ShowHand(target Target) (State, error) {
	switch target {
	case TargetPlayer:
		s.Player = showAll(s.Player)
	case TargetDealer:
		s.Dealer = showAll(s.Dealer)
	default:
		return s, fmt.Errorf("unknown show target %d", target)
	}
	return s, nil
}

// MakeBet debits amount from the bankroll and records it as the
// outstanding bet for the round
func (s State) MakeBet(amount int) (State, error) {
	if amount <= 0 {
		return s, fmt.Errorf("bet must be positive, got %d", amount)
	}
	if amount > s.BetLimit {
		return s, fmt.Errorf("bet %d exceeds table limit %d", amount, s.BetLimit)
	}
	if amount > s.Chips {
		return s, fmt.Errorf("bet %d exceeds bankroll %d", amount, s.Chips)
	}

	s.Chips -= amount
	s.CurrentBet = amount
	return s, nil
}

// ScaleBet multiplies the outstanding bet by factor, debiting the
// difference from the bankroll. Double-down uses factor 2. The scaled
// bet may spend at most the bankroll plus the already-staked bet.
func (s State) ScaleBet(factor int) (State, error) {
	if s.CurrentBet <= 0 {
		return s, fmt.Errorf("no outstanding bet to scale")
	}
	scaled := s.CurrentBet * factor
	if scaled > s.Chips+s.CurrentBet {
		return s, fmt.Errorf("scaled bet %d exceeds available chips %d", scaled, s.Chips+s.CurrentBet)
	}

	// Refund the staked bet, then stake the scaled amount.
	s.Chips += s.CurrentBet
	s.Chips -= scaled
	s.CurrentBet = scaled
	return s, nil
}

// ResolveBet settles the outstanding bet for the given outcome, crediting
// the payout (floored to whole chips) back to the bankroll
func (s State) ResolveBet(outcome Outcome) (State, error) {
	num, den, err := outcome.payout()
	if err != nil {
		return s, err
	}

	s.Chips += s.CurrentBet * num / den
	s.CurrentBet = 0
	return s, nil
}

// DumpHands moves both hands into the discard pile and resets the turn
// counter, ending the round. If the deck has dropped below ReshuffleAt
// cards the discard pile is shuffled back in; this is the only point in
// the lifecycle where cards return to the deck, so a round is never
// interrupted by a reshuffle.
func (s State) DumpHands(rng *rand.Rand) State {
	discard := make([]deck.Card, 0, len(s.Discard)+len(s.Player)+len(s.Dealer))
	discard = append(discard, s.Discard...)
	discard = append(discard, s.Player...)
	discard = append(discard, s.Dealer...)

	s.Player = nil
	s.Dealer = nil
	s.Turns = 0

	if len(s.Deck) < ReshuffleAt {
		s.Deck = deck.ShuffleTogether(rng, s.Deck, discard)
		s.Discard = nil
	} else {
		s.Discard = discard
	}
	return s
}

// PlayHit deals one face-up card to the target and counts the action.
// Dealer draws use the same primitive; only the turn counter's meaning
// differs (it gates the player's natural and first-turn moves).
func (s State) PlayHit(target Target) (State, error) {
	next, err := s.DealCards(1, target, true)
	if err != nil {
		return s, err
	}
	next.Turns++
	return next, nil
}

// IsBroke returns true when no chips remain either in the bankroll or
// staked on the table. Checked between rounds to end the session.
func (s State) IsBroke() bool {
	return s.Chips+s.CurrentBet == 0
}

// CardCount returns the number of cards across all four zones
func (s State) CardCount() int {
	return len(s.Deck) + len(s.Discard) + len(s.Player) + len(s.Dealer)
}

// CheckConservation verifies that no card has been created or destroyed
// since the shoe was built
func (s State) CheckConservation() error {
	want := s.DeckCount * deck.DeckSize
	if got := s.CardCount(); got != want {
		return fmt.Errorf("card conservation violated: have %d cards, want %d", got, want)
	}
	return nil
}

func appendCards(h Hand, cards ...deck.Card) Hand {
	out := make(Hand, 0, len(h)+len(cards))
	out = append(out, h...)
	out = append(out, cards...)
	return out
}

func showAll(h Hand) Hand {
	out := make(Hand, len(h))
	for i, c := range h {
		out[i] = c.FaceUp()
	}
	return out
}
