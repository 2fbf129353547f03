package game

import (
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
)

// EndReason says why a session ended. It is a separate type from State
// so that "the game is over" is never encoded as a sentinel game state.
type EndReason int

const (
	// SessionExited means the player chose to leave the table
	SessionExited EndReason = iota
	// SessionBroke means the player ran out of chips
	SessionBroke
)

// String returns the string representation of an end reason
func (r EndReason) String() string {
	switch r {
	case SessionExited:
		return "exited"
	case SessionBroke:
		return "broke"
	default:
		return "unknown"
	}
}

// Stats accumulates per-session results for the end-of-session summary
type Stats struct {
	Rounds     int
	Wins       int
	Losses     int
	Pushes     int
	Blackjacks int
	Surrenders int
	NetChips   int
}

func (st *Stats) record(o Outcome, delta int) {
	st.Rounds++
	st.NetChips += delta
	switch o {
	case OutcomeWin:
		st.Wins++
	case OutcomeLose:
		st.Losses++
	case OutcomePush:
		st.Pushes++
	case OutcomeBlackjack:
		st.Blackjacks++
	case OutcomeSurrender:
		st.Surrenders++
	}
}

// Engine drives the round state machine over a State: betting, the
// opening deal, the player's decisions, the dealer's automated play and
// resolution, repeated until the player leaves or goes broke. All input
// and rendering goes through the Agent and Display contracts; the engine
// itself is synchronous and single-threaded.
type Engine struct {
	state       State
	agent       Agent
	display     Display
	logger      *log.Logger
	rng         *rand.Rand
	clock       quartz.Clock
	dealerDelay time.Duration
	stats       Stats
}

// Option configures an Engine
type Option func(*Engine)

// WithClock sets the clock used for dealer pacing, so tests can use a
// quartz mock instead of waiting in real time
func WithClock(c quartz.Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithDealerDelay sets the pause between dealer hits. Zero disables
// pacing entirely.
func WithDealerDelay(d time.Duration) Option {
	return func(e *Engine) { e.dealerDelay = d }
}

// NewEngine creates an engine for a single session
func NewEngine(state State, agent Agent, display Display, logger *log.Logger, rng *rand.Rand, opts ...Option) *Engine {
	e := &Engine{
		state:       state,
		agent:       agent,
		display:     display,
		logger:      logger,
		rng:         rng,
		clock:       quartz.NewReal(),
		dealerDelay: 800 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns the current game state
func (e *Engine) State() State {
	return e.state
}

// Stats returns the session statistics accumulated so far
func (e *Engine) Stats() Stats {
	return e.stats
}

// Run plays rounds until the player exits or goes broke and returns the
// reason the session ended. Any error is an engine precondition
// violation and means a bug in the calling layer, not bad user input.
func (e *Engine) Run() (EndReason, error) {
	for {
		exited, err := e.playRound()
		if err != nil {
			return 0, err
		}
		if exited {
			e.logger.Info("session ended", "reason", SessionExited, "chips", e.state.Chips)
			return SessionExited, nil
		}
		if e.state.IsBroke() {
			e.logger.Info("session ended", "reason", SessionBroke, "rounds", e.stats.Rounds)
			return SessionBroke, nil
		}
		e.agent.PromptContinue()
	}
}

// playRound runs one round of the state machine. It returns true when
// the player exited mid-round, in which case the in-flight round is
// abandoned without resolution.
func (e *Engine) playRound() (bool, error) {
	e.state.RoundID = uuid.NewString()
	logger := e.logger.With("round", e.state.RoundID)

	// Bet phase
	startChips := e.state.Chips
	bet, quit := e.agent.PromptBet(e.state.Chips, e.state.BetLimit)
	if quit {
		logger.Info("player left at the bet prompt")
		return true, nil
	}

	var err error
	if e.state, err = e.state.MakeBet(bet); err != nil {
		return false, err
	}
	logger.Debug("bet placed", "bet", bet, "chips", e.state.Chips)

	if err := e.dealOpeningHands(); err != nil {
		return false, err
	}
	e.display.Render(e.state)

	// Player phase
	surrendered := false
	if !IsTwentyOne(e.state.Player) {
		done := false
		for !done {
			move := e.agent.PromptMove(MoveChoices(e.state))
			logger.Debug("player move", "move", move, "turns", e.state.Turns)

			switch move {
			case MoveExit:
				logger.Info("player exited mid-round")
				return true, nil

			case MoveSurrender:
				surrendered = true
				done = true

			case MoveDouble:
				if e.state, err = e.state.ScaleBet(2); err != nil {
					return false, err
				}
				if e.state, err = e.state.PlayHit(TargetPlayer); err != nil {
					return false, err
				}
				e.display.Render(e.state)
				done = true

			case MoveStay:
				done = true

			case MoveHit:
				if e.state, err = e.state.PlayHit(TargetPlayer); err != nil {
					return false, err
				}
				e.display.Render(e.state)
				if IsBusted(e.state.Player) || IsTwentyOne(e.state.Player) {
					done = true
				}
			}
		}
	}

	// Dealer phase, skipped entirely on surrender
	if !surrendered {
		if err := e.playDealer(logger); err != nil {
			return false, err
		}
	}

	// Resolution phase
	outcome := DetermineOutcome(e.state, surrendered)
	if e.state, err = e.state.ResolveBet(outcome); err != nil {
		return false, err
	}
	e.stats.record(outcome, e.state.Chips-startChips)

	logger.Info("round resolved",
		"outcome", outcome,
		"player", e.state.Player.String(),
		"dealer", e.state.Dealer.String(),
		"chips", e.state.Chips)

	e.display.AnnounceOutcome(outcome)
	e.state = e.state.DumpHands(e.rng)
	if err := e.state.CheckConservation(); err != nil {
		return false, err
	}
	return false, nil
}

// dealOpeningHands deals the round's starting cards: two up to the
// player, one up and one hole card to the dealer
func (e *Engine) dealOpeningHands() error {
	var err error
	if e.state, err = e.state.DealCards(2, TargetPlayer, true); err != nil {
		return err
	}
	if e.state, err = e.state.DealCards(1, TargetDealer, true); err != nil {
		return err
	}
	if e.state, err = e.state.DealCards(1, TargetDealer, false); err != nil {
		return err
	}
	return nil
}

// playDealer reveals the hole card and draws until the dealer stands on
// 17 or the player has already busted
func (e *Engine) playDealer(logger *log.Logger) error {
	var err error
	if e.state, err = e.state.ShowHand(TargetDealer); err != nil {
		return err
	}
	e.display.Render(e.state)

	for !IsOver16(e.state.Dealer) && !IsBusted(e.state.Player) {
		e.pause()
		if e.state, err = e.state.PlayHit(TargetDealer); err != nil {
			return err
		}
		logger.Debug("dealer hits", "dealer", e.state.Dealer.String())
		e.display.Render(e.state)
	}
	return nil
}

// pause waits the configured dealer delay on the engine's clock
func (e *Engine) pause() {
	if e.dealerDelay <= 0 {
		return
	}
	timer := e.clock.NewTimer(e.dealerDelay)
	<-timer.C
}
