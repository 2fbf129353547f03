// Package game implements the core blackjack game logic.
//
// The central type is State, an immutable snapshot of the table: the
// shoe, the discard pile, both hands and the betting ledger. Every rule
// of the game is a pure transition from one State to the next, so play
// is a sequence of values and any position can be replayed or inspected
// after the fact.
//
// # Basic Usage
//
// Build a starting state and apply transitions:
//
//	rng := randutil.New(42)
//	s, _ := game.NewState(500, 100, 4, rng)
//	s, _ = s.MakeBet(50)
//	s, _ = s.DealCards(2, game.TargetPlayer, true)
//	// ...
//	outcome := game.DetermineOutcome(s, false)
//	s, _ = s.ResolveBet(outcome)
//	s = s.DumpHands(rng)
//
// # Architecture
//
// State delegates to specialized pieces:
//   - deck.NewShoe / deck.ShuffleTogether: shoe construction and the
//     between-rounds discard recycle
//   - Scores / TopScore and friends: hand valuation under the single
//     promoted-ace rule
//   - DetermineOutcome: round settlement ordering
//   - Engine: the bet/player/dealer/resolution state machine, driven
//     through the Agent and Display contracts
//
// Transition errors are precondition violations. The prompt adapter
// validates all user input before a transition is invoked, so the engine
// escalates any transition error as fatal rather than retrying.
package game
