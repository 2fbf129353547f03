package game

import "fmt"

// Outcome is the result of a resolved round
type Outcome int

const (
	OutcomeSurrender Outcome = iota
	OutcomeBlackjack
	OutcomePush
	OutcomeWin
	OutcomeLose
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeSurrender:
		return "surrender"
	case OutcomeBlackjack:
		return "blackjack"
	case OutcomePush:
		return "push"
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	default:
		return "unknown"
	}
}

// payout returns the multiplier applied to the staked bet as a fraction.
// The stake was already debited when the bet was made, so a push pays 1
// (stake returned) and a win pays 2 (stake plus equal winnings). A
// natural blackjack pays the traditional 3:2 on top of the stake.
func (o Outcome) payout() (num, den int, err error) {
	switch o {
	case OutcomeSurrender:
		return 1, 2, nil
	case OutcomeBlackjack:
		return 5, 2, nil
	case OutcomePush:
		return 1, 1, nil
	case OutcomeWin:
		return 2, 1, nil
	case OutcomeLose:
		return 0, 1, nil
	default:
		return 0, 0, fmt.Errorf("unknown outcome %d", o)
	}
}

// DetermineOutcome decides the round result once play has finished. The
// order of checks matters: a busted dealer loses to anything the player
// holds, a push is settled before the win/blackjack distinction, and the
// 3:2 natural bonus only applies when the player stood on the opening
// two cards (Turns still 0).
func DetermineOutcome(s State, surrendered bool) Outcome {
	switch {
	case surrendered:
		return OutcomeSurrender
	case IsBusted(s.Dealer):
		return OutcomeWin
	case Pushes(s.Dealer, s.Player):
		return OutcomePush
	case Beats(s.Player, s.Dealer):
		if s.Turns == 0 && IsTwentyOne(s.Player) {
			return OutcomeBlackjack
		}
		return OutcomeWin
	default:
		return OutcomeLose
	}
}
