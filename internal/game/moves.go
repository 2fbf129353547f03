package game

// Move is an action the player may take during their turn
type Move int

const (
	MoveHit Move = iota
	MoveStay
	MoveSurrender
	MoveDouble
	MoveExit
)

// String returns the string representation of a move
func (m Move) String() string {
	switch m {
	case MoveHit:
		return "hit"
	case MoveStay:
		return "stay"
	case MoveSurrender:
		return "surrender"
	case MoveDouble:
		return "double-down"
	case MoveExit:
		return "exit"
	default:
		return "unknown"
	}
}

// MoveChoices returns the legal moves for the current state, in menu
// order. Hit, stay and exit are always legal. Surrender and double-down
// are first-action moves only; double-down additionally needs enough
// chips to match the stake and must not push the bet past the table
// limit.
func MoveChoices(s State) []Move {
	choices := []Move{MoveHit, MoveStay}
	if s.Turns == 0 {
		choices = append(choices, MoveSurrender)
		if s.Chips >= s.CurrentBet && s.CurrentBet*2 <= s.BetLimit {
			choices = append(choices, MoveDouble)
		}
	}
	return append(choices, MoveExit)
}
