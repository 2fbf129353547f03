package game

// Agent supplies the player's decisions. Implementations own all input
// validation and re-prompting: every value returned must already satisfy
// the engine's contract, so the engine never sees malformed input.
type Agent interface {
	// PromptBet obtains the next round's bet. The returned bet must
	// satisfy 0 < bet <= min(chips, betLimit). quit is true when the
	// player chose to leave the table instead of betting.
	PromptBet(chips, betLimit int) (bet int, quit bool)

	// PromptMove obtains one of the offered moves. The choices slice is
	// never empty and the returned move must be one of its elements.
	PromptMove(choices []Move) Move

	// PromptContinue blocks until the player acknowledges the end of a
	// round
	PromptContinue()
}

// Display renders table state to the player
type Display interface {
	// Render displays both hands and the chip/bet line. Cards with
	// Showing false must be drawn as a hidden card without leaking suit
	// or rank.
	Render(s State)

	// AnnounceOutcome displays the result of a resolved round
	AnnounceOutcome(o Outcome)
}
