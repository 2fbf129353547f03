// Package display implements the terminal adapter for the game engine:
// lipgloss-styled rendering of the table and line-oriented prompts with
// re-prompt loops. The engine only ever sees the game.Agent and
// game.Display contracts, so everything about terminals stays here.
package display

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cardroom/blackjack/internal/deck"
	"github.com/cardroom/blackjack/internal/game"
)

// Styles contains all styling for the console renderer
type Styles struct {
	Header     lipgloss.Style
	RedCard    lipgloss.Style
	BlackCard  lipgloss.Style
	HiddenCard lipgloss.Style
	Chips      lipgloss.Style
	Prompt     lipgloss.Style
	Win        lipgloss.Style
	Lose       lipgloss.Style
	Info       lipgloss.Style
}

// DefaultStyles returns the default console styling
func DefaultStyles() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")),
		RedCard: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555")),
		BlackCard: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8F8F2")),
		HiddenCard: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272A4")),
		Chips: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F1FA8C")),
		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8BE9FD")),
		Win: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#50FA7B")),
		Lose: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF5555")),
		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#BD93F9")),
	}
}

// Console implements game.Agent and game.Display over a line-oriented
// terminal. All input validation lives here: prompts loop until the
// player types something that satisfies the engine's contract.
type Console struct {
	in     *bufio.Scanner
	out    io.Writer
	styles *Styles
}

// NewConsole creates a console adapter reading from in and writing to out
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:     bufio.NewScanner(in),
		out:    out,
		styles: DefaultStyles(),
	}
}

// Render displays both hands with their scores and the chip/bet line.
// Face-down cards render as a hidden card; their rank and suit never
// reach the terminal.
func (c *Console) Render(s game.State) {
	fmt.Fprintln(c.out)
	fmt.Fprintf(c.out, "%s  %s\n", c.styles.Header.Render("Dealer:"), c.renderHand(s.Dealer))
	fmt.Fprintf(c.out, "%s  %s\n", c.styles.Header.Render("You:   "), c.renderHand(s.Player))
	fmt.Fprintf(c.out, "%s\n", c.styles.Chips.Render(fmt.Sprintf("Chips: %d   Bet: %d", s.Chips, s.CurrentBet)))
}

// AnnounceOutcome displays the result of a resolved round
func (c *Console) AnnounceOutcome(o game.Outcome) {
	var msg string
	switch o {
	case game.OutcomeBlackjack:
		msg = c.styles.Win.Render("Blackjack! You win 3:2.")
	case game.OutcomeWin:
		msg = c.styles.Win.Render("You win!")
	case game.OutcomePush:
		msg = c.styles.Info.Render("Push. Your bet is returned.")
	case game.OutcomeSurrender:
		msg = c.styles.Info.Render("You surrender and take back half your bet.")
	case game.OutcomeLose:
		msg = c.styles.Lose.Render("You lose.")
	}
	fmt.Fprintln(c.out, msg)
}

// PromptBet asks for a bet until one is in range, or until the player
// types q/quit to leave the table
func (c *Console) PromptBet(chips, betLimit int) (int, bool) {
	max := chips
	if betLimit < max {
		max = betLimit
	}

	for {
		fmt.Fprint(c.out, c.styles.Prompt.Render(fmt.Sprintf("Your bet (1-%d, q to quit): ", max)))
		line, ok := c.readLine()
		if !ok {
			return 0, true
		}

		switch strings.ToLower(line) {
		case "q", "quit", "exit":
			return 0, true
		}

		bet, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(c.out, c.styles.Lose.Render("Please enter a number."))
			continue
		}
		if bet <= 0 || bet > max {
			fmt.Fprintln(c.out, c.styles.Lose.Render(fmt.Sprintf("Bet must be between 1 and %d.", max)))
			continue
		}
		return bet, false
	}
}

// PromptMove presents the legal moves and reads one, re-prompting until
// the input matches an offered move
func (c *Console) PromptMove(choices []game.Move) game.Move {
	menu := make([]string, len(choices))
	for i, m := range choices {
		menu[i] = fmt.Sprintf("%s(%s)", m, shortcut(m))
	}

	for {
		fmt.Fprint(c.out, c.styles.Prompt.Render(strings.Join(menu, " ")+": "))
		line, ok := c.readLine()
		if !ok {
			return game.MoveExit
		}

		input := strings.ToLower(strings.TrimSpace(line))
		for _, m := range choices {
			if input == shortcut(m) || input == m.String() {
				return m
			}
		}
		fmt.Fprintln(c.out, c.styles.Lose.Render("Unrecognized move."))
	}
}

// PromptContinue blocks until the player presses enter
func (c *Console) PromptContinue() {
	fmt.Fprint(c.out, c.styles.Prompt.Render("Press enter for the next round..."))
	c.readLine()
}

func (c *Console) renderHand(h game.Hand) string {
	if len(h) == 0 {
		return c.styles.HiddenCard.Render("(empty)")
	}

	parts := make([]string, 0, len(h)+1)
	allShowing := true
	for _, card := range h {
		parts = append(parts, c.renderCard(card))
		if !card.Showing {
			allShowing = false
		}
	}

	if allShowing {
		if top, ok := game.TopScore(h); ok {
			parts = append(parts, c.styles.Info.Render(fmt.Sprintf("(%d)", top)))
		} else {
			parts = append(parts, c.styles.Lose.Render("(bust)"))
		}
	}
	return strings.Join(parts, " ")
}

func (c *Console) renderCard(card deck.Card) string {
	if !card.Showing {
		return c.styles.HiddenCard.Render("[??]")
	}
	if card.IsRed() {
		return c.styles.RedCard.Render(card.String())
	}
	return c.styles.BlackCard.Render(card.String())
}

// readLine reads a line of input; ok is false at EOF, which callers
// treat as a quit
func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// shortcut returns the single-letter menu key for a move. Double-down
// uses "d" and stay uses "s"; surrender gets "u" to stay unambiguous.
func shortcut(m game.Move) string {
	switch m {
	case game.MoveHit:
		return "h"
	case game.MoveStay:
		return "s"
	case game.MoveSurrender:
		return "u"
	case game.MoveDouble:
		return "d"
	case game.MoveExit:
		return "x"
	default:
		return "?"
	}
}
