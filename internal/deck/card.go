package deck

import "fmt"

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return "?"
	}
}

// Value returns the blackjack value of the rank. Aces count as 1 here;
// the alternate value of 11 is a scoring-time interpretation, never a
// property of the card itself.
func (r Rank) Value() int {
	if r >= Jack {
		return 10
	}
	return int(r)
}

// Card represents a playing card dealt at the table. Showing controls
// whether the card is visible to the player (the dealer's hole card is
// dealt with Showing false). Cards are values; FaceUp and FaceDown
// return copies rather than mutating in place.
type Card struct {
	Suit    Suit
	Rank    Rank
	Showing bool
}

// NewCard creates a new face-down card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the string representation of a card (e.g., "A♠")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// IsAce returns true if the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// Value returns the blackjack value of the card (ace low)
func (c Card) Value() int {
	return c.Rank.Value()
}

// FaceUp returns a copy of the card with Showing set
func (c Card) FaceUp() Card {
	c.Showing = true
	return c
}

// FaceDown returns a copy of the card with Showing cleared
func (c Card) FaceDown() Card {
	c.Showing = false
	return c
}
