package deck

import "testing"

func TestRankValues(t *testing.T) {
	tests := []struct {
		name     string
		rank     Rank
		expected int
	}{
		{name: "ace counts low", rank: Ace, expected: 1},
		{name: "two", rank: Two, expected: 2},
		{name: "nine", rank: Nine, expected: 9},
		{name: "ten", rank: Ten, expected: 10},
		{name: "jack", rank: Jack, expected: 10},
		{name: "queen", rank: Queen, expected: 10},
		{name: "king", rank: King, expected: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rank.Value(); got != tt.expected {
				t.Errorf("Value() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestCardString(t *testing.T) {
	tests := []struct {
		card     Card
		expected string
	}{
		{NewCard(Spades, Ace), "A♠"},
		{NewCard(Hearts, Ten), "T♥"},
		{NewCard(Diamonds, Queen), "Q♦"},
		{NewCard(Clubs, Two), "2♣"},
	}

	for _, tt := range tests {
		if got := tt.card.String(); got != tt.expected {
			t.Errorf("String() = %q, want %q", got, tt.expected)
		}
	}
}

func TestCardVisibilityCopies(t *testing.T) {
	c := NewCard(Spades, Ace)
	if c.Showing {
		t.Fatal("new cards should be face down")
	}

	up := c.FaceUp()
	if !up.Showing {
		t.Error("FaceUp should return a showing card")
	}
	if c.Showing {
		t.Error("FaceUp must not mutate the original card")
	}

	down := up.FaceDown()
	if down.Showing {
		t.Error("FaceDown should return a hidden card")
	}
	if !up.Showing {
		t.Error("FaceDown must not mutate the original card")
	}
}

func TestIsRed(t *testing.T) {
	if !NewCard(Hearts, Five).IsRed() || !NewCard(Diamonds, Five).IsRed() {
		t.Error("hearts and diamonds are red")
	}
	if NewCard(Spades, Five).IsRed() || NewCard(Clubs, Five).IsRed() {
		t.Error("spades and clubs are black")
	}
}

func TestIsAce(t *testing.T) {
	if !NewCard(Clubs, Ace).IsAce() {
		t.Error("expected ace")
	}
	if NewCard(Clubs, King).IsAce() {
		t.Error("king is not an ace")
	}
}
