package domain

import (
	"testing"
)

func TestDeckComposition(t *testing.T) {
	deck := NewDeck()
	if len(deck) != DeckSize {
		t.Fatalf("deck size = %d, want %d", len(deck), DeckSize)
	}

	copies := make(map[Card]int)
	total := 0
	for _, c := range deck {
		copies[c]++
		total += c.Points()
	}

	if len(copies) != 24 {
		t.Fatalf("distinct cards = %d, want 24", len(copies))
	}
	for c, n := range copies {
		if n != 2 {
			t.Fatalf("card %s appears %d times, want 2", c.DisplayName(), n)
		}
	}
	if total != TotalPoints {
		t.Fatalf("deck point pool = %d, want %d", total, TotalPoints)
	}
}

func TestCardPoints(t *testing.T) {
	tests := []struct {
		rank   Rank
		points int
	}{
		{RankQueen, 0},
		{RankKing, 0},
		{RankTen, 1},
		{RankAce, 1},
		{RankNine, 2},
		{RankJack, 3},
	}

	for _, tt := range tests {
		c := Card{Suit: SuitHearts, Rank: tt.rank}
		if got := c.Points(); got != tt.points {
			t.Errorf("%s points = %d, want %d", c.DisplayName(), got, tt.points)
		}
	}
}

func TestWinner(t *testing.T) {
	tests := []struct {
		name      string
		champion  Card
		contender Card
		trump     Suit
		wantCont  bool
	}{
		{
			name:      "same suit higher rank wins",
			champion:  Card{SuitHearts, RankTen},
			contender: Card{SuitHearts, RankJack},
			trump:     SuitSpades,
			wantCont:  true,
		},
		{
			name:      "same suit lower rank loses",
			champion:  Card{SuitHearts, RankJack},
			contender: Card{SuitHearts, RankQueen},
			trump:     SuitSpades,
			wantCont:  false,
		},
		{
			name:      "trump beats off-suit champion",
			champion:  Card{SuitHearts, RankJack},
			contender: Card{SuitSpades, RankQueen},
			trump:     SuitSpades,
			wantCont:  true,
		},
		{
			name:      "off-suit non-trump loses",
			champion:  Card{SuitHearts, RankQueen},
			contender: Card{SuitClubs, RankJack},
			trump:     SuitSpades,
			wantCont:  false,
		},
		{
			name:      "higher trump beats lower trump via same-suit rule",
			champion:  Card{SuitSpades, RankTen},
			contender: Card{SuitSpades, RankNine},
			trump:     SuitSpades,
			wantCont:  true,
		},
		{
			name:      "duplicate of champion does not dethrone it",
			champion:  Card{SuitHearts, RankJack},
			contender: Card{SuitHearts, RankJack},
			trump:     SuitSpades,
			wantCont:  false,
		},
		{
			name:      "nose contract has no effective trump",
			champion:  Card{SuitHearts, RankQueen},
			contender: Card{SuitClubs, RankJack},
			trump:     SuitNose,
			wantCont:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Winner(tt.champion, tt.contender, tt.trump)
			want := tt.champion
			if tt.wantCont {
				want = tt.contender
			}
			if got != want {
				t.Errorf("Winner() = %v, want %v", got, want)
			}
		})
	}
}

func TestWinnerSameSuitPairs(t *testing.T) {
	// Exhaustive same-suit check: the higher rank must always win
	// regardless of which card is champion.
	for lo := RankQueen; lo <= RankJack; lo++ {
		for hi := lo + 1; hi <= RankJack; hi++ {
			low := Card{Suit: SuitDiamonds, Rank: lo}
			high := Card{Suit: SuitDiamonds, Rank: hi}
			if Winner(low, high, SuitSpades) != high {
				t.Errorf("%s should beat %s as contender", high.DisplayName(), low.DisplayName())
			}
			if Winner(high, low, SuitSpades) != high {
				t.Errorf("%s should retain against %s", high.DisplayName(), low.DisplayName())
			}
		}
	}
}

func TestDisplayNameRoundTrip(t *testing.T) {
	for _, c := range NewDeck() {
		parsed, err := ParseDisplayName(c.DisplayName())
		if err != nil {
			t.Fatalf("ParseDisplayName(%q) error: %v", c.DisplayName(), err)
		}
		if parsed != c {
			t.Fatalf("round trip %q: got %+v, want %+v", c.DisplayName(), parsed, c)
		}
	}
}

func TestParseDisplayNameRejectsGarbage(t *testing.T) {
	for _, name := range []string{"", "Jack", "Jack of Roses", "11 of Hearts", "Jack  of  Hearts"} {
		if _, err := ParseDisplayName(name); err == nil {
			t.Errorf("ParseDisplayName(%q) should fail", name)
		}
	}
}
