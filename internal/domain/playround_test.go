package domain

import (
	"errors"
	"testing"
)

// suitRun returns all 12 cards of one suit (both copies of each rank).
func suitRun(s Suit) []Card {
	cards := make([]Card, 0, 12)
	for r := RankQueen; r <= RankJack; r++ {
		cards = append(cards, Card{Suit: s, Rank: r}, Card{Suit: s, Rank: r})
	}
	return cards
}

// oneSuitPerSeat deals every seat the full run of a single suit.
func oneSuitPerSeat() [][]Card {
	return [][]Card{
		suitRun(SuitHearts),
		suitRun(SuitDiamonds),
		suitRun(SuitClubs),
		suitRun(SuitSpades),
	}
}

func TestPlayRejectsOutOfTurnAndForeignCards(t *testing.T) {
	round := NewPlayRound(oneSuitPerSeat(), 0)

	if _, err := round.Play(1, Card{SuitDiamonds, RankQueen}, SuitSpades); !errors.Is(err, ErrOutOfTurn) {
		t.Fatalf("out-of-turn error = %v, want ErrOutOfTurn", err)
	}
	if _, err := round.Play(0, Card{SuitDiamonds, RankQueen}, SuitSpades); !errors.Is(err, ErrCardNotInHand) {
		t.Fatalf("foreign card error = %v, want ErrCardNotInHand", err)
	}
	if !errors.Is(ErrCardNotInHand, ErrIllegalMove) {
		t.Fatal("ErrCardNotInHand must belong to the ErrIllegalMove taxonomy")
	}
}

func TestMustFollowSuit(t *testing.T) {
	hands := [][]Card{
		{{SuitHearts, RankJack}, {SuitClubs, RankQueen}},
		{{SuitHearts, RankNine}, {SuitClubs, RankKing}},
		{{SuitDiamonds, RankQueen}, {SuitDiamonds, RankKing}},
		{{SuitHearts, RankQueen}, {SuitHearts, RankKing}},
	}
	round := PlayRound{Hands: hands, Tricks: []Trick{NewTrick(0)}, Remaining: 2}

	round, err := round.Play(0, Card{SuitHearts, RankJack}, SuitSpades)
	if err != nil {
		t.Fatalf("lead error: %v", err)
	}

	// Seat 1 holds hearts and may not discard a club.
	if !round.IsLegal(1, Card{SuitHearts, RankNine}, SuitSpades) {
		t.Fatal("following suit should be legal")
	}
	if _, err := round.Play(1, Card{SuitClubs, RankKing}, SuitSpades); !errors.Is(err, ErrMustFollowSuit) {
		t.Fatalf("discard error = %v, want ErrMustFollowSuit", err)
	}

	round, err = round.Play(1, Card{SuitHearts, RankNine}, SuitSpades)
	if err != nil {
		t.Fatalf("follow error: %v", err)
	}

	// Seat 2 holds no hearts and may throw anything.
	if !round.IsLegal(2, Card{SuitDiamonds, RankKing}, SuitSpades) {
		t.Fatal("free discard should be legal when unable to follow")
	}
}

func TestCannotLeadTrumpUntilBroken(t *testing.T) {
	hands := [][]Card{
		{{SuitSpades, RankJack}, {SuitHearts, RankQueen}},
		{{SuitDiamonds, RankQueen}, {SuitDiamonds, RankKing}},
		{{SuitClubs, RankQueen}, {SuitClubs, RankKing}},
		{{SuitHearts, RankKing}, {SuitHearts, RankNine}},
	}
	round := PlayRound{Hands: hands, Tricks: []Trick{NewTrick(0)}, Remaining: 2}

	if _, err := round.Play(0, Card{SuitSpades, RankJack}, SuitSpades); !errors.Is(err, ErrTrumpNotBroken) {
		t.Fatalf("trump lead error = %v, want ErrTrumpNotBroken", err)
	}
	if !round.IsLegal(0, Card{SuitHearts, RankQueen}, SuitSpades) {
		t.Fatal("non-trump lead should be legal")
	}
}

func TestAllTrumpHandMayLeadTrump(t *testing.T) {
	hands := [][]Card{
		{{SuitSpades, RankJack}, {SuitSpades, RankQueen}},
		{{SuitDiamonds, RankQueen}, {SuitDiamonds, RankKing}},
		{{SuitClubs, RankQueen}, {SuitClubs, RankKing}},
		{{SuitHearts, RankKing}, {SuitHearts, RankNine}},
	}
	round := PlayRound{Hands: hands, Tricks: []Trick{NewTrick(0)}, Remaining: 2}

	if !round.IsLegal(0, Card{SuitSpades, RankJack}, SuitSpades) {
		t.Fatal("a hand holding only trump must be allowed to lead it")
	}
}

func TestTrumpLeadLegalOnceBroken(t *testing.T) {
	round := NewPlayRound(oneSuitPerSeat(), 0)
	trump := SuitSpades

	// Trick 1: seat 0 leads hearts; seats 1 and 2 discard; seat 3 has only
	// spades and trumps in, breaking trump and taking the trick.
	script := []Play{
		{0, Card{SuitHearts, RankQueen}},
		{1, Card{SuitDiamonds, RankQueen}},
		{2, Card{SuitClubs, RankQueen}},
		{3, Card{SuitSpades, RankQueen}},
	}
	var err error
	for _, p := range script {
		round, err = round.Play(p.Seat, p.Card, trump)
		if err != nil {
			t.Fatalf("seat %d play error: %v", p.Seat, err)
		}
	}

	if round.Remaining != 11 {
		t.Fatalf("remaining = %d, want 11", round.Remaining)
	}
	if got := round.CurrentTrick().NextSeat; got != 3 {
		t.Fatalf("next leader = %d, want trick winner 3", got)
	}
	if !round.IsLegal(3, Card{SuitSpades, RankJack}, trump) {
		t.Fatal("trump lead should be legal after trump was broken")
	}
}

func TestPlayKeepsDeckInvariant(t *testing.T) {
	round := NewPlayRound(oneSuitPerSeat(), 0)
	trump := SuitSpades

	countCards := func(r PlayRound) int {
		n := 0
		for _, h := range r.Hands {
			n += len(h)
		}
		for _, trick := range r.Tricks {
			n += len(trick.Plays)
		}
		return n
	}

	for !round.Finished() {
		seat := round.CurrentTrick().NextSeat
		var err error
		round, err = round.Play(seat, round.Hands[seat][0], trump)
		if err != nil {
			t.Fatalf("seat %d play error: %v", seat, err)
		}
		if got := countCards(round); got != DeckSize {
			t.Fatalf("hands + played = %d, want %d", got, DeckSize)
		}
	}
}

func TestScoresBeforeRoundEnds(t *testing.T) {
	round := NewPlayRound(oneSuitPerSeat(), 0)
	if _, _, err := round.Scores(SuitSpades); err != ErrRoundNotFinished {
		t.Fatalf("early scores error = %v, want ErrRoundNotFinished", err)
	}
}

// Full scripted round: seat 3 holds all the trump and takes every trick,
// so the odd team collects the entire 56-point pool.
func TestFullRoundScoring(t *testing.T) {
	round := NewPlayRound(oneSuitPerSeat(), 0)
	trump := SuitSpades

	for !round.Finished() {
		seat := round.CurrentTrick().NextSeat
		var err error
		round, err = round.Play(seat, round.Hands[seat][0], trump)
		if err != nil {
			t.Fatalf("seat %d play error: %v", seat, err)
		}
	}

	if round.Remaining != 0 {
		t.Fatalf("remaining = %d, want 0", round.Remaining)
	}
	if len(round.Tricks) != 12 {
		t.Fatalf("tricks = %d, want 12", len(round.Tricks))
	}
	for seat, hand := range round.Hands {
		if len(hand) != 0 {
			t.Fatalf("seat %d still holds %d cards", seat, len(hand))
		}
	}

	team0, team1, err := round.Scores(trump)
	if err != nil {
		t.Fatalf("scores error: %v", err)
	}
	if team0 != 0 || team1 != TotalPoints {
		t.Fatalf("scores = (%d, %d), want (0, %d)", team0, team1, TotalPoints)
	}
	if team0+team1 != TotalPoints {
		t.Fatalf("score sum = %d, want the full pool %d", team0+team1, TotalPoints)
	}
}

func TestPlayDoesNotMutateReceiver(t *testing.T) {
	round := NewPlayRound(oneSuitPerSeat(), 0)
	before := len(round.Hands[0])

	updated, err := round.Play(0, round.Hands[0][0], SuitSpades)
	if err != nil {
		t.Fatalf("play error: %v", err)
	}
	if len(round.Hands[0]) != before || len(round.CurrentTrick().Plays) != 0 {
		t.Fatal("original round value was mutated")
	}
	if len(updated.Hands[0]) != before-1 {
		t.Fatal("updated round did not remove the card")
	}
}
